// Copyright 2025 go-mpeghdec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package neon

// NumD and NumQ are the register counts of a File.
const (
	NumD = 32
	NumQ = NumD / 2
)

// File is a bank of NumD D registers in which Q register i is made of D
// registers 2i and 2i+1. Kernels that need registers to be adjacent, such
// as the destinations of a structured load, address them by index, so the
// adjacency holds by construction.
//
// The zero File has every register cleared. A File is a plain value; give
// each goroutine its own.
type File struct {
	d [NumD][8]byte
}

func checkReg(i, count int) {
	precondition(i >= 0 && i < count, "register %d out of range [0,%d)", i, count)
}

// GetD reads D register i as lanes of type T.
func GetD[T Lanes](f *File, i int) Vec[T] {
	checkReg(i, NumD)
	var b [16]byte
	copy(b[:8], f.d[i][:])
	return fromBytes[T](b, 8)
}

// PutD writes v to D register i.
func PutD[T Lanes](f *File, i int, v Vec[T]) {
	checkReg(i, NumD)
	assertShape(v, D)
	b, _ := v.bytes()
	copy(f.d[i][:], b[:8])
}

// GetQ reads Q register i, the pair of D registers 2i and 2i+1.
func GetQ[T Lanes](f *File, i int) Vec[T] {
	checkReg(i, NumQ)
	var b [16]byte
	copy(b[:8], f.d[2*i][:])
	copy(b[8:], f.d[2*i+1][:])
	return fromBytes[T](b, 16)
}

// PutQ writes v to Q register i, overwriting D registers 2i and 2i+1.
func PutQ[T Lanes](f *File, i int, v Vec[T]) {
	checkReg(i, NumQ)
	assertShape(v, Q)
	b, _ := v.bytes()
	copy(f.d[2*i][:], b[:8])
	copy(f.d[2*i+1][:], b[8:])
}

// get and put address register i of shape s.
func get[T Lanes](f *File, s Shape, i int) Vec[T] {
	if s == Q {
		return GetQ[T](f, i)
	}
	return GetD[T](f, i)
}

func put[T Lanes](f *File, s Shape, i int, v Vec[T]) {
	if s == Q {
		PutQ(f, i, v)
		return
	}
	PutD(f, i, v)
}

// LoadFile performs a structured load of n registers of shape s (see
// LoadN) into registers first, first+1, ... of f.
func LoadFile[T Lanes](f *File, first int, src []T, s Shape, n int) {
	count := NumD
	if s == Q {
		count = NumQ
	}
	checkReg(first, count)
	checkReg(first+n-1, count)
	var regs [4]Vec[T]
	LoadN(src, s, regs[:n])
	for k := range n {
		put(f, s, first+k, regs[k])
	}
}

// StoreFile performs a structured store (see StoreN) of the n registers of
// shape s starting at register first of f.
func StoreFile[T Lanes](f *File, dst []T, first int, s Shape, n int) {
	count := NumD
	if s == Q {
		count = NumQ
	}
	checkReg(first, count)
	checkReg(first+n-1, count)
	var regs [4]Vec[T]
	for k := range n {
		regs[k] = get[T](f, s, first+k)
	}
	StoreN(dst, regs[:n])
}
