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

import "unsafe"

// Ptr is a post-indexed address into a caller-owned buffer. Each transfer
// reads or writes at the current position and then moves it, either past
// the data transferred or by an explicit byte step. A negative step walks a
// buffer backwards, as the FFT does for the reversed second half.
//
// The position may leave the buffer after the last transfer of a loop;
// only an access outside the buffer panics.
type Ptr[T Lanes] struct {
	buf   []T
	off   int
	align int
}

// At returns a pointer to element off of buf.
func At[T Lanes](buf []T, off int) Ptr[T] {
	return Ptr[T]{buf: buf, off: off}
}

// Aligned declares that every transfer through p happens at an address that
// is a multiple of bytes. Debug builds check the claim.
func (p *Ptr[T]) Aligned(bytes int) *Ptr[T] {
	p.align = bytes
	return p
}

// Offset returns the current element index.
func (p *Ptr[T]) Offset() int {
	return p.off
}

// Advance moves the position by step bytes.
func (p *Ptr[T]) Advance(step int) {
	size := LaneBytes[T]()
	precondition(step%size == 0, "step %d is not a multiple of the %d-byte lane", step, size)
	p.off += step / size
}

func (p *Ptr[T]) check() {
	if !debugChecks || p.align == 0 {
		return
	}
	addr := uintptr(unsafe.Pointer(&p.buf[p.off]))
	precondition(addr%uintptr(p.align) == 0, "address %#x is not %d-byte aligned", addr, p.align)
}

// Load performs LoadN at the current position and advances past the
// elements read.
func (p *Ptr[T]) Load(s Shape, dst []Vec[T]) {
	p.check()
	LoadN(p.buf[p.off:], s, dst)
	p.off += len(dst) * NumLanes[T](s)
}

// LoadStep performs LoadN at the current position and then advances by
// step bytes.
func (p *Ptr[T]) LoadStep(s Shape, dst []Vec[T], step int) {
	p.check()
	LoadN(p.buf[p.off:], s, dst)
	p.Advance(step)
}

// Load1 loads one register and advances past it.
func (p *Ptr[T]) Load1(s Shape) Vec[T] {
	var r [1]Vec[T]
	p.Load(s, r[:])
	return r[0]
}

// Load1Step loads one register and then advances by step bytes.
func (p *Ptr[T]) Load1Step(s Shape, step int) Vec[T] {
	var r [1]Vec[T]
	p.LoadStep(s, r[:], step)
	return r[0]
}

// Store performs StoreN at the current position and advances past the
// elements written.
func (p *Ptr[T]) Store(regs []Vec[T]) {
	p.check()
	StoreN(p.buf[p.off:], regs)
	p.off += len(regs) * int(regs[0].n)
}

// StoreStep performs StoreN at the current position and then advances by
// step bytes.
func (p *Ptr[T]) StoreStep(regs []Vec[T], step int) {
	p.check()
	StoreN(p.buf[p.off:], regs)
	p.Advance(step)
}

// Store1 stores one register and advances past it.
func (p *Ptr[T]) Store1(v Vec[T]) {
	r := [1]Vec[T]{v}
	p.Store(r[:])
}

// Store1Step stores one register and then advances by step bytes.
func (p *Ptr[T]) Store1Step(v Vec[T], step int) {
	r := [1]Vec[T]{v}
	p.StoreStep(r[:], step)
}

// LoadDup broadcasts the current element and advances by one element.
func (p *Ptr[T]) LoadDup(s Shape) Vec[T] {
	p.check()
	v := LoadDup(p.buf[p.off:], s)
	p.off++
	return v
}

// LoadDupStep broadcasts the current element and then advances by step
// bytes.
func (p *Ptr[T]) LoadDupStep(s Shape, step int) Vec[T] {
	p.check()
	v := LoadDup(p.buf[p.off:], s)
	p.Advance(step)
	return v
}
