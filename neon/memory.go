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

// This file provides the structured load/store unit. Loads with more than
// one destination register deinterleave (VLD2..VLD4): lane i of register k
// comes from element i*n+k. Stores are the exact inverse.
//
// Buffers are caller owned; nothing here allocates. Reading or writing past
// the end of a buffer panics like any Go slice access.

// LoadN loads len(dst) registers of shape s from src, deinterleaving
// structures of n = len(dst) elements (VLDn). n must be 1 to 4.
//
// Input memory layout for n = 2:
//
//	[a0, b0, a1, b1, a2, b2, a3, b3]
//
// Output registers:
//
//	dst[0] = [a0, a1, a2, a3]
//	dst[1] = [b0, b1, b2, b3]
func LoadN[T Lanes](src []T, s Shape, dst []Vec[T]) {
	n := len(dst)
	precondition(n >= 1 && n <= 4, "structured load of %d registers", n)
	lanes := NumLanes[T](s)
	_ = src[n*lanes-1]
	for k := range dst {
		v := &dst[k]
		v.n = uint8(lanes)
		for i := range lanes {
			v.lanes[i] = src[i*n+k]
		}
	}
}

// StoreN writes regs to dst, interleaving structures of n = len(regs)
// elements (VSTn). It is the inverse of LoadN.
func StoreN[T Lanes](dst []T, regs []Vec[T]) {
	n := len(regs)
	precondition(n >= 1 && n <= 4, "structured store of %d registers", n)
	lanes := int(regs[0].n)
	_ = dst[n*lanes-1]
	for k := range regs {
		assertSameShape(regs[0], regs[k])
		v := &regs[k]
		for i := range lanes {
			dst[i*n+k] = v.lanes[i]
		}
	}
}

// Load1 loads one register of shape s from consecutive elements (VLD1).
func Load1[T Lanes](src []T, s Shape) Vec[T] {
	var r [1]Vec[T]
	LoadN(src, s, r[:])
	return r[0]
}

// Load2 deinterleaves pairs into two registers (VLD2). This is how
// interleaved real/imaginary FFT data is split.
func Load2[T Lanes](src []T, s Shape) (Vec[T], Vec[T]) {
	var r [2]Vec[T]
	LoadN(src, s, r[:])
	return r[0], r[1]
}

// Load3 deinterleaves triples into three registers (VLD3).
func Load3[T Lanes](src []T, s Shape) (Vec[T], Vec[T], Vec[T]) {
	var r [3]Vec[T]
	LoadN(src, s, r[:])
	return r[0], r[1], r[2]
}

// Load4 deinterleaves quads into four registers (VLD4).
func Load4[T Lanes](src []T, s Shape) (Vec[T], Vec[T], Vec[T], Vec[T]) {
	var r [4]Vec[T]
	LoadN(src, s, r[:])
	return r[0], r[1], r[2], r[3]
}

// Store1 stores one register to consecutive elements (VST1).
func Store1[T Lanes](dst []T, v Vec[T]) {
	r := [1]Vec[T]{v}
	StoreN(dst, r[:])
}

// Store2 interleaves two registers into pairs (VST2).
func Store2[T Lanes](dst []T, a, b Vec[T]) {
	r := [2]Vec[T]{a, b}
	StoreN(dst, r[:])
}

// Store3 interleaves three registers into triples (VST3).
func Store3[T Lanes](dst []T, a, b, c Vec[T]) {
	r := [3]Vec[T]{a, b, c}
	StoreN(dst, r[:])
}

// Store4 interleaves four registers into quads (VST4).
func Store4[T Lanes](dst []T, a, b, c, d Vec[T]) {
	r := [4]Vec[T]{a, b, c, d}
	StoreN(dst, r[:])
}

// LoadMulti fills len(dst) registers from consecutive memory without
// interleaving (VLD1 with a register list).
func LoadMulti[T Lanes](src []T, s Shape, dst []Vec[T]) {
	precondition(len(dst) >= 1 && len(dst) <= 4, "multi-register load of %d registers", len(dst))
	lanes := NumLanes[T](s)
	_ = src[len(dst)*lanes-1]
	for k := range dst {
		v := &dst[k]
		v.n = uint8(lanes)
		copy(v.lanes[:lanes], src[k*lanes:])
	}
}

// StoreMulti writes regs to consecutive memory without interleaving (VST1
// with a register list).
func StoreMulti[T Lanes](dst []T, regs []Vec[T]) {
	precondition(len(regs) >= 1 && len(regs) <= 4, "multi-register store of %d registers", len(regs))
	lanes := int(regs[0].n)
	_ = dst[len(regs)*lanes-1]
	for k := range regs {
		assertSameShape(regs[0], regs[k])
		copy(dst[k*lanes:(k+1)*lanes], regs[k].lanes[:lanes])
	}
}

// LoadDup broadcasts src[0] into every lane of a register of shape s
// (VLD1 to all lanes). It is used to splat a coefficient before a vector
// multiply.
func LoadDup[T Lanes](src []T, s Shape) Vec[T] {
	return Set(s, src[0])
}

// LoadDupN broadcasts src[k] into every lane of dst[k] (VLDn to all lanes).
func LoadDupN[T Lanes](src []T, s Shape, dst []Vec[T]) {
	precondition(len(dst) >= 1 && len(dst) <= 4, "structured load of %d registers", len(dst))
	_ = src[len(dst)-1]
	for k := range dst {
		dst[k] = Set(s, src[k])
	}
}

// LoadLane returns v with lane replaced by src[0] (VLD1 single lane).
func LoadLane[T Lanes](src []T, v Vec[T], lane int) Vec[T] {
	return v.WithLane(lane, src[0])
}

// StoreLane writes lane of v to dst[0] (VST1 single lane).
func StoreLane[T Lanes](dst []T, v Vec[T], lane int) {
	dst[0] = v.Lane(lane)
}

// LoadLaneN replaces lane of regs[k] with src[k] (VLDn single lane).
func LoadLaneN[T Lanes](src []T, regs []Vec[T], lane int) {
	_ = src[len(regs)-1]
	for k := range regs {
		regs[k] = regs[k].WithLane(lane, src[k])
	}
}

// StoreLaneN writes lane of regs[k] to dst[k] (VSTn single lane).
func StoreLaneN[T Lanes](dst []T, regs []Vec[T], lane int) {
	_ = dst[len(regs)-1]
	for k := range regs {
		dst[k] = regs[k].Lane(lane)
	}
}
