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

import "math/bits"

// This file provides bitwise operations, bit selects and the per-lane bit
// counts.

// pattern returns the bit pattern of x zero-extended from its lane width.
func pattern[T Integers](x T) uint64 {
	u := uint64(x)
	if b := LaneBits[T](); b < 64 {
		u &= 1<<b - 1
	}
	return u
}

// And returns a & b (VAND).
func And[T Integers](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	for i := range int(a.n) {
		a.lanes[i] &= b.lanes[i]
	}
	return a
}

// Orr returns a | b (VORR).
func Orr[T Integers](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	for i := range int(a.n) {
		a.lanes[i] |= b.lanes[i]
	}
	return a
}

// Eor returns a ^ b (VEOR).
func Eor[T Integers](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	for i := range int(a.n) {
		a.lanes[i] ^= b.lanes[i]
	}
	return a
}

// Bic returns a &^ b (VBIC).
func Bic[T Integers](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	for i := range int(a.n) {
		a.lanes[i] &^= b.lanes[i]
	}
	return a
}

// Orn returns a | ^b (VORN).
func Orn[T Integers](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	for i := range int(a.n) {
		a.lanes[i] |= ^b.lanes[i]
	}
	return a
}

// Mvn returns ^a (VMVN).
func Mvn[T Integers](a Vec[T]) Vec[T] {
	for i := range int(a.n) {
		a.lanes[i] = ^a.lanes[i]
	}
	return a
}

// BitSelect merges src into dst under mask (VBIT): each result bit is the
// src bit where the mask bit is set and the dst bit otherwise. dst is not
// cleared first, so a caller seeds it with one candidate and merges the
// other:
//
//	BitSelect(0xAAAAAAAA, 0x55555555, 0xFFFF0000) = 0x5555AAAA
func BitSelect[T Integers](dst, src, mask Vec[T]) Vec[T] {
	assertSameShape(dst, src)
	assertSameShape(dst, mask)
	for i := range int(dst.n) {
		dst.lanes[i] = dst.lanes[i]&^mask.lanes[i] | src.lanes[i]&mask.lanes[i]
	}
	return dst
}

// Bif merges src into dst where the mask bit is clear (VBIF).
func Bif[T Integers](dst, src, mask Vec[T]) Vec[T] {
	assertSameShape(dst, src)
	assertSameShape(dst, mask)
	for i := range int(dst.n) {
		dst.lanes[i] = dst.lanes[i]&mask.lanes[i] | src.lanes[i]&^mask.lanes[i]
	}
	return dst
}

// Bsl takes bits from a where the mask bit is set and from b otherwise
// (VBSL).
func Bsl[T Integers](mask, a, b Vec[T]) Vec[T] {
	return BitSelect(b, a, mask)
}

// Clz counts the leading zero bits of each lane (VCLZ).
func Clz[T Integers](a Vec[T]) Vec[T] {
	skip := 64 - int(LaneBits[T]())
	for i := range int(a.n) {
		a.lanes[i] = T(bits.LeadingZeros64(pattern(a.lanes[i])) - skip)
	}
	return a
}

// Cls counts, for each lane, the bits below the sign bit that equal it
// (VCLS). It is the headroom of a fixed-point value: the left shift that
// normalizes it without overflow.
//
//	Cls(1) = 30 and Cls(-1) = 31 for 32-bit lanes
func Cls[T SignedInts](a Vec[T]) Vec[T] {
	be, width := cur(), LaneBits[T]()
	for i := range int(a.n) {
		a.lanes[i] = T(be.Cls(int64(a.lanes[i]), width))
	}
	return a
}

// Cnt counts the set bits of each lane (VCNT).
func Cnt[T Integers](a Vec[T]) Vec[T] {
	for i := range int(a.n) {
		a.lanes[i] = T(bits.OnesCount64(pattern(a.lanes[i])))
	}
	return a
}
