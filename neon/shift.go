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

// Shl shifts every lane left by the immediate n, 0 <= n < lane bits (VSHL).
func Shl[T Integers](a Vec[T], n int) Vec[T] {
	precondition(n >= 0 && n < int(LaneBits[T]()), "shift %d out of range for %d-bit lanes", n, LaneBits[T]())
	for i := range int(a.n) {
		a.lanes[i] <<= n
	}
	return a
}

// Shr shifts every lane right by the immediate n, 1 <= n <= lane bits
// (VSHR). The shift is arithmetic for signed lanes and logical otherwise.
func Shr[T Integers](a Vec[T], n int) Vec[T] {
	precondition(n >= 1 && n <= int(LaneBits[T]()), "shift %d out of range for %d-bit lanes", n, LaneBits[T]())
	for i := range int(a.n) {
		a.lanes[i] >>= n
	}
	return a
}

// shiftAmount is the signed low byte of a shift-count lane, as the register
// shifts read it.
func shiftAmount[T Integers](x T) int {
	return int(int8(x))
}

// ShlV shifts each lane of a by the matching lane of amounts (VSHL by
// register). Only the signed low byte of each amount is used; a negative
// amount shifts right. Nothing saturates: bits shifted out are lost.
func ShlV[T Integers](a, amounts Vec[T]) Vec[T] {
	assertSameShape(a, amounts)
	for i := range int(a.n) {
		if s := shiftAmount(amounts.lanes[i]); s >= 0 {
			a.lanes[i] <<= s
		} else {
			a.lanes[i] >>= -s
		}
	}
	return a
}

func qshl[T Integers](be Backend, x T, shift int) T {
	if isSigned[T]() {
		return T(be.QShl(int64(x), shift, LaneBits[T]()))
	}
	switch {
	case shift < 0:
		return x >> -shift
	case x == 0:
		return 0
	case shift >= int(LaneBits[T]()) || x > MaxLane[T]()>>shift:
		return MaxLane[T]()
	}
	return x << shift
}

// QShl shifts every lane left by shift, saturating when a significant bit
// would be lost (VQSHL). A negative shift is a plain right shift that never
// saturates, so one call site can scale either way:
//
//	QShl(Set[int32](D, 0x10000), 16)  = [0x7FFFFFFF 0x7FFFFFFF]
//	QShl(Set[int32](D, 0x10000), -16) = [1 1]
func QShl[T Integers](a Vec[T], shift int) Vec[T] {
	be := cur()
	for i := range int(a.n) {
		a.lanes[i] = qshl(be, a.lanes[i], shift)
	}
	return a
}

// QShlV is QShl with a per-lane amount taken from the signed low byte of
// the matching lane of amounts (VQSHL by register).
func QShlV[T Integers](a, amounts Vec[T]) Vec[T] {
	assertSameShape(a, amounts)
	be := cur()
	for i := range int(a.n) {
		a.lanes[i] = qshl(be, a.lanes[i], shiftAmount(amounts.lanes[i]))
	}
	return a
}

// RShr is the rounding right shift (VRSHR): every lane becomes
// (a + 2^(n-1)) >> n, computed exactly, 1 <= n <= lane bits.
func RShr[T Integers](a Vec[T], n int) Vec[T] {
	bits := LaneBits[T]()
	precondition(n >= 1 && n <= int(bits), "shift %d out of range for %d-bit lanes", n, bits)
	if !isSigned[T]() {
		for i := range int(a.n) {
			x := a.lanes[i]
			a.lanes[i] = x>>n + x>>(n-1)&1
		}
		return a
	}
	be := cur()
	for i := range int(a.n) {
		a.lanes[i] = T(be.RShr(int64(a.lanes[i]), uint(n), bits))
	}
	return a
}

// RSra accumulates the rounding right shift of a into acc (VRSRA),
// wrapping.
func RSra[T Integers](acc, a Vec[T], n int) Vec[T] {
	return Add(acc, RShr(a, n))
}
