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

// This file provides the lane-wise add/sub family: wrapping, saturating and
// halving forms, min/max and the pairwise reductions.
//
// Wrapping forms are for values the caller has already proven in range.
// Debug builds log (at Debug level) every signed lane that wrapped.

// Add performs element-wise addition (VADD).
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	for i := range int(a.n) {
		if debugChecks && signedInt[T]() && LaneBits[T]() < 64 {
			traceWrap("Add", i, int64(a.lanes[i])+int64(b.lanes[i]), LaneBits[T]())
		}
		a.lanes[i] += b.lanes[i]
	}
	return a
}

// Sub performs element-wise subtraction (VSUB).
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	for i := range int(a.n) {
		if debugChecks && signedInt[T]() && LaneBits[T]() < 64 {
			traceWrap("Sub", i, int64(a.lanes[i])-int64(b.lanes[i]), LaneBits[T]())
		}
		a.lanes[i] -= b.lanes[i]
	}
	return a
}

// Neg negates each lane (VNEG). The lane minimum wraps to itself.
func Neg[T SignedInts](a Vec[T]) Vec[T] {
	for i := range int(a.n) {
		if debugChecks && LaneBits[T]() < 64 {
			traceWrap("Neg", i, -int64(a.lanes[i]), LaneBits[T]())
		}
		a.lanes[i] = -a.lanes[i]
	}
	return a
}

// Abs computes the absolute value of each lane (VABS). The lane minimum
// wraps to itself.
func Abs[T SignedInts](a Vec[T]) Vec[T] {
	for i := range int(a.n) {
		if a.lanes[i] < 0 {
			if debugChecks && LaneBits[T]() < 64 {
				traceWrap("Abs", i, -int64(a.lanes[i]), LaneBits[T]())
			}
			a.lanes[i] = -a.lanes[i]
		}
	}
	return a
}

// QAdd performs element-wise addition with saturation (VQADD).
// For example, int32: 0x7FFFFFFF + 1 = 0x7FFFFFFF.
func QAdd[T Integers](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	if !isSigned[T]() {
		for i := range int(a.n) {
			s := a.lanes[i] + b.lanes[i]
			if s < a.lanes[i] {
				s = MaxLane[T]()
			}
			a.lanes[i] = s
		}
		return a
	}
	be, bits := cur(), LaneBits[T]()
	for i := range int(a.n) {
		a.lanes[i] = T(be.QAdd(int64(a.lanes[i]), int64(b.lanes[i]), bits))
	}
	return a
}

// QSub performs element-wise subtraction with saturation (VQSUB).
// Unsigned lanes clamp at zero.
func QSub[T Integers](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	if !isSigned[T]() {
		for i := range int(a.n) {
			if a.lanes[i] < b.lanes[i] {
				a.lanes[i] = 0
			} else {
				a.lanes[i] -= b.lanes[i]
			}
		}
		return a
	}
	be, bits := cur(), LaneBits[T]()
	for i := range int(a.n) {
		a.lanes[i] = T(be.QSub(int64(a.lanes[i]), int64(b.lanes[i]), bits))
	}
	return a
}

// QNeg negates each lane, mapping the lane minimum to the maximum (VQNEG).
func QNeg[T SignedInts](a Vec[T]) Vec[T] {
	be, bits := cur(), LaneBits[T]()
	for i := range int(a.n) {
		a.lanes[i] = T(be.QNeg(int64(a.lanes[i]), bits))
	}
	return a
}

// QAbs computes |a| per lane, mapping the lane minimum to the maximum
// (VQABS).
func QAbs[T SignedInts](a Vec[T]) Vec[T] {
	be, bits := cur(), LaneBits[T]()
	for i := range int(a.n) {
		a.lanes[i] = T(be.QAbs(int64(a.lanes[i]), bits))
	}
	return a
}

// HAdd computes (a+b)>>1 per lane without intermediate overflow (VHADD).
func HAdd[T Integers](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	if !isSigned[T]() {
		for i := range int(a.n) {
			x, y := a.lanes[i], b.lanes[i]
			a.lanes[i] = x>>1 + y>>1 + x&y&1
		}
		return a
	}
	be, bits := cur(), LaneBits[T]()
	for i := range int(a.n) {
		a.lanes[i] = T(be.HAdd(int64(a.lanes[i]), int64(b.lanes[i]), bits))
	}
	return a
}

// RHAdd computes (a+b+1)>>1 per lane without intermediate overflow
// (VRHADD). It is the rounded average of two samples.
func RHAdd[T Integers](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	if !isSigned[T]() {
		for i := range int(a.n) {
			x, y := a.lanes[i], b.lanes[i]
			a.lanes[i] = x>>1 + y>>1 + (x|y)&1
		}
		return a
	}
	be, bits := cur(), LaneBits[T]()
	for i := range int(a.n) {
		a.lanes[i] = T(be.RHAdd(int64(a.lanes[i]), int64(b.lanes[i]), bits))
	}
	return a
}

// HSub computes (a-b)>>1 per lane without intermediate overflow (VHSUB).
func HSub[T Integers](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	if !isSigned[T]() {
		for i := range int(a.n) {
			x, y := a.lanes[i], b.lanes[i]
			a.lanes[i] = x>>1 - y>>1 - ^x&y&1
		}
		return a
	}
	be, bits := cur(), LaneBits[T]()
	for i := range int(a.n) {
		a.lanes[i] = T(be.HSub(int64(a.lanes[i]), int64(b.lanes[i]), bits))
	}
	return a
}

// Min returns the element-wise minimum (VMIN).
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	for i := range int(a.n) {
		a.lanes[i] = min(a.lanes[i], b.lanes[i])
	}
	return a
}

// Max returns the element-wise maximum (VMAX).
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	for i := range int(a.n) {
		a.lanes[i] = max(a.lanes[i], b.lanes[i])
	}
	return a
}

// pairwise folds adjacent lane pairs of a into the low half of the result
// and those of b into the high half.
func pairwise[T Lanes](a, b Vec[T], f func(x, y T) T) Vec[T] {
	assertSameShape(a, b)
	r := Vec[T]{n: a.n}
	h := int(a.n) / 2
	for i := range h {
		r.lanes[i] = f(a.lanes[2*i], a.lanes[2*i+1])
		r.lanes[h+i] = f(b.lanes[2*i], b.lanes[2*i+1])
	}
	return r
}

// PAdd adds adjacent lane pairs (VPADD):
//
//	PAdd([a0 a1 a2 a3], [b0 b1 b2 b3]) = [a0+a1 a2+a3 b0+b1 b2+b3]
//
// Passing the same register twice folds it to half as many used lanes.
func PAdd[T Lanes](a, b Vec[T]) Vec[T] {
	return pairwise(a, b, func(x, y T) T { return x + y })
}

// PMax takes the maximum of adjacent lane pairs (VPMAX).
func PMax[T Lanes](a, b Vec[T]) Vec[T] {
	return pairwise(a, b, func(x, y T) T { return max(x, y) })
}

// PMin takes the minimum of adjacent lane pairs (VPMIN).
func PMin[T Lanes](a, b Vec[T]) Vec[T] {
	return pairwise(a, b, func(x, y T) T { return min(x, y) })
}

// PAddL adds adjacent lane pairs into lanes of twice the width, keeping the
// register size (VPADDL). W must be twice as wide as T.
func PAddL[W, T Integers](a Vec[T]) Vec[W] {
	mustWiden[W, T]()
	r := Vec[W]{n: a.n / 2}
	for i := range int(r.n) {
		r.lanes[i] = W(a.lanes[2*i]) + W(a.lanes[2*i+1])
	}
	return r
}

// PAdaL adds adjacent lane pairs of a into the wide accumulator acc
// (VPADAL).
func PAdaL[W, T Integers](acc Vec[W], a Vec[T]) Vec[W] {
	return Add(acc, PAddL[W](a))
}

// AddV reduces every lane of a to one sum, wrapping (ADDV).
func AddV[T Lanes](a Vec[T]) T {
	var s T
	for i := range int(a.n) {
		s += a.lanes[i]
	}
	return s
}
