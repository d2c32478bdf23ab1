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

// This file provides the multiply unit. Plain multiplies wrap and keep the
// lane width; callers pre-scale so products fit. The doubling multiplies are
// the fixed-point products of the decoder: for Q1.31 lanes QDMulH is fMult.

// Mul performs element-wise multiplication (VMUL).
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	for i := range int(a.n) {
		a.lanes[i] *= b.lanes[i]
	}
	return a
}

// Mla returns acc + a*b per lane (VMLA).
func Mla[T Lanes](acc, a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	assertSameShape(acc, a)
	for i := range int(acc.n) {
		acc.lanes[i] += a.lanes[i] * b.lanes[i]
	}
	return acc
}

// Mls returns acc - a*b per lane (VMLS).
func Mls[T Lanes](acc, a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	assertSameShape(acc, a)
	for i := range int(acc.n) {
		acc.lanes[i] -= a.lanes[i] * b.lanes[i]
	}
	return acc
}

// MulN multiplies every lane by the scalar x (VMUL by scalar).
func MulN[T Lanes](a Vec[T], x T) Vec[T] {
	return Mul(a, Set(a.Shape(), x))
}

// MlaN returns acc + a*x per lane.
func MlaN[T Lanes](acc, a Vec[T], x T) Vec[T] {
	return Mla(acc, a, Set(a.Shape(), x))
}

// MlsN returns acc - a*x per lane.
func MlsN[T Lanes](acc, a Vec[T], x T) Vec[T] {
	return Mls(acc, a, Set(a.Shape(), x))
}

// MulLane multiplies every lane of a by lane of v (VMUL by scalar lane).
// v may be either shape.
func MulLane[T Lanes](a, v Vec[T], lane int) Vec[T] {
	return MulN(a, v.Lane(lane))
}

// MlaLane returns acc + a*v[lane] per lane.
func MlaLane[T Lanes](acc, a, v Vec[T], lane int) Vec[T] {
	return MlaN(acc, a, v.Lane(lane))
}

// MlsLane returns acc - a*v[lane] per lane.
func MlsLane[T Lanes](acc, a, v Vec[T], lane int) Vec[T] {
	return MlsN(acc, a, v.Lane(lane))
}

// MulL multiplies two D registers into a Q register of lanes twice as wide
// (VMULL). The products are exact. W must be twice as wide as T.
func MulL[W, T Integers](a, b Vec[T]) Vec[W] {
	mustWiden[W, T]()
	assertShape(a, D)
	assertSameShape(a, b)
	r := Vec[W]{n: a.n}
	for i := range int(a.n) {
		r.lanes[i] = W(a.lanes[i]) * W(b.lanes[i])
	}
	return r
}

// MlaL returns acc + a*b with a widening product (VMLAL).
func MlaL[W, T Integers](acc Vec[W], a, b Vec[T]) Vec[W] {
	return Add(acc, MulL[W](a, b))
}

// MlsL returns acc - a*b with a widening product (VMLSL).
func MlsL[W, T Integers](acc Vec[W], a, b Vec[T]) Vec[W] {
	return Sub(acc, MulL[W](a, b))
}

// MulLN is MulL with every lane of b equal to x.
func MulLN[W, T Integers](a Vec[T], x T) Vec[W] {
	return MulL[W](a, Set(D, x))
}

// QDMulH returns the high half of the doubled product per lane (VQDMULH):
// (2*a*b) >> laneBits, computed exactly. MIN*MIN is the only input whose
// result does not fit and it saturates to MAX:
//
//	QDMulH(Set[int32](D, -1<<31), Set[int32](D, -1<<31)) = [0x7FFFFFFF 0x7FFFFFFF]
func QDMulH[T FixedLanes](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	be, bits := cur(), LaneBits[T]()
	for i := range int(a.n) {
		a.lanes[i] = T(be.QDMulH(int64(a.lanes[i]), int64(b.lanes[i]), bits))
	}
	return a
}

// QDMulHN is QDMulH by the scalar x.
func QDMulHN[T FixedLanes](a Vec[T], x T) Vec[T] {
	return QDMulH(a, Set(a.Shape(), x))
}

// QDMulHLane is QDMulH by lane of v.
func QDMulHLane[T FixedLanes](a, v Vec[T], lane int) Vec[T] {
	return QDMulHN(a, v.Lane(lane))
}

// QRDMulH is QDMulH rounded half up instead of truncated (VQRDMULH). It
// is not interchangeable with QDMulH: results differ by one unit whenever
// the discarded half is at least one half.
func QRDMulH[T FixedLanes](a, b Vec[T]) Vec[T] {
	assertSameShape(a, b)
	be, bits := cur(), LaneBits[T]()
	for i := range int(a.n) {
		a.lanes[i] = T(be.QRDMulH(int64(a.lanes[i]), int64(b.lanes[i]), bits))
	}
	return a
}

// QRDMulHN is QRDMulH by the scalar x.
func QRDMulHN[T FixedLanes](a Vec[T], x T) Vec[T] {
	return QRDMulH(a, Set(a.Shape(), x))
}

// QRDMulHLane is QRDMulH by lane of v.
func QRDMulHLane[T FixedLanes](a, v Vec[T], lane int) Vec[T] {
	return QRDMulHN(a, v.Lane(lane))
}

// QDMulL doubles the exact product of two D registers into a Q register of
// lanes twice as wide (VQDMULL). Only MIN*MIN saturates.
func QDMulL[W SignedInts, T FixedLanes](a, b Vec[T]) Vec[W] {
	mustWiden[W, T]()
	assertShape(a, D)
	assertSameShape(a, b)
	be, bits := cur(), LaneBits[T]()
	r := Vec[W]{n: a.n}
	for i := range int(a.n) {
		r.lanes[i] = W(be.QDMulL(int64(a.lanes[i]), int64(b.lanes[i]), bits))
	}
	return r
}

// QDMulLN is QDMulL with every lane of b equal to x.
func QDMulLN[W SignedInts, T FixedLanes](a Vec[T], x T) Vec[W] {
	return QDMulL[W](a, Set(D, x))
}

// QDMlaL returns acc + 2*a*b, saturating both the product and the sum
// (VQDMLAL).
func QDMlaL[W SignedInts, T FixedLanes](acc Vec[W], a, b Vec[T]) Vec[W] {
	return QAdd(acc, QDMulL[W](a, b))
}

// QDMlsL returns acc - 2*a*b, saturating both the product and the
// difference (VQDMLSL).
func QDMlsL[W SignedInts, T FixedLanes](acc Vec[W], a, b Vec[T]) Vec[W] {
	return QSub(acc, QDMulL[W](a, b))
}
