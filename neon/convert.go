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

import "math"

// This file provides fixed/float conversion, narrowing and widening moves
// and the scalar fixed-point square root.

// FixedToFloat converts lanes holding fixed-point values with fracBits
// fractional bits to float32, rounding to nearest (VCVT.F32.S32 #fracBits).
// fracBits is 0 to 32.
func FixedToFloat(a Vec[int32], fracBits int) Vec[float32] {
	precondition(fracBits >= 0 && fracBits <= 32, "fractional bits %d out of range [0,32]", fracBits)
	scale := math.Ldexp(1, -fracBits)
	r := Vec[float32]{n: a.n}
	for i := range int(a.n) {
		r.lanes[i] = float32(float64(a.lanes[i]) * scale)
	}
	return r
}

// FloatToFixed converts float32 lanes to fixed-point values with fracBits
// fractional bits (VCVT.S32.F32 #fracBits). The scaled value is truncated
// toward zero and saturated; NaN converts to zero.
func FloatToFixed(a Vec[float32], fracBits int) Vec[int32] {
	precondition(fracBits >= 0 && fracBits <= 32, "fractional bits %d out of range [0,32]", fracBits)
	r := Vec[int32]{n: a.n}
	for i := range int(a.n) {
		x := math.Trunc(math.Ldexp(float64(a.lanes[i]), fracBits))
		switch {
		case x != x:
			r.lanes[i] = 0
		case x >= math.MaxInt32:
			r.lanes[i] = math.MaxInt32
		case x <= math.MinInt32:
			r.lanes[i] = math.MinInt32
		default:
			r.lanes[i] = int32(x)
		}
	}
	return r
}

func mustSameSign[W, N Integers]() {
	if isSigned[W]() != isSigned[N]() {
		panic("neon: narrowing between signed and unsigned lanes")
	}
}

// MovN keeps the low half of every lane of a Q register, producing a D
// register (VMOVN). N must be half as wide as W.
func MovN[N, W Integers](a Vec[W]) Vec[N] {
	mustWiden[W, N]()
	assertShape(a, Q)
	r := Vec[N]{n: a.n}
	for i := range int(a.n) {
		r.lanes[i] = N(a.lanes[i])
	}
	return r
}

// narrow applies the saturating narrowing shift shared by QMovN, QShrN and
// QRShrN. Signed lanes go through the backend.
func narrow[N, W Integers](a Vec[W], n int, round bool) Vec[N] {
	mustWiden[W, N]()
	mustSameSign[W, N]()
	assertShape(a, Q)
	bits := LaneBits[W]()
	r := Vec[N]{n: a.n}
	if !isSigned[W]() {
		hi := uint64(MaxLane[N]())
		for i := range int(a.n) {
			x := uint64(a.lanes[i]) >> n
			if round {
				x += uint64(a.lanes[i]) >> (n - 1) & 1
			}
			r.lanes[i] = N(min(x, hi))
		}
		return r
	}
	be := cur()
	for i := range int(a.n) {
		if round {
			r.lanes[i] = N(be.QRShrN(int64(a.lanes[i]), uint(n), bits))
		} else {
			r.lanes[i] = N(be.QShrN(int64(a.lanes[i]), uint(n), bits))
		}
	}
	return r
}

// QMovN narrows every lane of a Q register to half its width with
// saturation (VQMOVN).
func QMovN[N, W Integers](a Vec[W]) Vec[N] {
	return narrow[N](a, 0, false)
}

// ShrN shifts every lane right by n and keeps the low half (VSHRN),
// 1 <= n <= half the lane width.
func ShrN[N, W Integers](a Vec[W], n int) Vec[N] {
	precondition(n >= 1 && n <= int(LaneBits[N]()), "narrowing shift %d out of range", n)
	return MovN[N](Shr(a, n))
}

// QShrN shifts every lane right by n, then saturates it into half the
// width (VQSHRN), 1 <= n <= half the lane width.
func QShrN[N, W Integers](a Vec[W], n int) Vec[N] {
	precondition(n >= 1 && n <= int(LaneBits[N]()), "narrowing shift %d out of range", n)
	return narrow[N](a, n, false)
}

// QRShrN shifts every lane right by n with round-half-up, then saturates
// it into half the width (VQRSHRN), 1 <= n <= half the lane width. It is
// how a filter stage produces its narrower output:
//
//	QRShrN[int16](Set[int32](Q, 0x00018000), 16) = [2 2 2 2]
func QRShrN[N, W Integers](a Vec[W], n int) Vec[N] {
	precondition(n >= 1 && n <= int(LaneBits[N]()), "narrowing shift %d out of range", n)
	return narrow[N](a, n, true)
}

// MovL widens every lane of a D register to twice its width, sign- or
// zero-extending by the signedness of N (VMOVL).
func MovL[W, N Integers](a Vec[N]) Vec[W] {
	mustWiden[W, N]()
	assertShape(a, D)
	r := Vec[W]{n: a.n}
	for i := range int(a.n) {
		r.lanes[i] = W(a.lanes[i])
	}
	return r
}

// ShlL widens every lane of a D register and shifts it left by n,
// 0 <= n <= the narrow lane width (VSHLL). The result is exact.
func ShlL[W, N Integers](a Vec[N], n int) Vec[W] {
	precondition(n >= 0 && n <= int(LaneBits[N]()), "widening shift %d out of range", n)
	r := MovL[W](a)
	for i := range int(r.n) {
		r.lanes[i] <<= n
	}
	return r
}

// Sqrt returns the square root of a non-negative Q1.31 value as Q1.31,
// floor(sqrt(x * 2^31)). Negative input is a caller error: debug builds
// panic and release builds return 0.
func Sqrt(x int32) int32 {
	precondition(x >= 0, "square root of negative value %d", x)
	if x <= 0 {
		return 0
	}
	v := uint64(x) << 31
	r := uint64(math.Sqrt(float64(v)))
	for r*r > v {
		r--
	}
	for (r+1)*(r+1) <= v {
		r++
	}
	return int32(r)
}
