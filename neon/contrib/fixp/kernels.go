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

package fixp

import "github.com/mpeghdec/go-mpeghdec/neon"

// lanes is the number of int32 samples per Q register.
const lanes = 4

// vectorLen returns the largest multiple of step not above n.
func vectorLen(n, step int) int {
	return n - n%step
}

// ScaleValuesSaturate writes ScaleValue(src[i], scale) to dst[i]. dst and
// src may be the same slice.
func ScaleValuesSaturate(dst, src []int32, scale int) {
	n := min(len(dst), len(src))
	v := vectorLen(n, lanes)
	in, out := neon.At(src, 0), neon.At(dst, 0)
	for range v / lanes {
		out.Store1(neon.QShl(in.Load1(neon.Q), scale))
	}
	for i := v; i < n; i++ {
		dst[i] = ScaleValue(src[i], scale)
	}
}

// reverseQ reverses all four lanes of a Q register: Rev64 swaps the lanes
// within each half and the halves are then exchanged.
func reverseQ(v neon.Vec[int32]) neon.Vec[int32] {
	r := neon.Rev64(v)
	return neon.Combine(neon.High(r), neon.Low(r))
}

// OverlapAdd combines the first half of the current frame with the
// time-reversed second half of the previous one:
//
//	dst[i] = SatAdd(FMult(cur[i], win[i]), FMult(prev[n-1-i], win[n-1-i]))
//
// where n is len(dst). cur, prev and win must hold at least n samples.
func OverlapAdd(dst, cur, prev, win []int32) {
	n := len(dst)
	_, _, _ = cur[:n], prev[:n], win[:n]
	v := vectorLen(n, lanes)
	c, w := neon.At(cur, 0), neon.At(win, 0)
	pr, wr := neon.At(prev, n-lanes), neon.At(win, n-lanes)
	out := neon.At(dst, 0)
	const back = -lanes * 4
	for range v / lanes {
		head := neon.QDMulH(c.Load1(neon.Q), w.Load1(neon.Q))
		tail := neon.QDMulH(reverseQ(pr.Load1Step(neon.Q, back)), reverseQ(wr.Load1Step(neon.Q, back)))
		out.Store1(neon.QAdd(head, tail))
	}
	for i := v; i < n; i++ {
		dst[i] = SatAdd(FMult(cur[i], win[i]), FMult(prev[n-1-i], win[n-1-i]))
	}
}

// Rotate applies the rotation with cosine c and sine s to the sample pairs
// of x and y in place:
//
//	x' = SatSub(FMult(x, c), FMult(y, s))
//	y' = SatAdd(FMult(x, s), FMult(y, c))
func Rotate(x, y []int32, c, s int32) {
	n := min(len(x), len(y))
	v := vectorLen(n, lanes)
	for i := 0; i < v; i += lanes {
		xv, yv := neon.Load1(x[i:], neon.Q), neon.Load1(y[i:], neon.Q)
		neon.Store1(x[i:], neon.QSub(neon.QDMulHN(xv, c), neon.QDMulHN(yv, s)))
		neon.Store1(y[i:], neon.QAdd(neon.QDMulHN(xv, s), neon.QDMulHN(yv, c)))
	}
	for i := v; i < n; i++ {
		xi, yi := x[i], y[i]
		x[i] = SatSub(FMult(xi, c), FMult(yi, s))
		y[i] = SatAdd(FMult(xi, s), FMult(yi, c))
	}
}

// Headroom returns the smallest CountLeadingBits over x, or 31 when x is
// empty: the left shift that can be applied to the whole buffer without
// saturating any sample.
func Headroom(x []int32) int {
	v := vectorLen(len(x), lanes)
	acc := neon.Set[int32](neon.Q, 31)
	for i := 0; i < v; i += lanes {
		acc = neon.Min(acc, neon.Cls(neon.Load1(x[i:], neon.Q)))
	}
	d := neon.PMin(neon.Low(acc), neon.High(acc))
	d = neon.PMin(d, d)
	h := int(d.Lane(0))
	for _, s := range x[v:] {
		h = min(h, CountLeadingBits(s))
	}
	return h
}

// Energy returns the sum of ScaleValue(x[i], -shift)^2, wrapping on
// overflow: each sample is shifted right by shift, or left with saturation
// when shift is negative. A shift of at least 1 keeps the sum exact for up
// to 2^(2*shift+1) samples.
func Energy(x []int32, shift int) int64 {
	v := vectorLen(len(x), lanes)
	acc := neon.Zero[int64](neon.Q)
	for i := 0; i < v; i += lanes {
		s := neon.QShl(neon.Load1(x[i:], neon.Q), -shift)
		lo, hi := neon.Low(s), neon.High(s)
		acc = neon.MlaL(acc, lo, lo)
		acc = neon.MlaL(acc, hi, hi)
	}
	e := neon.AddV(acc)
	for _, s := range x[v:] {
		t := int64(ScaleValue(s, -shift))
		e += t * t
	}
	return e
}

// Butterfly replaces every interleaved pair (a, b) of x with the halved
// sum and difference ((a+b)>>1, (a-b)>>1). A trailing odd sample is left
// unchanged.
func Butterfly(x []int32) {
	n := len(x) &^ 1
	v := vectorLen(n, 2*lanes)
	for i := 0; i < v; i += 2 * lanes {
		a, b := neon.Load2(x[i:], neon.Q)
		neon.Store2(x[i:], neon.HAdd(a, b), neon.HSub(a, b))
	}
	for i := v; i < n; i += 2 {
		a, b := int64(x[i]), int64(x[i+1])
		x[i], x[i+1] = int32((a+b)>>1), int32((a-b)>>1)
	}
}

// ToPCM converts src to 16-bit samples, dst[i] = clamp((src[i] +
// 2^(shift-1)) >> shift), 1 <= shift <= 16.
func ToPCM(dst []int16, src []int32, shift int) {
	n := min(len(dst), len(src))
	v := vectorLen(n, lanes)
	in := neon.At(src, 0)
	for i := 0; i < v; i += lanes {
		neon.Store1(dst[i:], neon.QRShrN[int16](in.Load1(neon.Q), shift))
	}
	for i := v; i < n; i++ {
		dst[i] = sat16((int64(src[i]) + 1<<(shift-1)) >> shift)
	}
}
