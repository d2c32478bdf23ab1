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

// Package neon reproduces, in portable Go, the exact numeric behavior of the
// subset of ARM Advanced SIMD (NEON) instructions used by the MPEG-H 3D Audio
// decoder's fixed-point DSP kernels.
//
// Registers are value types: a Vec holds the lanes of one 64-bit (D) or
// 128-bit (Q) register inline and never allocates. The lane type is chosen
// by the operation, so viewing the same bits under another lane width is a
// free reinterpretation:
//
//	x := neon.Load1(samples, neon.Q)        // 4 x int32
//	g := neon.QDMulHN(x, gain)              // fMult by a Q1.31 scalar
//	neon.Store1(out, neon.QAdd(g, bias))    // saturating accumulate
//
// Every saturating result lies in the representable range of its lane type.
// Two backends implement the saturating primitives (see Backend); they are
// bit-identical and the one in use is selected at init time.
package neon

import "unsafe"

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in register lanes.
// float32 lanes only appear as the result or source of fixed-point
// conversions.
type Lanes interface {
	Integers | ~float32
}

// Shape is a physical register width in bytes.
type Shape uint8

const (
	// D is a 64-bit register.
	D Shape = 8

	// Q is a 128-bit register, made of two adjacent D registers.
	Q Shape = 16
)

// Bits returns the register width in bits.
func (s Shape) Bits() int {
	return int(s) * 8
}

// String returns "D" or "Q".
func (s Shape) String() string {
	switch s {
	case D:
		return "D"
	case Q:
		return "Q"
	default:
		return "invalid"
	}
}

// maxLanes is the lane capacity of a Q register of 8-bit lanes.
const maxLanes = 16

// LaneBytes returns the size of one lane of type T in bytes.
func LaneBytes[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// LaneBits returns the width of one lane of type T in bits.
func LaneBits[T Lanes]() uint {
	return uint(LaneBytes[T]()) * 8
}

// NumLanes returns the element count of a register of shape s holding
// lanes of type T.
//
// For example:
//   - int32 in Q: 16/4 = 4 lanes
//   - int16 in D: 8/2 = 4 lanes
func NumLanes[T Lanes](s Shape) int {
	return int(s) / LaneBytes[T]()
}

// isSigned reports whether T is a signed integer type.
func isSigned[T Integers]() bool {
	ones := ^T(0)
	return ones < 0
}

// MaxLane returns the largest value representable by an integer lane of type T.
func MaxLane[T Integers]() T {
	if isSigned[T]() {
		return T(uint64(1)<<(LaneBits[T]()-1) - 1)
	}
	return ^T(0)
}

// MinLane returns the smallest value representable by an integer lane of type T.
func MinLane[T Integers]() T {
	if isSigned[T]() {
		return ^MaxLane[T]()
	}
	return 0
}

// signedRange returns the bounds of a signed lane of the given width,
// widened to int64.
func signedRange(bits uint) (lo, hi int64) {
	hi = int64(uint64(1)<<(bits-1) - 1)
	return -hi - 1, hi
}

// wrapSigned sign-extends the low bits of x, which is what storing x into a
// signed lane of that width does.
func wrapSigned(x int64, bits uint) int64 {
	s := 64 - bits
	return x << s >> s
}

// FixedLanes are the lane types of the doubling fixed-point multiplies
// (Q1.15 and Q1.31).
type FixedLanes interface {
	~int16 | ~int32
}

func isFloat[T Lanes]() bool {
	return T(1)/2 != 0
}

// signedInt reports whether T is a signed integer lane type.
func signedInt[T Lanes]() bool {
	z := T(0)
	return !isFloat[T]() && z-1 < z
}
