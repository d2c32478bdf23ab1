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

import "math/bits"

// FMult returns the Q1.31 product of a and b, (2*a*b) >> 32. -1 * -1 is
// the only product that does not fit and it saturates to MaxInt32.
func FMult(a, b int32) int32 {
	if a == minQ31 && b == minQ31 {
		return maxQ31
	}
	return int32((int64(a) * int64(b)) >> 31)
}

// FMultDiv2 returns half the Q1.31 product of a and b, (a*b) >> 32.
func FMultDiv2(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> 32)
}

// CountLeadingBits returns the number of redundant sign bits of x: the left
// shift that normalizes it without overflow. It is 31 for 0 and -1.
func CountLeadingBits(x int32) int {
	return bits.LeadingZeros32(uint32(x^(x>>31))) - 1
}

// ScaleValue shifts x left by scale with saturation, or right by -scale
// without rounding when scale is negative.
func ScaleValue(x int32, scale int) int32 {
	if scale < 0 {
		return x >> min(-scale, 31)
	}
	if x == 0 {
		return 0
	}
	if scale > CountLeadingBits(x) {
		if x < 0 {
			return minQ31
		}
		return maxQ31
	}
	return x << scale
}

// SatAdd returns a+b clamped to the int32 range.
func SatAdd(a, b int32) int32 {
	return sat32(int64(a) + int64(b))
}

// SatSub returns a-b clamped to the int32 range.
func SatSub(a, b int32) int32 {
	return sat32(int64(a) - int64(b))
}

const (
	minQ31 = -1 << 31
	maxQ31 = 1<<31 - 1
)

func sat32(x int64) int32 {
	return int32(min(max(x, minQ31), maxQ31))
}

func sat16(x int64) int16 {
	return int16(min(max(x, -1<<15), 1<<15-1))
}
