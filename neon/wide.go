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

// wide is a signed 128-bit two's-complement integer. The NEON backend
// evaluates every lane operation exactly in this width and clamps once, as
// the architecture pseudocode does with unbounded integers.
type wide struct {
	hi int64
	lo uint64
}

func wideOf(x int64) wide {
	return wide{hi: x >> 63, lo: uint64(x)}
}

// pow2 returns 2^n for n < 127.
func pow2(n uint) wide {
	return wideOf(1).shl(n)
}

func (a wide) add(b wide) wide {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	return wide{hi: a.hi + b.hi + int64(carry), lo: lo}
}

func (a wide) sub(b wide) wide {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	return wide{hi: a.hi - b.hi - int64(borrow), lo: lo}
}

func (a wide) neg() wide {
	return wide{}.sub(a)
}

// mulWide returns the exact product of two 64-bit signed integers.
func mulWide(a, b int64) wide {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if a < 0 {
		hi -= uint64(b)
	}
	if b < 0 {
		hi -= uint64(a)
	}
	return wide{hi: int64(hi), lo: lo}
}

// shl shifts left by n < 128 bits.
func (a wide) shl(n uint) wide {
	switch {
	case n == 0:
		return a
	case n >= 64:
		return wide{hi: int64(a.lo << (n - 64))}
	default:
		return wide{hi: a.hi<<n | int64(a.lo>>(64-n)), lo: a.lo << n}
	}
}

// sar shifts right arithmetically by n < 128 bits.
func (a wide) sar(n uint) wide {
	switch {
	case n == 0:
		return a
	case n >= 64:
		return wide{hi: a.hi >> 63, lo: uint64(a.hi >> (n - 64))}
	default:
		return wide{hi: a.hi >> n, lo: a.lo>>n | uint64(a.hi)<<(64-n)}
	}
}

func (a wide) cmp(b wide) int {
	switch {
	case a.hi < b.hi:
		return -1
	case a.hi > b.hi:
		return 1
	case a.lo < b.lo:
		return -1
	case a.lo > b.lo:
		return 1
	}
	return 0
}

// sat clamps a to the signed range of a lane of the given width
// (SignedSatQ).
func (a wide) sat(bits uint) int64 {
	lo, hi := signedRange(bits)
	if a.cmp(wideOf(hi)) > 0 {
		return hi
	}
	if a.cmp(wideOf(lo)) < 0 {
		return lo
	}
	return int64(a.lo)
}
