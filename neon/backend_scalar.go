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

// scalarBackend never widens beyond int64 and mirrors how the decoder's
// portable C code emulates each instruction.
type scalarBackend struct{}

func (scalarBackend) Name() string { return "scalar" }

func (scalarBackend) QAdd(a, b int64, bits uint) int64 {
	s := wrapSigned(a+b, bits)
	// Operands of equal sign whose sum flips sign have overflowed.
	if (a^b) >= 0 && (s^a) < 0 {
		lo, hi := signedRange(bits)
		if a < 0 {
			return lo
		}
		return hi
	}
	return s
}

func (scalarBackend) QSub(a, b int64, bits uint) int64 {
	d := wrapSigned(a-b, bits)
	if (a^b) < 0 && (d^a) < 0 {
		lo, hi := signedRange(bits)
		if a < 0 {
			return lo
		}
		return hi
	}
	return d
}

func (scalarBackend) QNeg(a int64, bits uint) int64 {
	lo, hi := signedRange(bits)
	if a == lo {
		return hi
	}
	return -a
}

func (scalarBackend) QAbs(a int64, bits uint) int64 {
	lo, hi := signedRange(bits)
	if a == lo {
		return hi
	}
	if a < 0 {
		return -a
	}
	return a
}

func (s scalarBackend) QShl(a int64, shift int, bits uint) int64 {
	if shift < 0 {
		return a >> uint(-shift)
	}
	if a == 0 {
		return 0
	}
	if shift > s.Cls(a, bits) {
		lo, hi := signedRange(bits)
		if a < 0 {
			return lo
		}
		return hi
	}
	return a << uint(shift)
}

func (scalarBackend) RShr(a int64, n uint, bits uint) int64 {
	return (a >> n) + ((a >> (n - 1)) & 1)
}

func (scalarBackend) HAdd(a, b int64, bits uint) int64 {
	return (a >> 1) + (b >> 1) + (a & b & 1)
}

func (scalarBackend) RHAdd(a, b int64, bits uint) int64 {
	return (a >> 1) + (b >> 1) + ((a | b) & 1)
}

func (scalarBackend) HSub(a, b int64, bits uint) int64 {
	return (a >> 1) - (b >> 1) - (^a & b & 1)
}

func (scalarBackend) QDMulH(a, b int64, bits uint) int64 {
	lo, hi := signedRange(bits)
	if a == lo && b == lo {
		return hi
	}
	return (a * b) >> (bits - 1)
}

func (scalarBackend) QRDMulH(a, b int64, bits uint) int64 {
	lo, hi := signedRange(bits)
	if a == lo && b == lo {
		return hi
	}
	return (a*b + 1<<(bits-2)) >> (bits - 1)
}

func (scalarBackend) QDMulL(a, b int64, bits uint) int64 {
	lo, _ := signedRange(bits)
	if a == lo && b == lo {
		_, hi := signedRange(2 * bits)
		return hi
	}
	return (a * b) << 1
}

func (scalarBackend) QShrN(a int64, n uint, bits uint) int64 {
	return clampSigned(a>>n, bits/2)
}

func (scalarBackend) QRShrN(a int64, n uint, bits uint) int64 {
	return clampSigned((a>>n)+((a>>(n-1))&1), bits/2)
}

func (scalarBackend) Cls(a int64, width uint) int {
	return bits.LeadingZeros64(uint64(a^(a>>63))) - int(64-width) - 1
}

func clampSigned(x int64, bits uint) int64 {
	lo, hi := signedRange(bits)
	if x > hi {
		return hi
	}
	if x < lo {
		return lo
	}
	return x
}
