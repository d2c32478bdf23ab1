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

import "strings"

// Backend computes the per-lane primitives whose exact rounding and
// saturation behavior the decoder depends on. Every implementation must be
// bit-identical to every other for all inputs satisfying the preconditions
// below; the conformance tests and cmd/neonconform check this.
//
// Operands are lane values sign-extended to int64 and bits is the lane
// width. Unless stated otherwise bits is 8, 16, 32 or 64 and every operand
// is representable in bits. Results are sign-extended the same way.
type Backend interface {
	// Name identifies the backend ("scalar", "neon").
	Name() string

	// QAdd returns a+b clamped to the lane range (VQADD).
	QAdd(a, b int64, bits uint) int64
	// QSub returns a-b clamped to the lane range (VQSUB).
	QSub(a, b int64, bits uint) int64
	// QNeg returns -a; only the lane minimum saturates (VQNEG).
	QNeg(a int64, bits uint) int64
	// QAbs returns |a|; only the lane minimum saturates (VQABS).
	QAbs(a int64, bits uint) int64

	// QShl shifts a left by shift, clamping when a significant bit would be
	// lost. A negative shift is an arithmetic right shift that never
	// saturates (VQSHL by register).
	QShl(a int64, shift int, bits uint) int64
	// RShr is the rounding right shift (a + 2^(n-1)) >> n computed without
	// intermediate overflow, 1 <= n <= bits (VRSHR).
	RShr(a int64, n uint, bits uint) int64

	// HAdd returns (a+b)>>1 (VHADD).
	HAdd(a, b int64, bits uint) int64
	// RHAdd returns (a+b+1)>>1 (VRHADD).
	RHAdd(a, b int64, bits uint) int64
	// HSub returns (a-b)>>1 (VHSUB).
	HSub(a, b int64, bits uint) int64

	// QDMulH returns the high half of 2*a*b, saturating only for
	// MIN*MIN (VQDMULH). bits is 16 or 32.
	QDMulH(a, b int64, bits uint) int64
	// QRDMulH is QDMulH with 2^(bits-1) added to the doubled product before
	// the high half is taken (VQRDMULH). bits is 16 or 32.
	QRDMulH(a, b int64, bits uint) int64
	// QDMulL returns 2*a*b as a lane of width 2*bits, saturating only for
	// MIN*MIN (VQDMULL). bits is 16 or 32.
	QDMulL(a, b int64, bits uint) int64

	// QShrN shifts a wide lane right by n (0 <= n <= bits/2) and clamps it
	// to a lane of width bits/2 (VQSHRN; n = 0 is VQMOVN). bits is 16, 32
	// or 64.
	QShrN(a int64, n uint, bits uint) int64
	// QRShrN is QShrN with round-half-up, 1 <= n <= bits/2 (VQRSHRN).
	QRShrN(a int64, n uint, bits uint) int64

	// Cls counts the bits below the sign bit that equal it (VCLS).
	Cls(a int64, bits uint) int
}

var (
	// Scalar is the portable backend. It evaluates every primitive inside
	// the lane width with the overflow tests and special cases of the
	// decoder's C emulation layer.
	Scalar Backend = scalarBackend{}

	// NEON is the architecture-reference formulation: every primitive is
	// evaluated exactly in 128-bit precision and clamped once, as the
	// Advanced SIMD pseudocode does. It is pure Go like Scalar and gives
	// identical results; it does not use the vector unit.
	NEON Backend = neonBackend{}
)

// Backends returns every available backend.
func Backends() []Backend {
	return []Backend{Scalar, NEON}
}

// BackendByName looks a backend up by its Name, ignoring case and
// surrounding space.
func BackendByName(name string) (Backend, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, be := range Backends() {
		if be.Name() == name {
			return be, true
		}
	}
	return nil, false
}
