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

// neonBackend evaluates each primitive the way the architecture reference
// describes it: an exact intermediate followed by a single SignedSatQ. It is
// a software model of the instructions, not a hardware path.
type neonBackend struct{}

func (neonBackend) Name() string { return "neon" }

func (neonBackend) QAdd(a, b int64, bits uint) int64 {
	return wideOf(a).add(wideOf(b)).sat(bits)
}

func (neonBackend) QSub(a, b int64, bits uint) int64 {
	return wideOf(a).sub(wideOf(b)).sat(bits)
}

func (neonBackend) QNeg(a int64, bits uint) int64 {
	return wideOf(a).neg().sat(bits)
}

func (neonBackend) QAbs(a int64, bits uint) int64 {
	w := wideOf(a)
	if a < 0 {
		w = w.neg()
	}
	return w.sat(bits)
}

func (neonBackend) QShl(a int64, shift int, bits uint) int64 {
	if shift < 0 {
		n := uint(-shift)
		if n > bits {
			n = bits
		}
		return int64(wideOf(a).sar(n).lo)
	}
	n := uint(shift)
	if n > bits {
		n = bits
	}
	return wideOf(a).shl(n).sat(bits)
}

func (neonBackend) RShr(a int64, n uint, bits uint) int64 {
	return int64(wideOf(a).add(pow2(n - 1)).sar(n).lo)
}

func (neonBackend) HAdd(a, b int64, bits uint) int64 {
	return int64(wideOf(a).add(wideOf(b)).sar(1).lo)
}

func (neonBackend) RHAdd(a, b int64, bits uint) int64 {
	return int64(wideOf(a).add(wideOf(b)).add(wideOf(1)).sar(1).lo)
}

func (neonBackend) HSub(a, b int64, bits uint) int64 {
	return int64(wideOf(a).sub(wideOf(b)).sar(1).lo)
}

func (neonBackend) QDMulH(a, b int64, bits uint) int64 {
	return mulWide(a, b).shl(1).sar(bits).sat(bits)
}

func (neonBackend) QRDMulH(a, b int64, bits uint) int64 {
	return mulWide(a, b).shl(1).add(pow2(bits - 1)).sar(bits).sat(bits)
}

func (neonBackend) QDMulL(a, b int64, bits uint) int64 {
	return mulWide(a, b).shl(1).sat(2 * bits)
}

func (neonBackend) QShrN(a int64, n uint, bits uint) int64 {
	return wideOf(a).sar(n).sat(bits / 2)
}

func (neonBackend) QRShrN(a int64, n uint, bits uint) int64 {
	return wideOf(a).add(pow2(n - 1)).sar(n).sat(bits / 2)
}

func (neonBackend) Cls(a int64, bits uint) int {
	sign := (a >> (bits - 1)) & 1
	n := 0
	for i := int(bits) - 2; i >= 0 && (a>>uint(i))&1 == sign; i-- {
		n++
	}
	return n
}
