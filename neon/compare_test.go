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

import "testing"

func TestCompare(t *testing.T) {
	a := FromLanes[int32](1, 2, 3, 4)
	b := Set[int32](Q, 2)
	tests := []struct {
		name string
		got  Vec[int32]
		want []int32
	}{
		{"Ceq", Ceq(a, b), []int32{0, -1, 0, 0}},
		{"Cge", Cge(a, b), []int32{0, -1, -1, -1}},
		{"Cgt", Cgt(a, b), []int32{0, 0, -1, -1}},
		{"Cle", Cle(a, b), []int32{-1, -1, 0, 0}},
		{"Clt", Clt(a, b), []int32{-1, 0, 0, 0}},
	}
	for _, tt := range tests {
		checkLanes(t, tt.name, tt.got, tt.want...)
	}
	checkLanes(t, "unsigned", Cgt(FromLanes[uint32](0xFFFFFFFF, 0), FromLanes[uint32](1, 0)), 0xFFFFFFFF, 0)
}

func TestCompareZero(t *testing.T) {
	v := FromLanes[int32](-1, 0, 1, min32)
	checkLanes(t, "CeqZ", CeqZ(v), 0, -1, 0, 0)
	checkLanes(t, "CgeZ", CgeZ(v), 0, -1, -1, 0)
	checkLanes(t, "CgtZ", CgtZ(v), 0, 0, -1, 0)
	checkLanes(t, "CleZ", CleZ(v), -1, -1, 0, -1)
	checkLanes(t, "CltZ", CltZ(v), -1, 0, 0, -1)
}

func TestTst(t *testing.T) {
	checkLanes(t, "Tst", Tst(FromLanes[int32](1, 2, 3, 0), FromLanes[int32](2, 2, 1, 0xFF)), 0, -1, -1, 0)
}

func TestBitSelect(t *testing.T) {
	dst := Set[uint32](D, 0xAAAAAAAA)
	src := Set[uint32](D, 0x55555555)
	mask := Set[uint32](D, 0xFFFF0000)
	checkLanes(t, "BitSelect", BitSelect(dst, src, mask), 0x5555AAAA, 0x5555AAAA)
	checkLanes(t, "Bif", Bif(dst, src, mask), 0xAAAA5555, 0xAAAA5555)
	checkLanes(t, "Bsl", Bsl(mask, src, dst), 0x5555AAAA, 0x5555AAAA)

	// A compare mask picks whole lanes.
	a := FromLanes[int32](5, -3, 7, 0)
	b := FromLanes[int32](1, 4, 7, -9)
	checkLanes(t, "select max", Bsl(Cgt(a, b), a, b), 5, 4, 7, 0)
	checkLanes(t, "merge", BitSelect(b, a, Cgt(a, b)), 5, 4, 7, 0)
}

func TestBitwise(t *testing.T) {
	a := FromLanes[uint8](0xF0, 0xF0, 0xF0, 0xF0, 0, 0xFF, 0x0F, 0x55)
	b := FromLanes[uint8](0xCC, 0xCC, 0xCC, 0xCC, 0, 0xFF, 0xF0, 0xAA)
	checkLanes(t, "And", And(a, b), 0xC0, 0xC0, 0xC0, 0xC0, 0, 0xFF, 0, 0)
	checkLanes(t, "Orr", Orr(a, b), 0xFC, 0xFC, 0xFC, 0xFC, 0, 0xFF, 0xFF, 0xFF)
	checkLanes(t, "Eor", Eor(a, b), 0x3C, 0x3C, 0x3C, 0x3C, 0, 0, 0xFF, 0xFF)
	checkLanes(t, "Bic", Bic(a, b), 0x30, 0x30, 0x30, 0x30, 0, 0, 0x0F, 0x55)
	checkLanes(t, "Orn", Orn(a, b), 0xF3, 0xF3, 0xF3, 0xF3, 0xFF, 0xFF, 0x0F, 0x55)
	checkLanes(t, "Mvn", Mvn(a), 0x0F, 0x0F, 0x0F, 0x0F, 0xFF, 0, 0xF0, 0xAA)
}

func TestCls(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		checkLanes(t, "int32", Cls(FromLanes[int32](1, -1, 0, min32)), 30, 31, 31, 0)
		checkLanes(t, "int32 large", Cls(FromLanes[int32](max32, 0x40000000, 0xFFFF, -0x10000)), 0, 0, 15, 15)
		checkLanes(t, "int16", Cls(FromLanes[int16](1, -1, 0x4000, -0x4001)), 14, 15, 0, 0)
		checkLanes(t, "int8", Cls(FromLanes[int8](1, -1, 0, -128, 64, -65, 3, -4)), 6, 7, 7, 0, 0, 0, 5, 5)
		checkLanes(t, "int64", Cls(FromLanes[int64](1, -1)), 62, 63)
	})
}

func TestClzCnt(t *testing.T) {
	checkLanes(t, "Clz uint32", Clz(FromLanes[uint32](1, 0, 0x80000000, 0xFFFF)), 31, 32, 0, 16)
	checkLanes(t, "Clz int16", Clz(FromLanes[int16](-1, 1, 0, 0x100)), 0, 15, 16, 7)
	checkLanes(t, "Cnt uint8", Cnt(FromLanes[uint8](0, 1, 3, 0xFF, 0x80, 0x55, 7, 0xF0)), 0, 1, 2, 8, 1, 4, 3, 4)
	checkLanes(t, "Cnt int8", Cnt(FromLanes[int8](-1, -128, 0, 1, 2, 3, 4, 5)), 8, 1, 0, 1, 1, 2, 1, 2)
}
