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

import (
	"slices"
	"testing"
)

func seq[T Lanes](n int) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = T(i)
	}
	return s
}

func TestLoad2Deinterleave(t *testing.T) {
	src := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	re, im := Load2(src, Q)
	checkLanes(t, "register 0", re, 1, 3, 5, 7)
	checkLanes(t, "register 1", im, 2, 4, 6, 8)
}

func TestLoad3(t *testing.T) {
	a, b, c := Load3(seq[int16](12), D)
	checkLanes(t, "register 0", a, 0, 3, 6, 9)
	checkLanes(t, "register 1", b, 1, 4, 7, 10)
	checkLanes(t, "register 2", c, 2, 5, 8, 11)
}

func TestLoad4(t *testing.T) {
	a, b, c, d := Load4(seq[int32](8), D)
	checkLanes(t, "register 0", a, 0, 4)
	checkLanes(t, "register 1", b, 1, 5)
	checkLanes(t, "register 2", c, 2, 6)
	checkLanes(t, "register 3", d, 3, 7)
}

func testLoadStoreRoundTrip[T Lanes](t *testing.T, name string) {
	for _, s := range []Shape{D, Q} {
		for n := 1; n <= 4; n++ {
			src := seq[T](n * NumLanes[T](s))
			var regs [4]Vec[T]
			LoadN(src, s, regs[:n])
			dst := make([]T, len(src))
			StoreN(dst, regs[:n])
			if !slices.Equal(src, dst) {
				t.Errorf("%s %s n=%d: got %v, want %v", name, s, n, dst, src)
			}

			LoadMulti(src, s, regs[:n])
			clear(dst)
			StoreMulti(dst, regs[:n])
			if !slices.Equal(src, dst) {
				t.Errorf("%s %s multi n=%d: got %v, want %v", name, s, n, dst, src)
			}
		}
	}
}

func TestLoadStoreRoundTrip(t *testing.T) {
	testLoadStoreRoundTrip[int8](t, "int8")
	testLoadStoreRoundTrip[uint16](t, "uint16")
	testLoadStoreRoundTrip[int32](t, "int32")
	testLoadStoreRoundTrip[int64](t, "int64")
	testLoadStoreRoundTrip[float32](t, "float32")
}

func TestStore2Interleave(t *testing.T) {
	dst := make([]int32, 8)
	Store2(dst, FromLanes[int32](1, 3, 5, 7), FromLanes[int32](2, 4, 6, 8))
	if want := []int32{1, 2, 3, 4, 5, 6, 7, 8}; !slices.Equal(dst, want) {
		t.Errorf("Store2: got %v, want %v", dst, want)
	}
}

func TestStoreLeavesTail(t *testing.T) {
	dst := []int16{9, 9, 9, 9, 9, 9}
	Store1(dst, FromLanes[int16](1, 2, 3, 4))
	if want := []int16{1, 2, 3, 4, 9, 9}; !slices.Equal(dst, want) {
		t.Errorf("Store1: got %v, want %v", dst, want)
	}
}

func TestLoadMulti(t *testing.T) {
	var regs [2]Vec[int32]
	LoadMulti([]int32{1, 2, 3, 4}, D, regs[:])
	checkLanes(t, "register 0", regs[0], 1, 2)
	checkLanes(t, "register 1", regs[1], 3, 4)
}

func TestLoadDup(t *testing.T) {
	checkLanes(t, "LoadDup", LoadDup([]int16{-5, 1}, D), -5, -5, -5, -5)

	var regs [3]Vec[int32]
	LoadDupN([]int32{1, 2, 3}, D, regs[:])
	checkLanes(t, "register 0", regs[0], 1, 1)
	checkLanes(t, "register 1", regs[1], 2, 2)
	checkLanes(t, "register 2", regs[2], 3, 3)
}

func TestLaneTransfers(t *testing.T) {
	v := LoadLane([]int32{42}, Zero[int32](Q), 2)
	checkLanes(t, "LoadLane", v, 0, 0, 42, 0)

	out := []int32{0}
	StoreLane(out, v, 2)
	if out[0] != 42 {
		t.Errorf("StoreLane: got %d, want 42", out[0])
	}

	regs := []Vec[int16]{Zero[int16](D), Zero[int16](D)}
	LoadLaneN([]int16{7, 8}, regs, 1)
	checkLanes(t, "LoadLaneN 0", regs[0], 0, 7, 0, 0)
	checkLanes(t, "LoadLaneN 1", regs[1], 0, 8, 0, 0)

	pair := make([]int16, 2)
	StoreLaneN(pair, regs, 1)
	if want := []int16{7, 8}; !slices.Equal(pair, want) {
		t.Errorf("StoreLaneN: got %v, want %v", pair, want)
	}
}

func TestLoadOutOfBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Load2 past the end of the buffer did not panic")
		}
	}()
	Load2(make([]int32, 7), Q)
}

func BenchmarkLoad2(b *testing.B) {
	src := seq[int32](8)
	var sink Vec[int32]
	for b.Loop() {
		re, im := Load2(src, Q)
		sink = Add(re, im)
	}
	_ = sink
}
