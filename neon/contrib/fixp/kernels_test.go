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

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpeghdec/go-mpeghdec/neon"
)

// lengths covers empty buffers, pure tails, whole registers and mixes.
var lengths = []int{0, 1, 3, 4, 5, 8, 13, 64, 67}

func forEachBackend(t *testing.T, f func(t *testing.T)) {
	t.Helper()
	for _, be := range neon.Backends() {
		t.Run(be.Name(), func(t *testing.T) {
			restore := neon.SetBackend(be)
			defer restore()
			f(t)
		})
	}
}

func randomQ31(r *rand.Rand, n int) []int32 {
	x := make([]int32, n)
	for i := range x {
		switch r.IntN(6) {
		case 0:
			x[i] = math.MinInt32
		case 1:
			x[i] = math.MaxInt32
		default:
			x[i] = int32(r.Uint32())
		}
	}
	return x
}

func TestScaleValuesSaturate(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		r := rand.New(rand.NewPCG(1, 1))
		for _, n := range lengths {
			for _, scale := range []int{-40, -31, -3, 0, 1, 7, 31, 40} {
				src := randomQ31(r, n)
				want := make([]int32, n)
				for i, s := range src {
					want[i] = ScaleValue(s, scale)
				}
				got := make([]int32, n)
				ScaleValuesSaturate(got, src, scale)
				require.Equal(t, want, got, "n=%d scale=%d", n, scale)

				ScaleValuesSaturate(src, src, scale)
				require.Equal(t, want, src, "in place n=%d scale=%d", n, scale)
			}
		}
	})
}

func TestOverlapAdd(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		r := rand.New(rand.NewPCG(2, 2))
		for _, n := range lengths {
			cur, prev, win := randomQ31(r, n), randomQ31(r, n), randomQ31(r, n)
			want := make([]int32, n)
			for i := range want {
				want[i] = SatAdd(FMult(cur[i], win[i]), FMult(prev[n-1-i], win[n-1-i]))
			}
			got := make([]int32, n)
			OverlapAdd(got, cur, prev, win)
			require.Equal(t, want, got, "n=%d", n)
		}
	})
}

func TestOverlapAddReversal(t *testing.T) {
	win := slices.Repeat([]int32{math.MaxInt32}, 8)
	prev := []int32{0, 1 << 20, 2 << 20, 3 << 20, 4 << 20, 5 << 20, 6 << 20, 7 << 20}
	got := make([]int32, 8)
	OverlapAdd(got, make([]int32, 8), prev, win)
	for i := range got {
		// FMult by MaxInt32 loses one unit for positive inputs.
		want := max(prev[7-i]-1, 0)
		assert.Equal(t, want, got[i], "sample %d", i)
	}
}

func TestRotate(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		r := rand.New(rand.NewPCG(3, 3))
		for _, n := range lengths {
			x, y := randomQ31(r, n), randomQ31(r, n)
			c, s := int32(r.Uint32()), int32(r.Uint32())
			wx, wy := slices.Clone(x), slices.Clone(y)
			for i := range wx {
				wx[i] = SatSub(FMult(x[i], c), FMult(y[i], s))
				wy[i] = SatAdd(FMult(x[i], s), FMult(y[i], c))
			}
			Rotate(x, y, c, s)
			require.Equal(t, wx, x, "x n=%d", n)
			require.Equal(t, wy, y, "y n=%d", n)
		}
	})
}

func TestHeadroom(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		assert.Equal(t, 31, Headroom(nil))
		assert.Equal(t, 31, Headroom(make([]int32, 9)))
		assert.Equal(t, 0, Headroom([]int32{1, 2, 3, 4, math.MinInt32}))
		assert.Equal(t, 14, Headroom([]int32{1, -0x10000, 0x10000, 5}))

		r := rand.New(rand.NewPCG(4, 4))
		for _, n := range lengths {
			x := randomQ31(r, n)
			for i := range x {
				x[i] >>= r.IntN(32)
			}
			want := 31
			for _, s := range x {
				want = min(want, CountLeadingBits(s))
			}
			require.Equal(t, want, Headroom(x), "n=%d", n)
		}
	})
}

func TestEnergy(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		assert.Equal(t, int64(0), Energy(nil, 0))
		assert.Equal(t, int64(1+4+9+16+25), Energy([]int32{2, 4, -6, 8, 10}, 1))
		assert.Equal(t, int64(4+16+36+64), Energy([]int32{1, 2, 3, 4}, -1))
		assert.Equal(t, int64(4+16+36+64+100), Energy([]int32{1, 2, 3, 4, 5}, -1))

		r := rand.New(rand.NewPCG(5, 5))
		for _, n := range lengths {
			x := randomQ31(r, n)
			for _, shift := range []int{-3, -1, 0, 8, 16, 40} {
				var want int64
				for _, s := range x {
					v := int64(ScaleValue(s, -shift))
					want += v * v
				}
				require.Equal(t, want, Energy(x, shift), "n=%d shift=%d", n, shift)
			}
		}
	})
}

func TestButterfly(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		x := []int32{10, 4, math.MaxInt32, math.MaxInt32, math.MinInt32, math.MaxInt32, -3, 0, 7}
		Butterfly(x)
		assert.Equal(t, []int32{7, 3, math.MaxInt32, 0, -1, math.MinInt32, -2, -2, 7}, x)

		r := rand.New(rand.NewPCG(6, 6))
		for _, n := range append(lengths, 16, 17, 18) {
			x := randomQ31(r, n)
			want := slices.Clone(x)
			for i := 0; i+1 < n; i += 2 {
				a, b := int64(want[i]), int64(want[i+1])
				want[i], want[i+1] = int32((a+b)>>1), int32((a-b)>>1)
			}
			Butterfly(x)
			require.Equal(t, want, x, "n=%d", n)
		}
	})
}

func TestToPCM(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		src := []int32{0x00018000, -0x00018000, math.MaxInt32, math.MinInt32, 0x7FFF0000, 0x00007FFF, -0x8000}
		dst := make([]int16, len(src))
		ToPCM(dst, src, 16)
		assert.Equal(t, []int16{2, -1, math.MaxInt16, math.MinInt16, math.MaxInt16, 0, 0}, dst)

		r := rand.New(rand.NewPCG(7, 7))
		for _, n := range lengths {
			x := randomQ31(r, n)
			for _, shift := range []int{1, 8, 15, 16} {
				want := make([]int16, n)
				for i, s := range x {
					v := (int64(s) + 1<<(shift-1)) >> shift
					want[i] = int16(min(max(v, math.MinInt16), math.MaxInt16))
				}
				got := make([]int16, n)
				ToPCM(got, x, shift)
				require.Equal(t, want, got, "n=%d shift=%d", n, shift)
			}
		}
	})
}

func BenchmarkOverlapAdd(b *testing.B) {
	r := rand.New(rand.NewPCG(8, 8))
	cur, prev, win := randomQ31(r, 1024), randomQ31(r, 1024), randomQ31(r, 1024)
	dst := make([]int32, 1024)
	for b.Loop() {
		OverlapAdd(dst, cur, prev, win)
	}
}
