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
	"testing"
)

func TestFMult(t *testing.T) {
	tests := []struct {
		a, b, want, div2 int32
	}{
		{math.MinInt32, math.MinInt32, math.MaxInt32, 0x40000000},
		{0x40000000, 0x40000000, 0x20000000, 0x10000000},
		{0x40000000, -0x40000000, -0x20000000, -0x10000000},
		{math.MaxInt32, math.MaxInt32, 0x7FFFFFFE, 0x3FFFFFFF},
		{1, 1, 0, 0},
		{-1, 1, -1, -1},
	}
	for _, tt := range tests {
		if got := FMult(tt.a, tt.b); got != tt.want {
			t.Errorf("FMult(%#x, %#x) = %#x, want %#x", tt.a, tt.b, got, tt.want)
		}
		if got := FMultDiv2(tt.a, tt.b); got != tt.div2 {
			t.Errorf("FMultDiv2(%#x, %#x) = %#x, want %#x", tt.a, tt.b, got, tt.div2)
		}
	}
}

func TestCountLeadingBits(t *testing.T) {
	tests := []struct {
		x    int32
		want int
	}{
		{0, 31},
		{-1, 31},
		{1, 30},
		{-2, 30},
		{math.MaxInt32, 0},
		{math.MinInt32, 0},
		{0xFFFF, 15},
	}
	for _, tt := range tests {
		if got := CountLeadingBits(tt.x); got != tt.want {
			t.Errorf("CountLeadingBits(%#x) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestScaleValue(t *testing.T) {
	tests := []struct {
		x     int32
		scale int
		want  int32
	}{
		{0x10000, 14, 0x40000000},
		{0x10000, 15, math.MaxInt32},
		{-0x10000, 15, math.MinInt32},
		{-0x10000, 16, math.MinInt32},
		{0, 40, 0},
		{0x10000, -16, 1},
		{-0x10000, -17, -1},
		{-5, -100, -1},
		{5, 0, 5},
	}
	for _, tt := range tests {
		if got := ScaleValue(tt.x, tt.scale); got != tt.want {
			t.Errorf("ScaleValue(%#x, %d) = %#x, want %#x", tt.x, tt.scale, got, tt.want)
		}
	}
}

func TestSatAddSub(t *testing.T) {
	if got := SatAdd(math.MaxInt32, 1); got != math.MaxInt32 {
		t.Errorf("SatAdd overflow = %d", got)
	}
	if got := SatSub(math.MinInt32, 1); got != math.MinInt32 {
		t.Errorf("SatSub underflow = %d", got)
	}
	if got := SatAdd(-3, 5); got != 2 {
		t.Errorf("SatAdd(-3, 5) = %d", got)
	}
}
