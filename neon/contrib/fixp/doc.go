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

// Package fixp provides the fixed-point scalar helpers of the decoder and a
// set of DSP kernels written against package neon.
//
// Every kernel runs a vector path over whole registers and finishes the
// remainder with the scalar helpers. Both parts round and saturate
// identically, so the output does not depend on the buffer length modulo
// the register width nor on the backend neon selected.
//
// # Scalar Helpers
//
//   - FMult(a, b) - Q1.31 product, saturating only for MIN*MIN
//   - FMultDiv2(a, b) - Q1.31 product halved, never saturating
//   - CountLeadingBits(x) - headroom of x
//   - ScaleValue(x, scale) - saturating left shift, plain right shift for negative scale
//
// # Kernels
//
//   - ScaleValuesSaturate - block rescaling
//   - OverlapAdd - windowed overlap-add of two frame halves
//   - Rotate - two-channel rotation
//   - Headroom - common headroom of a buffer
//   - Energy - sum of squares
//   - Butterfly - sum/difference of interleaved pairs
//   - ToPCM - rounding, saturating conversion to 16-bit samples
//
// # Example Usage
//
//	import "github.com/mpeghdec/go-mpeghdec/neon/contrib/fixp"
//
//	shift := fixp.Headroom(spectrum)
//	fixp.ScaleValuesSaturate(spectrum, spectrum, shift)
//	fixp.ToPCM(pcm, spectrum, 16)
//
// Pool runs kernels for independent channels on persistent workers.
package fixp
