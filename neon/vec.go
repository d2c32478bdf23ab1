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
	"fmt"
	"strings"
	"unsafe"
)

// Vec is the contents of one D or Q register viewed as lanes of type T.
//
// Vec is a plain value: copying it copies the register. The zero Vec has no
// lanes; use Zero, Set, FromLanes or a load to obtain a register.
type Vec[T Lanes] struct {
	lanes [maxLanes]T
	n     uint8
}

// Zero returns a register of shape s with every lane cleared.
func Zero[T Lanes](s Shape) Vec[T] {
	return Vec[T]{n: uint8(NumLanes[T](s))}
}

// Set returns a register of shape s with every lane set to x (VDUP from a
// core register, VMOV immediate).
func Set[T Lanes](s Shape, x T) Vec[T] {
	v := Zero[T](s)
	for i := range int(v.n) {
		v.lanes[i] = x
	}
	return v
}

// FromLanes builds a register from explicit lane values. The number of
// values must fill exactly a D or a Q register of T lanes.
func FromLanes[T Lanes](lanes ...T) Vec[T] {
	n := len(lanes)
	if n != NumLanes[T](D) && n != NumLanes[T](Q) {
		panic(fmt.Sprintf("neon: %d lanes of %d bytes do not form a D or Q register", n, LaneBytes[T]()))
	}
	var v Vec[T]
	v.n = uint8(n)
	copy(v.lanes[:n], lanes)
	return v
}

// NumLanes returns the element count of the register.
func (v Vec[T]) NumLanes() int {
	return int(v.n)
}

// Shape returns the physical width of the register.
func (v Vec[T]) Shape() Shape {
	return Shape(int(v.n) * LaneBytes[T]())
}

// Lane returns lane i.
func (v Vec[T]) Lane(i int) T {
	precondition(i >= 0 && i < int(v.n), "lane %d out of range [0,%d)", i, v.n)
	return v.lanes[i]
}

// WithLane returns a copy of v with lane i replaced by x (VMOV to scalar lane).
func (v Vec[T]) WithLane(i int, x T) Vec[T] {
	precondition(i >= 0 && i < int(v.n), "lane %d out of range [0,%d)", i, v.n)
	v.lanes[i] = x
	return v
}

// Lanes returns a copy of the lane values. It allocates and is intended for
// tests and diagnostics.
func (v Vec[T]) Lanes() []T {
	out := make([]T, v.n)
	copy(out, v.lanes[:v.n])
	return out
}

// String formats the register as its shape followed by the lane values.
func (v Vec[T]) String() string {
	var sb strings.Builder
	sb.WriteString(v.Shape().String())
	sb.WriteByte('[')
	for i := range int(v.n) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v.lanes[i])
	}
	sb.WriteByte(']')
	return sb.String()
}

// bytes returns the register contents in memory order.
func (v Vec[T]) bytes() (b [16]byte, size int) {
	size = int(v.n) * LaneBytes[T]()
	if size == 0 {
		return b, 0
	}
	copy(b[:size], unsafe.Slice((*byte)(unsafe.Pointer(&v.lanes[0])), size))
	return b, size
}

// fromBytes builds a register of T lanes from size bytes in memory order.
func fromBytes[T Lanes](b [16]byte, size int) Vec[T] {
	var v Vec[T]
	v.n = uint8(size / LaneBytes[T]())
	if size > 0 {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&v.lanes[0])), size), b[:size])
	}
	return v
}

// Reinterpret views the bits of v as lanes of type U. The register width is
// unchanged and no lane value is converted: a D register of four int16 lanes
// becomes two int32 lanes holding the same 64 bits.
func Reinterpret[U, T Lanes](v Vec[T]) Vec[U] {
	b, size := v.bytes()
	return fromBytes[U](b, size)
}

// Low returns the lower D half of a Q register.
func Low[T Lanes](v Vec[T]) Vec[T] {
	assertShape(v, Q)
	var r Vec[T]
	r.n = v.n / 2
	copy(r.lanes[:r.n], v.lanes[:r.n])
	return r
}

// High returns the upper D half of a Q register.
func High[T Lanes](v Vec[T]) Vec[T] {
	assertShape(v, Q)
	var r Vec[T]
	r.n = v.n / 2
	copy(r.lanes[:r.n], v.lanes[r.n:v.n])
	return r
}

// Combine joins two D registers into the Q register whose low half is lo
// and high half is hi.
func Combine[T Lanes](lo, hi Vec[T]) Vec[T] {
	assertShape(lo, D)
	assertShape(hi, D)
	var r Vec[T]
	r.n = lo.n + hi.n
	copy(r.lanes[:lo.n], lo.lanes[:lo.n])
	copy(r.lanes[lo.n:r.n], hi.lanes[:hi.n])
	return r
}
