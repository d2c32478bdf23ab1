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

// This file provides lane permutations. None of them change a lane value.

// Reverse reverses the order of lanes within each group of group lanes:
// lane i of a group moves to group-1-i (VREV). group must be a power of two
// dividing the lane count.
func Reverse[T Lanes](v Vec[T], group int) Vec[T] {
	precondition(group >= 2 && group&(group-1) == 0 && int(v.n)%group == 0,
		"cannot reverse groups of %d in %d lanes", group, v.n)
	for base := 0; base < int(v.n); base += group {
		for i, j := base, base+group-1; i < j; i, j = i+1, j-1 {
			v.lanes[i], v.lanes[j] = v.lanes[j], v.lanes[i]
		}
	}
	return v
}

// Reverse2 swaps adjacent lane pairs.
func Reverse2[T Lanes](v Vec[T]) Vec[T] {
	return Reverse(v, 2)
}

// Reverse4 reverses each group of four lanes.
func Reverse4[T Lanes](v Vec[T]) Vec[T] {
	return Reverse(v, 4)
}

// Reverse8 reverses each group of eight lanes.
func Reverse8[T Lanes](v Vec[T]) Vec[T] {
	return Reverse(v, 8)
}

// Rev16 reverses the bytes of each 16-bit container (VREV16). Lanes must be
// 8 bits wide.
func Rev16[T Lanes](v Vec[T]) Vec[T] {
	return Reverse(v, 16/int(LaneBits[T]()))
}

// Rev32 reverses the lanes of each 32-bit container (VREV32).
func Rev32[T Lanes](v Vec[T]) Vec[T] {
	return Reverse(v, 32/int(LaneBits[T]()))
}

// Rev64 reverses the lanes of each 64-bit container (VREV64). On a D
// register this reverses the whole register; on a Q register each half is
// reversed in place.
func Rev64[T Lanes](v Vec[T]) Vec[T] {
	return Reverse(v, 64/int(LaneBits[T]()))
}

// Zip interleaves a and b (VZIP). Viewed as one buffer of twice the lane
// count, lo followed by hi is [a0 b0 a1 b1 ...].
func Zip[T Lanes](a, b Vec[T]) (lo, hi Vec[T]) {
	assertSameShape(a, b)
	var buf [2 * maxLanes]T
	n := int(a.n)
	for i := range n {
		buf[2*i] = a.lanes[i]
		buf[2*i+1] = b.lanes[i]
	}
	lo.n, hi.n = a.n, a.n
	copy(lo.lanes[:n], buf[:n])
	copy(hi.lanes[:n], buf[n:2*n])
	return lo, hi
}

// Unzip deinterleaves the concatenation of a and b (VUZP): even holds the
// even-indexed lanes and odd the odd-indexed ones. It undoes Zip:
// Unzip(Zip(a, b)) == (a, b).
func Unzip[T Lanes](a, b Vec[T]) (even, odd Vec[T]) {
	assertSameShape(a, b)
	var buf [2 * maxLanes]T
	n := int(a.n)
	copy(buf[:n], a.lanes[:n])
	copy(buf[n:2*n], b.lanes[:n])
	even.n, odd.n = a.n, a.n
	for i := range n {
		even.lanes[i] = buf[2*i]
		odd.lanes[i] = buf[2*i+1]
	}
	return even, odd
}

// Trn transposes the 2x2 lane blocks of a and b (VTRN): for every even i
// lane a[i+1] and lane b[i] trade places.
//
//	Trn([a0 a1 a2 a3], [b0 b1 b2 b3]) = [a0 b0 a2 b2], [a1 b1 a3 b3]
func Trn[T Lanes](a, b Vec[T]) (Vec[T], Vec[T]) {
	assertSameShape(a, b)
	for i := 0; i+1 < int(a.n); i += 2 {
		a.lanes[i+1], b.lanes[i] = b.lanes[i], a.lanes[i+1]
	}
	return a, b
}

// Ext extracts a register from the concatenation of a and b starting at
// lane k, 0 <= k <= lanes (VEXT). Ext(a, b, 0) is a and Ext(a, b, lanes)
// is b.
func Ext[T Lanes](a, b Vec[T], k int) Vec[T] {
	assertSameShape(a, b)
	n := int(a.n)
	precondition(k >= 0 && k <= n, "extract offset %d out of range [0,%d]", k, n)
	r := Vec[T]{n: a.n}
	copy(r.lanes[:n-k], a.lanes[k:n])
	copy(r.lanes[n-k:n], b.lanes[:k])
	return r
}

// DupLane broadcasts lane of v to every lane of a register of shape s
// (VDUP by lane).
func DupLane[T Lanes](v Vec[T], lane int, s Shape) Vec[T] {
	return Set(s, v.Lane(lane))
}

// Swap exchanges the contents of two registers (VSWP).
func Swap[T Lanes](a, b *Vec[T]) {
	*a, *b = *b, *a
}
