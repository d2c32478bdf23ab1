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

// This file provides lane comparisons. A comparison yields a mask register:
// every lane is all ones where the relation holds and zero elsewhere, ready
// to feed BitSelect.

func mask[T Integers](ok bool) T {
	if ok {
		return ^T(0)
	}
	return 0
}

func compare[T Integers](a, b Vec[T], rel func(x, y T) bool) Vec[T] {
	assertSameShape(a, b)
	for i := range int(a.n) {
		a.lanes[i] = mask[T](rel(a.lanes[i], b.lanes[i]))
	}
	return a
}

// Ceq compares lanes for equality (VCEQ).
func Ceq[T Integers](a, b Vec[T]) Vec[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// Cge sets lanes where a >= b (VCGE).
func Cge[T Integers](a, b Vec[T]) Vec[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

// Cgt sets lanes where a > b (VCGT).
func Cgt[T Integers](a, b Vec[T]) Vec[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// Cle sets lanes where a <= b (VCLE).
func Cle[T Integers](a, b Vec[T]) Vec[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// Clt sets lanes where a < b (VCLT).
func Clt[T Integers](a, b Vec[T]) Vec[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// CeqZ sets lanes equal to zero.
func CeqZ[T Integers](a Vec[T]) Vec[T] {
	return Ceq(a, Zero[T](a.Shape()))
}

// CgeZ sets lanes >= 0.
func CgeZ[T SignedInts](a Vec[T]) Vec[T] {
	return Cge(a, Zero[T](a.Shape()))
}

// CgtZ sets lanes > 0.
func CgtZ[T SignedInts](a Vec[T]) Vec[T] {
	return Cgt(a, Zero[T](a.Shape()))
}

// CleZ sets lanes <= 0.
func CleZ[T SignedInts](a Vec[T]) Vec[T] {
	return Cle(a, Zero[T](a.Shape()))
}

// CltZ sets lanes < 0.
func CltZ[T SignedInts](a Vec[T]) Vec[T] {
	return Clt(a, Zero[T](a.Shape()))
}

// Tst sets lanes where a & b has any bit set (VTST).
func Tst[T Integers](a, b Vec[T]) Vec[T] {
	return compare(a, b, func(x, y T) bool { return x&y != 0 })
}
