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
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Caller preconditions (alignment, register adjacency, lane indexes, shift
// ranges) are only checked when built with -tags neondebug. Release builds
// behave like the hardware: a violated precondition is undefined.

// precondition panics with a formatted message when debug checks are
// enabled and cond is false.
func precondition(cond bool, format string, args ...any) {
	if debugChecks && !cond {
		panic("neon: " + fmt.Sprintf(format, args...))
	}
}

// assertShape checks that v has the physical width s.
func assertShape[T Lanes](v Vec[T], s Shape) {
	if debugChecks && v.Shape() != s {
		panic(fmt.Sprintf("neon: want %s register, got %s", s, v.Shape()))
	}
}

// assertSameShape checks that both operands of a lane-wise operation have
// the same element count.
func assertSameShape[T Lanes](a, b Vec[T]) {
	if debugChecks && a.n != b.n {
		panic(fmt.Sprintf("neon: operand shapes differ: %s vs %s", a.Shape(), b.Shape()))
	}
}

// mustWiden panics unless W lanes are exactly twice as wide as N lanes.
// Widening and narrowing helpers take both types as parameters, so a wrong
// instantiation is static misuse and is rejected in every build.
func mustWiden[W, N Lanes]() {
	if LaneBytes[W]() != 2*LaneBytes[N]() {
		panic(fmt.Sprintf("neon: %d-byte lanes are not twice %d-byte lanes", LaneBytes[W](), LaneBytes[N]()))
	}
}

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.DiscardHandler))
}

// SetLogger installs the logger used for debug diagnostics. Passing nil
// restores the default, which discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the logger used for debug diagnostics.
func Logger() *slog.Logger {
	return logger.Load()
}

// traceWrap reports a wrapping lane operation whose exact result is not
// representable, i.e. one where the saturating variant would have clamped.
// Only called from debug builds.
func traceWrap(op string, lane int, exact int64, bits uint) {
	lo, hi := signedRange(bits)
	if exact < lo || exact > hi {
		logger.Load().LogAttrs(context.Background(), slog.LevelDebug, "wrapping lane overflow",
			slog.String("op", op),
			slog.Int("lane", lane),
			slog.Int64("exact", exact),
			slog.Uint64("bits", uint64(bits)))
	}
}
