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
	"os"
	"runtime"
	"testing"
)

// TestMain prints which backend the package-level operations start on.
func TestMain(m *testing.M) {
	fmt.Printf("=== NEON layer diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("MPEGH_SIMD=%q MPEGH_NO_SIMD=%q\n", os.Getenv("MPEGH_SIMD"), os.Getenv("MPEGH_NO_SIMD"))
	fmt.Printf("Level: %s, backend: %s, override: %v, debug checks: %v\n",
		CurrentLevel(), CurrentName(), IsOverridden(), debugChecks)
	fmt.Printf("==============================\n\n")
	os.Exit(m.Run())
}

// forEachBackend runs f once per backend with that backend installed. The
// subtests must not run in parallel.
func forEachBackend(t *testing.T, f func(t *testing.T)) {
	t.Helper()
	for _, be := range Backends() {
		t.Run(be.Name(), func(t *testing.T) {
			restore := SetBackend(be)
			defer restore()
			f(t)
		})
	}
}

func checkLanes[T Lanes](t *testing.T, name string, got Vec[T], want ...T) {
	t.Helper()
	if got.NumLanes() != len(want) {
		t.Fatalf("%s: got %d lanes, want %d", name, got.NumLanes(), len(want))
	}
	for i, w := range want {
		if g := got.Lane(i); g != w {
			t.Errorf("%s: lane %d: got %v, want %v", name, i, g, w)
		}
	}
}
