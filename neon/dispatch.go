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
	"os"
	"strconv"
	"sync/atomic"
)

// DispatchLevel identifies the backend selected for this process.
type DispatchLevel int

const (
	// DispatchScalar indicates the portable backend.
	DispatchScalar DispatchLevel = iota

	// DispatchNEON indicates the architecture-reference backend, chosen on
	// CPUs with Advanced SIMD.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// active is the backend used by the package-level operations.
// Set by init() in dispatch_*.go files.
var active atomic.Pointer[Backend]

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// overridden is true when MPEGH_SIMD selected the backend.
var overridden bool

// CurrentLevel returns the dispatch level detected at init.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns the name of the backend currently in use.
func CurrentName() string {
	return CurrentBackend().Name()
}

// CurrentBackend returns the backend used by the package-level operations.
func CurrentBackend() Backend {
	return *active.Load()
}

// IsOverridden reports whether MPEGH_SIMD chose the backend.
func IsOverridden() bool {
	return overridden
}

// SetBackend switches the backend used by the package-level operations and
// returns a function restoring the previous one. It is meant for tests and
// tools; kernels running concurrently may observe either backend.
func SetBackend(be Backend) (restore func()) {
	prev := active.Swap(&be)
	return func() { active.Store(prev) }
}

func cur() Backend {
	return *active.Load()
}

// NoSimdEnv checks if the MPEGH_NO_SIMD environment variable is set.
// When set, the scalar backend is used regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("MPEGH_NO_SIMD")
	if val == "" {
		return false
	}
	// "0" and "false" re-enable selection; anything unparsable disables it.
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// selectBackend installs the backend for the detected level, honoring the
// MPEGH_NO_SIMD and MPEGH_SIMD environment variables.
func selectBackend(level DispatchLevel) {
	currentLevel = level
	chosen := Scalar
	if level == DispatchNEON {
		chosen = NEON
	}
	if NoSimdEnv() {
		chosen = Scalar
	} else if name := os.Getenv("MPEGH_SIMD"); name != "" {
		if b, ok := BackendByName(name); ok {
			chosen = b
			overridden = true
		}
	}
	active.Store(&chosen)
}
