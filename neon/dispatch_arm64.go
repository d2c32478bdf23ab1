//go:build arm64

package neon

import "golang.org/x/sys/cpu"

func init() {
	// Both backends are pure Go and bit-identical; on CPUs with Advanced
	// SIMD the architecture-reference formulation is the default so that
	// results are checked against the instruction pseudocode.
	if cpu.ARM64.HasASIMD {
		selectBackend(DispatchNEON)
		return
	}
	selectBackend(DispatchScalar)
}
