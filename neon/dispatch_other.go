//go:build !arm64

package neon

func init() {
	// Without Advanced SIMD the portable backend is the default. The NEON
	// backend is still available through MPEGH_SIMD or SetBackend.
	selectBackend(DispatchScalar)
}
