package xof

import (
	"runtime"

	cpuid "github.com/klauspost/cpuid/v2"
)

var defaultBLAKE3 = BLAKE3Zeebo

func init() {
	// On ARM64 some features require explicit detection
	if runtime.GOARCH == "arm64" {
		cpuid.DetectARM()
	}
	defaultBLAKE3 = pickBLAKE3(runtime.GOARCH, cpuid.CPU.Supports)
}

// pickBLAKE3 prefers lukechampine's backend when AVX-512 kernels can run and
// zeebo's otherwise; zeebo carries AVX2/SSE4.1 assembly and a portable path.
func pickBLAKE3(goarch string, supports func(ids ...cpuid.FeatureID) bool) Algorithm {
	switch goarch {
	case "amd64":
		if supports(cpuid.AVX512F, cpuid.AVX512VL) {
			return BLAKE3Lukechampine
		}
		return BLAKE3Zeebo
	default:
		// Unknown architecture, use conservative default
		return BLAKE3Zeebo
	}
}

// DefaultBLAKE3 returns the BLAKE3 backend selected for the running CPU.
func DefaultBLAKE3() Algorithm { return defaultBLAKE3 }
