package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents the scalar Go loop (no lanes).
	Generic ISA = iota
	// SSE2 represents x86-64 SSE2 (128-bit, 4 x float32).
	SSE2
	// NEON represents ARM64 NEON (128-bit ASIMD, 4 x float32).
	NEON
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case SSE2:
		return "sse2"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "sse2":
		return SSE2, true
	case "neon":
		return NEON, true
	default:
		return Generic, false
	}
}

// OverrideEnv names the environment variable that forces an ISA.
const OverrideEnv = "CHEAPRULER_SIMD"

var (
	activeISA ISA

	// hasOverride is true if OverrideEnv selected the ISA.
	hasOverride bool
	// rejectedOverride holds an OverrideEnv value that could not be used.
	rejectedOverride string

	// CPU feature flags (set by platform-specific init)
	hasSSE2  bool
	hasASIMD bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	activeISA = selectBestISA()
	if override := os.Getenv(OverrideEnv); override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			activeISA = isa
			hasOverride = true
		} else {
			rejectedOverride = override
		}
	}
	useISA(activeISA)
}

func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case SSE2:
		return hasSSE2
	case NEON:
		return hasASIMD
	default:
		return false
	}
}

func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "amd64":
		if hasSSE2 {
			return SSE2
		}
	case "arm64":
		if hasASIMD {
			return NEON
		}
	}
	return Generic
}

// useISA installs the kernels for isa. Every ISA other than Generic maps
// to the same lane kernels.
func useISA(isa ISA) {
	if isa == Generic {
		lengthImpl = lengthGeneric
		bearingsImpl = bearingsGeneric
		destinationsImpl = destinationsGeneric
		return
	}
	lengthImpl = lengthLanes
	bearingsImpl = bearingsLanes
	destinationsImpl = destinationsLanes
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if CHEAPRULER_SIMD selected the ISA.
func IsOverridden() bool {
	return hasOverride
}

// HasSSE2 returns true if x86-64 SSE2 is available.
func HasSSE2() bool {
	return hasSSE2
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}
