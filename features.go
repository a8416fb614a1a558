package hwuuid

import (
	"strings"
	"sync"
)

// Feature identifies a CPU capability the generator can use.
type Feature int

const (
	// FeatureRDRAND is the DRBG-backed RDRAND instruction, the primary
	// hardware source.
	FeatureRDRAND Feature = iota
	// FeatureRDSEED is the entropy-conditioner-backed RDSEED instruction,
	// used when RDRAND is missing or keeps failing.
	FeatureRDSEED
	// FeatureAES is the AES-NI instruction set, used for the diffusion round.
	FeatureAES
)

// String returns the lowercase instruction name of the feature.
func (f Feature) String() string {
	switch f {
	case FeatureRDRAND:
		return "rdrand"
	case FeatureRDSEED:
		return "rdseed"
	case FeatureAES:
		return "aes"
	default:
		return "unknown"
	}
}

// Features is a set of CPU capability flags.
type Features struct {
	RDRAND bool `json:"rdrand"`
	RDSEED bool `json:"rdseed"`
	AES    bool `json:"aes"`
}

// Has reports whether f is set.
func (fs Features) Has(f Feature) bool {
	switch f {
	case FeatureRDRAND:
		return fs.RDRAND
	case FeatureRDSEED:
		return fs.RDSEED
	case FeatureAES:
		return fs.AES
	default:
		return false
	}
}

// HardwareRandom reports whether any hardware random instruction is usable.
func (fs Features) HardwareRandom() bool {
	return fs.RDRAND || fs.RDSEED
}

// Intersect returns the flags set in both fs and other.
func (fs Features) Intersect(other Features) Features {
	return Features{
		RDRAND: fs.RDRAND && other.RDRAND,
		RDSEED: fs.RDSEED && other.RDSEED,
		AES:    fs.AES && other.AES,
	}
}

// String lists the set flags, e.g. "rdrand,aes", or "none".
func (fs Features) String() string {
	var names []string
	for _, f := range []Feature{FeatureRDRAND, FeatureRDSEED, FeatureAES} {
		if fs.Has(f) {
			names = append(names, f.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, ",")
}

// processFeatures is the process-wide capability set. The probe runs at most
// once, on first use, and the result is immutable for the process lifetime.
var processFeatures = sync.OnceValue(func() Features {
	return probeCPU().Intersect(kernelFeatures())
})

// DetectFeatures returns the process-wide CPU capability flags. The first
// call probes CPUID (and, on Linux, the kernel's view in /proc/cpuinfo);
// later calls return the cached result. Safe for concurrent use.
//
// On architectures other than amd64, or when built with the purego tag, all
// flags are false.
func DetectFeatures() Features {
	return processFeatures()
}

// HasFeature reports whether the process-wide capability set includes f.
func HasFeature(f Feature) bool {
	return DetectFeatures().Has(f)
}
