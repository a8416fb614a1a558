//go:build linux

package hwuuid

import "os"

// cpuInfoPath is a variable so tests can point it at a fixture.
var cpuInfoPath = "/proc/cpuinfo"

// kernelFeatures returns the features the Linux kernel reports as usable.
// The kernel clears rdrand when booted with nordrand or when it has found the
// instruction broken, even though CPUID still advertises it. An unreadable
// cpuinfo vetoes nothing.
func kernelFeatures() Features {
	data, err := os.ReadFile(cpuInfoPath)
	if err != nil {
		return allFeatures
	}

	return parseCPUFlags(string(data))
}
