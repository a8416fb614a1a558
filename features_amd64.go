//go:build amd64 && !purego

package hwuuid

import "golang.org/x/sys/cpu"

// probeCPU reads the CPUID flags collected by x/sys/cpu at program start.
func probeCPU() Features {
	return Features{
		RDRAND: cpu.X86.HasRDRAND,
		RDSEED: cpu.X86.HasRDSEED,
		AES:    cpu.X86.HasAES,
	}
}
