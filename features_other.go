//go:build !amd64 || purego

package hwuuid

// probeCPU reports no usable instructions; only the amd64 assembly backend
// implements RDRAND, RDSEED and AESENC.
func probeCPU() Features {
	return Features{}
}
