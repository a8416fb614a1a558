//go:build !amd64 || purego

package hwuuid

// The instructions below are never selected on this platform because
// probeCPU reports no features; they exist so the generator compiles.

func rdrand64() (uint64, bool) { return 0, false }

func rdseed64() (uint64, bool) { return 0, false }

func aesenc(block, key *[16]byte) {}
