//go:build amd64 && !purego

package hwuuid

// rdrand64 executes RDRAND once. ok mirrors the carry flag.
func rdrand64() (val uint64, ok bool)

// rdseed64 executes RDSEED once. ok mirrors the carry flag.
func rdseed64() (val uint64, ok bool)

// aesenc replaces *block with one AESENC round of *block under *key:
// ShiftRows, SubBytes, MixColumns, then XOR with key.
//
//go:noescape
func aesenc(block, key *[16]byte)
