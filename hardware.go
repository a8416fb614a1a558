package hwuuid

// DefaultRetries is the number of attempts made per instruction before the
// hardware source gives up on a word. Intel's DRNG guide recommends ten
// RDRAND retries; a healthy part essentially never exhausts them.
const DefaultRetries = 10

// instruction issues one hardware random instruction and reports the carry
// flag, which the CPU clears when no entropy was ready.
type instruction func() (uint64, bool)

// HardwareSource draws 64-bit words from the CPU random instructions.
// RDRAND is tried first; RDSEED serves when RDRAND is unavailable or has
// exhausted its retries.
//
// A HardwareSource holds no mutable state and is safe for concurrent use.
type HardwareSource struct {
	rdrand  instruction // nil when unavailable
	rdseed  instruction // nil when unavailable
	retries int
}

// NewHardwareSource returns a source using the instructions enabled in fs.
// A retries value below 1 is treated as 1.
func NewHardwareSource(fs Features, retries int) *HardwareSource {
	if retries < 1 {
		retries = 1
	}

	h := &HardwareSource{retries: retries}
	if fs.RDRAND {
		h.rdrand = rdrand64
	}
	if fs.RDSEED {
		h.rdseed = rdseed64
	}

	return h
}

// Available reports whether at least one instruction is usable.
func (h *HardwareSource) Available() bool {
	return h.rdrand != nil || h.rdseed != nil
}

// Uint64 returns one hardware random word. The boolean is false when no
// instruction is usable or every attempt of every instruction failed; the
// caller must then use a software source. A zero word is a valid result.
func (h *HardwareSource) Uint64() (uint64, bool) {
	if v, ok := retry(h.rdrand, h.retries); ok {
		return v, true
	}

	return retry(h.rdseed, h.retries)
}

// retry issues instr up to n times and returns the first successful word.
func retry(instr instruction, n int) (uint64, bool) {
	if instr == nil {
		return 0, false
	}

	for range n {
		if v, ok := instr(); ok {
			return v, true
		}
	}

	return 0, false
}
