// Package hwuuid generates RFC 4122 version 4 (random) UUIDs at high
// throughput. It uses the CPU random-number instructions RDRAND and RDSEED
// when the processor provides them and falls back to a seeded software
// engine otherwise. Every identifier carries version 4 and the RFC 4122
// variant, whichever path produced it.
//
// # Quick Start
//
//	gen, err := hwuuid.New()
//	if err != nil {
//		return err // the OS could not provide a seed
//	}
//	id := gen.Generate()
//	fmt.Println(id) // e.g. 0a7b5e0e-7f96-4cc0-8ed3-1a8a3fc4e222
//
// # Generation Paths
//
// The CPU capabilities are probed once per process ([DetectFeatures]) and a
// [Generator] selects its strategy when it is constructed:
//
//   - hardware+aes — two RDRAND words (RDSEED when RDRAND fails), whitened
//     with one AESENC round under a fixed, public key
//   - hardware — the same without AES-NI
//   - software — words from the [Engine], [Mersenne64] by default
//
// A hardware draw that fails after [DefaultRetries] attempts silently falls
// back to the software engine, so [Generator.Generate] never returns an error.
//
// # Not For Secrets
//
// The AES round is a diffusion step, not encryption: its key is compiled into
// this package and published in its source. Do not use these identifiers as
// session tokens, API keys or any other secret.
//
// # Reproducible Output
//
// [NewWithSeed] together with [Generator.SoftwareOnly] yields a byte-for-byte
// reproducible sequence. [Mersenne64] matches C++ std::mt19937_64 and words
// are laid out little-endian on every platform:
//
//	gen := hwuuid.NewWithSeed(42).SoftwareOnly()
//	fmt.Println(gen.Generate()) // d6e2e56e-7ddf-41c1-a802-25b9b98f97a3
//
// Other engines ([Mersenne32], [PCG], or any [Engine] spanning its full
// unsigned range) are plugged in with [NewWithEngine].
//
// # Thread Safety
//
// A [Generator] is NOT safe for concurrent use. Give each goroutine its own
// Generator, wrap a shared one in a [SyncGenerator], or call [NewV4], which
// draws from a pool of generators.
//
// # Platform Support
//
// Hardware instructions are used on amd64 only. On other architectures, or
// when built with the purego tag, every feature flag is false and all
// identifiers come from the software engine. On Linux a feature is also
// dropped when /proc/cpuinfo does not list it (for example after booting
// with nordrand).
//
// # CLI Tool
//
// A command-line tool is provided in cmd/hwuuid:
//
//	hwuuid -n 5
//	hwuuid -seed 42 -software
//	hwuuid -features -json
//	hwuuid -bench 1000000
package hwuuid
