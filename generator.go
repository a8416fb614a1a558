package hwuuid

import (
	"log/slog"
)

// DiagnosticInfo reports how a [Generator] is configured and which paths its
// identifiers have taken so far.
type DiagnosticInfo struct {
	Features  Features `json:"features"`  // capabilities the generator may use
	Strategy  string   `json:"strategy"`  // "software", "hardware" or "hardware+aes"
	Hardware  uint64   `json:"hardware"`  // identifiers built from hardware words
	Software  uint64   `json:"software"`  // identifiers built from the engine
	Fallbacks uint64   `json:"fallbacks"` // software draws caused by hardware failure
}

// Generator produces version 4 UUIDs. It uses RDRAND/RDSEED (whitened with
// one AESENC round when AES-NI is present) and falls back to its software
// [Engine] when no hardware source is usable or a draw fails.
//
// A Generator owns its engine state exclusively and is NOT safe for
// concurrent use: any call may take the software path, which mutates the
// engine. Use one Generator per goroutine, a [SyncGenerator], or [NewV4].
type Generator struct {
	software *SoftwareSource
	strategy strategy
	logger   *slog.Logger
	features Features
	retries  int
	hwPath   bool
	diag     DiagnosticInfo
}

// New returns a Generator whose software fallback is a [Mersenne64] seeded
// from operating system entropy. The process-wide CPU features are resolved
// once, here. The only error is an [*EntropyError] when no seed could be
// read; without a seed no safe generation is possible.
func New() (*Generator, error) {
	seed, err := RandomSeed()
	if err != nil {
		return nil, err
	}

	return NewWithSeed(seed), nil
}

// NewWithSeed returns a Generator whose software fallback is a [Mersenne64]
// seeded with seed. Combined with [Generator.SoftwareOnly] the output is
// reproducible byte for byte.
func NewWithSeed(seed uint64) *Generator {
	g, _ := NewWithEngine(NewMersenne64(seed))

	return g
}

// NewWithEngine returns a Generator using e, already seeded by the caller,
// as its software fallback. It returns [ErrInvalidEngine] (as an
// [*EngineError] where details are known) when e fails [ValidateEngine].
func NewWithEngine(e Engine) (*Generator, error) {
	sw, err := NewSoftwareSource(e)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		software: sw,
		features: DetectFeatures(),
		retries:  DefaultRetries,
	}
	g.resolve()

	return g, nil
}

// WithFeatures restricts the CPU features the generator may use to those in
// fs. Features the processor lacks can never be enabled.
func (g *Generator) WithFeatures(fs Features) *Generator {
	g.features = DetectFeatures().Intersect(fs)
	g.resolve()

	return g
}

// SoftwareOnly disables every hardware feature so that all identifiers come
// from the software engine.
func (g *Generator) SoftwareOnly() *Generator {
	return g.WithFeatures(Features{})
}

// WithRetries sets how many times each hardware instruction is attempted per
// word before falling back. Values below 1 are treated as 1.
func (g *Generator) WithRetries(n int) *Generator {
	g.retries = n
	g.resolve()

	return g
}

// WithLogger sets an optional [*slog.Logger]. When set, the generator logs
// its strategy selection and hardware fallbacks at debug level. A nil logger
// (the default) disables all logging.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	g.logger = logger
	g.logDebug("generator configured",
		"strategy", g.strategy.name(),
		"features", g.features.String(),
		"retries", g.retries,
	)

	return g
}

// Generate returns a new version 4 UUID. It never fails: hardware that is
// missing or transiently out of entropy is replaced by the software engine,
// and both paths stamp the same version and variant bits.
func (g *Generator) Generate() UUID {
	var b [Size]byte

	src := g.strategy.fill(&b)
	fixup(&b)
	g.record(src)

	return UUID(b)
}

// Diagnostics returns the configuration and path counters of g.
func (g *Generator) Diagnostics() DiagnosticInfo {
	d := g.diag
	d.Features = g.features
	d.Strategy = g.strategy.name()

	return d
}

// resolve selects the strategy for the current configuration.
func (g *Generator) resolve() {
	g.strategy = resolveStrategy(g.features, g.retries, g.software)
	g.hwPath = g.features.HardwareRandom()
	g.logDebug("strategy resolved", "strategy", g.strategy.name(), "features", g.features.String())
}

func (g *Generator) record(src Source) {
	switch src {
	case SourceHardware:
		g.diag.Hardware++
	default:
		g.diag.Software++
		if g.hwPath {
			g.diag.Fallbacks++
			g.logDebug("hardware draw failed, used software engine", "fallbacks", g.diag.Fallbacks)
		}
	}
}

// logDebug logs at debug level if a logger is configured.
func (g *Generator) logDebug(msg string, args ...any) {
	if g.logger != nil {
		g.logger.Debug(msg, args...)
	}
}
