package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/slashdevops/hwuuid"
	"github.com/slashdevops/hwuuid/internal/version"
)

const applicationName = "hwuuid"

func main() {
	// Generation flags
	count := flag.Int("n", 1, "Number of UUIDs to generate")
	seed := flag.Uint64("seed", 0, "Seed the software engine explicitly (reproducible with -software)")
	software := flag.Bool("software", false, "Disable hardware instructions and use the software engine only")
	engine := flag.String("engine", "mt64", "Software engine: mt64, mt32 or pcg")

	// Output options
	upper := flag.Bool("upper", false, "Print UUIDs in uppercase")
	jsonOutput := flag.Bool("json", false, "Output result as JSON")
	diagnostics := flag.Bool("diagnostics", false, "Show which generation paths were taken")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn or error")

	// Actions
	features := flag.Bool("features", false, "Show detected CPU features and exit")
	bench := flag.Int("bench", 0, "Generate N UUIDs without printing them and report throughput")

	// Info flags
	versionFlag := flag.Bool("version", false, "Show version information")
	versionLongFlag := flag.Bool("version.long", false, "Show detailed version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "hwuuid - Generate RFC 4122 version 4 UUIDs using CPU random instructions\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n  hwuuid [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  hwuuid                                        Generate one UUID\n")
		fmt.Fprintf(os.Stderr, "  hwuuid -n 10 -upper                           Ten uppercase UUIDs\n")
		fmt.Fprintf(os.Stderr, "  hwuuid -seed 42 -software                     Reproducible output\n")
		fmt.Fprintf(os.Stderr, "  hwuuid -n 5 -json -diagnostics                JSON with path counters\n")
		fmt.Fprintf(os.Stderr, "  hwuuid -features                              Show CPU features\n")
		fmt.Fprintf(os.Stderr, "  hwuuid -bench 1000000                         Measure throughput\n")
		fmt.Fprintf(os.Stderr, "  hwuuid -version                               Show version\n")
		fmt.Fprintf(os.Stderr, "  hwuuid -version.long                          Show detailed version\n")
	}

	flag.Parse()

	// Handle version flag
	if *versionFlag {
		fmt.Println(versionString())
		os.Exit(0)
	}

	// Handle detailed version flag
	if *versionLongFlag {
		fmt.Print(versionLongString())
		os.Exit(0)
	}

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *features {
		printFeatures(os.Stdout, hwuuid.DetectFeatures(), *jsonOutput)
		return
	}

	if *count < 0 || *bench < 0 {
		slog.Error("counts must not be negative", "n", *count, "bench", *bench)
		os.Exit(1)
	}

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	gen, err := buildGenerator(*engine, *seed, seedSet)
	if err != nil {
		slog.Error("failed to create generator", "error", err)
		os.Exit(1)
	}
	gen.WithLogger(logger)
	if *software {
		gen.SoftwareOnly()
	}

	if *bench > 0 {
		res := runBench(gen, *bench)
		if *jsonOutput {
			printJSON(os.Stdout, res)
			return
		}
		fmt.Println(res.summary())
		return
	}

	ids := make([]string, 0, *count)
	for range *count {
		s := gen.Generate().String()
		if *upper {
			s = strings.ToUpper(s)
		}
		ids = append(ids, s)
	}

	// Output
	if *jsonOutput {
		output := map[string]any{
			"ids":   ids,
			"count": len(ids),
		}
		if *diagnostics {
			output["diagnostics"] = gen.Diagnostics()
		}
		printJSON(os.Stdout, output)
		return
	}

	for _, id := range ids {
		fmt.Println(id)
	}

	if *diagnostics {
		printDiagnostics(os.Stderr, gen.Diagnostics())
	}
}

// buildGenerator creates a generator with the named engine. Without an
// explicit seed the engine is seeded from operating system entropy.
func buildGenerator(engine string, seed uint64, seedSet bool) (*hwuuid.Generator, error) {
	if engine == "mt64" && !seedSet {
		return hwuuid.New()
	}

	if !seedSet {
		s, err := hwuuid.RandomSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}

	e, err := newEngine(engine, seed)
	if err != nil {
		return nil, err
	}

	return hwuuid.NewWithEngine(e)
}

func newEngine(name string, seed uint64) (hwuuid.Engine, error) {
	switch name {
	case "mt64":
		return hwuuid.NewMersenne64(seed), nil
	case "mt32":
		return hwuuid.NewMersenne32(seed), nil
	case "pcg":
		return hwuuid.NewPCG(seed), nil
	default:
		return nil, fmt.Errorf("unsupported engine %q; valid values are mt64, mt32, pcg", name)
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unsupported log level %q; valid values are debug, info, warn, error", s)
	}

	return level, nil
}

// benchResult is the outcome of a throughput run.
type benchResult struct {
	Count       int                   `json:"count"`
	Elapsed     time.Duration         `json:"elapsedNanos"`
	PerSecond   float64               `json:"perSecond"`
	Diagnostics hwuuid.DiagnosticInfo `json:"diagnostics"`
}

func (r benchResult) summary() string {
	return fmt.Sprintf("generated %s UUIDs in %s (%s/s, strategy %s)",
		humanize.Comma(int64(r.Count)),
		r.Elapsed.Round(time.Microsecond),
		humanize.CommafWithDigits(r.PerSecond, 0),
		r.Diagnostics.Strategy,
	)
}

func runBench(gen *hwuuid.Generator, n int) benchResult {
	start := time.Now()
	for range n {
		_ = gen.Generate()
	}
	elapsed := time.Since(start)

	res := benchResult{
		Count:       n,
		Elapsed:     elapsed,
		Diagnostics: gen.Diagnostics(),
	}
	if elapsed > 0 {
		res.PerSecond = float64(n) / elapsed.Seconds()
	}

	return res
}

func printFeatures(w io.Writer, fs hwuuid.Features, jsonOut bool) {
	if jsonOut {
		printJSON(w, fs)
		return
	}

	fmt.Fprintf(w, "rdrand: %v\n", fs.RDRAND)
	fmt.Fprintf(w, "rdseed: %v\n", fs.RDSEED)
	fmt.Fprintf(w, "aes:    %v\n", fs.AES)
}

func printDiagnostics(w io.Writer, d hwuuid.DiagnosticInfo) {
	fmt.Fprintln(w, "\nDiagnostics:")
	fmt.Fprintf(w, "  Strategy:  %s\n", d.Strategy)
	fmt.Fprintf(w, "  Features:  %s\n", d.Features)
	fmt.Fprintf(w, "  Hardware:  %s\n", humanize.Comma(int64(d.Hardware)))
	fmt.Fprintf(w, "  Software:  %s\n", humanize.Comma(int64(d.Software)))
	if d.Fallbacks > 0 {
		fmt.Fprintf(w, "  Fallbacks: %s\n", humanize.Comma(int64(d.Fallbacks)))
	}
}

func versionString() string {
	if version.Version == "0.0.0" {
		if info, ok := debug.ReadBuildInfo(); ok {
			return fmt.Sprintf("%s version: %s", applicationName, info.Main.Version)
		}
	}

	return fmt.Sprintf("%s version: %s", applicationName, version.Version)
}

func versionLongString() string {
	var sb strings.Builder

	if version.Version == "0.0.0" {
		if info, ok := debug.ReadBuildInfo(); ok {
			fmt.Fprintf(&sb, "%s version: %s, ", applicationName, info.Main.Version)
			fmt.Fprintf(&sb, "Git commit: %s, ", info.Main.Sum)
			fmt.Fprintf(&sb, "Go version: %s\n", info.GoVersion)

			return sb.String()
		}
	}

	fmt.Fprintf(&sb, "%s version: %s, ", applicationName, version.Version)
	fmt.Fprintf(&sb, "Build date: %s, ", version.BuildDate)
	fmt.Fprintf(&sb, "Build user: %s, ", version.BuildUser)
	fmt.Fprintf(&sb, "Git commit: %s, ", version.GitCommit)
	fmt.Fprintf(&sb, "Git branch: %s, ", version.GitBranch)
	fmt.Fprintf(&sb, "Go version: %s\n", version.GoVersion)

	return sb.String()
}

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		slog.Error("failed to encode JSON", "error", err)
		os.Exit(1)
	}
}
