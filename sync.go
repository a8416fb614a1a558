package hwuuid

import (
	"sync"
)

// SyncGenerator serializes access to one [Generator] with a mutex, making it
// safe for concurrent use. Throughput is bounded by the lock; for highly
// concurrent callers prefer [NewV4] or one Generator per goroutine.
type SyncGenerator struct {
	mu  sync.Mutex
	gen *Generator
}

// NewSync wraps g. The caller must not use g directly afterwards.
func NewSync(g *Generator) *SyncGenerator {
	return &SyncGenerator{gen: g}
}

// Generate returns a new version 4 UUID. Safe for concurrent use.
func (s *SyncGenerator) Generate() UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gen.Generate()
}

// Diagnostics returns the diagnostics of the wrapped generator.
func (s *SyncGenerator) Diagnostics() DiagnosticInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gen.Diagnostics()
}

var pool = sync.Pool{
	New: func() any {
		g, err := New()
		if err != nil {
			panic(err)
		}

		return g
	},
}

// NewV4 returns a new version 4 UUID from a pool of OS-seeded generators,
// good for highly concurrent use. It panics only if the operating system
// cannot provide entropy to seed a new pooled generator.
func NewV4() UUID {
	g := pool.Get().(*Generator)
	defer pool.Put(g)

	return g.Generate()
}
