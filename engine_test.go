package hwuuid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slashdevops/hwuuid"
)

// The C++ standard requires the 10000th output of a default-constructed
// engine to equal these values.
func TestMersenne64TenThousandth(t *testing.T) {
	m := hwuuid.NewMersenne64(hwuuid.DefaultSeed)
	var v uint64
	for range 10000 {
		v = m.Uint64()
	}

	assert.Equal(t, uint64(9981545732273789042), v)
}

func TestMersenne32TenThousandth(t *testing.T) {
	m := hwuuid.NewMersenne32(hwuuid.DefaultSeed)
	var v uint64
	for range 10000 {
		v = m.Uint64()
	}

	assert.Equal(t, uint64(4123659995), v)
}

func TestMersenne64Seed42(t *testing.T) {
	m := hwuuid.NewMersenne64(42)

	assert.Equal(t, uint64(13930160852258120406), m.Uint64())
	assert.Equal(t, uint64(11788048577503494824), m.Uint64())
}

func TestMersenne64Reseed(t *testing.T) {
	m := hwuuid.NewMersenne64(42)
	for range 1000 {
		m.Uint64()
	}

	m.Seed(7)
	assert.Equal(t, uint64(13915952638675311015), m.Uint64())
}

func TestPCGDeterministic(t *testing.T) {
	a := hwuuid.NewPCG(99)
	b := hwuuid.NewPCG(99)
	c := hwuuid.NewPCG(100)

	var differs bool
	for range 100 {
		va, vb, vc := a.Uint64(), b.Uint64(), c.Uint64()
		require.Equal(t, va, vb)
		if va != vc {
			differs = true
		}
	}
	assert.True(t, differs, "different seeds should give different streams")

	first := hwuuid.NewPCG(5).Uint64()
	a.Seed(5)
	assert.Equal(t, first, a.Uint64())
}

// rangeEngine declares an arbitrary range; its output is irrelevant.
type rangeEngine struct {
	bits     int
	min, max uint64
}

func (r rangeEngine) Uint64() uint64 { return r.min }
func (r rangeEngine) Bits() int      { return r.bits }
func (r rangeEngine) Min() uint64    { return r.min }
func (r rangeEngine) Max() uint64    { return r.max }
func (r rangeEngine) Seed(uint64)    {}

func TestValidateEngine(t *testing.T) {
	tests := []struct {
		name    string
		engine  hwuuid.Engine
		wantErr bool
	}{
		{name: "mersenne64", engine: hwuuid.NewMersenne64(1)},
		{name: "mersenne32", engine: hwuuid.NewMersenne32(1)},
		{name: "pcg", engine: hwuuid.NewPCG(1)},
		{name: "8 bit full range", engine: rangeEngine{bits: 8, max: 0xff}},
		{name: "16 bit full range", engine: rangeEngine{bits: 16, max: 0xffff}},
		{name: "nil", engine: nil, wantErr: true},
		{name: "31 bit", engine: rangeEngine{bits: 31, max: 0x7fffffff}, wantErr: true},
		{name: "nonzero min", engine: rangeEngine{bits: 32, min: 1, max: 0xffffffff}, wantErr: true},
		{name: "short max", engine: rangeEngine{bits: 32, max: 0x7fffffff}, wantErr: true},
		{name: "zero width", engine: rangeEngine{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hwuuid.ValidateEngine(tt.engine)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, hwuuid.ErrInvalidEngine))
		})
	}
}

func TestNewWithEngineRejectsInvalid(t *testing.T) {
	g, err := hwuuid.NewWithEngine(rangeEngine{bits: 64, max: 1 << 62})

	assert.Nil(t, g)
	var engErr *hwuuid.EngineError
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, 64, engErr.Bits)
}
