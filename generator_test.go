package typeid

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRandom hands out a repeating byte pattern, making generated values
// fully deterministic together with a fixed clock.
type fixedRandom struct {
	pattern []byte
}

func (r fixedRandom) Read(p []byte) error {
	for i := range p {
		p[i] = r.pattern[i%len(r.pattern)]
	}
	return nil
}

// failingRandom always fails, to exercise error propagation.
type failingRandom struct{ err error }

func (r failingRandom) Read(p []byte) error { return r.err }

// steppingClock advances one millisecond per reading.
type steppingClock struct {
	mu sync.Mutex
	ms int64
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ms++
	return time.UnixMilli(c.ms)
}

func TestGenerator_Layout(t *testing.T) {
	at := time.UnixMilli(0x0123456789AB)
	gen := NewGeneratorWith(ClockFunc(func() time.Time { return at }), fixedRandom{pattern: []byte{0xFF}})

	v, err := gen.NewValue()
	require.NoError(t, err)

	// 48-bit big-endian millisecond timestamp.
	assert.Equal(t, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB}, v[0:6])

	// Version nibble 0111 over 4 random bits.
	assert.Equal(t, byte(0x7F), v[6])
	// Untouched random byte.
	assert.Equal(t, byte(0xFF), v[7])
	// Variant bits 10 over 6 random bits.
	assert.Equal(t, byte(0xBF), v[8])
	// Remaining 7 random bytes pass through unmodified.
	for i := 9; i < 16; i++ {
		assert.Equal(t, byte(0xFF), v[i])
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	at := time.UnixMilli(1690000000000)
	newGen := func() *Generator {
		return NewGeneratorWith(ClockFunc(func() time.Time { return at }), fixedRandom{pattern: []byte{0xAA, 0x55}})
	}

	a, err := newGen().NewValue()
	require.NoError(t, err)
	b, err := newGen().NewValue()
	require.NoError(t, err)
	assert.Equal(t, a, b, "same clock and random source must reproduce the same value")
}

func TestGenerator_VersionAndVariant(t *testing.T) {
	gen := NewGenerator()
	for i := 0; i < 100; i++ {
		v, err := gen.NewValue()
		require.NoError(t, err)
		assert.Equal(t, byte(7), v[6]>>4, "version nibble must be 0111")
		assert.Equal(t, byte(0x80), v[8]&0xC0, "variant bits must be 10")
	}
}

func TestGenerator_Distinct(t *testing.T) {
	gen := NewGenerator()
	seen := make(map[[16]byte]bool, 100)
	for i := 0; i < 100; i++ {
		v, err := gen.NewValue()
		require.NoError(t, err)
		require.False(t, seen[v], "generated values must be distinct")
		seen[v] = true
	}
}

func TestGenerator_TimestampEmbedding(t *testing.T) {
	at := time.UnixMilli(1690000000000)
	gen := NewGeneratorWith(ClockFunc(func() time.Time { return at }), nil)

	tid, err := gen.New("user")
	require.NoError(t, err)
	assert.Equal(t, at.UnixMilli(), tid.Timestamp().UnixMilli())
	assert.True(t, tid.IsValidV7())
}

func TestGenerator_RandomFailure(t *testing.T) {
	wantErr := errors.New("entropy pool on fire")
	gen := NewGeneratorWith(nil, failingRandom{err: wantErr})

	_, err := gen.NewValue()
	assert.ErrorIs(t, err, wantErr)

	_, err = gen.New("user")
	assert.ErrorIs(t, err, wantErr)
}

func TestGenerator_NegativeClock(t *testing.T) {
	gen := NewGeneratorWith(ClockFunc(func() time.Time { return time.UnixMilli(-5) }), nil)

	v, err := gen.NewValue()
	require.NoError(t, err)
	// Pre-epoch clocks clamp the timestamp to zero rather than wrapping.
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0}, v[0:6])
}

func TestGenerator_SortsAcrossMilliseconds(t *testing.T) {
	clock := &steppingClock{ms: 1690000000000}
	gen := NewGeneratorWith(clock, nil)

	var prev TypeID
	for i := 0; i < 50; i++ {
		tid, err := gen.New("order")
		require.NoError(t, err)
		if i > 0 {
			assert.Equal(t, 1, tid.Compare(prev), "later millisecond must sort after earlier")
		}
		prev = tid
	}
}

func TestGenerator_Concurrent(t *testing.T) {
	const goroutines = 10
	const perGoroutine = 100

	gen := NewGenerator()
	var mu sync.Mutex
	seen := make(map[[16]byte]bool, goroutines*perGoroutine)
	var wg sync.WaitGroup

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				v, err := gen.NewValue()
				if err != nil {
					t.Errorf("NewValue failed: %v", err)
					return
				}
				mu.Lock()
				if seen[v] {
					t.Errorf("duplicate value generated concurrently: %x", v)
				}
				seen[v] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
}

func BenchmarkGeneratorNewValue(b *testing.B) {
	gen := NewGenerator()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gen.NewValue()
	}
}
