package typeid

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"
)

// Clock supplies the wall-clock reading embedded in generated values.
type Clock interface {
	Now() time.Time
}

// RandomSource supplies cryptographically secure random bytes. It must be
// safe for concurrent use; the production implementation is backed by
// crypto/rand.
type RandomSource interface {
	Read(p []byte) error
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// cryptoSource reads from crypto/rand with a bounded retry on transient
// failure.
type cryptoSource struct {
	retries int
}

func (s cryptoSource) Read(p []byte) error {
	retries := s.retries
	if retries < 1 {
		retries = 3
	}
	var lastErr error
	for i := 0; i < retries; i++ {
		if _, err := rand.Read(p); err == nil {
			return nil
		} else {
			lastErr = err
			if i < retries-1 {
				time.Sleep(time.Microsecond * time.Duration(1<<i)) // exponential backoff
			}
		}
	}
	return fmt.Errorf("%w: %w", ErrRandomGeneration, lastErr)
}

// Generator produces 16-byte values in the UUIDv7 layout: a 48-bit
// big-endian Unix millisecond timestamp followed by the version nibble,
// the variant bits and 74 bits of randomness.
//
// A Generator holds no cross-call state: there is no counter and no
// same-millisecond sequencing, so two values produced within one
// millisecond order only by their random bits. Concurrent calls are
// independent and need no locking.
type Generator struct {
	clock  Clock
	random RandomSource
}

// NewGenerator returns a generator backed by the system clock and
// crypto/rand.
func NewGenerator() *Generator {
	return NewGeneratorWith(systemClock{}, cryptoSource{retries: 3})
}

// NewGeneratorWith returns a generator using the given clock and random
// source. Passing deterministic implementations makes generation
// reproducible for tests. A nil clock or source falls back to the
// production implementation.
func NewGeneratorWith(clock Clock, random RandomSource) *Generator {
	if clock == nil {
		clock = systemClock{}
	}
	if random == nil {
		random = cryptoSource{retries: 3}
	}
	return &Generator{clock: clock, random: random}
}

// NewValue produces a fresh 16-byte value.
//
// Layout per RFC 9562 Section 5.7:
//   - bytes 0..5:  48-bit Unix timestamp in milliseconds, big-endian
//   - byte 6:      version nibble 0111 in the high bits, 4 random bits low
//   - byte 7:      8 random bits
//   - byte 8:      variant bits 10 in the top 2 bits, 6 random bits low
//   - bytes 9..15: 56 random bits
func (g *Generator) NewValue() ([16]byte, error) {
	var v [16]byte

	ms := g.clock.Now().UnixMilli()
	if ms < 0 {
		ms = 0
	}
	t := uint64(ms) // #nosec G115

	v[0] = byte(t >> 40)
	v[1] = byte(t >> 32)
	v[2] = byte(t >> 24)
	v[3] = byte(t >> 16)
	v[4] = byte(t >> 8)
	v[5] = byte(t)

	var r [10]byte
	if err := g.random.Read(r[:]); err != nil {
		return [16]byte{}, err
	}

	v[6] = (r[0] & 0x0F) | 0x70
	v[7] = r[1]
	v[8] = (r[2] & 0x3F) | 0x80
	copy(v[9:], r[3:])

	return v, nil
}

// New generates a TypeID with the given prefix and a fresh value.
func (g *Generator) New(prefix string) (TypeID, error) {
	if err := validatePrefix(prefix); err != nil {
		return Nil, err
	}
	value, err := g.NewValue()
	if err != nil {
		return Nil, err
	}
	return TypeID{prefix: prefix, value: value}, nil
}

// Default generator instance used by the package-level constructors.
var (
	defaultGenerator *Generator
	initOnce         sync.Once
)

func getDefaultGenerator() *Generator {
	initOnce.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}
