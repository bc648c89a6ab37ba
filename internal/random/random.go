// internal/random/random.go
//
// Random sources for drawing a session secret.
//
//   - Crypto:   uniform over [low, high] using crypto/rand.
//   - Sequence: replays fixed values in order (tests, --secret).
//   - Func:     adapts a plain function.
//
// All sources satisfy game.RandomSource.

package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"
)

// ErrEmptyRange is returned when high < low.
var ErrEmptyRange = errors.New("random: empty range")

// ErrExhausted is returned by a Sequence with no values left.
var ErrExhausted = errors.New("random: sequence exhausted")

// Crypto draws cryptographically random values.
type Crypto struct {
	// Reader overrides the entropy source; nil means crypto/rand.Reader.
	Reader io.Reader
}

// NewCrypto returns a Crypto backed by crypto/rand.Reader.
func NewCrypto() *Crypto { return &Crypto{} }

// IntInRange returns a uniformly distributed value in [low, high].
func (c *Crypto) IntInRange(low, high int) (int, error) {
	if high < low {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrEmptyRange, low, high)
	}
	r := c.Reader
	if r == nil {
		r = rand.Reader
	}
	span := new(big.Int).Sub(big.NewInt(int64(high)), big.NewInt(int64(low)))
	span.Add(span, big.NewInt(1))
	n, err := rand.Int(r, span)
	if err != nil {
		return 0, fmt.Errorf("random: read entropy: %w", err)
	}
	return low + int(n.Int64()), nil
}

// Sequence returns its values in order, one per call, ignoring the range.
// Range checking is left to the caller.
type Sequence struct {
	mu     sync.Mutex
	values []int
	calls  int
}

// NewSequence returns a Sequence over values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: append([]int(nil), values...)}
}

// IntInRange returns the next value in the sequence.
func (s *Sequence) IntInRange(low, high int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if len(s.values) == 0 {
		return 0, ErrExhausted
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v, nil
}

// Calls reports how many values have been requested.
func (s *Sequence) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Func adapts a function to a random source.
type Func func(low, high int) (int, error)

// IntInRange calls f(low, high).
func (f Func) IntInRange(low, high int) (int, error) { return f(low, high) }
