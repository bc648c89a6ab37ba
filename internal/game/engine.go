// internal/game/engine.go
//
// Core engine for a single guessing session.
// Responsibilities:
//   - Draw the secret once from the injected RandomSource and range-check it.
//   - Normalize and parse each raw line into a guess.
//   - Compare guesses with the secret and emit one feedback signal per line.
//   - Track state transitions: awaiting_input → validating → comparing → won,
//     or awaiting_input → aborted when input fails.
//
// Notes:
//   - Invalid lines are retried forever; there is no attempt cap.
//   - Read failures are never retried.
package game

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Session holds the state of one guessing session.
type Session struct {
	secret        int
	state         State
	attempts      int // guesses that reached comparison
	rejected      int // lines discarded as invalid entries
	reportInvalid bool
	logger        zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithReportInvalid controls whether an invalid line emits SignalInvalidEntry
// (true) or is retried silently (false).
func WithReportInvalid(report bool) Option {
	return func(s *Session) { s.reportInvalid = report }
}

// WithLogger replaces the global logger for this session.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New starts a session, drawing the secret from src exactly once.
// A source error or a value outside [MinSecret, MaxSecret] is fatal.
func New(src RandomSource, opts ...Option) (*Session, error) {
	if src == nil {
		return nil, errors.New("game: nil random source")
	}
	secret, err := src.IntInRange(MinSecret, MaxSecret)
	if err != nil {
		return nil, fmt.Errorf("draw secret: %w", err)
	}
	if secret < MinSecret || secret > MaxSecret {
		return nil, fmt.Errorf("%w: got %d, want %d..%d", ErrSecretOutOfRange, secret, MinSecret, MaxSecret)
	}

	s := &Session{
		secret:        secret,
		state:         StateAwaitingInput,
		reportInvalid: true,
		logger:        log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger.Debug().Msg("session started")
	return s, nil
}

// Secret returns the value guesses are compared against.
func (s *Session) Secret() int { return s.secret }

// State returns the current loop state.
func (s *Session) State() State { return s.state }

// Attempts returns how many guesses were compared with the secret.
func (s *Session) Attempts() int { return s.attempts }

// Rejected returns how many lines were discarded as invalid entries.
func (s *Session) Rejected() int { return s.rejected }

// Run reads lines from r until a guess equals the secret or r fails.
// Each line produces at most one signal on out. A silent session emits
// nothing for invalid lines.
//
// Run returns OutcomeWon with a nil error, or OutcomeAborted with an error
// wrapping ErrInputClosed (end of input) or the read error.
func (s *Session) Run(r LineReader, out Sink) (Outcome, error) {
	if out == nil {
		out = SinkFunc(func(Signal) {})
	}
	if r == nil {
		return OutcomeAborted, errors.New("game: nil line reader")
	}
	if s.state.Terminal() {
		return s.outcome(), errors.New("game: session already finished")
	}

	for {
		raw, err := r.ReadLine()
		if err != nil {
			s.state = StateAborted
			s.logger.Warn().Err(err).Int("attempts", s.attempts).Msg("input failed, aborting session")
			s.logFinished(OutcomeAborted)
			if errors.Is(err, io.EOF) {
				return OutcomeAborted, fmt.Errorf("%w after %d guesses", ErrInputClosed, s.attempts)
			}
			return OutcomeAborted, fmt.Errorf("read guess: %w", err)
		}

		sig, ok := s.Step(raw)
		if !ok && !s.reportInvalid {
			continue
		}
		out.Signal(sig)

		if s.state == StateWon {
			s.logFinished(OutcomeWon)
			return OutcomeWon, nil
		}
	}
}

// Step validates one raw line and, when it parses, compares it with the
// secret. ok is false when the line was rejected; sig is then
// SignalInvalidEntry. Step on a finished session returns ("", false).
func (s *Session) Step(raw string) (sig Signal, ok bool) {
	if s.state.Terminal() {
		return "", false
	}

	s.state = StateValidating
	guess, err := ParseGuess(raw)
	if err != nil {
		s.rejected++
		s.state = StateAwaitingInput
		s.logger.Debug().Err(err).Msg("line rejected")
		return SignalInvalidEntry, false
	}

	s.state = StateComparing
	s.attempts++
	ord := Compare(guess, s.secret)
	s.logger.Debug().Int("guess", guess).Str("ordering", string(ord)).Int("attempt", s.attempts).Msg("guess compared")

	switch ord {
	case OrderingLess:
		s.state = StateAwaitingInput
		return SignalTooLow, true
	case OrderingGreater:
		s.state = StateAwaitingInput
		return SignalTooBig, true
	default:
		s.state = StateWon
		return SignalCorrect, true
	}
}

// logFinished writes the end-of-session summary.
func (s *Session) logFinished(o Outcome) {
	s.logger.Info().
		Str("outcome", string(o)).
		Int("attempts", s.attempts).
		Int("rejected", s.rejected).
		Msg("session finished")
}

// outcome maps a terminal state to its Outcome.
func (s *Session) outcome() Outcome {
	if s.state == StateWon {
		return OutcomeWon
	}
	return OutcomeAborted
}

// Normalize strips surrounding whitespace, including line terminators.
func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

// ParseGuess reads raw as a base-10 non-negative integer. A single leading
// '+' is accepted. Empty text, '-', non-digits and values that overflow int
// are rejected with an error wrapping ErrInvalidEntry.
func ParseGuess(raw string) (int, error) {
	text := Normalize(raw)
	if text == "" {
		return 0, fmt.Errorf("%w: empty line", ErrInvalidEntry)
	}
	digits := strings.TrimPrefix(text, "+")
	if digits == "" || digits[0] < '0' || digits[0] > '9' {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidEntry, text)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	return n, nil
}

// Compare orders guess against secret.
func Compare(guess, secret int) Ordering {
	switch {
	case guess < secret:
		return OrderingLess
	case guess > secret:
		return OrderingGreater
	default:
		return OrderingEqual
	}
}
