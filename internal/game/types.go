// internal/game/types.go
//
// Core type definitions for the guessing session.
// Defines:
//   - Ordering: three-way result of comparing a guess with the secret.
//   - Signal: the feedback a single iteration emits.
//   - Outcome/State: terminal result and loop state of a session.
//   - RandomSource, LineReader, Sink: collaborators the session consumes.

package game

import "errors"

// Secret bounds (both inclusive).
const (
	MinSecret = 1
	MaxSecret = 100
)

// Ordering is the result of comparing a guess against the secret.
// Exactly one of OrderingLess, OrderingGreater, OrderingEqual.
type Ordering string

const (
	OrderingLess    Ordering = "less"
	OrderingGreater Ordering = "greater"
	OrderingEqual   Ordering = "equal"
)

// Signal is the feedback emitted for one iteration.
type Signal string

const (
	SignalInvalidEntry Signal = "invalid_entry"
	SignalTooLow       Signal = "too_low"
	SignalTooBig       Signal = "too_big"
	SignalCorrect      Signal = "correct"
)

// Outcome is the terminal result of a session.
type Outcome string

const (
	OutcomeWon     Outcome = "won"
	OutcomeAborted Outcome = "aborted"
)

// State is the position of a session in its loop.
type State string

const (
	StateAwaitingInput State = "awaiting_input"
	StateValidating    State = "validating"
	StateComparing     State = "comparing"
	StateWon           State = "won"
	StateAborted       State = "aborted"
)

// Terminal reports whether no further input will be read in this state.
func (s State) Terminal() bool { return s == StateWon || s == StateAborted }

var (
	// ErrInvalidEntry marks a line that could not be read as a guess.
	// It only discards the current line.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrInputClosed means the input stream ended before the secret was found.
	ErrInputClosed = errors.New("input closed")

	// ErrSecretOutOfRange means the random source broke its contract.
	ErrSecretOutOfRange = errors.New("secret out of range")
)

// RandomSource produces a uniformly distributed integer in [low, high].
type RandomSource interface {
	IntInRange(low, high int) (int, error)
}

// LineReader reads one line of user input. The returned text may still
// carry its line terminator. Any error ends the session.
type LineReader interface {
	ReadLine() (string, error)
}

// Sink receives the feedback signal for each iteration.
type Sink interface {
	Signal(s Signal)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(Signal)

// Signal calls f(s).
func (f SinkFunc) Signal(s Signal) { f(s) }
