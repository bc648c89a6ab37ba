// Package console connects a guessing session to a terminal: it reads
// lines from the user and prints styled feedback.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/guessing-game/assets"
	"github.com/robalobadob/guessing-game/internal/game"
)

// Printer renders session feedback to w. It satisfies game.Sink.
type Printer struct {
	w     io.Writer
	msgs  assets.Messages
	color bool

	title   lipgloss.Style
	hint    lipgloss.Style
	warn    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// NewPrinter builds a Printer. When color is false text is written plain;
// otherwise lipgloss decides from w whether the terminal supports color.
func NewPrinter(w io.Writer, msgs assets.Messages, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		msgs:    msgs,
		color:   color,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		hint:    r.NewStyle().Faint(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("11")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Welcome prints the greeting and the first prompt.
func (p *Printer) Welcome() {
	p.println(p.title, p.msgs.Welcome)
	p.println(p.hint, p.msgs.Prompt)
}

// Signal prints the message for one iteration's outcome.
func (p *Printer) Signal(s game.Signal) {
	switch s {
	case game.SignalInvalidEntry:
		p.println(p.failure, p.msgs.InvalidEntry)
	case game.SignalTooLow:
		p.println(p.warn, p.msgs.TooLow)
	case game.SignalTooBig:
		p.println(p.warn, p.msgs.TooBig)
	case game.SignalCorrect:
		p.println(p.success, p.msgs.Correct)
	}
}

// Aborted prints the message shown when input ends before a win.
func (p *Printer) Aborted() {
	p.println(p.failure, p.msgs.Aborted)
}

func (p *Printer) println(style lipgloss.Style, text string) {
	if text == "" {
		return
	}
	if p.color {
		text = style.Render(text)
	}
	fmt.Fprintln(p.w, text)
}
