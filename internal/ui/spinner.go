package ui

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// Spinner wraps briandowns/spinner with TTY awareness
type Spinner struct {
	s       *spinner.Spinner
	enabled bool
}

// NewSpinner creates a spinner writing to w.
// It only animates when enabled is set and w is a terminal.
func NewSpinner(w io.Writer, message string, enabled bool) *Spinner {
	if !enabled || !IsTerminal(w) {
		return &Spinner{enabled: false}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	return &Spinner{s: s, enabled: true}
}

// Enabled reports whether the spinner animates.
func (sp *Spinner) Enabled() bool {
	return sp.enabled
}

// Start begins the spinner animation
func (sp *Spinner) Start() {
	if sp.enabled && sp.s != nil {
		sp.s.Start()
	}
}

// Stop ends the spinner animation
func (sp *Spinner) Stop() {
	if sp.enabled && sp.s != nil {
		sp.s.Stop()
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
