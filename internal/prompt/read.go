package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

var (
	// ErrInterrupted is returned by a LineReader when the user pressed Ctrl+C.
	ErrInterrupted = errors.New("interrupted")

	// ErrEndOfInput is returned by a LineReader when the user pressed Ctrl+D
	// on an empty line.
	ErrEndOfInput = errors.New("end of input")

	// ErrAborted reports that no message was entered.
	ErrAborted = errors.New("commit message entry aborted")
)

// DefaultPrompt is shown before the message.
const DefaultPrompt = "❯ "

// LineReader reads one line of input after showing prompt.
type LineReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// ReadOptions configures ReadMessage.
type ReadOptions struct {
	// Prompt defaults to DefaultPrompt.
	Prompt string

	// ErrWriter receives transport errors. Defaults to io.Discard.
	ErrWriter io.Writer

	Log *slog.Logger
}

// ReadMessage reads a single commit message from r.
//
// The line is returned exactly as typed.
// Interrupts and end of input return ErrAborted.
// Any other read failure is reported to ErrWriter
// and also returns ErrAborted, wrapping the failure.
func ReadMessage(ctx context.Context, r LineReader, opts ReadOptions) (string, error) {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	errWriter := opts.ErrWriter
	if errWriter == nil {
		errWriter = io.Discard
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	line, err := r.ReadLine(ctx, prompt)
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, ErrInterrupted), errors.Is(err, ErrEndOfInput):
		log.Debug("Message entry stopped", "reason", err)
		return "", ErrAborted
	default:
		fmt.Fprintln(errWriter, "Error:", err)
		return "", fmt.Errorf("%w: %w", ErrAborted, err)
	}
}
