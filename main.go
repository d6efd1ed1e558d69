package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samzong/gcm/cmd"
	"github.com/samzong/gcm/internal/prompt"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd.SetContext(ctx)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case ctx.Err() != nil:
		fmt.Fprintln(os.Stderr, "\nOperation cancelled")
		return 130 // Standard exit code for SIGINT
	case errors.Is(err, prompt.ErrNotTerminal):
		// Already reported by the prompt.
		return 1
	case errors.Is(err, prompt.ErrAborted):
		return 130
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
}
