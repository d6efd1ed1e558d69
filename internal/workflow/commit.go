package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/samzong/gcm/internal/commit"
	"github.com/samzong/gcm/internal/prompt"
	"github.com/samzong/gcm/internal/stringsutil"
	"github.com/samzong/gcm/internal/ui"
)

type CommitOptions struct {
	// Message is used instead of prompting when MessageSet is true.
	// It may be empty.
	Message    string
	MessageSet bool

	Prompt    string
	DryRun    bool
	Spinner   bool
	ErrWriter io.Writer
	OutWriter io.Writer
	Log       *slog.Logger
}

type CommitFlow struct {
	reader    MessageReader
	committer Committer
	opts      CommitOptions
	log       *slog.Logger
}

func NewCommitFlow(reader MessageReader, committer Committer, opts CommitOptions) *CommitFlow {
	if opts.ErrWriter == nil {
		opts.ErrWriter = io.Discard
	}
	if opts.OutWriter == nil {
		opts.OutWriter = io.Discard
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &CommitFlow{
		reader:    reader,
		committer: committer,
		opts:      opts,
		log:       log,
	}
}

// Run reads the commit message and commits the staged changes with it.
// An aborted prompt returns an error matching prompt.ErrAborted
// and nothing is committed.
func (f *CommitFlow) Run(ctx context.Context) error {
	message, err := f.readMessage(ctx)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(f.opts.ErrWriter, "Commit aborted, nothing was committed")
		}
		return err
	}

	sp := ui.NewSpinner(f.opts.ErrWriter, "Creating commit...", f.opts.Spinner)
	sp.Start()
	result, err := f.committer.Create(ctx, message, commit.Options{
		DryRun: f.opts.DryRun,
		Log:    f.log,
	})
	sp.Stop()
	if err != nil {
		return err
	}

	f.report(result, message)
	return nil
}

func (f *CommitFlow) readMessage(ctx context.Context) (string, error) {
	if f.opts.MessageSet {
		f.log.Debug("Using message from flag")
		return f.opts.Message, nil
	}
	return prompt.ReadMessage(ctx, f.reader, prompt.ReadOptions{
		Prompt:    f.opts.Prompt,
		ErrWriter: f.opts.ErrWriter,
		Log:       f.log,
	})
}

func (f *CommitFlow) report(result commit.Result, message string) {
	subject := stringsutil.FirstLine(message)
	branch := result.Ref.Branch()

	if result.DryRun {
		fmt.Fprintln(f.opts.ErrWriter, "Dry run mode, no actual commit")
		fmt.Fprintf(f.opts.OutWriter, "[%s (dry run)] %s\n", branch, subject)
		fmt.Fprintf(f.opts.OutWriter, "tree %s\n", result.Tree)
		fmt.Fprintf(f.opts.OutWriter, "parent %s\n", result.Parent)
		fmt.Fprintf(f.opts.OutWriter, "author %s <%s>\n", result.Identity.Name, result.Identity.Email)
		return
	}

	fmt.Fprintf(f.opts.OutWriter, "[%s %s] %s\n", branch, result.Hash.Short(), subject)
}
