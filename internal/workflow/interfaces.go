// Package workflow provides the commit workflow orchestration logic.
package workflow

import (
	"context"

	"github.com/samzong/gcm/internal/commit"
)

// MessageReader abstracts the interactive line editor for testability.
type MessageReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Committer abstracts commit creation for testability.
type Committer interface {
	Create(ctx context.Context, message string, opts commit.Options) (commit.Result, error)
}

// EngineCommitter creates commits with commit.Create.
type EngineCommitter struct {
	Engine commit.Engine
}

func (c EngineCommitter) Create(ctx context.Context, message string, opts commit.Options) (commit.Result, error) {
	return commit.Create(ctx, c.Engine, message, opts)
}
