// Package git is the version-control engine used to create commits.
// It drives the git command line through plumbing commands only,
// so hooks never run and the index and working tree are never touched.
package git

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/samzong/gcm/internal/gitcmd"
	"github.com/samzong/gcm/internal/gitutil"
	"github.com/samzong/gcm/internal/stringsutil"
)

// Options configures a Client.
type Options struct {
	// Logger receives a debug line for every git invocation.
	Logger *slog.Logger

	// Env is appended to the environment of every git invocation.
	Env []string
}

// Client opens repositories and reads global git configuration.
type Client struct {
	runner gitcmd.Runner
	log    *slog.Logger
}

// NewClient builds a Client.
func NewClient(opts Options) *Client {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Client{
		runner: gitcmd.Runner{Env: opts.Env, Logger: log},
		log:    log,
	}
}

// Open opens the repository rooted at, or containing, dir.
func (c *Client) Open(ctx context.Context, dir string) (*Repository, error) {
	runner := c.runner.WithDir(dir)
	result, err := runner.Run(ctx, "rev-parse", "--show-toplevel", "--absolute-git-dir")
	if err != nil {
		return nil, gitutil.WrapGitError(ErrNotARepository, "rev-parse "+dir, result, err)
	}

	lines := stringsutil.SplitNonEmpty(result.StdoutString(true), "\n")
	if len(lines) != 2 {
		return nil, fmt.Errorf("%w: unexpected rev-parse output: %q", ErrNotARepository, result.StdoutString(true))
	}

	root, gitDir := filepath.Clean(lines[0]), filepath.Clean(lines[1])
	c.log.Debug("Opened repository", "root", root, "gitDir", gitDir)
	return &Repository{
		root:   root,
		gitDir: gitDir,
		runner: runner.WithDir(root),
		log:    c.log,
	}, nil
}

// GlobalConfigString reads key from the global git configuration
// ($HOME/.gitconfig and $XDG_CONFIG_HOME/git/config),
// following include and includeIf directives.
// Unset and empty values are both reported as ErrConfigKeyMissing.
func (c *Client) GlobalConfigString(ctx context.Context, key string) (string, error) {
	result, err := c.runner.Run(ctx, "config", "--global", "--includes", "--get", key)
	if err != nil {
		// git config exits with 1 when the key is not set.
		if gitcmd.ExitCode(err) == 1 {
			return "", fmt.Errorf("%w: %s is not set", ErrConfigKeyMissing, key)
		}
		return "", gitutil.WrapGitError(ErrConfigKeyMissing, "config "+key, result, err)
	}

	value := result.StdoutString(true)
	if value == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrConfigKeyMissing, key)
	}
	return value, nil
}
