package git

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samzong/gcm/internal/gitcmd"
	"github.com/samzong/gcm/internal/gitutil"
	"github.com/samzong/gcm/internal/stringsutil"
)

// Repository is a non-bare git repository opened by Client.Open.
type Repository struct {
	root   string
	gitDir string
	runner gitcmd.Runner
	log    *slog.Logger
}

// Root returns the top-level directory of the worktree.
func (r *Repository) Root() string { return r.root }

// GitDir returns the absolute path of the .git directory.
func (r *Repository) GitDir() string { return r.gitDir }

// Index returns a handle to the staging index of the worktree.
func (r *Repository) Index(ctx context.Context) (Index, error) {
	result, err := r.runner.Run(ctx, "rev-parse", "--git-path", "index")
	if err != nil {
		return Index{}, gitutil.WrapGitError(ErrIndexUnavailable, "rev-parse --git-path index", result, err)
	}

	path := result.StdoutString(true)
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.root, path)
	}

	// A missing index is an empty one; anything else must be a regular file.
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Index{}, fmt.Errorf("%w: %w", ErrIndexUnavailable, err)
	case !info.Mode().IsRegular():
		return Index{}, fmt.Errorf("%w: %s is not a regular file", ErrIndexUnavailable, path)
	}

	return Index{Path: path}, nil
}

// WriteTree writes the contents of the index as a tree object
// and returns its hash. The index itself is not modified.
func (r *Repository) WriteTree(ctx context.Context, idx Index) (Hash, error) {
	runner := r.runner
	if idx.Path != "" {
		runner = runner.WithEnv("GIT_INDEX_FILE=" + idx.Path)
	}

	result, err := runner.Run(ctx, "write-tree")
	if err != nil {
		return ZeroHash, gitutil.WrapGitError(ErrTreeWriteFailed, "write-tree", result, err)
	}
	return Hash(result.StdoutString(true)), nil
}

// ResolveRef resolves the symbolic reference name to its target.
// A detached HEAD resolves to itself.
func (r *Repository) ResolveRef(ctx context.Context, name string) (Ref, error) {
	result, err := r.runner.Run(ctx, "symbolic-ref", "-q", name)
	if err != nil {
		// symbolic-ref -q exits with 1 for a ref that is not symbolic.
		if gitcmd.ExitCode(err) == 1 {
			return Ref{Name: name}, nil
		}
		return Ref{}, gitutil.WrapGitError(ErrHeadUnresolved, "symbolic-ref "+name, result, err)
	}
	return Ref{Name: result.StdoutString(true)}, nil
}

// PeelToCommit returns the commit that ref points at.
func (r *Repository) PeelToCommit(ctx context.Context, ref Ref) (Hash, error) {
	result, err := r.runner.Run(ctx, "rev-parse", "--verify", "-q", ref.Name+"^{commit}")
	if err != nil {
		return ZeroHash, gitutil.WrapGitError(ErrNotACommit, ref.Name+" has no commits yet", result, err)
	}
	return Hash(result.StdoutString(true)), nil
}

// CreateCommit creates a commit object from req
// and moves req.Ref to it.
//
// The ref update is a compare-and-swap against the first parent,
// so a ref that moved in the meantime is left alone.
func (r *Repository) CreateCommit(ctx context.Context, req CommitRequest) (Hash, error) {
	if req.Ref.Name == "" {
		return ZeroHash, fmt.Errorf("%w: no ref to update", ErrCommitCreationFailed)
	}
	if req.Tree == ZeroHash {
		return ZeroHash, fmt.Errorf("%w: no tree", ErrCommitCreationFailed)
	}
	if req.Committer == nil {
		req.Committer = req.Author
	}

	args := make([]string, 0, 2+2*len(req.Parents))
	args = append(args, "commit-tree")
	for _, parent := range req.Parents {
		args = append(args, "-p", parent.String())
	}
	args = append(args, req.Tree.String())

	var env []string
	env = req.Author.appendEnv("AUTHOR", env)
	env = req.Committer.appendEnv("COMMITTER", env)

	result, err := r.runner.WithEnv(env...).RunInput(ctx, req.Message, args...)
	if err != nil {
		return ZeroHash, gitutil.WrapGitError(ErrCommitCreationFailed, "commit-tree", result, err)
	}
	hash := Hash(result.StdoutString(true))

	updateArgs := []string{"update-ref", "-m", "commit: " + stringsutil.FirstLine(req.Message), req.Ref.Name, hash.String()}
	if len(req.Parents) > 0 {
		updateArgs = append(updateArgs, req.Parents[0].String())
	}
	result, err = r.runner.Run(ctx, updateArgs...)
	if err != nil {
		return ZeroHash, gitutil.WrapGitError(ErrCommitCreationFailed, "update-ref "+req.Ref.Name, result, err)
	}

	r.log.Debug("Created commit", "ref", req.Ref.Name, "hash", hash)
	return hash, nil
}
