// Package commit creates a commit from the staged index of the repository
// in the working directory, with HEAD as its only parent.
package commit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/samzong/gcm/internal/git"
	"github.com/samzong/gcm/internal/gitutil"
)

// Identity is the user.name and user.email pair from global git config.
type Identity struct {
	Name  string
	Email string
}

// Options configures Create.
type Options struct {
	// Getwd returns the directory identifying the repository.
	// Defaults to os.Getwd.
	Getwd func() (string, error)

	// Now stamps the signature. Defaults to time.Now.
	Now func() time.Time

	// DryRun resolves the tree and parent
	// but does not create the commit.
	DryRun bool

	Log *slog.Logger
}

// Result describes a created, or in dry-run mode would-be, commit.
type Result struct {
	Ref      git.Ref
	Hash     git.Hash // empty in dry-run mode
	Tree     git.Hash
	Parent   git.Hash
	Identity Identity
	DryRun   bool
}

// Create commits the staged index of the repository in the working directory
// with message, advancing the current branch by exactly one commit.
//
// Each step runs only if the previous one succeeded.
// A failure is reported as a *StepError
// and leaves the repository unchanged.
func Create(ctx context.Context, eng Engine, message string, opts Options) (Result, error) {
	getwd := opts.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	dir, err := getwd()
	if err != nil {
		return Result{}, stepErr(StepWorkdir, fmt.Errorf("could not get current working directory: %w", err))
	}

	repo, err := eng.OpenRepository(ctx, dir)
	if err != nil {
		return Result{}, stepErr(StepOpenRepository, fmt.Errorf("could not open repository in %s: %w", dir, err))
	}

	ident, err := readIdentity(ctx, eng)
	if err != nil {
		return Result{}, stepErr(StepReadIdentity, err)
	}
	sig := &git.Signature{Name: ident.Name, Email: ident.Email, Time: now()}
	log.Debug("Resolved identity", "name", ident.Name, "email", ident.Email)

	idx, err := repo.Index(ctx)
	if err != nil {
		return Result{}, stepErr(StepReadIndex, fmt.Errorf("unable to obtain index: %w", err))
	}

	tree, err := repo.WriteTree(ctx, idx)
	if err != nil {
		return Result{}, stepErr(StepWriteTree, fmt.Errorf("unable to write index tree: %w", err))
	}
	log.Debug("Wrote tree", "tree", tree)

	ref, err := repo.ResolveRef(ctx, "HEAD")
	if err != nil {
		return Result{}, stepErr(StepResolveParent, fmt.Errorf("could not resolve HEAD: %w", err))
	}
	parent, err := repo.PeelToCommit(ctx, ref)
	if err != nil {
		return Result{}, stepErr(StepResolveParent, fmt.Errorf("could not find the commit at %s: %w", ref.Name, err))
	}
	log.Debug("Resolved parent", "ref", ref.Name, "parent", parent)

	res := Result{
		Ref:      ref,
		Tree:     tree,
		Parent:   parent,
		Identity: ident,
		DryRun:   opts.DryRun,
	}
	if opts.DryRun {
		return res, nil
	}

	hash, err := repo.CreateCommit(ctx, git.CommitRequest{
		Ref:       ref,
		Tree:      tree,
		Parents:   []git.Hash{parent},
		Message:   message,
		Author:    sig,
		Committer: sig,
	})
	if err != nil {
		return Result{}, stepErr(StepCreateCommit, fmt.Errorf("could not create new commit: %w", err))
	}

	res.Hash = hash
	return res, nil
}

func readIdentity(ctx context.Context, eng Engine) (Identity, error) {
	name, err := eng.GlobalConfigString(ctx, "user.name")
	if err != nil {
		return Identity{}, fmt.Errorf("unable to obtain user.name from git config: %w", err)
	}
	if err := gitutil.ValidateIdent("user.name", name); err != nil {
		return Identity{}, err
	}

	email, err := eng.GlobalConfigString(ctx, "user.email")
	if err != nil {
		return Identity{}, fmt.Errorf("unable to obtain user.email from git config: %w", err)
	}
	if err := gitutil.ValidateIdent("user.email", email); err != nil {
		return Identity{}, err
	}

	return Identity{Name: name, Email: email}, nil
}
