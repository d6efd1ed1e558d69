package commit

import (
	"context"

	"github.com/samzong/gcm/internal/git"
)

//go:generate mockgen -package commit -destination mocks_test.go . Engine,Repository

// Engine opens repositories and reads global configuration.
type Engine interface {
	OpenRepository(ctx context.Context, dir string) (Repository, error)
	GlobalConfigString(ctx context.Context, key string) (string, error)
}

// Repository is the subset of repository operations
// needed to create a commit from the staged index.
type Repository interface {
	Index(ctx context.Context) (git.Index, error)
	WriteTree(ctx context.Context, idx git.Index) (git.Hash, error)
	ResolveRef(ctx context.Context, name string) (git.Ref, error)
	PeelToCommit(ctx context.Context, ref git.Ref) (git.Hash, error)
	CreateCommit(ctx context.Context, req git.CommitRequest) (git.Hash, error)
}

var _ Repository = (*git.Repository)(nil)

// GitEngine adapts a git.Client to Engine.
func GitEngine(client *git.Client) Engine {
	return gitEngine{client: client}
}

type gitEngine struct {
	client *git.Client
}

func (e gitEngine) OpenRepository(ctx context.Context, dir string) (Repository, error) {
	repo, err := e.client.Open(ctx, dir)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func (e gitEngine) GlobalConfigString(ctx context.Context, key string) (string, error) {
	return e.client.GlobalConfigString(ctx, key)
}
