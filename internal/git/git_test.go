package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// gitRun runs git in dir with a fixed identity and returns trimmed stdout.
func gitRun(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Setup", "GIT_AUTHOR_EMAIL=setup@example.com",
		"GIT_COMMITTER_NAME=Setup", "GIT_COMMITTER_EMAIL=setup@example.com",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s: %s", strings.Join(args, " "), out)
	return strings.TrimSpace(string(out))
}

// newTestRepo creates a repository with one commit
// and returns its directory.
func newTestRepo(t *testing.T) string {
	t.Helper()
	requireGit(t)

	dir := t.TempDir()
	gitRun(t, dir, "init", "-q")
	gitRun(t, dir, "symbolic-ref", "HEAD", "refs/heads/main")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("hello\n"), 0o644))
	gitRun(t, dir, "add", "README")
	gitRun(t, dir, "commit", "-q", "-m", "initial")
	return dir
}

func TestOpen_NotARepository(t *testing.T) {
	requireGit(t)

	_, err := NewClient(Options{}).Open(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotARepository)
}

func TestOpen_Subdirectory(t *testing.T) {
	dir := newTestRepo(t)
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	repo, err := NewClient(Options{}).Open(context.Background(), sub)
	require.NoError(t, err)

	wantRoot, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(repo.Root())
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotRoot)
	assert.Equal(t, ".git", filepath.Base(repo.GitDir()))
}

func TestGlobalConfigString(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	client := NewClient(Options{})

	gitRun(t, t.TempDir(), "config", "--global", "gcmtest.name", "Jane")
	t.Cleanup(func() {
		_ = exec.Command("git", "config", "--global", "--unset", "gcmtest.name").Run()
		_ = exec.Command("git", "config", "--global", "--unset", "gcmtest.empty").Run()
	})

	got, err := client.GlobalConfigString(ctx, "gcmtest.name")
	require.NoError(t, err)
	assert.Equal(t, "Jane", got)

	_, err = client.GlobalConfigString(ctx, "gcmtest.missing")
	assert.ErrorIs(t, err, ErrConfigKeyMissing)

	gitRun(t, t.TempDir(), "config", "--global", "gcmtest.empty", "")
	_, err = client.GlobalConfigString(ctx, "gcmtest.empty")
	assert.ErrorIs(t, err, ErrConfigKeyMissing)
}

func TestGlobalConfigString_FollowsIncludes(t *testing.T) {
	requireGit(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"),
		[]byte("[include]\n\tpath = ~/.gitconfig-identity\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig-identity"),
		[]byte("[user]\n\tname = A\n\temail = a@x\n"), 0o644))

	client := NewClient(Options{})
	ctx := context.Background()

	name, err := client.GlobalConfigString(ctx, "user.name")
	require.NoError(t, err)
	assert.Equal(t, "A", name)

	email, err := client.GlobalConfigString(ctx, "user.email")
	require.NoError(t, err)
	assert.Equal(t, "a@x", email)
}

func TestRepository_CommitStagedContent(t *testing.T) {
	dir := newTestRepo(t)
	ctx := context.Background()

	parentHash := gitRun(t, dir, "rev-parse", "HEAD")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "staged.txt"), []byte("staged\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unstaged.txt"), []byte("unstaged\n"), 0o644))
	gitRun(t, dir, "add", "staged.txt")

	repo, err := NewClient(Options{}).Open(ctx, dir)
	require.NoError(t, err)

	idx, err := repo.Index(ctx)
	require.NoError(t, err)
	assert.Equal(t, "index", filepath.Base(idx.Path))

	tree, err := repo.WriteTree(ctx, idx)
	require.NoError(t, err)

	ref, err := repo.ResolveRef(ctx, "HEAD")
	require.NoError(t, err)
	assert.Equal(t, "refs/heads/main", ref.Name)
	assert.Equal(t, "main", ref.Branch())

	parent, err := repo.PeelToCommit(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, parentHash, parent.String())

	sig := &Signature{
		Name:  "A",
		Email: "a@x",
		Time:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	hash, err := repo.CreateCommit(ctx, CommitRequest{
		Ref:     ref,
		Tree:    tree,
		Parents: []Hash{parent},
		Message: "msg",
		Author:  sig,
	})
	require.NoError(t, err)

	assert.Equal(t, hash.String(), gitRun(t, dir, "rev-parse", "HEAD"))
	assert.Equal(t, parentHash, gitRun(t, dir, "rev-parse", "HEAD^"))
	assert.Equal(t, tree.String(), gitRun(t, dir, "rev-parse", "HEAD^{tree}"))
	assert.Equal(t, "A|a@x|A|a@x|msg|1704164645",
		gitRun(t, dir, "log", "-1", "--format=%an|%ae|%cn|%ce|%s|%at"))
	assert.Equal(t, "README\nstaged.txt", gitRun(t, dir, "ls-tree", "--name-only", "HEAD"))

	// The unstaged file stays out of the commit and out of the index.
	assert.Equal(t, "?? unstaged.txt", gitRun(t, dir, "status", "--porcelain"))
	assert.Contains(t, gitRun(t, dir, "reflog", "-1"), "commit: msg")
}

func TestRepository_DetachedHead(t *testing.T) {
	dir := newTestRepo(t)
	ctx := context.Background()
	gitRun(t, dir, "checkout", "-q", "--detach")

	repo, err := NewClient(Options{}).Open(ctx, dir)
	require.NoError(t, err)

	ref, err := repo.ResolveRef(ctx, "HEAD")
	require.NoError(t, err)
	assert.Equal(t, "HEAD", ref.Name)
	assert.Equal(t, "HEAD", ref.Branch())

	_, err = repo.PeelToCommit(ctx, ref)
	assert.NoError(t, err)
}

func TestRepository_UnbornBranch(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	dir := t.TempDir()
	gitRun(t, dir, "init", "-q")

	repo, err := NewClient(Options{}).Open(ctx, dir)
	require.NoError(t, err)

	idx, err := repo.Index(ctx)
	require.NoError(t, err, "a repository that never staged anything still has an index")

	ref, err := repo.ResolveRef(ctx, "HEAD")
	require.NoError(t, err)

	_, err = repo.PeelToCommit(ctx, ref)
	assert.ErrorIs(t, err, ErrNotACommit)

	_, err = repo.WriteTree(ctx, idx)
	assert.NoError(t, err)
}

func TestRepository_WriteTreeUnmerged(t *testing.T) {
	dir := newTestRepo(t)
	ctx := context.Background()

	// Record an unmerged entry so write-tree refuses the index.
	blob := gitRun(t, dir, "hash-object", "-w", "README")
	cmd := exec.Command("git", "update-index", "--index-info")
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader("100644 " + blob + " 1\tconflict.txt\n100644 " + blob + " 2\tconflict.txt\n")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	repo, err := NewClient(Options{}).Open(ctx, dir)
	require.NoError(t, err)
	idx, err := repo.Index(ctx)
	require.NoError(t, err)

	_, err = repo.WriteTree(ctx, idx)
	assert.ErrorIs(t, err, ErrTreeWriteFailed)
}

func TestRepository_CreateCommitStaleParent(t *testing.T) {
	dir := newTestRepo(t)
	ctx := context.Background()

	repo, err := NewClient(Options{}).Open(ctx, dir)
	require.NoError(t, err)
	ref, err := repo.ResolveRef(ctx, "HEAD")
	require.NoError(t, err)
	parent, err := repo.PeelToCommit(ctx, ref)
	require.NoError(t, err)
	idx, err := repo.Index(ctx)
	require.NoError(t, err)
	tree, err := repo.WriteTree(ctx, idx)
	require.NoError(t, err)

	// Someone else moves the branch.
	gitRun(t, dir, "commit", "-q", "--allow-empty", "-m", "concurrent")
	moved := gitRun(t, dir, "rev-parse", "HEAD")

	_, err = repo.CreateCommit(ctx, CommitRequest{
		Ref:     ref,
		Tree:    tree,
		Parents: []Hash{parent},
		Message: "late",
		Author:  &Signature{Name: "A", Email: "a@x"},
	})
	assert.ErrorIs(t, err, ErrCommitCreationFailed)
	assert.Equal(t, moved, gitRun(t, dir, "rev-parse", "HEAD"))
}

func TestCreateCommit_RequiresRefAndTree(t *testing.T) {
	repo := &Repository{}

	_, err := repo.CreateCommit(context.Background(), CommitRequest{Tree: "abc"})
	assert.ErrorIs(t, err, ErrCommitCreationFailed)

	_, err = repo.CreateCommit(context.Background(), CommitRequest{Ref: Ref{Name: "HEAD"}})
	assert.ErrorIs(t, err, ErrCommitCreationFailed)
}

func TestHashShort(t *testing.T) {
	assert.Equal(t, "0123456", Hash("0123456789").Short())
	assert.Equal(t, "abc", Hash("abc").Short())
}
