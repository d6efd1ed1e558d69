package git

import (
	"errors"
	"strings"
	"time"

	"github.com/samzong/gcm/internal/stringsutil"
)

// Failure kinds reported by the engine.
// Every error returned by Client and Repository matches exactly one of these.
var (
	ErrNotARepository       = errors.New("not a git repository")
	ErrConfigKeyMissing     = errors.New("config key missing")
	ErrIndexUnavailable     = errors.New("index unavailable")
	ErrTreeWriteFailed      = errors.New("tree write failed")
	ErrHeadUnresolved       = errors.New("HEAD unresolved")
	ErrNotACommit           = errors.New("not a commit")
	ErrCommitCreationFailed = errors.New("commit creation failed")
)

// Hash is the hex-encoded object name of a git object.
type Hash string

// ZeroHash is the hash of no object.
const ZeroHash Hash = ""

func (h Hash) String() string { return string(h) }

// Short returns the abbreviated form of the hash.
func (h Hash) Short() string {
	return stringsutil.ShortHash(string(h), 7, "")
}

// Ref is the target of a symbolic reference.
//
// Name is a full ref name like "refs/heads/main",
// or "HEAD" when HEAD is detached.
type Ref struct {
	Name string
}

// Branch returns the short branch name of the ref,
// or "HEAD" for a detached HEAD.
func (r Ref) Branch() string {
	if branch, ok := strings.CutPrefix(r.Name, "refs/heads/"); ok {
		return branch
	}
	return r.Name
}

// Index is a handle to the staging index of a worktree.
type Index struct {
	// Path is the location of the index file.
	// The file may not exist yet in a repository that never staged anything.
	Path string
}

// Signature holds authorship information for a commit.
type Signature struct {
	// Name of the signer.
	Name string

	// Email of the signer.
	Email string

	// Time at which the signature was made.
	// If this is zero, git uses the current time.
	Time time.Time
}

// typ is one of "COMMITTER" or "AUTHOR".
func (s *Signature) appendEnv(typ string, env []string) []string {
	if s == nil {
		return env
	}

	env = append(env, "GIT_"+typ+"_NAME="+s.Name)
	env = append(env, "GIT_"+typ+"_EMAIL="+s.Email)
	if !s.Time.IsZero() {
		env = append(env, "GIT_"+typ+"_DATE="+s.Time.Format(time.RFC3339))
	}
	return env
}

// CommitRequest is a request to create a commit
// and advance a reference to it.
type CommitRequest struct {
	// Ref is the reference to advance to the new commit.
	Ref Ref // required

	// Tree is the hash of the tree object recorded by the commit.
	Tree Hash // required

	// Parents of the new commit.
	// The ref is only updated if it still points at the first parent.
	Parents []Hash

	// Message is the commit message, recorded as is.
	Message string

	// Author and Committer sign the commit.
	// If Committer is nil, Author is used for both.
	Author, Committer *Signature
}
