package git

import (
	"context"
	"strings"

	errUtils "github.com/cloudposse/detect-changes/errors"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mock/source.go -package=mock_git

// ChangeSource produces the list of files changed between two revisions.
// Implementations never return an error directly; failures are reported as a Failure result.
type ChangeSource interface {
	ChangedFiles(ctx context.Context) Result
}

const (
	// BackendExec runs the git binary.
	BackendExec = "exec"
	// BackendGoGit diffs trees in-process with go-git.
	BackendGoGit = "go-git"
)

// Options configures a ChangeSource.
type Options struct {
	// RepoDir is the repository working directory.
	RepoDir string
	BaseRef string
	HeadRef string
}

// ParseBackend validates a backend name. An empty name selects BackendExec.
func ParseBackend(backend string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendExec:
		return BackendExec, nil
	case BackendGoGit, "gogit":
		return BackendGoGit, nil
	default:
		return "", errUtils.Build(errUtils.ErrInvalidGitBackend).
			WithContext("backend", backend).
			WithHintf("Supported backends are %q and %q", BackendExec, BackendGoGit).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
}

// NewChangeSource returns the ChangeSource for a backend.
func NewChangeSource(backend string, opts Options) (ChangeSource, error) {
	parsed, err := ParseBackend(backend)
	if err != nil {
		return nil, err
	}

	if parsed == BackendGoGit {
		return NewRepoSource(opts), nil
	}
	return NewCommandSource(opts), nil
}
