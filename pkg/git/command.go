package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	errUtils "github.com/cloudposse/detect-changes/errors"
	log "github.com/cloudposse/detect-changes/pkg/logger"
)

const defaultGitBinary = "git"

// CommandSource runs `git diff --name-only <base> <head>` in the repository directory.
// core.quotePath is disabled so non-ASCII paths are printed as-is.
type CommandSource struct {
	opts   Options
	binary string
}

// NewCommandSource creates a CommandSource using the git binary found on PATH.
func NewCommandSource(opts Options) *CommandSource {
	return &CommandSource{opts: opts, binary: defaultGitBinary}
}

// Args returns the git arguments that will be executed.
func (s *CommandSource) Args() []string {
	return []string{"-c", "core.quotePath=false", "diff", "--name-only", s.opts.BaseRef, s.opts.HeadRef}
}

// ChangedFiles executes the diff and returns its trimmed stdout.
// Any execution failure is logged and returned as a Failure.
func (s *CommandSource) ChangedFiles(ctx context.Context) Result {
	args := s.Args()
	command := s.binary + " " + strings.Join(args, " ")

	cmd := exec.CommandContext(ctx, s.binary, args...)
	if s.opts.RepoDir != "" {
		cmd.Dir = s.opts.RepoDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug("Executing git command", "command", command, "dir", cmd.Dir)

	if err := cmd.Run(); err != nil {
		builder := errUtils.Build(errUtils.ErrGitCommand).
			WithCause(err).
			WithContext("command", command)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			builder = builder.WithExplanation(msg)
		}
		failure := builder.Err()
		log.Error("Error executing git command", "command", command, "err", err, "stderr", strings.TrimSpace(stderr.String()))
		return Failure(failure)
	}

	return Success(stdout.String())
}
