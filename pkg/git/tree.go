package git

import (
	"context"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	errUtils "github.com/cloudposse/detect-changes/errors"
	log "github.com/cloudposse/detect-changes/pkg/logger"
)

// RepoSource computes changed files in-process by diffing the trees of two revisions with go-git.
// Renames are reported under their new path, matching `git diff --name-only`.
type RepoSource struct {
	opts Options
}

// NewRepoSource creates a RepoSource.
func NewRepoSource(opts Options) *RepoSource {
	return &RepoSource{opts: opts}
}

// ChangedFiles diffs BaseRef against HeadRef. Failures are logged and returned as a Failure.
func (s *RepoSource) ChangedFiles(ctx context.Context) Result {
	files, err := s.changedFiles(ctx)
	if err != nil {
		log.Error("Error computing git diff", "base", s.opts.BaseRef, "head", s.opts.HeadRef, "err", err)
		return Failure(err)
	}
	return Success(strings.Join(files, "\n"))
}

func (s *RepoSource) changedFiles(ctx context.Context) ([]string, error) {
	repo, err := OpenRepo(s.opts.RepoDir)
	if err != nil {
		return nil, err
	}

	log.Debug("Getting base commit tree", "ref", s.opts.BaseRef)
	baseTree, err := revisionTree(repo, s.opts.BaseRef)
	if err != nil {
		return nil, err
	}

	log.Debug("Getting head commit tree", "ref", s.opts.HeadRef)
	headTree, err := revisionTree(repo, s.opts.HeadRef)
	if err != nil {
		return nil, err
	}

	changes, err := object.DiffTreeWithOptions(ctx, baseTree, headTree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrGitDiff).
			WithCause(err).
			WithContext("base", s.opts.BaseRef).
			WithContext("head", s.opts.HeadRef).
			Err()
	}

	files := make([]string, 0, len(changes))
	for _, change := range changes {
		files = append(files, changePath(change))
	}
	sort.Strings(files)

	if len(files) == 0 {
		log.Debug("The base and head revisions have identical trees")
	}

	return files, nil
}

// changePath returns the path git reports for a change: the new path, or the old one for deletions.
func changePath(change *object.Change) string {
	if change.To.Name != "" {
		return change.To.Name
	}
	return change.From.Name
}

func revisionTree(repo *git.Repository, ref string) (*object.Tree, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrGitRevision).
			WithCause(err).
			WithContext("ref", ref).
			Err()
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrGitRevision).
			WithCause(err).
			WithContext("ref", ref).
			Err()
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrGitRevision).
			WithCause(err).
			WithContext("ref", ref).
			Err()
	}

	return tree, nil
}
