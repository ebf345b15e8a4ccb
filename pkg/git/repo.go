package git

import (
	"sort"

	"github.com/go-git/go-git/v5"
	giturl "github.com/kubescape/go-git-url"

	errUtils "github.com/cloudposse/detect-changes/errors"
)

// OpenRepo opens the repository containing path, walking up to find .git.
// Linked worktrees are supported through the common dir.
func OpenRepo(path string) (*git.Repository, error) {
	if path == "" {
		path = "."
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err == nil {
		return repo, nil
	}

	// Some worktree layouts only open without the common dir lookup.
	if fallback, fallbackErr := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true}); fallbackErr == nil {
		return fallback, nil
	}

	return nil, errUtils.Build(errUtils.ErrGitRepository).
		WithCause(err).
		WithContext("path", path).
		Err()
}

// RepoInfo describes the repository behind the first configured remote.
type RepoInfo struct {
	RepoUrl   string
	RepoOwner string
	RepoName  string
	RepoHost  string
}

// FullName returns "owner/name", or an empty string when the remote is unknown.
func (i RepoInfo) FullName() string {
	if i.RepoOwner == "" || i.RepoName == "" {
		return ""
	}
	return i.RepoOwner + "/" + i.RepoName
}

// GetRepoInfo parses the URL of the repository's first remote (sorted by name).
// A repository without remotes yields an empty RepoInfo.
func GetRepoInfo(repo *git.Repository) (RepoInfo, error) {
	repoConfig, err := repo.Config()
	if err != nil {
		return RepoInfo{}, err
	}

	names := make([]string, 0, len(repoConfig.Remotes))
	for name := range repoConfig.Remotes {
		names = append(names, name)
	}
	if len(names) == 0 {
		return RepoInfo{}, nil
	}
	sort.Strings(names)

	urls := repoConfig.Remotes[names[0]].URLs
	if len(urls) == 0 || urls[0] == "" {
		return RepoInfo{}, nil
	}

	gitURL, err := giturl.NewGitURL(urls[0])
	if err != nil {
		return RepoInfo{}, err
	}

	return RepoInfo{
		RepoUrl:   urls[0],
		RepoOwner: gitURL.GetOwnerName(),
		RepoName:  gitURL.GetRepoName(),
		RepoHost:  gitURL.GetHostName(),
	}, nil
}
