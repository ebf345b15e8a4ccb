package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// newTestRepo initializes an empty repository in a temporary directory.
func newTestRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	return dir, repo
}

// commitChanges writes files (nil content removes the file) and commits them.
func commitChanges(t *testing.T, repo *git.Repository, dir string, files map[string]*string, message string) {
	t.Helper()

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if content == nil {
			_, err = worktree.Remove(name)
			require.NoError(t, err)
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(*content), 0o644))
		_, err = worktree.Add(name)
		require.NoError(t, err)
	}

	_, err = worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
}

func content(s string) *string {
	return &s
}

// newTwoCommitRepo creates a repository whose last commit changes the web and api apps and removes README.md.
func newTwoCommitRepo(t *testing.T) string {
	t.Helper()

	dir, repo := newTestRepo(t)
	commitChanges(t, repo, dir, map[string]*string{
		"README.md":         content("# repo\n"),
		"apps/web/src/a.ts": content("export const a = 1\n"),
		"docs/guide.md":     content("guide\n"),
	}, "Initial commit")
	commitChanges(t, repo, dir, map[string]*string{
		"README.md":         nil,
		"apps/web/src/a.ts": content("export const a = 2\n"),
		"apps/api/b.ts":     content("export const b = 1\n"),
	}, "Second commit")

	return dir
}
