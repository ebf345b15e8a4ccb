package ci

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSummary_Modules(t *testing.T) {
	summary := RenderSummary(SummaryInput{
		Repository: "cloudposse/detect-changes",
		Context: Context{
			Repository: "cloudposse/detect-changes",
			SHA:        "0123456789abcdef",
			ServerURL:  "https://github.com",
		},
		Modules:    []string{"api", "web"},
		HasChanges: true,
		Source:     "auto",
	})

	expected := "## Detected changes in `cloudposse/detect-changes`\n\n" +
		"Commit: [`0123456`](https://github.com/cloudposse/detect-changes/commit/0123456789abcdef)\n\n" +
		"| # | Module |\n|---|---|\n" +
		"| 1 | `api` |\n" +
		"| 2 | `web` |\n" +
		"\n_2 module(s), source: auto_\n"
	assert.Equal(t, expected, summary)
}

func TestRenderSummary_NoModules(t *testing.T) {
	summary := RenderSummary(SummaryInput{Reason: "No modules changed in apps/ directory"})

	assert.Equal(t, "## Detected changes\n\nNo modules changed in apps/ directory.\n", summary)
}

func TestRenderSummary_EmptyManualOverride(t *testing.T) {
	summary := RenderSummary(SummaryInput{HasChanges: true, Source: "manual"})

	assert.Contains(t, summary, "Manual override selected no modules.")
}

func TestGitHubContext(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "cloudposse/detect-changes")
	t.Setenv("GITHUB_SHA", "abc")
	t.Setenv("GITHUB_REF", "refs/heads/main")
	t.Setenv("GITHUB_RUN_ID", "42")
	t.Setenv("GITHUB_SERVER_URL", "https://github.example.com/")

	ctx := GitHubContext()

	assert.Equal(t, "cloudposse/detect-changes", ctx.Repository)
	assert.Equal(t, "42", ctx.RunID)
	assert.Equal(t, "https://github.example.com/cloudposse/detect-changes/commit/abc", ctx.CommitURL())
}

func TestGitHubContext_Defaults(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "")
	t.Setenv("GITHUB_SHA", "")
	t.Setenv("GITHUB_SERVER_URL", "")

	ctx := GitHubContext()

	assert.Equal(t, "https://github.com", ctx.ServerURL)
	assert.Empty(t, ctx.CommitURL())
}

func TestIsGitHubActions(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	assert.True(t, IsGitHubActions())

	t.Setenv("GITHUB_ACTIONS", "")
	assert.False(t, IsGitHubActions())
}
