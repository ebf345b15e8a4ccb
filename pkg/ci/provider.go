// Package ci delivers results to the CI system running the tool.
package ci

import (
	"os"
	"strings"
)

const (
	// OutputDeployModules is the JSON array of modules to deploy.
	OutputDeployModules = "deploy-modules"
	// OutputHasChanges is "true" or "false".
	OutputHasChanges = "has-changes"
)

// OutputWriter writes CI outputs (step outputs, job summaries).
type OutputWriter interface {
	// WriteOutput writes a key-value pair to CI outputs (e.g., $GITHUB_OUTPUT).
	WriteOutput(key, value string) error

	// WriteSummary writes content to the job summary (e.g., $GITHUB_STEP_SUMMARY).
	WriteSummary(content string) error
}

// Context is CI metadata read from the GitHub Actions environment.
type Context struct {
	Repository string
	SHA        string
	Ref        string
	RunID      string
	ServerURL  string
}

// IsGitHubActions reports whether the process runs inside GitHub Actions.
func IsGitHubActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// GitHubContext reads run metadata from GITHUB_* variables. Missing values are left empty.
func GitHubContext() Context {
	serverURL := os.Getenv("GITHUB_SERVER_URL")
	if serverURL == "" {
		serverURL = "https://github.com"
	}

	return Context{
		Repository: os.Getenv("GITHUB_REPOSITORY"),
		SHA:        os.Getenv("GITHUB_SHA"),
		Ref:        os.Getenv("GITHUB_REF"),
		RunID:      os.Getenv("GITHUB_RUN_ID"),
		ServerURL:  strings.TrimSuffix(serverURL, "/"),
	}
}

// CommitURL links to the commit on the server, or returns "" when repository or SHA is unknown.
func (c Context) CommitURL() string {
	if c.Repository == "" || c.SHA == "" {
		return ""
	}
	return c.ServerURL + "/" + c.Repository + "/commit/" + c.SHA
}
