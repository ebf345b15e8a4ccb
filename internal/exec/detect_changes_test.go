package exec

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	errUtils "github.com/cloudposse/detect-changes/errors"
	"github.com/cloudposse/detect-changes/pkg/ci"
	"github.com/cloudposse/detect-changes/pkg/git"
	mock_git "github.com/cloudposse/detect-changes/pkg/git/mock"
	log "github.com/cloudposse/detect-changes/pkg/logger"
	"github.com/cloudposse/detect-changes/pkg/modules"
	"github.com/cloudposse/detect-changes/pkg/schema"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	previous := log.Default()
	var buf bytes.Buffer
	logger := log.NewWithOutput(&buf)
	logger.SetLevel(log.DebugLevel)
	log.SetDefault(logger)
	t.Cleanup(func() { log.SetDefault(previous) })

	return &buf
}

func testConfig(outputFile string) *schema.Config {
	return &schema.Config{
		Modules: schema.Modules{Directory: "apps/", Layout: "apps"},
		Git:     schema.Git{Backend: git.BackendExec, BaseRef: "HEAD~1", HeadRef: "HEAD", RepoDir: "."},
		CI:      schema.CI{OutputFile: outputFile},
	}
}

// newTestExec wires a detectChangesExec around a mocked change source.
func newTestExec(source git.ChangeSource) *detectChangesExec {
	return &detectChangesExec{
		newChangeSource: func(string, git.Options) (git.ChangeSource, error) {
			return source, nil
		},
		newOutputWriter: ci.NewOutputWriter,
		repositoryName:  func(string) string { return "cloudposse/example" },
	}
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestDetectChanges_ManualOverride(t *testing.T) {
	captureLogs(t)
	outputFile := filepath.Join(t.TempDir(), "github_output")
	config := testConfig(outputFile)
	config.Modules.Manual = "web, api,web"
	source := mock_git.NewMockChangeSource(gomock.NewController(t))

	result, err := newTestExec(source).Execute(context.Background(), config)

	require.NoError(t, err)
	assert.Equal(t, []string{"web", "api"}, result.Modules)
	assert.Equal(t, "deploy-modules=[\"web\",\"api\"]\nhas-changes=true\n", readOutput(t, outputFile))
}

func TestDetectChanges_AutoDetected(t *testing.T) {
	buf := captureLogs(t)
	outputFile := filepath.Join(t.TempDir(), "github_output")
	source := mock_git.NewMockChangeSource(gomock.NewController(t))
	source.EXPECT().ChangedFiles(gomock.Any()).Return(git.Success("apps/web/src/a.ts\napps/api/b.ts\nREADME.md"))

	result, err := newTestExec(source).Execute(context.Background(), testConfig(outputFile))

	require.NoError(t, err)
	assert.True(t, result.HasChanges)
	assert.Equal(t, "deploy-modules=[\"api\",\"web\"]\nhas-changes=true\n", readOutput(t, outputFile))
	assert.Contains(t, buf.String(), `Auto-detected changed modules: ["api","web"]`)
}

func TestDetectChanges_NoModulesInDirectory(t *testing.T) {
	buf := captureLogs(t)
	outputFile := filepath.Join(t.TempDir(), "github_output")
	source := mock_git.NewMockChangeSource(gomock.NewController(t))
	source.EXPECT().ChangedFiles(gomock.Any()).Return(git.Success("docs/readme.md"))

	_, err := newTestExec(source).Execute(context.Background(), testConfig(outputFile))

	require.NoError(t, err)
	assert.Equal(t, "deploy-modules=[]\nhas-changes=false\n", readOutput(t, outputFile))
	assert.Contains(t, buf.String(), "No modules changed in apps/ directory")
}

func TestDetectChanges_GitFailure(t *testing.T) {
	buf := captureLogs(t)
	outputFile := filepath.Join(t.TempDir(), "github_output")
	source := mock_git.NewMockChangeSource(gomock.NewController(t))
	source.EXPECT().ChangedFiles(gomock.Any()).Return(git.Failure(errUtils.ErrGitCommand))

	result, err := newTestExec(source).Execute(context.Background(), testConfig(outputFile))

	require.NoError(t, err)
	assert.False(t, result.HasChanges)
	assert.Equal(t, "deploy-modules=[]\nhas-changes=false\n", readOutput(t, outputFile))
	assert.Contains(t, buf.String(), "No changes detected or git command failed")
}

func TestDetectChanges_LogsWithoutOutputFile(t *testing.T) {
	buf := captureLogs(t)
	source := mock_git.NewMockChangeSource(gomock.NewController(t))
	source.EXPECT().ChangedFiles(gomock.Any()).Return(git.Success(""))

	_, err := newTestExec(source).Execute(context.Background(), testConfig(""))

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "deploy-modules=[]")
	assert.Contains(t, buf.String(), "has-changes=false")
}

func TestDetectChanges_UnwritableOutputFile(t *testing.T) {
	buf := captureLogs(t)
	outputFile := filepath.Join(t.TempDir(), "missing", "github_output")
	source := mock_git.NewMockChangeSource(gomock.NewController(t))
	source.EXPECT().ChangedFiles(gomock.Any()).Return(git.Success("apps/web/a.ts"))

	result, err := newTestExec(source).Execute(context.Background(), testConfig(outputFile))

	require.NoError(t, err)
	assert.Equal(t, []string{"web"}, result.Modules)
	assert.Contains(t, buf.String(), "Failed to write to GitHub output")
}

func TestDetectChanges_Summary(t *testing.T) {
	captureLogs(t)
	t.Setenv("GITHUB_SHA", "")
	dir := t.TempDir()
	config := testConfig(filepath.Join(dir, "github_output"))
	config.CI.Summary = true
	config.CI.SummaryFile = filepath.Join(dir, "summary.md")
	source := mock_git.NewMockChangeSource(gomock.NewController(t))
	source.EXPECT().ChangedFiles(gomock.Any()).Return(git.Success("apps/web/a.ts"))

	_, err := newTestExec(source).Execute(context.Background(), config)

	require.NoError(t, err)
	summary := readOutput(t, config.CI.SummaryFile)
	assert.Contains(t, summary, "## Detected changes in `cloudposse/example`")
	assert.Contains(t, summary, "| 1 | `web` |")
}

func TestDetectChanges_InvalidBackend(t *testing.T) {
	captureLogs(t)
	config := testConfig("")
	config.Git.Backend = "svn"

	_, err := NewDetectChangesExec().Execute(context.Background(), config)

	assert.ErrorIs(t, err, errUtils.ErrInvalidGitBackend)
}

func TestDetectChanges_ChangeSourceError(t *testing.T) {
	captureLogs(t)
	d := newTestExec(nil)
	d.newChangeSource = func(string, git.Options) (git.ChangeSource, error) {
		return nil, errors.New("boom")
	}

	_, err := d.Execute(context.Background(), testConfig(""))

	assert.EqualError(t, err, "boom")
}

func TestRepositoryName(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "cloudposse/from-env")
	assert.Equal(t, "cloudposse/from-env", repositoryName(t.TempDir()))

	t.Setenv("GITHUB_REPOSITORY", "")
	assert.Empty(t, repositoryName(t.TempDir()))
}

func TestExecuteDetectChanges_Manual(t *testing.T) {
	captureLogs(t)
	outputFile := filepath.Join(t.TempDir(), "github_output")
	config := testConfig(outputFile)
	config.Modules.Manual = "api"

	result, err := ExecuteDetectChanges(context.Background(), config)

	require.NoError(t, err)
	assert.Equal(t, modules.SourceManual, result.Source)
	assert.Equal(t, "deploy-modules=[\"api\"]\nhas-changes=true\n", readOutput(t, outputFile))
}
