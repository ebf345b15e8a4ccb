package exec

import (
	"context"
	"strconv"

	"github.com/cloudposse/detect-changes/pkg/ci"
	"github.com/cloudposse/detect-changes/pkg/git"
	log "github.com/cloudposse/detect-changes/pkg/logger"
	"github.com/cloudposse/detect-changes/pkg/modules"
	"github.com/cloudposse/detect-changes/pkg/schema"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// DetectChangesExec runs one detection and delivers its outputs.
type DetectChangesExec interface {
	Execute(ctx context.Context, config *schema.Config) (modules.Result, error)
}

// DetectChangesExecCreator builds a DetectChangesExec.
type DetectChangesExecCreator func() DetectChangesExec

type detectChangesExec struct {
	newChangeSource func(backend string, opts git.Options) (git.ChangeSource, error)
	newOutputWriter func(outputPath, summaryPath string) ci.OutputWriter
	repositoryName  func(repoDir string) string
}

// NewDetectChangesExec creates a new `detect-changes` executor.
func NewDetectChangesExec() DetectChangesExec {
	return &detectChangesExec{
		newChangeSource: git.NewChangeSource,
		newOutputWriter: ci.NewOutputWriter,
		repositoryName:  repositoryName,
	}
}

// ExecuteDetectChanges resolves the modules to deploy and writes deploy-modules and has-changes.
func ExecuteDetectChanges(ctx context.Context, config *schema.Config) (modules.Result, error) {
	return NewDetectChangesExec().Execute(ctx, config)
}

// Execute resolves modules and emits both outputs exactly once.
// Detection and output failures are logged and never returned; the only error is an
// invalid git backend, which configuration loading normally rejects first.
func (d *detectChangesExec) Execute(ctx context.Context, config *schema.Config) (modules.Result, error) {
	source, err := d.newChangeSource(config.Git.Backend, git.Options{
		RepoDir: config.Git.RepoDir,
		BaseRef: config.Git.BaseRef,
		HeadRef: config.Git.HeadRef,
	})
	if err != nil {
		return modules.Result{}, err
	}

	result := modules.Resolve(ctx, modules.Input{
		ManualModules:    config.Modules.Manual,
		ModulesDirectory: config.Modules.Directory,
		Exclude:          config.Modules.Exclude,
	}, source)

	encoded, err := modules.MarshalModules(result.Modules)
	if err != nil {
		log.Error("Failed to encode modules", "err", err)
		encoded = "[]"
	}

	sink := ci.NewSink(d.newOutputWriter(config.CI.OutputFile, config.CI.SummaryFile))
	sink.Emit(ci.OutputDeployModules, encoded)
	sink.Emit(ci.OutputHasChanges, strconv.FormatBool(result.HasChanges))

	switch result.Source {
	case modules.SourceManual:
		log.Info("Manually selected modules: " + encoded)
	case modules.SourceAuto:
		if result.HasChanges {
			log.Info("Auto-detected changed modules: " + encoded)
		}
	}

	if config.CI.Summary {
		sink.Summarize(ci.RenderSummary(ci.SummaryInput{
			Repository: d.repositoryName(config.Git.RepoDir),
			Context:    ci.GitHubContext(),
			Modules:    result.Modules,
			HasChanges: result.HasChanges,
			Source:     string(result.Source),
			Reason:     result.Reason,
		}))
	}

	return result, nil
}

// repositoryName prefers GITHUB_REPOSITORY and falls back to the first git remote.
func repositoryName(repoDir string) string {
	if repository := ci.GitHubContext().Repository; repository != "" {
		return repository
	}

	repo, err := git.OpenRepo(repoDir)
	if err != nil {
		log.Debug("Unable to open repository for the job summary", "err", err)
		return ""
	}

	info, err := git.GetRepoInfo(repo)
	if err != nil {
		log.Debug("Unable to read repository remote for the job summary", "err", err)
		return ""
	}
	return info.FullName()
}
