package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	errUtils "github.com/cloudposse/detect-changes/errors"
	"github.com/cloudposse/detect-changes/internal/exec"
	"github.com/cloudposse/detect-changes/pkg/ci"
	"github.com/cloudposse/detect-changes/pkg/config"
	"github.com/cloudposse/detect-changes/pkg/env"
	"github.com/cloudposse/detect-changes/pkg/git"
	log "github.com/cloudposse/detect-changes/pkg/logger"
	"github.com/cloudposse/detect-changes/pkg/schema"
)

// detectChangesExecCreator is replaced in tests.
var detectChangesExecCreator exec.DetectChangesExecCreator = exec.NewDetectChangesExec

// RootCmd is the detect-changes command.
var RootCmd = NewRootCmd()

// NewRootCmd builds the root command with its flags and subcommands.
func NewRootCmd() *cobra.Command {
	var detectChangesConfig schema.Config

	rootCmd := &cobra.Command{
		Use:   "detect-changes",
		Short: "Detect which modules changed in the last commit",
		Long: `Detect which deployable modules of a monorepo changed between two revisions and publish them
as the "deploy-modules" (JSON array) and "has-changes" outputs of a GitHub Actions step.

A manual, comma-separated module list replaces detection entirely. Without a GITHUB_OUTPUT file
the outputs are logged instead.`,
		Example: `  # Modules under apps/ changed by the last commit
  detect-changes

  # Top-level directories are modules
  detect-changes --layout root

  # Deploy a fixed set of modules
  detect-changes --manual-modules web,api`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := initConfig(cmd)
			if err != nil {
				return err
			}
			detectChangesConfig = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := detectChangesExecCreator().Execute(cmd.Context(), &detectChangesConfig)
			return err
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errUtils.WithExitCode(err, errUtils.ExitCodeUsage)
	})

	flags := rootCmd.Flags()
	flags.String(config.ManualModulesFlag, "", withEnvVars("Comma-separated modules to deploy instead of detecting changes", config.ModulesManualKey))
	flags.String(config.ModulesDirectoryFlag, "", withEnvVars("Directory prefix holding the modules, e.g. apps/", config.ModulesDirectoryKey))
	flags.String(config.LayoutFlag, "", withEnvVars(fmt.Sprintf("Default modules directory when none is set: %q (apps/) or %q (top level)", config.LayoutApps, config.LayoutRoot), config.ModulesLayoutKey))
	flags.StringSlice(config.ExcludeFlag, nil, withEnvVars("Glob patterns of changed paths to ignore", config.ModulesExcludeKey))
	flags.String(config.GitBackendFlag, "", withEnvVars(fmt.Sprintf("How changed files are listed: %q or %q", git.BackendExec, git.BackendGoGit), config.GitBackendKey))
	flags.String(config.BaseRefFlag, "", withEnvVars("Base revision of the diff (default HEAD~1)", config.GitBaseRefKey))
	flags.String(config.HeadRefFlag, "", withEnvVars("Head revision of the diff (default HEAD)", config.GitHeadRefKey))
	flags.StringP(config.RepoDirFlag, "C", "", withEnvVars("Repository directory (default current directory)", config.GitRepoDirKey))
	flags.String(config.EnvDirFlag, "", withEnvVars("Directory holding the .env files (default current directory)", config.EnvDirKey))
	flags.Bool(config.NoEnvFilesFlag, false, withEnvVars("Do not load .env files", config.EnvDisabledKey))
	flags.Bool(config.SummaryFlag, false, withEnvVars("Append a markdown job summary to GITHUB_STEP_SUMMARY", config.CISummaryKey))
	flags.String(config.LogLevelFlag, "", withEnvVars("Log level: trace, debug, info, warn, error", config.LogsLevelKey))
	flags.String(config.ConfigFlag, "", "Config file (default "+config.CliConfigFileName+".yaml in the repository directory)")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// initConfig loads env files and resolves the configuration for a run.
func initConfig(cmd *cobra.Command) (schema.Config, error) {
	v, err := config.New(cmd.Flags())
	if err != nil {
		return schema.Config{}, err
	}

	// Applied early so env file loading honors the level from flags and the real environment.
	// An invalid level is reported once the configuration is validated.
	if err := configureLogger(v.GetString(config.LogsLevelKey)); err != nil {
		log.SetLevel(log.InfoLevel)
	}

	if v.GetBool(config.EnvDisabledKey) {
		log.Debug("Env file loading disabled")
	} else if _, err := env.Load(v.GetString(config.EnvDirKey)); err != nil {
		log.Warn("Failed to apply env files", "err", err)
	}

	configFile, err := cmd.Flags().GetString(config.ConfigFlag)
	if err != nil {
		return schema.Config{}, err
	}

	cfg, err := config.LoadConfig(v, cmd.Flags(), configFile)
	if err != nil {
		return schema.Config{}, err
	}

	if err := configureLogger(cfg.Logs.Level); err != nil {
		return schema.Config{}, err
	}

	log.Debug("Resolved configuration",
		"modules_directory", cfg.Modules.Directory,
		"git_backend", cfg.Git.Backend,
		"base_ref", cfg.Git.BaseRef,
		"head_ref", cfg.Git.HeadRef,
		"log_level", log.LevelString(log.GetLevel()),
	)

	return cfg, nil
}

func configureLogger(level string) error {
	parsed, err := log.ParseLogLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(parsed)

	// The Actions log viewer renders ANSI colors even though stderr is not a terminal.
	if ci.IsGitHubActions() {
		log.Default().SetColorProfile(termenv.ANSI256)
	}
	return nil
}

func withEnvVars(usage, key string) string {
	return fmt.Sprintf("%s (env: %s)", usage, strings.Join(config.EnvVarsFor(key), ", "))
}

// usageArgs marks positional argument errors as CLI misuse.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errUtils.Build(errUtils.ErrUnexpectedArgs).
				WithCause(err).
				WithHintf("Run '%s --help' for usage", cmd.CommandPath()).
				WithExitCode(errUtils.ExitCodeUsage).
				Err()
		}
		return nil
	}
}
