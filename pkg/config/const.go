package config

const (
	// CliConfigFileName is the optional config file searched in the repository directory, without extension.
	CliConfigFileName = ".detect-changes"

	// EnvPrefix prefixes the tool's own environment variables.
	EnvPrefix = "DETECT_CHANGES"

	LayoutApps = "apps"
	LayoutRoot = "root"

	// AppsModulesDirectory is the prefix used by the "apps" layout.
	AppsModulesDirectory = "apps/"

	DefaultLayout  = LayoutApps
	DefaultBaseRef = "HEAD~1"
	DefaultHeadRef = "HEAD"
)

// Configuration keys.
const (
	ModulesManualKey    = "modules.manual"
	ModulesDirectoryKey = "modules.directory"
	ModulesLayoutKey    = "modules.layout"
	ModulesExcludeKey   = "modules.exclude"
	GitBackendKey       = "git.backend"
	GitBaseRefKey       = "git.base_ref"
	GitHeadRefKey       = "git.head_ref"
	GitRepoDirKey       = "git.repo_dir"
	EnvDisabledKey      = "env.disabled"
	EnvDirKey           = "env.dir"
	CIOutputFileKey     = "ci.output_file"
	CISummaryFileKey    = "ci.summary_file"
	CISummaryKey        = "ci.summary"
	LogsLevelKey        = "logs.level"
)

// Flag names.
const (
	ManualModulesFlag    = "manual-modules"
	ModulesDirectoryFlag = "modules-directory"
	LayoutFlag           = "layout"
	ExcludeFlag          = "exclude"
	GitBackendFlag       = "git-backend"
	BaseRefFlag          = "base-ref"
	HeadRefFlag          = "head-ref"
	RepoDirFlag          = "repo-dir"
	NoEnvFilesFlag       = "no-env-files"
	EnvDirFlag           = "env-dir"
	SummaryFlag          = "summary"
	LogLevelFlag         = "log-level"
	ConfigFlag           = "config"
)

// envBindings maps every configuration key to its environment variables.
// The first non-empty variable wins, so GitHub Actions inputs take precedence over local names.
var envBindings = map[string][]string{
	ModulesManualKey:    {"INPUT_MANUAL_MODULES", "MANUAL_MODULES"},
	ModulesDirectoryKey: {"INPUT_MODULES_DIRECTORY", "MODULES_DIRECTORY"},
	ModulesLayoutKey:    {"INPUT_LAYOUT", EnvPrefix + "_LAYOUT"},
	ModulesExcludeKey:   {"INPUT_EXCLUDE", EnvPrefix + "_EXCLUDE"},
	GitBackendKey:       {EnvPrefix + "_GIT_BACKEND"},
	GitBaseRefKey:       {"INPUT_BASE_REF", EnvPrefix + "_BASE_REF"},
	GitHeadRefKey:       {"INPUT_HEAD_REF", EnvPrefix + "_HEAD_REF"},
	GitRepoDirKey:       {EnvPrefix + "_REPO_DIR"},
	EnvDisabledKey:      {EnvPrefix + "_NO_ENV_FILES"},
	EnvDirKey:           {EnvPrefix + "_ENV_DIR"},
	CIOutputFileKey:     {"GITHUB_OUTPUT"},
	CISummaryFileKey:    {"GITHUB_STEP_SUMMARY"},
	CISummaryKey:        {"INPUT_SUMMARY", EnvPrefix + "_SUMMARY"},
	LogsLevelKey:        {"INPUT_LOG_LEVEL", EnvPrefix + "_LOG_LEVEL"},
}

// flagBindings maps configuration keys to the root command flags.
var flagBindings = map[string]string{
	ModulesManualKey:    ManualModulesFlag,
	ModulesDirectoryKey: ModulesDirectoryFlag,
	ModulesLayoutKey:    LayoutFlag,
	ModulesExcludeKey:   ExcludeFlag,
	GitBackendKey:       GitBackendFlag,
	GitBaseRefKey:       BaseRefFlag,
	GitHeadRefKey:       HeadRefFlag,
	GitRepoDirKey:       RepoDirFlag,
	EnvDisabledKey:      NoEnvFilesFlag,
	EnvDirKey:           EnvDirFlag,
	CISummaryKey:        SummaryFlag,
	LogsLevelKey:        LogLevelFlag,
}
