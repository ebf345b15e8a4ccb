package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/detect-changes/errors"
	"github.com/cloudposse/detect-changes/pkg/git"
	log "github.com/cloudposse/detect-changes/pkg/logger"
	"github.com/cloudposse/detect-changes/pkg/schema"
)

// New creates a viper instance with defaults, environment bindings and, when flags is non-nil,
// flag bindings. Values are resolved lazily, so environment variables set after New returns
// (for example by the env file loader) are still observed.
func New(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetTypeByDefaultValue(true)
	setDefaultConfiguration(v)

	for key, envVars := range envBindings {
		args := append([]string{key}, envVars...)
		if err := v.BindEnv(args...); err != nil {
			return nil, err
		}
	}

	if flags == nil {
		return v, nil
	}

	for key, flagName := range flagBindings {
		flag := flags.Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, errUtils.Build(errUtils.ErrBindFlag).
				WithCause(err).
				WithContext("flag", flagName).
				Err()
		}
	}

	return v, nil
}

// setDefaultConfiguration sets default configuration for the viper instance.
func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault(ModulesLayoutKey, DefaultLayout)
	v.SetDefault(GitBackendKey, git.BackendExec)
	v.SetDefault(GitBaseRefKey, DefaultBaseRef)
	v.SetDefault(GitHeadRefKey, DefaultHeadRef)
	v.SetDefault(GitRepoDirKey, ".")
	v.SetDefault(EnvDirKey, ".")
	v.SetDefault(LogsLevelKey, "info")
}

// LoadConfig reads the optional config file, decodes every source into schema.Config and
// validates it. configFile, when set, must exist; otherwise CliConfigFileName is looked up
// in the repository directory, skipped when absent and ignored with a warning when unreadable.
// Invalid values are usage errors only when they come from flags; values from the environment
// or a config file fall back to their defaults so a run always publishes its outputs.
func LoadConfig(v *viper.Viper, flags *pflag.FlagSet, configFile string) (schema.Config, error) {
	var cfg schema.Config

	if configFile != "" {
		if err := readExplicitConfig(v, configFile); err != nil {
			return cfg, err
		}
	} else {
		readWorkDirConfig(v, v.GetString(GitRepoDirKey))
	}

	normalizeBools(v, flags)

	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return cfg, errUtils.Build(errUtils.ErrReadConfig).
			WithCause(err).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	if err := normalize(&cfg, func(key string) bool { return fromFlag(flags, key) }); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func decodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))
}

// fromFlag reports whether the value of key was set on the command line.
func fromFlag(flags *pflag.FlagSet, key string) bool {
	if flags == nil {
		return false
	}
	name, ok := flagBindings[key]
	if !ok {
		return false
	}
	flag := flags.Lookup(name)
	return flag != nil && flag.Changed
}

// normalizeBools replaces boolean values that do not parse, such as INPUT_SUMMARY=yes, with false.
// Flag values are parsed by pflag and never reach the fallback.
func normalizeBools(v *viper.Viper, flags *pflag.FlagSet) {
	for _, key := range []string{EnvDisabledKey, CISummaryKey} {
		if fromFlag(flags, key) {
			continue
		}
		raw := v.Get(key)
		value, err := cast.ToBoolE(raw)
		if err != nil {
			log.Warn("Ignoring invalid boolean", "key", key, "value", raw)
		}
		v.Set(key, value)
	}
}

// readWorkDirConfig merges CliConfigFileName from dir if present. The file is decoded on its own
// first; a file that cannot be read or decoded is logged and skipped.
func readWorkDirConfig(v *viper.Viper, dir string) {
	fileViper := viper.New()
	fileViper.AddConfigPath(dir)
	fileViper.SetConfigName(CliConfigFileName)

	err := fileViper.ReadInConfig()
	if err == nil {
		var decoded schema.Config
		err = fileViper.Unmarshal(&decoded, decodeHook())
	}

	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		if mergeErr := v.MergeConfigMap(fileViper.AllSettings()); mergeErr != nil {
			log.Warn("Ignoring config file", "file", fileViper.ConfigFileUsed(), "err", mergeErr)
			return
		}
		log.Debug("Loaded config file", "file", fileViper.ConfigFileUsed())
	case errors.As(err, &notFound):
		log.Trace("Config file not found", "dir", dir, "name", CliConfigFileName)
	default:
		log.Warn("Ignoring unreadable config file", "dir", dir, "name", CliConfigFileName, "err", err)
	}
}

// readExplicitConfig merges a config file given on the command line.
func readExplicitConfig(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return errUtils.Build(errUtils.ErrReadConfig).
			WithCause(err).
			WithContext("path", path).
			WithHintf("Check the path passed to --%s", ConfigFlag).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		v.SetConfigType(ext)
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return errUtils.Build(errUtils.ErrReadConfig).
			WithCause(err).
			WithContext("path", path).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
	log.Debug("Loaded config file", "file", path)
	return nil
}

// normalize resolves derived values and validates enum values. An invalid value set by a flag
// is returned as an error; any other invalid value is logged and replaced by its default.
func normalize(cfg *schema.Config, setByFlag func(key string) bool) error {
	directory, err := ResolveModulesDirectory(cfg.Modules.Directory, cfg.Modules.Layout)
	if err != nil {
		if setByFlag(ModulesLayoutKey) {
			return err
		}
		log.Warn("Ignoring invalid modules layout", "layout", cfg.Modules.Layout, "default", DefaultLayout)
		cfg.Modules.Layout = DefaultLayout
		directory, _ = ResolveModulesDirectory(cfg.Modules.Directory, DefaultLayout)
	}
	cfg.Modules.Directory = directory

	patterns := lo.Compact(lo.Map(cfg.Modules.Exclude, func(pattern string, _ int) string {
		return strings.TrimSpace(pattern)
	}))
	cfg.Modules.Exclude = make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if doublestar.ValidatePattern(pattern) {
			cfg.Modules.Exclude = append(cfg.Modules.Exclude, pattern)
			continue
		}
		if setByFlag(ModulesExcludeKey) {
			return errUtils.Build(errUtils.ErrInvalidExclude).
				WithContext("pattern", pattern).
				WithExitCode(errUtils.ExitCodeUsage).
				Err()
		}
		log.Warn("Ignoring invalid exclude pattern", "pattern", pattern)
	}

	backend, err := git.ParseBackend(cfg.Git.Backend)
	if err != nil {
		if setByFlag(GitBackendKey) {
			return err
		}
		log.Warn("Ignoring invalid git backend", "backend", cfg.Git.Backend, "default", git.BackendExec)
		backend = git.BackendExec
	}
	cfg.Git.Backend = backend

	if strings.TrimSpace(cfg.Git.BaseRef) == "" {
		cfg.Git.BaseRef = DefaultBaseRef
	}
	if strings.TrimSpace(cfg.Git.HeadRef) == "" {
		cfg.Git.HeadRef = DefaultHeadRef
	}

	if _, err := log.ParseLogLevel(cfg.Logs.Level); err != nil {
		if setByFlag(LogsLevelKey) {
			return err
		}
		log.Warn("Ignoring invalid log level", "level", cfg.Logs.Level, "default", log.LevelString(log.InfoLevel))
		cfg.Logs.Level = log.LevelString(log.InfoLevel)
	}

	return nil
}

// ResolveModulesDirectory returns the configured prefix, or the layout default when the prefix is empty.
// An empty prefix counts as unset because CI systems pass unset inputs as empty strings.
func ResolveModulesDirectory(directory, layout string) (string, error) {
	var layoutDirectory string
	switch strings.ToLower(strings.TrimSpace(layout)) {
	case "", LayoutApps:
		layoutDirectory = AppsModulesDirectory
	case LayoutRoot:
		layoutDirectory = ""
	default:
		return "", errUtils.Build(errUtils.ErrInvalidLayout).
			WithContext("layout", layout).
			WithHintf("Supported layouts are %q (modules under %s) and %q (top-level directories)", LayoutApps, AppsModulesDirectory, LayoutRoot).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	if directory != "" {
		return directory, nil
	}
	return layoutDirectory, nil
}

// EnvVarsFor returns the environment variables bound to key, in precedence order.
func EnvVarsFor(key string) []string {
	return slices.Clone(envBindings[key])
}

// BoundEnvVars returns every environment variable read by the configuration, sorted.
func BoundEnvVars() []string {
	names := lo.Uniq(lo.Flatten(lo.Values(envBindings)))
	slices.Sort(names)
	return names
}
