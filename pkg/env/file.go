// Package env layers .env files into the process environment before configuration is read.
package env

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"

	errUtils "github.com/cloudposse/detect-changes/errors"
	log "github.com/cloudposse/detect-changes/pkg/logger"
)

const (
	// QuietEnvVar suppresses the per-file load messages.
	QuietEnvVar = "DOTENV_CONFIG_QUIET"
	// DebugEnvVar logs every key that was skipped because it was already set.
	DebugEnvVar = "DOTENV_CONFIG_DEBUG"
	// VaultKeyEnvVar selects an encrypted env vault, which is not supported.
	VaultKeyEnvVar = "DOTENV_KEY"
)

// DefaultFiles are the env files read, in processing order.
var DefaultFiles = []string{
	".env.production.local",
	".env.production",
	".env.development.local",
	".env.development",
	".env.local",
	".env",
}

// File is a parsed env file.
type File struct {
	Path string
	Vars map[string]string
}

// Loader applies env files to the environment without overriding existing values.
type Loader struct {
	dir       string
	files     []string
	lookupEnv func(string) (string, bool)
	setenv    func(string, string) error
}

// NewLoader creates a Loader reading DefaultFiles from dir.
func NewLoader(dir string, opts ...Option) *Loader {
	l := &Loader{
		dir:       dir,
		files:     DefaultFiles,
		lookupEnv: os.LookupEnv,
		setenv:    os.Setenv,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the env files in dir and applies them. It returns the paths of the files that were loaded.
func Load(dir string) ([]string, error) {
	return NewLoader(dir).Load()
}

// Load applies every existing env file in order. A key is set only if it is not already present,
// so values from the real environment win and, among files, the first file defining a key wins.
// Unreadable files are logged and skipped. The returned error joins any failures to set a variable.
func (l *Loader) Load() ([]string, error) {
	quiet := l.flag(QuietEnvVar)
	debug := l.flag(DebugEnvVar)

	if _, ok := l.lookupEnv(VaultKeyEnvVar); ok {
		log.Debug("Encrypted env vaults are not supported, ignoring " + VaultKeyEnvVar)
	}

	files := ReadEnvFiles(l.dir, l.files)
	loaded := make([]string, 0, len(files))
	var errs []error

	for _, file := range files {
		keys := lo.Keys(file.Vars)
		slices.Sort(keys)

		applied := 0
		for _, key := range keys {
			if _, exists := l.lookupEnv(key); exists {
				if debug {
					log.Debug("Skipping env key that is already set", "key", key, "file", file.Path)
				}
				continue
			}
			if err := l.setenv(key, file.Vars[key]); err != nil {
				errs = append(errs, errUtils.Build(errUtils.ErrSetEnv).
					WithCause(err).
					WithContext("key", key).
					WithContext("file", file.Path).
					Err())
				continue
			}
			applied++
		}

		loaded = append(loaded, file.Path)
		if !quiet {
			log.Info("Loaded env file", "file", file.Path, "keys", applied)
		}
	}

	return loaded, errors.Join(errs...)
}

func (l *Loader) flag(name string) bool {
	value, _ := l.lookupEnv(name)
	return strings.EqualFold(strings.TrimSpace(value), "true")
}

// ReadEnvFiles parses the named files in dir, in order. Missing files and directories are skipped.
// A file that cannot be parsed is logged and skipped.
func ReadEnvFiles(dir string, names []string) []File {
	files := make([]File, 0, len(names))

	for _, name := range names {
		path := name
		if dir != "" && !filepath.IsAbs(name) {
			path = filepath.Join(dir, name)
		}

		info, err := os.Stat(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Warn("Unable to stat env file", "file", path, "err", err)
			}
			continue
		}
		if info.IsDir() {
			continue
		}

		vars, err := godotenv.Read(path)
		if err != nil {
			log.Error("Failed to parse env file", "file", path, "err", errUtils.Build(errUtils.ErrEnvFileParse).
				WithCause(err).
				WithContext("file", path).
				Err())
			continue
		}

		files = append(files, File{Path: path, Vars: vars})
	}

	return files
}
