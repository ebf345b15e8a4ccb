package errors

import (
	"github.com/cockroachdb/errors"
)

// Git errors.
var (
	ErrGitCommand    = errors.New("git command failed")
	ErrGitRepository = errors.New("failed to open git repository")
	ErrGitRevision   = errors.New("failed to resolve git revision")
	ErrGitDiff       = errors.New("failed to compute git diff")
)

// CI output errors.
var (
	ErrOpenOutputFile  = errors.New("failed to open output file")
	ErrWriteOutputFile = errors.New("failed to write output file")
	ErrEncodeModules   = errors.New("failed to encode module list")
)

// Configuration errors.
var (
	ErrEnvFileParse      = errors.New("failed to parse env file")
	ErrSetEnv            = errors.New("failed to set environment variable")
	ErrInvalidLayout     = errors.New("invalid modules layout")
	ErrInvalidGitBackend = errors.New("invalid git backend")
	ErrInvalidLogLevel   = errors.New("invalid log level")
	ErrInvalidExclude    = errors.New("invalid exclude pattern")
	ErrReadConfig        = errors.New("failed to read config file")
	ErrBindFlag          = errors.New("failed to bind flag")
)

// CLI errors.
var (
	ErrUnexpectedArgs = errors.New("unexpected arguments")
	ErrInvalidFormat  = errors.New("invalid output format")
)
