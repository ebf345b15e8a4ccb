package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder provides a fluent API for constructing enriched errors.
type ErrorBuilder struct {
	err       error
	cause     error
	hints     []string
	details   []string
	context   map[string]interface{}
	exitCode  *int
	sentinels []error
}

// Build creates a new ErrorBuilder from a base error.
// Leaf errors (no wrapped cause) are treated as sentinels so errors.Is() keeps
// matching them after a cause is attached.
func Build(err error) *ErrorBuilder {
	builder := &ErrorBuilder{err: err}

	if err != nil && errors.UnwrapOnce(err) == nil {
		builder.sentinels = append(builder.sentinels, err)
	}

	return builder
}

// WithCause attaches the underlying error that triggered the sentinel.
// The cause message is appended to the sentinel message and both stay in the chain.
func (b *ErrorBuilder) WithCause(cause error) *ErrorBuilder {
	b.cause = cause
	return b
}

// WithHint adds a user-facing hint to the error.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.hints = append(b.hints, hint)
	return b
}

// WithHintf adds a formatted user-facing hint to the error.
func (b *ErrorBuilder) WithHintf(format string, args ...interface{}) *ErrorBuilder {
	b.hints = append(b.hints, fmt.Sprintf(format, args...))
	return b
}

// WithExplanation adds a detailed explanation to the error.
func (b *ErrorBuilder) WithExplanation(explanation string) *ErrorBuilder {
	b.details = append(b.details, explanation)
	return b
}

// WithContext adds safe structured context to the error.
// Context is shown by the formatter in verbose mode.
func (b *ErrorBuilder) WithContext(key string, value interface{}) *ErrorBuilder {
	if b.context == nil {
		b.context = make(map[string]interface{})
	}
	b.context[key] = value
	return b
}

// WithExitCode attaches an exit code to the error.
func (b *ErrorBuilder) WithExitCode(code int) *ErrorBuilder {
	b.exitCode = &code
	return b
}

// WithSentinel marks the error with a sentinel error for errors.Is() checks.
func (b *ErrorBuilder) WithSentinel(sentinel error) *ErrorBuilder {
	b.sentinels = append(b.sentinels, sentinel)
	return b
}

// Err finalizes and returns the enriched error.
func (b *ErrorBuilder) Err() error {
	if b.err == nil {
		return nil
	}

	err := b.err

	if b.cause != nil {
		err = errors.WithStack(fmt.Errorf("%w: %w", err, b.cause))
	}

	for _, detail := range b.details {
		err = errors.WithDetail(err, detail)
	}

	for _, hint := range b.hints {
		err = errors.WithHint(err, hint)
	}

	if len(b.context) > 0 {
		keys := make([]string, 0, len(b.context))
		for k := range b.context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		// Format string: "path=%s ref=%s".
		formatParts := make([]string, 0, len(keys))
		safeValues := make([]interface{}, 0, len(keys))
		for _, key := range keys {
			formatParts = append(formatParts, key+"=%s")
			safeValues = append(safeValues, errors.Safe(b.context[key]))
		}

		err = errors.WithSafeDetails(err, strings.Join(formatParts, " "), safeValues...)
	}

	// Sentinels are marked last so they sit at the top of the chain.
	for _, sentinel := range b.sentinels {
		err = errors.Mark(err, sentinel)
	}

	if b.exitCode != nil {
		err = WithExitCode(err, *b.exitCode)
	}

	return err
}
