package git

import "strings"

// Result is the outcome of asking a ChangeSource for changed files.
// It is either a Success carrying the raw diff output or a Failure carrying the reason.
type Result struct {
	output string
	err    error
}

// Success wraps diff output. Surrounding whitespace is trimmed.
func Success(output string) Result {
	return Result{output: strings.TrimSpace(output)}
}

// Failure wraps the reason the change source could not produce a diff.
func Failure(err error) Result {
	return Result{err: err}
}

// Ok reports whether the result is a Success.
func (r Result) Ok() bool {
	return r.err == nil
}

// Err returns the failure reason, or nil for a Success.
func (r Result) Err() error {
	return r.err
}

// Output returns the trimmed diff output. It is empty for a Failure.
func (r Result) Output() string {
	return r.output
}

// Files splits the output into changed paths, one per line, in diff order.
func (r Result) Files() []string {
	return Lines(r.output)
}

// Lines splits newline-delimited diff output into paths. Empty input yields no paths.
func Lines(text string) []string {
	if text == "" {
		return []string{}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
