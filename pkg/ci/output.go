package ci

import (
	"fmt"
	"os"
	"strings"

	errUtils "github.com/cloudposse/detect-changes/errors"
	log "github.com/cloudposse/detect-changes/pkg/logger"
)

const outputFileMode = 0o644

// FileOutputWriter appends outputs to a file (like $GITHUB_OUTPUT).
type FileOutputWriter struct {
	outputPath  string
	summaryPath string
}

// NewFileOutputWriter creates a new FileOutputWriter.
func NewFileOutputWriter(outputPath, summaryPath string) *FileOutputWriter {
	return &FileOutputWriter{
		outputPath:  outputPath,
		summaryPath: summaryPath,
	}
}

// WriteOutput appends a key-value pair to the output file.
// Format: key=value (single line) or key<<EOF\nvalue\nEOF (multiline).
func (w *FileOutputWriter) WriteOutput(key, value string) error {
	return appendToFile(w.outputPath, FormatOutput(key, value))
}

// WriteSummary appends content to the job summary file. It is a no-op without a summary path.
func (w *FileOutputWriter) WriteSummary(content string) error {
	if w.summaryPath == "" {
		log.Debug("No job summary file configured, skipping summary")
		return nil
	}
	return appendToFile(w.summaryPath, content)
}

// FormatOutput renders one output entry in the GitHub Actions file command format.
func FormatOutput(key, value string) string {
	if !strings.Contains(value, "\n") {
		return fmt.Sprintf("%s=%s\n", key, value)
	}

	delimiter := "EOF"
	// The delimiter must not appear in the value.
	for strings.Contains(value, delimiter) {
		delimiter += "_"
	}
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", key, delimiter, value, delimiter)
}

func appendToFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, outputFileMode)
	if err != nil {
		return errUtils.Build(errUtils.ErrOpenOutputFile).
			WithCause(err).
			WithContext("path", path).
			Err()
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return errUtils.Build(errUtils.ErrWriteOutputFile).
			WithCause(err).
			WithContext("path", path).
			Err()
	}

	return nil
}

// LogOutputWriter logs outputs instead of writing them. Used outside CI.
type LogOutputWriter struct{}

// WriteOutput logs key=value at info level.
func (w *LogOutputWriter) WriteOutput(key, value string) error {
	log.Info(key + "=" + value)
	return nil
}

// WriteSummary logs the summary at debug level.
func (w *LogOutputWriter) WriteSummary(content string) error {
	log.Debug("Job summary", "content", content)
	return nil
}

// NewOutputWriter returns a FileOutputWriter when an output file is configured, otherwise a LogOutputWriter.
func NewOutputWriter(outputPath, summaryPath string) OutputWriter {
	if outputPath == "" {
		return &LogOutputWriter{}
	}
	return NewFileOutputWriter(outputPath, summaryPath)
}
