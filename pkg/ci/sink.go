package ci

import (
	log "github.com/cloudposse/detect-changes/pkg/logger"
)

// Sink delivers outputs without ever failing the run.
// Write errors are logged once and dropped; nothing is retried.
type Sink struct {
	writer OutputWriter
}

// NewSink creates a Sink over writer.
func NewSink(writer OutputWriter) *Sink {
	return &Sink{writer: writer}
}

// Emit writes one output. It reports whether the write succeeded.
func (s *Sink) Emit(key, value string) bool {
	if err := s.writer.WriteOutput(key, value); err != nil {
		log.Error("Failed to write to GitHub output", "key", key, "err", err)
		return false
	}

	if _, ok := s.writer.(*FileOutputWriter); ok {
		log.Info("Wrote to GitHub output: " + key + "=" + value)
	}
	return true
}

// Summarize appends content to the job summary. It reports whether the write succeeded.
func (s *Sink) Summarize(content string) bool {
	if err := s.writer.WriteSummary(content); err != nil {
		log.Error("Failed to write job summary", "err", err)
		return false
	}
	return true
}
