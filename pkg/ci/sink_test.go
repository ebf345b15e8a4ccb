package ci

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	log "github.com/cloudposse/detect-changes/pkg/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	previous := log.Default()
	var buf bytes.Buffer
	logger := log.NewWithOutput(&buf)
	logger.SetLevel(log.DebugLevel)
	log.SetDefault(logger)
	t.Cleanup(func() { log.SetDefault(previous) })

	return &buf
}

type failingWriter struct {
	calls int
}

func (w *failingWriter) WriteOutput(_, _ string) error {
	w.calls++
	return errors.New("disk full")
}

func (w *failingWriter) WriteSummary(_ string) error {
	w.calls++
	return errors.New("disk full")
}

func TestSink_EmitToFile(t *testing.T) {
	buf := captureLogs(t)
	outputPath := filepath.Join(t.TempDir(), "output")

	sink := NewSink(NewFileOutputWriter(outputPath, ""))
	assert.True(t, sink.Emit(OutputDeployModules, `["web"]`))
	assert.True(t, sink.Emit(OutputHasChanges, "true"))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "deploy-modules=[\"web\"]\nhas-changes=true\n", string(data))
	assert.Contains(t, buf.String(), "Wrote to GitHub output: has-changes=true")
}

func TestSink_EmitToLog(t *testing.T) {
	buf := captureLogs(t)

	sink := NewSink(&LogOutputWriter{})
	assert.True(t, sink.Emit(OutputDeployModules, "[]"))
	assert.True(t, sink.Emit(OutputHasChanges, "false"))

	assert.Contains(t, buf.String(), "deploy-modules=[]")
	assert.Contains(t, buf.String(), "has-changes=false")
	assert.NotContains(t, buf.String(), "Wrote to GitHub output")
}

func TestSink_AbsorbsFailures(t *testing.T) {
	buf := captureLogs(t)
	writer := &failingWriter{}

	sink := NewSink(writer)
	assert.False(t, sink.Emit(OutputHasChanges, "true"))
	assert.False(t, sink.Summarize("## summary"))

	// One attempt each, no retry.
	assert.Equal(t, 2, writer.calls)
	assert.Contains(t, buf.String(), "Failed to write to GitHub output")
	assert.Contains(t, buf.String(), "Failed to write job summary")
}

func TestSink_UnwritableOutputFile(t *testing.T) {
	buf := captureLogs(t)
	outputPath := filepath.Join(t.TempDir(), "missing-dir", "output")

	assert.False(t, NewSink(NewFileOutputWriter(outputPath, "")).Emit(OutputHasChanges, "true"))
	assert.Contains(t, buf.String(), "Failed to write to GitHub output")
}
