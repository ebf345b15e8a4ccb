package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Success(t *testing.T) {
	result := Success("  apps/web/a.ts\napps/api/b.ts\n")

	assert.True(t, result.Ok())
	assert.NoError(t, result.Err())
	assert.Equal(t, "apps/web/a.ts\napps/api/b.ts", result.Output())
	assert.Equal(t, []string{"apps/web/a.ts", "apps/api/b.ts"}, result.Files())
}

func TestResult_Failure(t *testing.T) {
	reason := errors.New("boom")
	result := Failure(reason)

	assert.False(t, result.Ok())
	assert.Same(t, reason, result.Err())
	assert.Empty(t, result.Output())
	assert.Empty(t, result.Files())
}

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: []string{}},
		{name: "single", input: "readme.md", expected: []string{"readme.md"}},
		{name: "preserves order", input: "b\na\nc", expected: []string{"b", "a", "c"}},
		{name: "strips carriage returns", input: "a\r\nb", expected: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lines(tt.input))
		})
	}
}
