package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalModules(t *testing.T) {
	tests := []struct {
		name     string
		modules  []string
		expected string
	}{
		{name: "nil", modules: nil, expected: "[]"},
		{name: "empty", modules: []string{}, expected: "[]"},
		{name: "order preserved", modules: []string{"web", "api"}, expected: `["web","api"]`},
		{name: "html not escaped", modules: []string{"a&b"}, expected: `["a&b"]`},
		{name: "quotes escaped", modules: []string{`we"b`}, expected: `["we\"b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := MarshalModules(tt.modules)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, encoded)
		})
	}
}
