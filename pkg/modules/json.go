package modules

import (
	jsoniter "github.com/json-iterator/go"

	errUtils "github.com/cloudposse/detect-changes/errors"
)

// HTML characters are left unescaped so names round-trip exactly as a JavaScript consumer would write them.
var json = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

// MarshalModules encodes module names as a compact JSON array. A nil or empty list encodes as [].
func MarshalModules(modules []string) (string, error) {
	if modules == nil {
		modules = []string{}
	}

	data, err := json.Marshal(modules)
	if err != nil {
		return "", errUtils.Build(errUtils.ErrEncodeModules).
			WithCause(err).
			Err()
	}
	return string(data), nil
}
