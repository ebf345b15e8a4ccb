package modules

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/lo"
)

// PrefixDepth counts the non-empty segments of a modules directory prefix.
// "apps/", "/apps" and "apps//" all have depth 1.
func PrefixDepth(modulesDirectory string) int {
	return len(lo.Compact(strings.Split(modulesDirectory, "/")))
}

// InModulesDirectory reports whether path belongs to the modules directory.
// The match is a literal string prefix; an empty directory matches every path.
func InModulesDirectory(path, modulesDirectory string) bool {
	return modulesDirectory == "" || strings.HasPrefix(path, modulesDirectory)
}

// ModuleName maps a changed path to its module name.
// For the root level this is the first segment, or the whole path when it has no slash.
// Otherwise it is the segment following the prefix. ok is false when the path is too shallow
// or the segment is blank.
func ModuleName(path, modulesDirectory string) (name string, ok bool) {
	parts := strings.Split(path, "/")

	depth := 0
	if modulesDirectory != "" {
		depth = PrefixDepth(modulesDirectory)
	}
	if depth >= len(parts) {
		return "", false
	}

	name = parts[depth]
	if strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}

// Excluded reports whether path matches any of the doublestar patterns.
// Patterns are validated when the configuration is loaded, so match errors count as no match.
func Excluded(path string, patterns []string) bool {
	return lo.ContainsBy(patterns, func(pattern string) bool {
		matched, err := doublestar.Match(pattern, path)
		return err == nil && matched
	})
}
