// Package modules decides which deployable modules a commit touched.
package modules

import (
	"context"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/cloudposse/detect-changes/pkg/git"
	log "github.com/cloudposse/detect-changes/pkg/logger"
)

// Source records which path produced a Result.
type Source string

const (
	// SourceManual means the module list came from the manual override.
	SourceManual Source = "manual"
	// SourceAuto means modules were derived from changed files.
	SourceAuto Source = "auto"
	// SourceNone means no changed files were available.
	SourceNone Source = "none"
)

// Input holds the resolver inputs.
type Input struct {
	// ManualModules is a comma-separated override. When non-blank it replaces detection entirely.
	ManualModules string
	// ModulesDirectory is the prefix convention, e.g. "apps/". Empty means root level.
	ModulesDirectory string
	// Exclude lists doublestar patterns of paths to ignore.
	Exclude []string
}

// Result is the outcome of a detection run.
type Result struct {
	// Modules is never nil, so it always encodes as a JSON array.
	Modules    []string
	HasChanges bool
	Source     Source
	Reason     string
}

// Resolve computes the modules to deploy. The change source is only consulted when no manual
// override is given. Resolve never fails: an unavailable diff yields an empty result.
func Resolve(ctx context.Context, input Input, source git.ChangeSource) Result {
	if strings.TrimSpace(input.ManualModules) != "" {
		return resolveManual(input.ManualModules)
	}

	log.Info("Auto-detecting changed modules...")

	result := source.ChangedFiles(ctx)
	log.Info("Changed files:")
	log.Info(result.Output())

	if !result.Ok() || result.Output() == "" {
		reason := "No changes detected or git command failed"
		log.Info(reason)
		return Result{Modules: []string{}, Source: SourceNone, Reason: reason}
	}

	return resolveFiles(result.Files(), input)
}

// ParseManualModules splits a comma-separated list, trims each name and drops blanks and duplicates.
// Order of first appearance is kept.
func ParseManualModules(manual string) []string {
	names := lo.FilterMap(strings.Split(manual, ","), func(name string, _ int) (string, bool) {
		name = strings.TrimSpace(name)
		return name, name != ""
	})
	return NewOrderedSet(names...).Items()
}

func resolveManual(manual string) Result {
	log.Info("Using manually selected modules", "modules", manual)

	modules := ParseManualModules(manual)
	if len(modules) == 0 {
		log.Warn("Manual module list contains no module names", "modules", manual)
	}

	return Result{
		Modules:    modules,
		HasChanges: true,
		Source:     SourceManual,
		Reason:     "Manually selected modules",
	}
}

func resolveFiles(files []string, input Input) Result {
	dir := input.ModulesDirectory

	candidates := lo.Filter(files, func(path string, _ int) bool {
		if Excluded(path, input.Exclude) {
			log.Debug("Ignoring excluded path", "file", path)
			return false
		}
		return InModulesDirectory(path, dir)
	})

	set := NewOrderedSet()
	for _, path := range candidates {
		if name, ok := ModuleName(path, dir); ok {
			set.Add(name)
		}
	}

	modules := set.Items()
	slices.Sort(modules)

	if len(modules) == 0 {
		location := "root level"
		if dir != "" {
			location = dir + " directory"
		}
		reason := "No modules changed in " + location
		log.Info(reason)
		return Result{Modules: modules, Source: SourceAuto, Reason: reason}
	}

	return Result{
		Modules:    modules,
		HasChanges: true,
		Source:     SourceAuto,
		Reason:     "Auto-detected changed modules",
	}
}
