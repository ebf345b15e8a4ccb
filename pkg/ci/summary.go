package ci

import (
	"fmt"
	"strings"
)

// SummaryInput holds what the job summary reports.
type SummaryInput struct {
	// Repository is "owner/name", optional.
	Repository string
	Context    Context
	Modules    []string
	HasChanges bool
	Source     string
	Reason     string
}

// RenderSummary renders the detection result as GitHub-flavored markdown.
func RenderSummary(in SummaryInput) string {
	var b strings.Builder

	b.WriteString("## Detected changes")
	if in.Repository != "" {
		fmt.Fprintf(&b, " in `%s`", in.Repository)
	}
	b.WriteString("\n\n")

	if url := in.Context.CommitURL(); url != "" {
		fmt.Fprintf(&b, "Commit: [`%s`](%s)\n\n", shortSHA(in.Context.SHA), url)
	}

	if len(in.Modules) == 0 {
		if in.HasChanges {
			b.WriteString("Manual override selected no modules.\n")
		} else {
			fmt.Fprintf(&b, "%s.\n", strings.TrimSuffix(in.Reason, "."))
		}
		return b.String()
	}

	fmt.Fprintf(&b, "| # | Module |\n|---|---|\n")
	for i, module := range in.Modules {
		fmt.Fprintf(&b, "| %d | `%s` |\n", i+1, module)
	}
	fmt.Fprintf(&b, "\n_%d module(s), source: %s_\n", len(in.Modules), in.Source)

	return b.String()
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
