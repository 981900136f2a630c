// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-15
// Last Modified: 2026-10-15

package commands

import (
	"fmt"
	"strings"

	"github.com/similigh/check-labeler/internal/core/pipeline"
)

// buildSummary renders the run result as markdown for the job summary.
func buildSummary(r *pipeline.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "### check-labeler: pull request #%d\n\n", r.PullRequest)

	if r.Skipped {
		fmt.Fprintf(&sb, "Skipped: %s\n", r.SkipReason)
		return sb.String()
	}

	refs := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		refs = append(refs, "#"+issue)
	}
	fmt.Fprintf(&sb, "- Issues: %s\n", strings.Join(refs, ", "))
	if r.CheckFound {
		fmt.Fprintf(&sb, "- Checked: %t\n", r.Checked)
	}

	if len(r.Changes) == 0 {
		return sb.String()
	}

	sb.WriteString("\n| Issue | Label | Action |\n|---|---|---|\n")
	for _, c := range r.Changes {
		action := string(c.Action)
		if c.DryRun {
			action += " (dry run)"
		}
		fmt.Fprintf(&sb, "| #%s | %s | %s |\n", c.Issue, c.Label, action)
	}

	return sb.String()
}

// changedIssues lists the issues whose labels were updated.
func changedIssues(r *pipeline.Result) []string {
	issues := make([]string, 0, len(r.Changes))
	for _, c := range r.Changes {
		if !c.DryRun {
			issues = append(issues, c.Issue)
		}
	}
	return issues
}
