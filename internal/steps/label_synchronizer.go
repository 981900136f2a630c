// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-15
// Last Modified: 2026-10-15

package steps

import (
	"fmt"
	"log"
	"strconv"

	"github.com/similigh/check-labeler/internal/core/pipeline"
	"github.com/similigh/check-labeler/internal/utils/text"
)

// LabelSynchronizer adds or removes the configured label on every referenced
// issue so that it matches the checkbox state. Issues are handled one at a
// time; the first failure aborts the step and earlier updates are kept.
type LabelSynchronizer struct {
	github   pipeline.GitHubClient
	notifier pipeline.Notifier
	dryRun   bool
}

// NewLabelSynchronizer creates a new label synchronizer step.
func NewLabelSynchronizer(deps *pipeline.Dependencies) *LabelSynchronizer {
	return &LabelSynchronizer{
		github:   deps.GitHub,
		notifier: deps.Notifier,
		dryRun:   deps.DryRun,
	}
}

// Name returns the step name.
func (s *LabelSynchronizer) Name() string {
	return "label_synchronizer"
}

// Run synchronizes the label on each issue.
func (s *LabelSynchronizer) Run(ctx *pipeline.Context) error {
	if s.github == nil {
		return errNoGitHubClient
	}

	label := ctx.Config.Label
	dryRun := s.dryRun || ctx.Config.DryRun

	for _, issue := range ctx.Issues {
		number, err := strconv.Atoi(issue)
		if err != nil {
			return fmt.Errorf("invalid issue number %q: %w", issue, err)
		}

		current, err := s.github.GetIssueLabels(ctx.Ctx, ctx.Event.Owner, ctx.Event.Repo, number)
		if err != nil {
			return apiError("get labels of issue #"+issue, err)
		}

		updated, action := text.ReconcileLabel(current, label, ctx.Checked)
		if action == text.LabelUnchanged {
			log.Printf("[label_synchronizer] #%s already in sync", issue)
			continue
		}

		change := pipeline.LabelChange{Issue: issue, Label: label, Action: action, DryRun: dryRun}

		if dryRun {
			log.Printf("[label_synchronizer] DRY RUN: Would set labels of #%s to %v", issue, updated)
			ctx.Result.Changes = append(ctx.Result.Changes, change)
			continue
		}

		if err := s.github.ReplaceIssueLabels(ctx.Ctx, ctx.Event.Owner, ctx.Event.Repo, number, updated); err != nil {
			return apiError("update labels of issue #"+issue, err)
		}

		ctx.Result.Changes = append(ctx.Result.Changes, change)
		if s.notifier != nil {
			s.notifier.Notice(changeMessage(change))
		}
	}

	return nil
}

func changeMessage(c pipeline.LabelChange) string {
	if c.Action == text.LabelRemoved {
		return fmt.Sprintf("Removed %s from #%s.", c.Label, c.Issue)
	}
	return fmt.Sprintf("Added %s in #%s.", c.Label, c.Issue)
}
