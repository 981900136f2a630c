// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-15
// Last Modified: 2026-10-15

package steps

import (
	"fmt"
	"log"

	"github.com/similigh/check-labeler/internal/core/pipeline"
	"github.com/similigh/check-labeler/internal/utils/text"
)

// CheckboxEvaluator reads the pull request body and evaluates the configured checkbox.
type CheckboxEvaluator struct {
	github pipeline.GitHubClient
}

// NewCheckboxEvaluator creates a new checkbox evaluator step.
func NewCheckboxEvaluator(deps *pipeline.Dependencies) *CheckboxEvaluator {
	return &CheckboxEvaluator{
		github: deps.GitHub,
	}
}

// Name returns the step name.
func (s *CheckboxEvaluator) Name() string {
	return "checkbox_evaluator"
}

// Run fetches the pull request and sets ctx.Checked.
func (s *CheckboxEvaluator) Run(ctx *pipeline.Context) error {
	if s.github == nil {
		return errNoGitHubClient
	}

	checkbox, err := text.NewCheckbox(ctx.Config.CheckRegexp)
	if err != nil {
		return err
	}

	pr, err := s.github.GetPullRequest(ctx.Ctx, ctx.Event.Owner, ctx.Event.Repo, ctx.Event.Number)
	if err != nil {
		return apiError(fmt.Sprintf("get PR #%d", ctx.Event.Number), err)
	}
	ctx.PullRequest = pr

	checked, found := checkbox.Evaluate(pr.Body)
	if !found {
		return ctx.Result.Skip(ReasonCheckNotFound)
	}

	ctx.Checked = checked
	ctx.Result.Checked = checked
	ctx.Result.CheckFound = true
	log.Printf("[checkbox_evaluator] PR #%d checkbox checked=%t", ctx.Event.Number, checked)

	return nil
}
