// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-15
// Last Modified: 2026-10-15

package steps

import (
	"errors"
	"fmt"
	"log"

	"github.com/similigh/check-labeler/internal/core/pipeline"
	"github.com/similigh/check-labeler/internal/integrations/github"
	"github.com/similigh/check-labeler/internal/utils/text"
)

var errNoGitHubClient = errors.New("GitHub client not configured")

// apiError wraps a GitHub API failure, naming the common causes.
func apiError(action string, err error) error {
	switch {
	case github.IsNotFoundError(err):
		return fmt.Errorf("failed to %s (not found): %w", action, err)
	case github.IsAuthenticationError(err):
		return fmt.Errorf("failed to %s (token lacks access): %w", action, err)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// CommitScanner lists the pull request commits and extracts the issues they reference.
type CommitScanner struct {
	github pipeline.GitHubClient
}

// NewCommitScanner creates a new commit scanner step.
func NewCommitScanner(deps *pipeline.Dependencies) *CommitScanner {
	return &CommitScanner{
		github: deps.GitHub,
	}
}

// Name returns the step name.
func (s *CommitScanner) Name() string {
	return "commit_scanner"
}

// Run fetches commits and stores the referenced issues in the context.
func (s *CommitScanner) Run(ctx *pipeline.Context) error {
	if s.github == nil {
		return errNoGitHubClient
	}

	commits, err := s.github.ListPullRequestCommits(ctx.Ctx, ctx.Event.Owner, ctx.Event.Repo, ctx.Event.Number)
	if err != nil {
		return apiError(fmt.Sprintf("list commits of PR #%d", ctx.Event.Number), err)
	}
	ctx.Commits = commits

	messages := make([]string, 0, len(commits))
	for _, c := range commits {
		messages = append(messages, c.Message)
	}

	ctx.Issues = text.ExtractIssueRefs(messages)
	ctx.Result.Issues = ctx.Issues
	log.Printf("[commit_scanner] %d commits, issues: %v", len(commits), ctx.Issues)

	if len(ctx.Issues) == 0 {
		return ctx.Result.Skip(ReasonNoIssues)
	}

	return nil
}
