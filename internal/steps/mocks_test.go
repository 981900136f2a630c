package steps

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/similigh/check-labeler/internal/integrations/github"
)

type mockGitHub struct {
	mock.Mock
}

func (m *mockGitHub) ListPullRequestCommits(ctx context.Context, owner, repo string, number int) ([]github.Commit, error) {
	args := m.Called(ctx, owner, repo, number)
	commits, _ := args.Get(0).([]github.Commit)
	return commits, args.Error(1)
}

func (m *mockGitHub) GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error) {
	args := m.Called(ctx, owner, repo, number)
	pr, _ := args.Get(0).(*github.PullRequest)
	return pr, args.Error(1)
}

func (m *mockGitHub) GetIssueLabels(ctx context.Context, owner, repo string, number int) ([]string, error) {
	args := m.Called(ctx, owner, repo, number)
	labels, _ := args.Get(0).([]string)
	return labels, args.Error(1)
}

func (m *mockGitHub) ReplaceIssueLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	args := m.Called(ctx, owner, repo, number, labels)
	return args.Error(0)
}

type recordingNotifier struct {
	notices  []string
	warnings []string
}

func (n *recordingNotifier) Notice(msg string)  { n.notices = append(n.notices, msg) }
func (n *recordingNotifier) Warning(msg string) { n.warnings = append(n.warnings, msg) }
