package commands

import (
	"context"
	"slices"

	"github.com/similigh/check-labeler/internal/integrations/github"
)

// fakeGitHub is an in-memory pipeline.GitHubClient.
type fakeGitHub struct {
	commits []github.Commit
	body    string
	labels  map[int][]string
	calls   int
	updates map[int][]string
}

func (f *fakeGitHub) ListPullRequestCommits(ctx context.Context, owner, repo string, number int) ([]github.Commit, error) {
	f.calls++
	return f.commits, nil
}

func (f *fakeGitHub) GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error) {
	f.calls++
	return &github.PullRequest{Number: number, Body: f.body}, nil
}

func (f *fakeGitHub) GetIssueLabels(ctx context.Context, owner, repo string, number int) ([]string, error) {
	f.calls++
	return slices.Clone(f.labels[number]), nil
}

func (f *fakeGitHub) ReplaceIssueLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	f.calls++
	if f.updates == nil {
		f.updates = make(map[int][]string)
	}
	f.updates[number] = labels
	f.labels[number] = labels
	return nil
}
