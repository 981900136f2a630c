// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-15

package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v60/github"
)

// commitsPageSize is the size of the single commits page requested per pull request.
const commitsPageSize = 100

// PullRequestsService is the subset of the go-github pull requests API used here.
type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	ListCommits(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error)
}

// IssuesService is the subset of the go-github issues API used here.
type IssuesService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.Issue, *github.Response, error)
	Edit(ctx context.Context, owner, repo string, number int, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
}

// RepositoriesService is the subset of the go-github repositories API used here.
type RepositoriesService interface {
	GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error)
}

// Commit is a pull request commit.
type Commit struct {
	SHA     string
	Message string
}

// PullRequest holds the pull request fields the labeler reads.
type PullRequest struct {
	Number int
	Title  string
	Body   string
	URL    string
}

// Client wraps the GitHub API client.
type Client struct {
	pulls  PullRequestsService
	issues IssuesService
	repos  RepositoriesService
}

// NewClientWithServices builds a client on top of the given services.
func NewClientWithServices(pulls PullRequestsService, issues IssuesService, repos RepositoriesService) *Client {
	return &Client{
		pulls:  pulls,
		issues: issues,
		repos:  repos,
	}
}

// ListPullRequestCommits fetches the first page of commits of a pull request.
func (c *Client) ListPullRequestCommits(ctx context.Context, owner, repo string, number int) ([]Commit, error) {
	if number <= 0 {
		return nil, fmt.Errorf("invalid pull request number: %d", number)
	}

	commits, _, err := c.pulls.ListCommits(ctx, owner, repo, number, &github.ListOptions{
		PerPage: commitsPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list commits of %s/%s#%d: %w", owner, repo, number, err)
	}

	result := make([]Commit, 0, len(commits))
	for _, rc := range commits {
		result = append(result, Commit{
			SHA:     rc.GetSHA(),
			Message: rc.GetCommit().GetMessage(),
		})
	}

	return result, nil
}

// GetPullRequest fetches pull request details.
func (c *Client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error) {
	pr, _, err := c.pulls.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pull request %s/%s#%d: %w", owner, repo, number, err)
	}

	return &PullRequest{
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
		URL:    pr.GetHTMLURL(),
	}, nil
}

// GetIssueLabels fetches the label names currently set on an issue.
func (c *Client) GetIssueLabels(ctx context.Context, owner, repo string, number int) ([]string, error) {
	issue, _, err := c.issues.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issue %s/%s#%d: %w", owner, repo, number, err)
	}

	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.GetName())
	}

	return labels, nil
}

// ReplaceIssueLabels overwrites the label set of an issue. An empty slice
// clears every label.
func (c *Client) ReplaceIssueLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	if labels == nil {
		labels = []string{}
	}

	_, _, err := c.issues.Edit(ctx, owner, repo, number, &github.IssueRequest{
		Labels: &labels,
	})
	if err != nil {
		return fmt.Errorf("failed to update labels of %s/%s#%d: %w", owner, repo, number, err)
	}

	return nil
}

// GetFileContent fetches a file from a repository at the given ref.
func (c *Client) GetFileContent(ctx context.Context, owner, repo, path, ref string) ([]byte, error) {
	file, _, _, err := c.repos.GetContents(ctx, owner, repo, path, &github.RepositoryContentGetOptions{
		Ref: ref,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s from %s/%s@%s: %w", path, owner, repo, ref, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%s in %s/%s@%s is not a file", path, owner, repo, ref)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return []byte(content), nil
}
