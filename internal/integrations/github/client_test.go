// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-15

package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-github/v60/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClient_ListPullRequestCommits(t *testing.T) {
	t.Run("should map commit messages in order", func(t *testing.T) {
		pulls := &MockPullRequestsService{}
		client := NewClientWithServices(pulls, &MockIssuesService{}, &MockRepositoriesService{})

		pulls.On("ListCommits", mock.Anything, "acme", "core", 42, &github.ListOptions{PerPage: 100}).
			Return([]*github.RepositoryCommit{
				{SHA: github.String("a1"), Commit: &github.Commit{Message: github.String("Issue #1 first")}},
				{SHA: github.String("b2"), Commit: &github.Commit{Message: github.String("second")}},
			}, &github.Response{}, nil).Once()

		commits, err := client.ListPullRequestCommits(context.Background(), "acme", "core", 42)

		require.NoError(t, err)
		assert.Equal(t, []Commit{{SHA: "a1", Message: "Issue #1 first"}, {SHA: "b2", Message: "second"}}, commits)
		pulls.AssertExpectations(t)
	})

	t.Run("should reject invalid pull request number", func(t *testing.T) {
		pulls := &MockPullRequestsService{}
		client := NewClientWithServices(pulls, &MockIssuesService{}, &MockRepositoriesService{})

		_, err := client.ListPullRequestCommits(context.Background(), "acme", "core", 0)

		assert.Error(t, err)
		pulls.AssertNotCalled(t, "ListCommits", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should wrap API errors", func(t *testing.T) {
		pulls := &MockPullRequestsService{}
		client := NewClientWithServices(pulls, &MockIssuesService{}, &MockRepositoriesService{})
		apiErr := errors.New("boom")

		pulls.On("ListCommits", mock.Anything, "acme", "core", 42, mock.Anything).
			Return(nil, nil, apiErr).Once()

		_, err := client.ListPullRequestCommits(context.Background(), "acme", "core", 42)

		require.Error(t, err)
		assert.ErrorIs(t, err, apiErr)
		assert.Contains(t, err.Error(), "acme/core#42")
	})
}

func TestClient_GetPullRequest(t *testing.T) {
	pulls := &MockPullRequestsService{}
	client := NewClientWithServices(pulls, &MockIssuesService{}, &MockRepositoriesService{})

	pulls.On("Get", mock.Anything, "acme", "core", 7).
		Return(&github.PullRequest{
			Number:  github.Int(7),
			Title:   github.String("Add labeler"),
			Body:    github.String("- [x] Done"),
			HTMLURL: github.String("https://github.com/acme/core/pull/7"),
		}, &github.Response{}, nil).Once()

	pr, err := client.GetPullRequest(context.Background(), "acme", "core", 7)

	require.NoError(t, err)
	assert.Equal(t, 7, pr.Number)
	assert.Equal(t, "- [x] Done", pr.Body)
	assert.Equal(t, "https://github.com/acme/core/pull/7", pr.URL)
}

func TestClient_GetPullRequestNilBody(t *testing.T) {
	pulls := &MockPullRequestsService{}
	client := NewClientWithServices(pulls, &MockIssuesService{}, &MockRepositoriesService{})

	pulls.On("Get", mock.Anything, "acme", "core", 7).
		Return(&github.PullRequest{Number: github.Int(7)}, &github.Response{}, nil).Once()

	pr, err := client.GetPullRequest(context.Background(), "acme", "core", 7)

	require.NoError(t, err)
	assert.Empty(t, pr.Body)
}

func TestClient_GetIssueLabels(t *testing.T) {
	issues := &MockIssuesService{}
	client := NewClientWithServices(&MockPullRequestsService{}, issues, &MockRepositoriesService{})

	issues.On("Get", mock.Anything, "acme", "core", 12).
		Return(&github.Issue{Labels: []*github.Label{
			{Name: github.String("bug")},
			{Name: github.String("ready")},
		}}, &github.Response{}, nil).Once()

	labels, err := client.GetIssueLabels(context.Background(), "acme", "core", 12)

	require.NoError(t, err)
	assert.Equal(t, []string{"bug", "ready"}, labels)
}

func TestClient_ReplaceIssueLabels(t *testing.T) {
	t.Run("should send the full label list", func(t *testing.T) {
		issues := &MockIssuesService{}
		client := NewClientWithServices(&MockPullRequestsService{}, issues, &MockRepositoriesService{})

		issues.On("Edit", mock.Anything, "acme", "core", 12, mock.MatchedBy(func(req *github.IssueRequest) bool {
			return req.Labels != nil && len(*req.Labels) == 2 && (*req.Labels)[1] == "ready"
		})).Return(&github.Issue{}, &github.Response{}, nil).Once()

		err := client.ReplaceIssueLabels(context.Background(), "acme", "core", 12, []string{"bug", "ready"})

		assert.NoError(t, err)
		issues.AssertExpectations(t)
	})

	t.Run("should send an empty list instead of nil", func(t *testing.T) {
		issues := &MockIssuesService{}
		client := NewClientWithServices(&MockPullRequestsService{}, issues, &MockRepositoriesService{})

		issues.On("Edit", mock.Anything, "acme", "core", 12, mock.MatchedBy(func(req *github.IssueRequest) bool {
			return req.Labels != nil && *req.Labels != nil && len(*req.Labels) == 0
		})).Return(&github.Issue{}, &github.Response{}, nil).Once()

		err := client.ReplaceIssueLabels(context.Background(), "acme", "core", 12, nil)

		assert.NoError(t, err)
		issues.AssertExpectations(t)
	})
}

func TestClient_GetFileContent(t *testing.T) {
	t.Run("should decode file content", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		client := NewClientWithServices(&MockPullRequestsService{}, &MockIssuesService{}, repos)

		repos.On("GetContents", mock.Anything, "acme", ".github", "check-labeler.yaml", &github.RepositoryContentGetOptions{Ref: "main"}).
			Return(&github.RepositoryContent{
				Encoding: github.String("base64"),
				Content:  github.String("bGFiZWw6IHJlYWR5Cg=="),
			}, nil, &github.Response{}, nil).Once()

		data, err := client.GetFileContent(context.Background(), "acme", ".github", "check-labeler.yaml", "main")

		require.NoError(t, err)
		assert.Equal(t, "label: ready\n", string(data))
	})

	t.Run("should reject directories", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		client := NewClientWithServices(&MockPullRequestsService{}, &MockIssuesService{}, repos)

		repos.On("GetContents", mock.Anything, "acme", ".github", "configs", mock.Anything).
			Return(nil, []*github.RepositoryContent{{}}, &github.Response{}, nil).Once()

		_, err := client.GetFileContent(context.Background(), "acme", ".github", "configs", "main")

		assert.ErrorContains(t, err, "is not a file")
	})
}

func TestErrorClassification(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "https://api.github.com/repos/acme/core/issues/1", nil)
	newErr := func(status int) error {
		return fmt.Errorf("wrapped: %w", &github.ErrorResponse{
			Response: &http.Response{StatusCode: status, Request: req},
			Message:  http.StatusText(status),
		})
	}

	tests := []struct {
		name     string
		err      error
		notFound bool
		auth     bool
	}{
		{"not found", newErr(http.StatusNotFound), true, false},
		{"unauthorized", newErr(http.StatusUnauthorized), false, true},
		{"forbidden", newErr(http.StatusForbidden), false, true},
		{"rate limited", &github.RateLimitError{Response: &http.Response{StatusCode: http.StatusForbidden, Request: req}}, false, false},
		{"server error", newErr(http.StatusBadGateway), false, false},
		{"plain error", errors.New("404 in text only"), false, false},
		{"nil", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, IsNotFoundError(tt.err))
			assert.Equal(t, tt.auth, IsAuthenticationError(tt.err))
		})
	}
}

func TestNewClientWithBaseURL(t *testing.T) {
	client, err := NewClient(context.Background(), "token", WithBaseURL("https://ghe.example.com/api/v3"))
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = NewClient(context.Background(), "", WithBaseURL("://bad"))
	assert.Error(t, err)
}
