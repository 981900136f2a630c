// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-15

package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"
)

// ClientOption configures the underlying go-github client.
type ClientOption func(*github.Client) (*github.Client, error)

// WithBaseURL points the client at a GitHub Enterprise API endpoint,
// e.g. the value of GITHUB_API_URL inside an Actions runner.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *github.Client) (*github.Client, error) {
		baseURL = strings.TrimSpace(baseURL)
		if baseURL == "" || strings.TrimSuffix(baseURL, "/") == "https://api.github.com" {
			return c, nil
		}
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		// Uploads are never used; reuse the API URL.
		ent, err := c.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
		}
		return ent, nil
	}
}

// NewClient creates a new GitHub client using the provided token.
// If token is empty, it returns an unauthenticated client.
func NewClient(ctx context.Context, token string, opts ...ClientOption) (*Client, error) {
	var tc *http.Client

	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(tc)
	for _, opt := range opts {
		var err error
		if client, err = opt(client); err != nil {
			return nil, err
		}
	}

	return NewClientWithServices(client.PullRequests, client.Issues, client.Repositories), nil
}
