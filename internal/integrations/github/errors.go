// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-15
// Last Modified: 2026-10-15

package github

import (
	"errors"
	"net/http"

	"github.com/google/go-github/v60/github"
)

// IsNotFoundError reports whether err wraps a GitHub 404 response.
func IsNotFoundError(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsAuthenticationError reports whether err wraps a 401 or 403 response that is not rate limiting.
func IsAuthenticationError(err error) bool {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return false
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return false
	}
	return hasStatus(err, http.StatusUnauthorized) || hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, status int) bool {
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return respErr.Response.StatusCode == status
	}
	return false
}
