// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-15
// Last Modified: 2026-10-15

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v60/github"

	"github.com/similigh/check-labeler/internal/core/pipeline"
)

// parseEvent decodes a pull_request / pull_request_target payload.
// Payloads without a top-level "number" yield an Event with Number 0.
func parseEvent(data []byte) (*pipeline.Event, error) {
	var ev github.PullRequestEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("failed to parse event payload: %w", err)
	}

	return &pipeline.Event{
		Owner:  ev.GetRepo().GetOwner().GetLogin(),
		Repo:   ev.GetRepo().GetName(),
		Number: ev.GetNumber(),
	}, nil
}

// resolveEvent builds the event from the payload file, the runner
// environment and the command-line overrides, in that order.
func resolveEvent(opts runOptions, getenv func(string) string) (*pipeline.Event, error) {
	event := &pipeline.Event{}

	path := opts.EventPath
	if path == "" {
		path = getenv("GITHUB_EVENT_PATH")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read event payload: %w", err)
		}
		if event, err = parseEvent(data); err != nil {
			return nil, err
		}
	}

	if event.Owner == "" || event.Repo == "" {
		if repo := getenv("GITHUB_REPOSITORY"); repo != "" {
			owner, name, err := splitRepo(repo)
			if err != nil {
				return nil, err
			}
			event.Owner, event.Repo = owner, name
		}
	}

	if opts.Repo != "" {
		owner, name, err := splitRepo(opts.Repo)
		if err != nil {
			return nil, err
		}
		event.Owner, event.Repo = owner, name
	}
	if opts.Number > 0 {
		event.Number = opts.Number
	}

	return event, nil
}

func splitRepo(s string) (owner, repo string, err error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo format: %s (expected owner/name)", s)
	}
	return parts[0], parts[1], nil
}
