// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-15
// Last Modified: 2026-10-15

// Package text holds the pure text helpers used by the pipeline steps:
// issue reference extraction, checkbox evaluation and label list edits.
package text

import (
	"regexp"
	"slices"
)

// issueRefPattern matches the commit convention "Issue #<number>".
// The digit group may be empty; such references are dropped by ExtractIssueRefs.
var issueRefPattern = regexp.MustCompile(`Issue #(\d*)`)

// ExtractIssueRefs returns the issue numbers referenced by the given commit
// messages, deduplicated and in first-seen order. Only the first reference in
// each message is considered.
func ExtractIssueRefs(messages []string) []string {
	issues := []string{}

	for _, msg := range messages {
		match := issueRefPattern.FindStringSubmatch(msg)
		if match == nil {
			continue
		}

		number := match[1]
		if number == "" {
			continue
		}

		if !slices.Contains(issues, number) {
			issues = append(issues, number)
		}
	}

	return issues
}
