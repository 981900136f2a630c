// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-15
// Last Modified: 2026-10-15

package text

import (
	"fmt"
	"regexp"
	"strings"
)

// Checkbox reads a markdown-style checkbox out of free text using a
// configured pattern. The first capture group holds the box content.
type Checkbox struct {
	pattern *regexp.Regexp
}

// NewCheckbox compiles the check pattern. The pattern must contain at least
// one capture group.
func NewCheckbox(pattern string) (*Checkbox, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid check-regexp %q: %w", pattern, err)
	}

	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("check-regexp %q must contain a capture group", pattern)
	}

	return &Checkbox{pattern: re}, nil
}

// Evaluate reports whether the checkbox is found in body and, if so, whether
// it is checked. A box counts as checked when its captured content is "x" or "X".
func (c *Checkbox) Evaluate(body string) (checked, found bool) {
	if body == "" {
		return false, false
	}

	match := c.pattern.FindStringSubmatch(body)
	if match == nil {
		return false, false
	}

	return strings.ToLower(match[1]) == "x", true
}

// String returns the source pattern.
func (c *Checkbox) String() string {
	return c.pattern.String()
}
