// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-15
// Last Modified: 2026-10-15

package text

import (
	"testing"
)

func TestNewCheckboxValidation(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		shouldFail bool
	}{
		{"single group", `\[(.)\] Done`, false},
		{"two groups", `\[(.)\] (Done)`, false},
		{"no group", `\[.\] Done`, true},
		{"non-capturing only", `\[(?:.)\] Done`, true},
		{"invalid syntax", `\[(.\] Done`, true},
		{"lookahead unsupported", `\[(.)\](?= Done)`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCheckbox(tt.pattern)
			if tt.shouldFail && err == nil {
				t.Errorf("Expected error for pattern %q", tt.pattern)
			}
			if !tt.shouldFail && err != nil {
				t.Errorf("Unexpected error for pattern %q: %v", tt.pattern, err)
			}
		})
	}
}

func TestCheckboxEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		body        string
		wantChecked bool
		wantFound   bool
	}{
		{"checked", `\[(.)\] Done`, "- [x] Done", true, true},
		{"unchecked", `\[(.)\] Done`, "- [ ] Done", false, true},
		{"upper case x", `\[(.)\] Done`, "- [X] Done", true, true},
		{"other mark", `\[(.)\] Done`, "- [v] Done", false, true},
		{"not found", `\[(.)\] Done`, "- [x] Something else", false, false},
		{"empty body", `\[(.)\] Done`, "", false, false},
		{"first match wins", `\[(.)\] Done`, "- [ ] Done\n- [x] Done", false, true},
		{"group did not participate", `\[(x)?\] Done`, "- [] Done", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, err := NewCheckbox(tt.pattern)
			if err != nil {
				t.Fatalf("NewCheckbox(%q) failed: %v", tt.pattern, err)
			}

			checked, found := cb.Evaluate(tt.body)
			if found != tt.wantFound {
				t.Errorf("Expected found=%v, got %v", tt.wantFound, found)
			}
			if checked != tt.wantChecked {
				t.Errorf("Expected checked=%v, got %v", tt.wantChecked, checked)
			}
		})
	}
}
