// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-15
// Last Modified: 2026-10-15

package text

import (
	"reflect"
	"testing"
)

func TestExtractIssueRefs(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     []string
	}{
		{
			name:     "dedupes in first-seen order",
			messages: []string{"fix Issue #12 bug", "Issue #7 done", "Issue #12 again"},
			want:     []string{"12", "7"},
		},
		{
			name:     "messages without reference contribute nothing",
			messages: []string{"chore: bump deps", "refs #5", "issue #9"},
			want:     []string{},
		},
		{
			name:     "only first reference per message",
			messages: []string{"Issue #3 and Issue #4"},
			want:     []string{"3"},
		},
		{
			name:     "empty digit group is dropped",
			messages: []string{"Issue # pending", "Issue #8"},
			want:     []string{"8"},
		},
		{
			name:     "multiline message",
			messages: []string{"feat: labels\n\nCloses Issue #21\nCo-authored-by: someone"},
			want:     []string{"21"},
		},
		{
			name:     "no commits",
			messages: nil,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractIssueRefs(tt.messages)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractIssueRefs(%q) = %v, want %v", tt.messages, got, tt.want)
			}
		})
	}
}
