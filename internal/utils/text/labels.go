// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-15
// Last Modified: 2026-10-15

package text

import (
	"slices"
)

// LabelAction describes what ReconcileLabel did to a label list.
type LabelAction string

const (
	LabelUnchanged LabelAction = "unchanged"
	LabelAdded     LabelAction = "added"
	LabelRemoved   LabelAction = "removed"
)

// ReconcileLabel makes the presence of label in labels match want.
// It returns the resulting list and the action taken. The input slice is never
// modified; when the action is LabelUnchanged the original slice is returned.
func ReconcileLabel(labels []string, label string, want bool) ([]string, LabelAction) {
	present := slices.Contains(labels, label)

	switch {
	case want && !present:
		updated := make([]string, 0, len(labels)+1)
		updated = append(updated, labels...)
		return append(updated, label), LabelAdded

	case !want && present:
		updated := make([]string, 0, len(labels))
		for _, l := range labels {
			if l != label {
				updated = append(updated, l)
			}
		}
		return updated, LabelRemoved
	}

	return labels, LabelUnchanged
}
