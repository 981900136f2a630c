// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-15

package steps

import (
	"github.com/similigh/check-labeler/internal/core/pipeline"
)

// RegisterAll registers all built-in steps with the registry.
func RegisterAll(r *pipeline.Registry) {
	r.Register("gatekeeper", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewGatekeeper(deps), nil
	})

	r.Register("commit_scanner", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewCommitScanner(deps), nil
	})

	r.Register("checkbox_evaluator", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewCheckboxEvaluator(deps), nil
	})

	r.Register("label_synchronizer", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewLabelSynchronizer(deps), nil
	})
}
