// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-15

// Package steps contains the modular "Lego block" pipeline steps.
// Each step implements the pipeline.Step interface.
package steps

import (
	"fmt"
	"log"

	"github.com/similigh/check-labeler/internal/core/pipeline"
)

// Skip reasons reported as warnings by the runner.
const (
	ReasonNoPullRequest = "No pull request number in payload."
	ReasonNoIssues      = "No issue numbers found in commits."
	ReasonCheckNotFound = "Check was not found."
)

// Gatekeeper checks that the event targets a pull request and that the
// configuration is usable before any API call is made.
type Gatekeeper struct{}

// NewGatekeeper creates a new gatekeeper step.
func NewGatekeeper(deps *pipeline.Dependencies) *Gatekeeper {
	return &Gatekeeper{}
}

// Name returns the step name.
func (s *Gatekeeper) Name() string {
	return "gatekeeper"
}

// Run validates the event and configuration.
func (s *Gatekeeper) Run(ctx *pipeline.Context) error {
	log.Printf("[gatekeeper] Event: PR #%d, Repo=%s/%s", ctx.Event.Number, ctx.Event.Owner, ctx.Event.Repo)

	if ctx.Event.Number <= 0 {
		return ctx.Result.Skip(ReasonNoPullRequest)
	}

	if ctx.Event.Owner == "" || ctx.Event.Repo == "" {
		return fmt.Errorf("repository owner and name are required (got %q/%q)", ctx.Event.Owner, ctx.Event.Repo)
	}

	if err := ctx.Config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}
