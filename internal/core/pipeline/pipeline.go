// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-15

// Package pipeline provides the core pipeline engine for check-labeler.
// It defines the Step interface and Context structure used by all pipeline steps.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/similigh/check-labeler/internal/core/config"
	"github.com/similigh/check-labeler/internal/integrations/github"
	"github.com/similigh/check-labeler/internal/utils/text"
)

// ErrSkipPipeline indicates that the pipeline should stop gracefully.
// This is not an error condition, just an early exit (e.g., no PR number, no issues).
var ErrSkipPipeline = errors.New("skip remaining pipeline steps")

// Step defines the interface that all pipeline steps must implement.
type Step interface {
	// Name returns the unique identifier for this step.
	Name() string

	// Run executes the step's logic.
	// It should return ErrSkipPipeline to stop the pipeline gracefully,
	// or any other error to indicate failure.
	Run(ctx *Context) error
}

// Event is the part of the triggering payload the labeler needs.
// A zero Number means the event carries no pull request.
type Event struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Number int    `json:"number"`
}

// LabelChange records one label update on an issue.
type LabelChange struct {
	Issue  string           `json:"issue"`
	Label  string           `json:"label"`
	Action text.LabelAction `json:"action"`
	DryRun bool             `json:"dry_run,omitempty"`
}

// Result holds the accumulated results from pipeline execution.
type Result struct {
	RunID       string        `json:"run_id"`
	PullRequest int           `json:"pull_request"`
	Issues      []string      `json:"issues"`
	Checked     bool          `json:"checked"`
	CheckFound  bool          `json:"check_found"`
	Changes     []LabelChange `json:"changes"`
	Skipped     bool          `json:"skipped"`
	SkipReason  string        `json:"skip_reason,omitempty"`
}

// Skip marks the result as skipped and returns ErrSkipPipeline.
func (r *Result) Skip(reason string) error {
	r.Skipped = true
	r.SkipReason = reason
	return ErrSkipPipeline
}

// Context carries data through the pipeline steps.
type Context struct {
	// Ctx is the Go context for cancellation and timeouts.
	Ctx context.Context

	// Event is the triggering pull request event.
	Event *Event

	// Config is the loaded configuration.
	Config *config.Config

	// Result accumulates the processing results.
	Result *Result

	// Commits holds the pull request commits fetched by the commit scanner.
	Commits []github.Commit

	// Issues holds the referenced issue numbers, in first-seen order.
	Issues []string

	// PullRequest is set by the checkbox evaluator.
	PullRequest *github.PullRequest

	// Checked is the evaluated checkbox state.
	Checked bool
}

// NewContext creates a new pipeline context for a pull request event.
func NewContext(ctx context.Context, event *Event, cfg *config.Config) *Context {
	return &Context{
		Ctx:    ctx,
		Event:  event,
		Config: cfg,
		Result: &Result{
			RunID:       uuid.NewString(),
			PullRequest: event.Number,
			Issues:      []string{},
			Changes:     []LabelChange{},
		},
	}
}

// Pipeline executes a sequence of steps.
type Pipeline struct {
	steps []Step
}

// New creates a new pipeline with the given steps.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run executes all steps in order.
// Stops on the first error (unless it's ErrSkipPipeline, which is graceful).
func (p *Pipeline) Run(ctx *Context) error {
	for _, step := range p.steps {
		if err := step.Run(ctx); err != nil {
			if errors.Is(err, ErrSkipPipeline) {
				return nil
			}
			return fmt.Errorf("step '%s' failed: %w", step.Name(), err)
		}
	}
	return nil
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// Steps returns the list of steps (for introspection).
func (p *Pipeline) Steps() []Step {
	return p.steps
}
