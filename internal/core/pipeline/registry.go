// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-15

// Package pipeline provides step registration and preset workflow building.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/similigh/check-labeler/internal/integrations/github"
)

// GitHubClient is the GitHub API surface used by the steps.
// *github.Client implements it.
type GitHubClient interface {
	ListPullRequestCommits(ctx context.Context, owner, repo string, number int) ([]github.Commit, error)
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error)
	GetIssueLabels(ctx context.Context, owner, repo string, number int) ([]string, error)
	ReplaceIssueLabels(ctx context.Context, owner, repo string, number int, labels []string) error
}

// Notifier receives user-facing messages, e.g. Actions workflow commands.
type Notifier interface {
	Notice(msg string)
	Warning(msg string)
}

// Registry holds registered step factories.
// Step factories create Step instances, allowing for dependency injection.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]StepFactory
}

// StepFactory is a function that creates a Step.
// It receives dependencies (like clients, config) as parameters.
type StepFactory func(deps *Dependencies) (Step, error)

// Dependencies holds the dependencies that can be injected into steps.
type Dependencies struct {
	GitHub   GitHubClient
	Notifier Notifier
	DryRun   bool
}

// NewRegistry creates a new step registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]StepFactory),
	}
}

// Register adds a step factory to the registry.
func (r *Registry) Register(name string, factory StepFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get retrieves a step factory by name.
func (r *Registry) Get(name string) (StepFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[name]
	return factory, ok
}

// BuildFromNames creates a pipeline from a list of step names.
func (r *Registry) BuildFromNames(names []string, deps *Dependencies) (*Pipeline, error) {
	var steps []Step
	for _, name := range names {
		factory, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown step: %s", name)
		}
		step, err := factory(deps)
		if err != nil {
			return nil, fmt.Errorf("failed to create step '%s': %w", name, err)
		}
		steps = append(steps, step)
	}
	return New(steps...), nil
}

// DefaultWorkflow is the preset used when no workflow is named.
const DefaultWorkflow = "sync-labels"

// Presets defines the built-in workflow presets.
var Presets = map[string][]string{
	// sync-labels: scan commits, read the checkbox and update issue labels
	"sync-labels": {
		"gatekeeper",
		"commit_scanner",
		"checkbox_evaluator",
		"label_synchronizer",
	},

	// report-only: compute issues and checkbox state without touching labels
	"report-only": {
		"gatekeeper",
		"commit_scanner",
		"checkbox_evaluator",
	},
}

// GetPreset returns the step names for a preset workflow.
func GetPreset(name string) ([]string, bool) {
	steps, ok := Presets[name]
	return steps, ok
}

// ResolveSteps determines the steps to use for a workflow name.
// An empty name selects DefaultWorkflow.
func ResolveSteps(workflow string) ([]string, error) {
	if workflow == "" {
		workflow = DefaultWorkflow
	}
	steps, ok := GetPreset(workflow)
	if !ok {
		return nil, fmt.Errorf("unknown workflow: %s", workflow)
	}
	return steps, nil
}
