// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-15

package commands

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/similigh/check-labeler/internal/core/pipeline"
	"github.com/similigh/check-labeler/internal/steps"
	"github.com/similigh/check-labeler/internal/tui"
)

// Wrapper step to send status updates
type statusReportingStep struct {
	inner      pipeline.Step
	statusChan chan<- tui.PipelineStatusMsg
}

func (s *statusReportingStep) Name() string {
	return s.inner.Name()
}

func (s *statusReportingStep) Run(ctx *pipeline.Context) error {
	s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusStarted}

	err := s.inner.Run(ctx)

	if err != nil {
		if errors.Is(err, pipeline.ErrSkipPipeline) {
			s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusSkipped, Message: ctx.Result.SkipReason}
			return err
		}
		s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusError, Message: err.Error()}
		return err
	}

	s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusSuccess, Message: "Completed"}
	return nil
}

// runPipeline builds the named steps and runs them against pCtx. When
// statusChan is non-nil every step reports its progress on it and the
// channel is closed once the pipeline returns.
func runPipeline(pCtx *pipeline.Context, deps *pipeline.Dependencies, stepNames []string, statusChan chan<- tui.PipelineStatusMsg) error {
	if statusChan != nil {
		defer close(statusChan)
	}

	registry := pipeline.NewRegistry()
	steps.RegisterAll(registry)

	built, err := registry.BuildFromNames(stepNames, deps)
	if err != nil {
		return err
	}

	if statusChan == nil {
		return built.Run(pCtx)
	}

	var wrapped []pipeline.Step
	for _, step := range built.Steps() {
		wrapped = append(wrapped, &statusReportingStep{inner: step, statusChan: statusChan})
	}

	return pipeline.New(wrapped...).Run(pCtx)
}

// runWithTUI runs the pipeline while rendering its progress in the terminal.
func runWithTUI(pCtx *pipeline.Context, deps *pipeline.Dependencies, stepNames []string) error {
	statusChan := make(chan tui.PipelineStatusMsg)
	title := fmt.Sprintf("check-labeler · %s/%s#%d", pCtx.Event.Owner, pCtx.Event.Repo, pCtx.Event.Number)

	errCh := make(chan error, 1)
	go func() {
		errCh <- runPipeline(pCtx, deps, stepNames, statusChan)
	}()

	final, tuiErr := tea.NewProgram(tui.NewModel(title, stepNames, statusChan)).Run()

	// The view may quit early (q, timeout); keep the pipeline unblocked.
	go func() {
		for range statusChan {
		}
	}()

	return tuiResult(<-errCh, final, tuiErr)
}

// tuiResult picks the error to report after an interactive run. The
// pipeline's own error wins; a failure only the view observed comes next.
func tuiResult(runErr error, final tea.Model, tuiErr error) error {
	if runErr != nil {
		return runErr
	}
	if tuiErr != nil {
		return fmt.Errorf("failed to run TUI: %w", tuiErr)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
