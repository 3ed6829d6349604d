package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jobscraperpro/jobview/internal/browser"
)

// Run starts the interactive job browser and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, api browser.Fetcher, opts Options) error {
	model := NewJobsModel(ctx, api, opts)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if m, ok := final.(JobsModel); ok {
		m.Close()
	}
	return exitError(ctx, err)
}

// exitError maps the program's exit to the command error. A program killed
// because ctx was cancelled reports the cancellation so the caller can exit
// as interrupted.
func exitError(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return ctx.Err()
	default:
		return fmt.Errorf("running job browser: %w", err)
	}
}
