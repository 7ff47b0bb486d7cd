package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vhdlfmt/internal/driver"
	"vhdlfmt/internal/ui"
)

type formatOutcome struct {
	results []driver.Result
	err     error
}

// runWithProgress runs work in the background and shows a progress view
// fed by the per-file results work reports.
func runWithProgress(ctx context.Context, title string, files []string,
	work func(ctx context.Context, onResult func(driver.Result)) ([]driver.Result, error),
) ([]driver.Result, error) {
	events := make(chan ui.Event, 256)
	outcomeCh := make(chan formatOutcome, 1)

	go func() {
		results, err := work(ctx, func(res driver.Result) {
			events <- ui.Event{File: res.Path, Status: resultStatus(res)}
		})
		outcomeCh <- formatOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// вью могло закрыться раньше времени: дочитываем события, чтобы воркеры не встали
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil && ctx.Err() == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}

func resultStatus(res driver.Result) ui.Status {
	switch {
	case res.Err != nil:
		return ui.StatusFailed
	case res.Cached:
		return ui.StatusCached
	case res.Changed:
		return ui.StatusChanged
	}
	return ui.StatusUnchanged
}
