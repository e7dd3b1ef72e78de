package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"apexts/internal/buildpipeline"
	"apexts/internal/driver"
	"apexts/internal/ui"
)

type genOutcome struct {
	result *driver.Result
	err    error
}

// runGenWithUI runs ConvertDir in the background and renders its progress
// events until the channel is closed.
func runGenWithUI(ctx context.Context, title string, files []string, dir string, opts driver.Options) (*driver.Result, error) {
	events := make(chan buildpipeline.Event, 256)
	outcomeCh := make(chan genOutcome, 1)

	go func() {
		opts.Progress = buildpipeline.ChannelSink{Ch: events}
		res, err := driver.ConvertDir(ctx, dir, opts)
		outcomeCh <- genOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// модель могла выйти раньше (q / ctrl+c): дочитываем, чтобы не блокировать воркеры
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
