package main

import (
	"context"
	"fmt"
	"os"

	"hylo/internal/driver"
	"hylo/internal/pipeline"
	"hylo/internal/ui"
)

type dirRunner func(ctx context.Context, dir string, opts driver.Options) (*driver.DirReport, error)

type dirOutcome struct {
	report *driver.DirReport
	err    error
}

// runDirWithUI runs fn while a progress view listens to its events.
func runDirWithUI(ctx context.Context, title, dir string, opts driver.Options, fn dirRunner) (*driver.DirReport, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = pipeline.ChannelSink{Ch: events}
		report, err := fn(ctx, dir, optsCopy)
		outcomeCh <- dirOutcome{report: report, err: err}
		close(events)
	}()

	uiErr := ui.Run(os.Stderr, fmt.Sprintf("%s %d files", title, len(files)), files, events)
	if uiErr != nil {
		// UI упал: дочитываем события, чтобы воркеры не встали на полном канале
		for range events {
		}
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.report, uiErr
	}
	return outcome.report, outcome.err
}
