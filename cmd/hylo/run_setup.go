package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hylo/internal/prof"
)

// runState is what setupRun prepared and teardownRun has to release.
type runState struct {
	traceCleanup func(failed bool)
	profile      *prof.Session
	done         bool
}

var state runState

func setupRun(cmd *cobra.Command) error {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	state.traceCleanup = cleanup

	profile, err := startProfiling(cmd)
	if err != nil {
		return err
	}
	state.profile = profile
	return nil
}

// teardownRun runs once per process: after a successful command from
// PersistentPostRunE, or from main when the command failed.
func teardownRun(cmd *cobra.Command, runErr error) error {
	if state.done {
		return nil
	}
	state.done = true
	if state.traceCleanup != nil {
		state.traceCleanup(runErr != nil)
	}
	if err := state.profile.Stop(); err != nil {
		fmt.Fprintf(errOut(cmd), "profile: %v\n", err)
	}
	return nil
}

func errOut(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return os.Stderr
	}
	return cmd.ErrOrStderr()
}
