package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"hylo/internal/trace"
)

func addTraceFlags(flags *pflag.FlagSet) {
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|file|debug)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.Int("trace-ring-size", 4096, "events kept in ring mode")
}

// setupTracing inspects trace-related flags, attaches the tracer to the
// command context and returns its cleanup. On failure the cleanup dumps the
// ring buffer, if there is one, to stderr.
func setupTracing(cmd *cobra.Command) (func(failed bool), error) {
	flags := cmd.Root().PersistentFlags()
	output, _ := flags.GetString("trace")
	levelStr, _ := flags.GetString("trace-level")
	modeStr, _ := flags.GetString("trace-mode")
	formatStr, _ := flags.GetString("trace-format")
	ringSize, _ := flags.GetInt("trace-ring-size")

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	// --trace без уровня включает фазы
	if level == trace.LevelOff && output != "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func(bool) {}, nil
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: output,
		RingSize:   ringSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	root := trace.Begin(tracer, trace.ScopeDriver, cmd.Name(), 0)
	ctx := trace.WithParent(trace.WithTracer(cmd.Context(), tracer), root.ID())
	cmd.SetContext(ctx)

	return func(failed bool) {
		detail := ""
		if failed {
			detail = "failed"
		}
		root.End(detail)
		if ring, ok := trace.Ring(tracer); ok && failed {
			stderr := cmd.ErrOrStderr()
			fmt.Fprintln(stderr, "-- trace (last events) --")
			if err := ring.Dump(stderr, trace.FormatText); err != nil {
				fmt.Fprintf(stderr, "trace: dump error: %v\n", err)
			}
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}
