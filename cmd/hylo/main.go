package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hylo/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "hylo",
	Short:         "Hylo language toolchain",
	Long:          `Hylo tokenizes and parses Hylo scripts and reports syntax errors`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError несёт код выхода; сообщение уже выведено.
type exitError struct {
	code int
}

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to show (0 = all)")
	flags.String("diag-format", "pretty", "diagnostics format (pretty|json)")
	flags.String("path-mode", "auto", "how file paths are shown (auto|absolute|relative|basename)")
	flags.Bool("notes", true, "show diagnostic notes")
	flags.Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
	flags.Bool("cache", false, "reuse token streams from the on-disk cache")
	flags.String("cache-dir", "", "cache location (default $XDG_CACHE_HOME/hylo)")
	flags.String("ui", "auto", "progress UI for directories (auto|on|off)")
	addTraceFlags(flags)
	addProfileFlags(flags)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return setupRun(cmd)
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return teardownRun(cmd, nil)
	}
}

// execute runs the root command and always releases tracing and profiling.
func execute(ctx context.Context) error {
	state = runState{}
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		// PostRun не вызывается при ошибке RunE
		_ = teardownRun(rootCmd, err)
	}
	return err
}

func main() {
	err := execute(context.Background())
	var exit exitError
	switch {
	case err == nil:
	case errors.As(err, &exit):
		os.Exit(exit.code)
	default:
		fmt.Fprintf(os.Stderr, "hylo: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
