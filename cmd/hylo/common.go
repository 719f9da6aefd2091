package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"

	"hylo/internal/diag"
	"hylo/internal/diagfmt"
	"hylo/internal/driver"
	"hylo/internal/observ"
	"hylo/internal/source"
)

// cliConfig собирает глобальные флаги в одном месте.
type cliConfig struct {
	color          bool
	quiet          bool
	timings        bool
	maxDiagnostics int
	diagFormat     string
	pathMode       diagfmt.PathMode
	notes          bool
	jobs           int
	cache          bool
	cacheDir       string
	ui             uiMode
}

func readConfig(cmd *cobra.Command) (cliConfig, error) {
	flags := cmd.Root().PersistentFlags()
	var cfg cliConfig
	colorFlag, _ := flags.GetString("color")
	switch colorFlag {
	case "on":
		cfg.color = true
	case "off":
		cfg.color = false
	case "auto":
		cfg.color = isTerminal(os.Stderr)
	default:
		return cfg, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
	cfg.quiet, _ = flags.GetBool("quiet")
	cfg.timings, _ = flags.GetBool("timings")
	cfg.maxDiagnostics, _ = flags.GetInt("max-diagnostics")
	cfg.notes, _ = flags.GetBool("notes")
	cfg.jobs, _ = flags.GetInt("jobs")
	cfg.cache, _ = flags.GetBool("cache")
	cfg.cacheDir, _ = flags.GetString("cache-dir")

	diagFormat, _ := flags.GetString("diag-format")
	format, err := pickFormat("diag-format", diagFormat, []string{"pretty", "json"})
	if err != nil {
		return cfg, err
	}
	cfg.diagFormat = format

	pathMode, _ := flags.GetString("path-mode")
	if cfg.pathMode, err = diagfmt.ParsePathMode(pathMode); err != nil {
		return cfg, err
	}
	uiFlag, _ := flags.GetString("ui")
	if cfg.ui, err = readUIMode(uiFlag); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// driverOptions turns flags into driver options; the timer is nil unless
// --timings is set.
func (cfg cliConfig) driverOptions(mode driver.ParseMode) (driver.Options, error) {
	opts := driver.Options{
		Mode:           mode,
		MaxDiagnostics: cfg.maxDiagnostics,
		Jobs:           cfg.jobs,
	}
	if cfg.timings {
		opts.Timer = observ.NewTimer()
	}
	if cfg.cache || cfg.cacheDir != "" {
		var (
			cache *driver.DiskCache
			err   error
		)
		if cfg.cacheDir != "" {
			cache, err = driver.OpenDiskCacheAt(cfg.cacheDir)
		} else {
			cache, err = driver.OpenDiskCache("hylo")
		}
		if err != nil {
			return opts, fmt.Errorf("open cache: %w", err)
		}
		opts.Cache = cache
	}
	return opts, nil
}

// pickFormat validates a format flag and suggests the closest valid value.
func pickFormat(flag, value string, allowed []string) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if a == value {
			return value, nil
		}
	}
	msg := fmt.Sprintf("unknown --%s %q (expected %s)", flag, value, strings.Join(allowed, "|"))
	if s := suggest(value, allowed); s != "" {
		msg += fmt.Sprintf("; did you mean %q?", s)
	}
	return "", fmt.Errorf("%s", msg)
}

func suggest(value string, options []string) string {
	best, bestDist := "", len(value)/2+2
	for _, o := range options {
		if d := levenshtein.ComputeDistance(value, o); d < bestDist {
			best, bestDist = o, d
		}
	}
	return best
}

// reportDiagnostics печатает ошибки в stderr и возвращает exitError,
// если они есть.
func reportDiagnostics(cmd *cobra.Command, cfg cliConfig, errs []*diag.Error, fs *source.FileSet) error {
	if len(errs) == 0 {
		return nil
	}
	stderr := cmd.ErrOrStderr()
	shown := errs
	if cfg.maxDiagnostics > 0 && len(shown) > cfg.maxDiagnostics {
		shown = shown[:cfg.maxDiagnostics]
	}
	var err error
	switch cfg.diagFormat {
	case "json":
		err = diagfmt.JSON(stderr, errs, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         cfg.pathMode,
			Max:              cfg.maxDiagnostics,
			IncludeNotes:     cfg.notes,
		})
	default:
		err = diagfmt.Pretty(stderr, shown, fs, diagfmt.PrettyOpts{
			Color:     cfg.color,
			PathMode:  cfg.pathMode,
			ShowNotes: cfg.notes,
		})
		if err == nil && len(shown) < len(errs) && !cfg.quiet {
			fmt.Fprintf(stderr, "\n... and %d more errors\n", len(errs)-len(shown))
		}
	}
	if err != nil {
		return err
	}
	code := 0
	for _, e := range errs {
		code = max(code, e.Kind.ExitCode())
	}
	return exitError{code: code}
}

func printTimings(w io.Writer, cfg cliConfig, timer *observ.Timer) {
	if cfg.timings && timer != nil {
		fmt.Fprint(w, timer.Summary())
	}
}

// inputSource is a resolved positional argument: a file, a directory,
// stdin ("-") or the -e text.
type inputSource struct {
	path   string
	isDir  bool
	inline []byte // stdin or -e
}

func resolveInput(cmd *cobra.Command, args []string) (inputSource, error) {
	expr, _ := cmd.Flags().GetString("eval")
	switch {
	case expr != "" && len(args) > 0:
		return inputSource{}, fmt.Errorf("use either -e or a path, not both")
	case expr != "":
		return inputSource{path: "<eval>", inline: []byte(expr)}, nil
	case len(args) == 0:
		return inputFromManifest()
	case args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return inputSource{}, fmt.Errorf("read stdin: %w", err)
		}
		return inputSource{path: "<stdin>", inline: data}, nil
	}
	path := filepath.Clean(args[0])
	info, err := os.Stat(path)
	if err != nil {
		return inputSource{}, err
	}
	return inputSource{path: path, isDir: info.IsDir()}, nil
}
