package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hylo/internal/diag"
	"hylo/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.hy|dir]",
	Short: "Report syntax errors without printing trees",
	Long: `Check parses every file and prints only diagnostics.
Defaults for --jobs, --max-diagnostics and --cache come from [check] in hylo.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringP("eval", "e", "", "check the given text instead of a file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := readConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyManifestDefaults(&cfg, cmd.Flags().Changed); err != nil {
		return err
	}
	in, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}
	opts, err := cfg.driverOptions(driver.ModeProgram)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	defer printTimings(cmd.ErrOrStderr(), cfg, opts.Timer)

	var (
		errs  []*diag.Error
		files int
	)
	switch {
	case in.isDir:
		var report *driver.DirReport
		if shouldUseTUI(cfg.ui, cfg.quiet) {
			report, err = runDirWithUI(ctx, "checking", in.path, opts, driver.ParseDir)
		} else {
			report, err = driver.ParseDir(ctx, in.path, opts)
		}
		if err != nil {
			return err
		}
		if diagErr := reportDiagnostics(cmd, cfg, report.Bag.Items(), report.FileSet); diagErr != nil {
			return diagErr
		}
		files = len(report.Files)
	case in.inline != nil:
		res := driver.ParseText(ctx, in.path, in.inline, opts)
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
		if diagErr := reportDiagnostics(cmd, cfg, errs, res.FileSet); diagErr != nil {
			return diagErr
		}
		files = 1
	default:
		res, err := driver.Parse(ctx, in.path, opts)
		if err != nil {
			return err
		}
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
		if diagErr := reportDiagnostics(cmd, cfg, errs, res.FileSet); diagErr != nil {
			return diagErr
		}
		files = 1
	}
	if !cfg.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "ok: %d file(s) checked\n", files)
	}
	return nil
}
