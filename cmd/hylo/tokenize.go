package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hylo/internal/diag"
	"hylo/internal/diagfmt"
	"hylo/internal/driver"
	"hylo/internal/source"
	"hylo/internal/token"
)

var tokenizeFormats = []string{"pretty", "short", "json", "dump"}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file.hy|dir|-]",
	Short: "Tokenize a hylo source file",
	Long: `Tokenize breaks a hylo source file into its tokens.
With no path the [run].main of the nearest hylo.toml is used; "-" reads stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|short|json|dump)")
	tokenizeCmd.Flags().StringP("eval", "e", "", "tokenize the given text instead of a file")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cfg, err := readConfig(cmd)
	if err != nil {
		return err
	}
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := pickFormat("format", formatFlag, tokenizeFormats)
	if err != nil {
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
	out := cmd.OutOrStdout()
	defer printTimings(cmd.ErrOrStderr(), cfg, opts.Timer)

	if in.isDir {
		var report *driver.DirReport
		if shouldUseTUI(cfg.ui, cfg.quiet) {
			report, err = runDirWithUI(ctx, "tokenizing", in.path, opts, driver.TokenizeDir)
		} else {
			report, err = driver.TokenizeDir(ctx, in.path, opts)
		}
		if err != nil {
			return err
		}
		for _, res := range report.Files {
			if res.Err != nil {
				continue
			}
			fmt.Fprintf(out, "== %s ==\n", res.File.Path)
			if err := writeTokens(out, format, res.Tokens, res.File.Text); err != nil {
				return err
			}
		}
		return reportDiagnostics(cmd, cfg, report.Bag.Items(), report.FileSet)
	}

	var res *driver.TokenizeResult
	if in.inline != nil {
		res = driver.TokenizeText(ctx, in.path, in.inline, opts)
	} else if res, err = driver.Tokenize(ctx, in.path, opts); err != nil {
		return err
	}
	if res.Err != nil {
		return reportDiagnostics(cmd, cfg, []*diag.Error{res.Err}, res.FileSet)
	}
	return writeTokens(out, format, res.Tokens, res.File.Text)
}

func writeTokens(w io.Writer, format string, toks []token.Container, txt *source.Text) error {
	switch format {
	case "short":
		return diagfmt.FormatTokensShort(w, toks)
	case "json":
		return diagfmt.FormatTokensJSON(w, toks, txt)
	case "dump":
		diagfmt.Dump(w, toks)
		return nil
	default:
		return diagfmt.FormatTokensPretty(w, toks, txt)
	}
}
