package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hylo/internal/ast"
	"hylo/internal/diag"
	"hylo/internal/diagfmt"
	"hylo/internal/driver"
)

var parseFormats = []string{"sexpr", "tree", "dump"}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] [file.hy|dir|-]",
	Short: "Parse a hylo source file and print its syntax tree",
	Long: `Parse reads a hylo source file as a sequence of ';'-separated expressions.
With --expr only one expression is parsed and trailing tokens are ignored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "sexpr", "output format (sexpr|tree|dump)")
	parseCmd.Flags().Bool("expr", false, "parse a single expression instead of a program")
	parseCmd.Flags().StringP("eval", "e", "", "parse the given text instead of a file")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := readConfig(cmd)
	if err != nil {
		return err
	}
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := pickFormat("format", formatFlag, parseFormats)
	if err != nil {
		return err
	}
	exprOnly, _ := cmd.Flags().GetBool("expr")
	mode := driver.ModeProgram
	if exprOnly {
		mode = driver.ModeExpr
	}
	in, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}
	opts, err := cfg.driverOptions(mode)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	defer printTimings(cmd.ErrOrStderr(), cfg, opts.Timer)

	if in.isDir {
		var report *driver.DirReport
		if shouldUseTUI(cfg.ui, cfg.quiet) {
			report, err = runDirWithUI(ctx, "parsing", in.path, opts, driver.ParseDir)
		} else {
			report, err = driver.ParseDir(ctx, in.path, opts)
		}
		if err != nil {
			return err
		}
		for _, res := range report.Files {
			if res.Err != nil {
				continue
			}
			fmt.Fprintf(out, "== %s ==\n", res.File.Path)
			if err := writeTree(out, format, res); err != nil {
				return err
			}
		}
		return reportDiagnostics(cmd, cfg, report.Bag.Items(), report.FileSet)
	}

	var res *driver.ParseResult
	if in.inline != nil {
		res = driver.ParseText(ctx, in.path, in.inline, opts)
	} else if res, err = driver.Parse(ctx, in.path, opts); err != nil {
		return err
	}
	if res.Err != nil {
		return reportDiagnostics(cmd, cfg, []*diag.Error{res.Err}, res.FileSet)
	}
	return writeTree(out, format, res)
}

func writeTree(w io.Writer, format string, res *driver.ParseResult) error {
	txt := res.File.Text
	switch format {
	case "tree":
		if res.Expr != nil {
			return diagfmt.FormatExprTree(w, res.Expr, txt)
		}
		return diagfmt.FormatProgramTree(w, res.Program, txt)
	case "dump":
		if res.Expr != nil {
			diagfmt.Dump(w, res.Expr)
		} else {
			diagfmt.Dump(w, res.Program)
		}
		return nil
	default:
		if res.Expr != nil {
			_, err := fmt.Fprintln(w, ast.Format(res.Expr))
			return err
		}
		for _, st := range res.Program.Stmts {
			if _, err := fmt.Fprintln(w, ast.Format(st.X)); err != nil {
				return err
			}
		}
		return nil
	}
}
