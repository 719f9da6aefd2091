package driver

import (
	"context"
	"strconv"
	"time"

	"hylo/internal/ast"
	"hylo/internal/diag"
	"hylo/internal/parser"
	"hylo/internal/pipeline"
	"hylo/internal/source"
	"hylo/internal/token"
	"hylo/internal/trace"
)

// ParseResult is the outcome of lexing and parsing one file. In ModeProgram
// Program is set, in ModeExpr Expr is. Err holds the first lexer or parser
// diagnostic.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Container
	Program *ast.Program
	Expr    ast.Expr
	Err     *diag.Error
	Cached  bool // токены взяты из кэша
}

// Parse loads, lexes and parses path.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	ctx, finish := beginPhase(ctx, opts, "parse")
	defer finish("")
	fs := source.NewFileSet()
	file, err := loadFile(ctx, fs, path, opts)
	if err != nil {
		return nil, err
	}
	res := parseFile(ctx, file, opts)
	res.FileSet = fs
	return res, nil
}

// ParseText lexes and parses in-memory content registered under name.
func ParseText(ctx context.Context, name string, content []byte, opts Options) *ParseResult {
	ctx, finish := beginPhase(ctx, opts, "parse")
	defer finish("")
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, content))
	res := parseFile(ctx, file, opts)
	res.FileSet = fs
	return res
}

func parseFile(ctx context.Context, file *source.File, opts Options) *ParseResult {
	lexed := tokenizeFile(ctx, file, opts)
	res := &ParseResult{File: file, Tokens: lexed.Tokens, Err: lexed.Err, Cached: lexed.Cached}
	if res.Err != nil {
		pipeline.Notify(opts.Progress, pipeline.Event{File: file.Path, Stage: pipeline.StageLex, Status: pipeline.StatusError, Err: res.Err})
		return res
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "parse:"+file.Path, trace.ParentFromContext(ctx))
	started := time.Now()
	pipeline.Notify(opts.Progress, pipeline.Event{File: file.Path, Stage: pipeline.StageParse, Status: pipeline.StatusWorking})

	popts := parser.Options{FileName: file.Path}
	var err error
	switch opts.Mode {
	case ModeExpr:
		res.Expr, err = parser.ParseExpr(res.Tokens, popts)
	default:
		res.Program, err = parser.ParseProgram(res.Tokens, popts)
	}

	status := pipeline.StatusDone
	if err != nil {
		res.Err = asDiag(err, file.Path)
		res.Program, res.Expr = nil, nil
		status = pipeline.StatusError
	}
	if res.Program != nil {
		span.WithExtra("stmts", strconv.Itoa(len(res.Program.Stmts)))
	}
	span.End(statusDetail(res.Err))

	ev := pipeline.Event{File: file.Path, Stage: pipeline.StageParse, Status: status, Elapsed: time.Since(started)}
	if res.Err != nil {
		ev.Err = res.Err
	}
	pipeline.Notify(opts.Progress, ev)
	return res
}
