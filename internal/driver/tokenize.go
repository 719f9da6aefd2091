package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"hylo/internal/diag"
	"hylo/internal/lexer"
	"hylo/internal/pipeline"
	"hylo/internal/source"
	"hylo/internal/token"
	"hylo/internal/trace"
)

// TokenizeResult is the outcome of lexing one file. Err is the diagnostic
// the lexer stopped at; Tokens is nil in that case.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Container
	Err     *diag.Error
	Cached  bool
}

// Tokenize loads path and lexes it. The returned error is for I/O failures
// only; syntax problems land in TokenizeResult.Err.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	ctx, finish := beginPhase(ctx, opts, "tokenize")
	defer finish("")
	fs := source.NewFileSet()
	file, err := loadFile(ctx, fs, path, opts)
	if err != nil {
		return nil, err
	}
	res := tokenizeFile(ctx, file, opts)
	res.FileSet = fs
	return res, nil
}

// TokenizeText lexes in-memory content registered under name.
func TokenizeText(ctx context.Context, name string, content []byte, opts Options) *TokenizeResult {
	ctx, finish := beginPhase(ctx, opts, "tokenize")
	defer finish("")
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, content))
	res := tokenizeFile(ctx, file, opts)
	res.FileSet = fs
	return res
}

func loadFile(ctx context.Context, fs *source.FileSet, path string, opts Options) (*source.File, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "load:"+path, trace.ParentFromContext(ctx))
	pipeline.Notify(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageRead, Status: pipeline.StatusWorking})
	id, err := fs.Load(path)
	if err != nil {
		span.End("error")
		pipeline.Notify(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageRead, Status: pipeline.StatusError, Err: err})
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(id)
	span.WithExtra("chars", strconv.FormatUint(uint64(file.Text.Len()), 10)).End("")
	return file, nil
}

func tokenizeFile(ctx context.Context, file *source.File, opts Options) *TokenizeResult {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "tokenize:"+file.Path, trace.ParentFromContext(ctx))
	started := time.Now()
	res := &TokenizeResult{File: file}

	if payload, ok := cachedTokens(ctx, file, opts.Cache); ok {
		res.Tokens, res.Err, res.Cached = payload.Tokens, payload.Err, true
		span.End("cached")
		pipeline.Notify(opts.Progress, pipeline.Event{File: file.Path, Stage: pipeline.StageLex, Status: pipeline.StatusCached, Elapsed: time.Since(started)})
		return res
	}

	pipeline.Notify(opts.Progress, pipeline.Event{File: file.Path, Stage: pipeline.StageLex, Status: pipeline.StatusWorking})
	toks, err := lexer.Tokenize(file.Text, lexer.Options{FileName: file.Path})
	if err != nil {
		res.Err = asDiag(err, file.Path)
	} else {
		res.Tokens = toks
	}
	if opts.Cache != nil {
		putErr := opts.Cache.Put(Digest(file.Hash), &TokenPayload{Path: file.Path, Tokens: res.Tokens, Err: res.Err})
		if putErr != nil {
			trace.Point(tracer, trace.ScopeFile, "cache:put", putErr.Error(), span.ID())
		}
	}
	span.WithExtra("tokens", strconv.Itoa(len(res.Tokens))).End(statusDetail(res.Err))
	return res
}

func cachedTokens(ctx context.Context, file *source.File, cache *DiskCache) (*TokenPayload, bool) {
	if cache == nil {
		return nil, false
	}
	var payload TokenPayload
	ok, err := cache.Get(Digest(file.Hash), &payload)
	if err != nil {
		// битая запись: просто пересчитываем
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache:get", err.Error(), trace.ParentFromContext(ctx))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	// одинаковое содержимое может лежать под разными путями
	if payload.Err != nil {
		payload.Err.FileName = file.Path
	}
	return &payload, true
}

// asDiag converts a lexer/parser failure into *diag.Error. Anything else is
// unexpected and wrapped as a syntax error at offset 0.
func asDiag(err error, fileName string) *diag.Error {
	var de *diag.Error
	if errors.As(err, &de) {
		return de
	}
	return diag.New(diag.SyntaxError, source.At(0), fileName).WithMessage(err.Error())
}

func statusDetail(err *diag.Error) string {
	if err != nil {
		return err.Kind.Code()
	}
	return ""
}
