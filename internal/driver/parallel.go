package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"hylo/internal/diag"
	"hylo/internal/pipeline"
	"hylo/internal/source"
	"hylo/internal/trace"
)

// DirReport собирает результаты по всем файлам директории.
// Files follows the sorted file order regardless of completion order.
type DirReport struct {
	FileSet *source.FileSet
	Files   []*ParseResult
	Bag     *diag.Bag
}

// ListSourceFiles возвращает отсортированный список всех *.hy файлов в директории.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, filepath.ToSlash(path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir lexes every source file under dir in parallel. Only Tokens,
// Err and Cached are filled in the per-file results.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*DirReport, error) {
	return runDir(ctx, dir, opts, "tokenize", func(ctx context.Context, file *source.File) *ParseResult {
		lexed := tokenizeFile(ctx, file, opts)
		status := pipeline.StatusDone
		if lexed.Err != nil {
			status = pipeline.StatusError
		}
		ev := pipeline.Event{File: file.Path, Stage: pipeline.StageLex, Status: status}
		if lexed.Err != nil {
			ev.Err = lexed.Err
		}
		pipeline.Notify(opts.Progress, ev)
		return &ParseResult{File: file, Tokens: lexed.Tokens, Err: lexed.Err, Cached: lexed.Cached}
	})
}

// ParseDir lexes and parses every source file under dir in parallel.
func ParseDir(ctx context.Context, dir string, opts Options) (*DirReport, error) {
	return runDir(ctx, dir, opts, "parse", func(ctx context.Context, file *source.File) *ParseResult {
		return parseFile(ctx, file, opts)
	})
}

func runDir(ctx context.Context, dir string, opts Options, phase string, work func(context.Context, *source.File) *ParseResult) (*DirReport, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	report := &DirReport{
		FileSet: source.NewFileSetWithBase(dir),
		Files:   make([]*ParseResult, len(files)),
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}
	if len(files) == 0 {
		return report, nil
	}

	ctx, finish := beginPhase(ctx, opts, phase)

	for _, path := range files {
		pipeline.Notify(opts.Progress, pipeline.Event{File: path, Status: pipeline.StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	// индексы уникальны для каждой горутины, мьютекс не нужен
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			file, err := loadFile(gctx, report.FileSet, path, opts)
			if err != nil {
				return err
			}
			report.Files[i] = work(gctx, file)
			return nil
		})
	}
	err = g.Wait()

	failed := 0
	for _, res := range report.Files {
		if res != nil && res.Err != nil {
			failed++
			report.Bag.Add(res.Err)
		}
	}
	report.Bag.Sort()
	note := strconv.Itoa(len(files)) + " files"
	if failed > 0 {
		note += ", " + strconv.Itoa(failed) + " failed"
	}
	finish(note)

	return report, err
}

// beginPhase opens a trace span and a timer phase; the returned func closes both.
func beginPhase(ctx context.Context, opts Options, name string) (context.Context, func(note string)) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, name, trace.ParentFromContext(ctx))
	done := opts.Timer.Track(name)
	return trace.WithParent(ctx, span.ID()), func(note string) {
		done(note)
		span.End(note)
	}
}
