package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hylo/internal/ast"
	"hylo/internal/diag"
	"hylo/internal/observ"
	"hylo/internal/pipeline"
	"hylo/internal/testkit"
	"hylo/internal/trace"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func TestTokenizeText(t *testing.T) {
	res := TokenizeText(context.Background(), "inline.hy", []byte("let x = 5;"), Options{})
	require.Nil(t, res.Err)
	require.Len(t, res.Tokens, 5)
	require.NoError(t, testkit.CheckTokenInvariants(res.Tokens, res.File.Text))
	assert.Equal(t, "inline.hy", res.File.Path)
	assert.False(t, res.Cached)
}

func TestTokenizeTextError(t *testing.T) {
	res := TokenizeText(context.Background(), "bad.hy", []byte("x = 'open"), Options{})
	require.NotNil(t, res.Err)
	assert.Nil(t, res.Tokens)
	assert.Equal(t, diag.StringNotTerminated, res.Err.Kind)
	assert.Equal(t, "bad.hy", res.Err.FileName)
}

func TestParseTextModes(t *testing.T) {
	prog := ParseText(context.Background(), "p.hy", []byte("f(1); a.b + 2"), Options{})
	require.Nil(t, prog.Err)
	require.NotNil(t, prog.Program)
	require.Len(t, prog.Program.Stmts, 2)
	assert.Equal(t, "(call f 1)", ast.Format(prog.Program.Stmts[0].X))

	expr := ParseText(context.Background(), "e.hy", []byte("1 + 2 * 3 )"), Options{Mode: ModeExpr})
	require.Nil(t, expr.Err)
	assert.Equal(t, "(+ 1 (* 2 3))", ast.Format(expr.Expr))
	require.NoError(t, testkit.CheckSpanInvariants(expr.Expr, expr.File.Text))
}

func TestParseTextError(t *testing.T) {
	res := ParseText(context.Background(), "e.hy", []byte("f(1, 2"), Options{})
	require.NotNil(t, res.Err)
	assert.Nil(t, res.Program)
	assert.Equal(t, diag.SyntaxError, res.Err.Kind)
	assert.Contains(t, res.Err.Message, "expected ')'")
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(context.Background(), filepath.Join(t.TempDir(), "nope.hy"), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.hy")
}

func TestParseDir(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.hy":         "a + 1;",
		"sub/b.hy":     "f(",
		"sub/c.hy":     "'unterminated",
		"notes.txt":    "ignored",
		".hidden/d.hy": "ignored",
	})

	var rec pipeline.Recorder
	timer := observ.NewTimer()
	report, err := ParseDir(context.Background(), dir, Options{Jobs: 2, Progress: &rec, Timer: timer})
	require.NoError(t, err)
	require.Len(t, report.Files, 3)

	paths := make([]string, len(report.Files))
	for i, f := range report.Files {
		paths[i] = filepath.ToSlash(strings.TrimPrefix(f.File.Path, filepath.ToSlash(dir)+"/"))
	}
	assert.Equal(t, []string{"a.hy", "sub/b.hy", "sub/c.hy"}, paths)

	assert.Nil(t, report.Files[0].Err)
	assert.Equal(t, diag.SyntaxError, report.Files[1].Err.Kind)
	assert.Equal(t, diag.StringNotTerminated, report.Files[2].Err.Kind)
	assert.Equal(t, 2, report.Bag.Len())
	assert.Equal(t, 1, report.Bag.ExitCode())

	last, ok := rec.Last(report.Files[0].File.Path)
	require.True(t, ok)
	assert.Equal(t, pipeline.StatusDone, last.Status)
	last, _ = rec.Last(report.Files[2].File.Path)
	assert.Equal(t, pipeline.StatusError, last.Status)

	rep := timer.Report()
	require.Len(t, rep.Phases, 1)
	assert.Equal(t, "parse", rep.Phases[0].Name)
	assert.Equal(t, "3 files, 2 failed", rep.Phases[0].Note)
}

func TestTokenizeDirEmpty(t *testing.T) {
	report, err := TokenizeDir(context.Background(), t.TempDir(), Options{})
	require.NoError(t, err)
	assert.Empty(t, report.Files)
	assert.False(t, report.Bag.HasErrors())
}

func TestTokenizeDirCanceled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.hy": "1", "b.hy": "2"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := TokenizeDir(ctx, dir, Options{Jobs: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)

	first := TokenizeText(context.Background(), "one.hy", []byte("x.y(1)"), Options{Cache: cache})
	require.False(t, first.Cached)

	second := TokenizeText(context.Background(), "two.hy", []byte("x.y(1)"), Options{Cache: cache})
	require.True(t, second.Cached)
	assert.Equal(t, first.Tokens, second.Tokens)

	bad := TokenizeText(context.Background(), "bad1.hy", []byte("'x"), Options{Cache: cache})
	require.NotNil(t, bad.Err)
	again := TokenizeText(context.Background(), "bad2.hy", []byte("'x"), Options{Cache: cache})
	require.True(t, again.Cached)
	require.NotNil(t, again.Err)
	assert.Equal(t, "bad2.hy", again.Err.FileName)
	assert.Equal(t, bad.Err.Message, again.Err.Message)

	require.NoError(t, cache.DropAll())
	third := TokenizeText(context.Background(), "three.hy", []byte("x.y(1)"), Options{Cache: cache})
	assert.False(t, third.Cached)
}

func TestDiskCacheCorruptEntryIsMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)
	res := TokenizeText(context.Background(), "a.hy", []byte("1 + 2"), Options{Cache: cache})
	p := cache.pathFor(Digest(res.File.Hash))
	require.NoError(t, os.WriteFile(p, []byte{0xc1, 0xc1}, 0o644))

	var payload TokenPayload
	_, err = cache.Get(Digest(res.File.Hash), &payload)
	require.Error(t, err)

	again := TokenizeText(context.Background(), "a.hy", []byte("1 + 2"), Options{Cache: cache})
	assert.False(t, again.Cached)
	assert.Len(t, again.Tokens, 3)
}

func TestTraceSpans(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelFile)
	ctx := trace.WithTracer(context.Background(), ring)
	ParseText(ctx, "t.hy", []byte("a;"), Options{})

	var names []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindSpanBegin {
			names = append(names, ev.Name)
		}
	}
	assert.Equal(t, []string{"parse", "tokenize:t.hy", "parse:t.hy"}, names)
}
