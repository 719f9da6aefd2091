package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI in-process with colors and progress UI disabled.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--color=off", "--ui=off"))
	err := execute(context.Background())
	return stdout.String(), stderr.String(), err
}

func exitCode(err error) int {
	var exit exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	return -1
}

func writeTestTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func TestTokenizeEval(t *testing.T) {
	out, _, err := run(t, "", "tokenize", "-e", "let x = 5;", "--format", "short")
	require.NoError(t, err)
	assert.Equal(t, "let x = 5 ;\n", out)
}

func TestParseEval(t *testing.T) {
	out, _, err := run(t, "", "parse", "-e", "1 + 2 * 3; f(a).b")
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 (* 2 3))\n(. (call f a) b)\n", out)
}

func TestParseExprFlagIgnoresTrailing(t *testing.T) {
	out, _, err := run(t, "", "parse", "--expr", "-e", "1 + 2 )")
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)\n", out)
}

func TestParseSyntaxErrorExitCode(t *testing.T) {
	out, stderr, err := run(t, "", "parse", "-e", "f(1, 2")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Empty(t, out)
	assert.Contains(t, stderr, "error[E0001]: SyntaxError\n   --> <eval>:1:2\n")
	assert.Contains(t, stderr, "= note: add `)` to close the argument list")
}

func TestUnterminatedStringFromStdin(t *testing.T) {
	_, stderr, err := run(t, "x = 'open\n", "tokenize", "-")
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, stderr, "error[E0002]: StringNotTerminated")
	assert.Contains(t, stderr, "<stdin>:1:5")
}

func TestDiagnosticsAsJSON(t *testing.T) {
	_, stderr, err := run(t, "", "check", "-e", "1 $", "--diag-format", "json")
	assert.Equal(t, 1, exitCode(err))
	var doc struct {
		Count       int `json:"count"`
		Diagnostics []struct {
			Code     string `json:"code"`
			Location struct {
				StartCol uint32 `json:"start_col"`
			} `json:"location"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(stderr), &doc), stderr)
	require.Equal(t, 1, doc.Count)
	assert.Equal(t, "E0001", doc.Diagnostics[0].Code)
	assert.Equal(t, uint32(3), doc.Diagnostics[0].Location.StartCol)
}

func TestUnknownFormatSuggests(t *testing.T) {
	_, _, err := run(t, "", "tokenize", "-e", "1", "--format", "jsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "json"?`)
	assert.Equal(t, -1, exitCode(err))
}

func TestParseDirectory(t *testing.T) {
	dir := writeTestTree(t, map[string]string{
		"a.hy":     "-x;",
		"sub/b.hy": "y(1)",
		"c.hy":     "'oops",
	})
	out, stderr, err := run(t, "", "parse", dir, "--format", "tree", "--jobs", "2")
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, out, "a.hy ==\nProgram (1 statements)\n")
	assert.Contains(t, out, "sub/b.hy ==\n")
	assert.NotContains(t, out, "c.hy ==")
	assert.Contains(t, stderr, "error[E0002]")
}

func TestCheckDirectoryWithTimings(t *testing.T) {
	dir := writeTestTree(t, map[string]string{"a.hy": "1;", "b.hy": "a.b;"})
	_, stderr, err := run(t, "", "check", dir, "--timings")
	require.NoError(t, err)
	assert.Contains(t, stderr, "timings:")
	assert.Contains(t, stderr, "2 files")
	assert.Contains(t, stderr, "ok: 2 file(s) checked")
}

func TestCheckUsesManifest(t *testing.T) {
	dir := writeTestTree(t, map[string]string{
		"hylo.toml":   "[package]\nname = \"demo\"\n[run]\nmain = \"src/main.hy\"\n",
		"src/main.hy": "print('hi');",
	})
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, stderr, err := run(t, "", "check")
	require.NoError(t, err)
	assert.Contains(t, stderr, "ok: 1 file(s) checked")
}

func TestTraceToFile(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "trace.log")
	_, _, err := run(t, "", "parse", "-e", "a;", "--trace", tracePath, "--trace-level", "file")
	require.NoError(t, err)
	data, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "→ parse")
	assert.Contains(t, string(data), "tokenize:<eval>")
}

func TestCacheDirIsPopulated(t *testing.T) {
	cacheDir := t.TempDir()
	_, _, err := run(t, "", "tokenize", "-e", "a + b", "--cache-dir", cacheDir)
	require.NoError(t, err)
	entries, err := os.ReadDir(filepath.Join(cacheDir, "tokens"))
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	out, _, err := run(t, "", "cache", "clean", "--cache-dir", cacheDir)
	require.NoError(t, err)
	assert.Contains(t, out, "cleaned")
	_, err = os.Stat(filepath.Join(cacheDir, "tokens"))
	assert.True(t, os.IsNotExist(err))
}

func TestVersionJSON(t *testing.T) {
	out, _, err := run(t, "", "version", "--format", "json")
	require.NoError(t, err)
	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "hylo", payload.Tool)
	assert.NotEmpty(t, payload.Version)
}
