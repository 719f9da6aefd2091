package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"off", "error", "phase", "file", "debug", "FILE"} {
		lvl, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", name, err)
		}
		if !strings.EqualFold(lvl.String(), name) {
			t.Errorf("ParseLevel(%q) = %v", name, lvl)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelPhase, ScopePhase, true},
		{LevelPhase, ScopeFile, false},
		{LevelFile, ScopeFile, true},
		{LevelFile, ScopeToken, false},
		{LevelDebug, ScopeToken, true},
		{LevelError, ScopeFile, true},
		{LevelError, ScopeToken, false},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%v.ShouldEmit(%v) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelFile, FormatText)

	root := Begin(tr, ScopePhase, "tokenize", 0)
	file := Begin(tr, ScopeFile, "file:main.hy", root.ID())
	file.WithExtra("tokens", "4").End("ok")
	Begin(tr, ScopeToken, "token", file.ID()).End("")
	root.End("")

	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "→ tokenize") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[2], "← file:main.hy (ok)") || !strings.Contains(lines[2], "{tokens=4}") {
		t.Errorf("file end line = %q", lines[2])
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)
	Point(tr, ScopePhase, "cache", "miss", 7)

	var ev struct {
		Kind     string `json:"kind"`
		Scope    string `json:"scope"`
		Name     string `json:"name"`
		Detail   string `json:"detail"`
		ParentID uint64 `json:"parent_id"`
	}
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("bad ndjson %q: %v", buf.String(), err)
	}
	if ev.Kind != "point" || ev.Scope != "phase" || ev.Name != "cache" || ev.Detail != "miss" || ev.ParentID != 7 {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestRingTracerWraps(t *testing.T) {
	r := NewRingTracer(3, LevelFile)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(r, ScopeFile, name, "", 0)
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len = %d", len(snap))
	}
	for i, want := range []string{"c", "d", "e"} {
		if snap[i].Name != want {
			t.Errorf("snap[%d] = %q, want %q", i, snap[i].Name, want)
		}
	}

	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("dump:\n%s", buf.String())
	}
}

func TestNewErrorLevelIsRing(t *testing.T) {
	tr, err := New(Config{Level: LevelError, Mode: ModeStream})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := Ring(tr); !ok {
		t.Errorf("expected ring tracer, got %T", tr)
	}

	off, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if off.Enabled() {
		t.Error("off tracer should be disabled")
	}
}

func TestNewBothFindsRing(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Point(tr, ScopePhase, "x", "", 0)
	r, ok := Ring(tr)
	if !ok {
		t.Fatal("ring not found in multi tracer")
	}
	if len(r.Snapshot()) != 1 || buf.Len() == 0 {
		t.Errorf("event did not reach both tracers")
	}
}

func TestContext(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("empty context should give Nop")
	}
	r := NewRingTracer(4, LevelDebug)
	ctx := WithParent(WithTracer(context.Background(), r), 42)
	if FromContext(ctx) != Tracer(r) {
		t.Error("tracer lost in context")
	}
	if ParentFromContext(ctx) != 42 {
		t.Errorf("parent = %d", ParentFromContext(ctx))
	}
}

func TestDisabledSpanIsInert(t *testing.T) {
	s := Begin(Nop, ScopeDriver, "x", 0)
	if s.ID() != 0 || s.End("") != 0 {
		t.Error("span on Nop tracer should be inert")
	}
}

func TestParseModeAndFormat(t *testing.T) {
	if m, err := ParseMode("Both"); err != nil || m != ModeBoth {
		t.Errorf("ParseMode = %v, %v", m, err)
	}
	if _, err := ParseMode("file"); err == nil {
		t.Error("expected error")
	}
	if f, err := ParseFormat("ndjson"); err != nil || f != FormatNDJSON {
		t.Errorf("ParseFormat = %v, %v", f, err)
	}
}
