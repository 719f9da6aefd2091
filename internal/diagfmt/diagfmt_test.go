package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"hylo/internal/ast"
	"hylo/internal/diag"
	"hylo/internal/lexer"
	"hylo/internal/parser"
	"hylo/internal/source"
	"hylo/internal/token"
)

func fileSet(t *testing.T, name, content string) (*source.FileSet, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(content))
	return fs, fs.Get(id)
}

func TestPrettyUsesSourceFromFileSet(t *testing.T) {
	fs, _ := fileSet(t, "dir/main.hy", "f(1, 2")
	e := diag.New(diag.SyntaxError, source.At(1), "dir/main.hy").
		WithMessage("expected ')' after function arguments").
		WithNote("add `)` to close the argument list")

	var buf bytes.Buffer
	if err := Pretty(&buf, []*diag.Error{e}, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	want := "error[E0001]: SyntaxError\n" +
		"   --> main.hy:1:2\n" +
		"    |\n" +
		"  1 | f(1, 2\n" +
		"    |  ^ expected ')' after function arguments\n" +
		"    = note: add `)` to close the argument list\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyWithoutNotesOrSource(t *testing.T) {
	e := diag.New(diag.StringNotTerminated, source.At(0), "gone.hy").
		WithMessage("the string is not terminated").
		WithNote("close the string with '")
	var buf bytes.Buffer
	if err := Pretty(&buf, []*diag.Error{e, e}, nil, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "note:") {
		t.Errorf("notes should be hidden:\n%s", out)
	}
	if strings.Count(out, "error[E0002]") != 2 || !strings.Contains(out, "\n\nerror[") {
		t.Errorf("reports must be separated by a blank line:\n%s", out)
	}
}

func TestPrettyColor(t *testing.T) {
	fs, _ := fileSet(t, "a.hy", "1 $")
	e := diag.New(diag.SyntaxError, source.At(2), "a.hy").WithMessage("the token is invalid")
	var buf bytes.Buffer
	if err := Pretty(&buf, []*diag.Error{e}, fs, PrettyOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected ANSI escapes:\n%q", buf.String())
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs, _ := fileSet(t, "main.hy", "let x = 'abc\nnext")
	errs := []*diag.Error{
		diag.New(diag.StringNotTerminated, source.Span{Start: 8, Stop: 12}, "main.hy").
			WithMessage("the string is not terminated").
			WithNote("close the string with '"),
		diag.New(diag.SyntaxError, source.At(0), "other.hy").WithMessage("second"),
	}

	var buf bytes.Buffer
	if err := JSON(&buf, errs, fs, JSONOpts{IncludePositions: true, IncludeNotes: true, Max: 1}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if out.Count != 2 || len(out.Diagnostics) != 1 {
		t.Fatalf("count=%d len=%d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "E0002" || d.Kind != "StringNotTerminated" || d.ExitCode != 1 {
		t.Errorf("diagnostic = %+v", d)
	}
	loc := d.Location
	if loc.File != "main.hy" || loc.StartLine != 1 || loc.StartCol != 9 || loc.EndLine != 1 || loc.EndCol != 13 {
		t.Errorf("location = %+v", loc)
	}
	if len(d.Notes) != 1 {
		t.Errorf("notes = %v", d.Notes)
	}
}

func TestTokensPretty(t *testing.T) {
	txt := source.Build("let x\n= 5;")
	toks, err := lexer.Tokenize(txt, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, txt); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("lines:\n%s", buf.String())
	}
	if !strings.HasPrefix(lines[0], `  1: Word("let")`) || !strings.HasSuffix(lines[0], " at 1:1-1:3") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasSuffix(lines[2], " at 2:1-2:1") {
		t.Errorf("line 2 = %q", lines[2])
	}

	buf.Reset()
	if err := FormatTokensShort(&buf, toks); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "let x = 5 ;\n" {
		t.Errorf("short = %q", got)
	}
}

func TestTokensJSON(t *testing.T) {
	toks := []token.Container{
		{Token: token.NewString("hi"), Span: source.Span{Start: 0, Stop: 3}},
		{Token: token.NewInt(7), Span: source.At(5)},
	}
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks, source.Build("'hi' 7")); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].Kind != "String" || out[0].Value != "hi" || out[1].Value != "7" || out[1].Column != 6 {
		t.Errorf("tokens = %+v", out)
	}
	if out[0].Span.Stop != 3 {
		t.Errorf("span = %+v", out[0].Span)
	}
}

func parse(t *testing.T, input string) (ast.Expr, *source.Text) {
	t.Helper()
	txt := source.Build(input)
	toks, err := lexer.Tokenize(txt, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	e, err := parser.ParseExpr(toks, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return e, txt
}

func TestExprTree(t *testing.T) {
	e, txt := parse(t, "1 + f(2)")
	var buf bytes.Buffer
	if err := FormatExprTree(&buf, e, txt); err != nil {
		t.Fatal(err)
	}
	want := "Binary + (1:1-1:8)\n" +
		"├─ Int 1 (1:1-1:1)\n" +
		"└─ Call (1:5-1:8)\n" +
		"   ├─ Callee\n" +
		"   │  └─ Word f (1:5-1:5)\n" +
		"   └─ Args (1)\n" +
		"      └─ Int 2 (1:7-1:7)\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestProgramTree(t *testing.T) {
	txt := source.Build("a; -b")
	toks, err := lexer.Tokenize(txt, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	prog, err := parser.ParseProgram(toks, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatProgramTree(&buf, prog, txt); err != nil {
		t.Fatal(err)
	}
	want := "Program (2 statements)\n" +
		"├─ Stmt[0]\n" +
		"│  └─ Word a (1:1-1:1)\n" +
		"└─ Stmt[1] (no ';')\n" +
		"   └─ Unary - (1:4-1:5)\n" +
		"      └─ Word b (1:5-1:5)\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDump(t *testing.T) {
	e, _ := parse(t, "-x")
	var buf bytes.Buffer
	Dump(&buf, e)
	out := buf.String()
	for _, want := range []string{"ast.Unary", `(len=1) "x"`} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestParsePathMode(t *testing.T) {
	for _, name := range []string{"auto", "absolute", "relative", "basename"} {
		m, err := ParsePathMode(name)
		if err != nil || m.String() != name {
			t.Errorf("ParsePathMode(%q) = %v, %v", name, m, err)
		}
	}
	if _, err := ParsePathMode("short"); err == nil {
		t.Error("expected error")
	}
}
