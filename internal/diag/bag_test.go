package diag

import (
	"testing"

	"hylo/internal/source"
)

func TestBagLimitAndSort(t *testing.T) {
	b := NewBag(2)
	b.Add(New(SyntaxError, source.At(5), "b.hy"))
	b.Add(New(StringNotTerminated, source.At(1), "a.hy"))
	if b.Add(New(SyntaxError, source.At(0), "c.hy")) {
		t.Fatal("Add must fail once the limit is reached")
	}
	if b.Add(nil) {
		t.Fatal("nil error must be ignored")
	}
	b.Sort()
	items := b.Items()
	if len(items) != 2 || items[0].FileName != "a.hy" || items[1].FileName != "b.hy" {
		t.Fatalf("unexpected order: %v", items)
	}
	if !b.HasErrors() || b.ExitCode() != 1 {
		t.Fatalf("HasErrors=%v ExitCode=%d", b.HasErrors(), b.ExitCode())
	}
	if NewBag(0).ExitCode() != 0 {
		t.Fatal("empty bag must exit with 0")
	}
}

func TestFormatGolden(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("b.hy", []byte("x\n  &"))
	fs.AddVirtual("a.hy", []byte("\"abc"))

	errs := []*Error{
		New(SyntaxError, source.At(4), "b.hy").WithMessage("the operator is invalid"),
		New(StringNotTerminated, source.Span{Start: 0, Stop: 4}, "a.hy").
			WithMessage("the string is not\nterminated").
			WithNote("close it"),
	}
	got := FormatGolden(errs, FileSetLookup(fs), true)
	want := "error E0002 a.hy:1:1 the string is not terminated\n" +
		"note E0002 a.hy:1:1 close it\n" +
		"error E0001 b.hy:2:3 the operator is invalid"
	if got != want {
		t.Fatalf("FormatGolden mismatch:\n%s\nwant:\n%s", got, want)
	}

	if FormatGolden(nil, nil, false) != "" {
		t.Fatal("empty input must render empty string")
	}
}
