package diagfmt

import (
	"fmt"
	"io"

	"hylo/internal/diag"
	"hylo/internal/source"
)

// Pretty writes each error as a rendered report, separated by blank lines.
// Sources are looked up in fs by the error's file name; fs may be nil.
func Pretty(w io.Writer, errs []*diag.Error, fs *source.FileSet, opts PrettyOpts) error {
	painter := NewPainter(opts.Color)
	for i, e := range errs {
		if e == nil {
			continue
		}
		var txt *source.Text
		shown := *e
		if f, ok := lookupFile(fs, e.FileName); ok {
			txt = f.Text
			shown.FileName = formatPath(f, fs, opts.PathMode)
		}
		if !opts.ShowNotes {
			shown.Notes = nil
		}
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, shown.RenderWith(txt, painter)); err != nil {
			return err
		}
	}
	return nil
}

func lookupFile(fs *source.FileSet, name string) (*source.File, bool) {
	if fs == nil || name == "" {
		return nil, false
	}
	return fs.GetByPath(name)
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		base := ""
		if fs != nil {
			base = fs.BaseDir()
		}
		return f.FormatPath("relative", base)
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
