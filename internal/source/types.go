package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
)

// Position represents a human-readable position in a Text.
type Position struct {
	Line   uint32 // 1-based
	Column uint32 // 1-based
}

// Line is one line of a Text together with its synthetic terminator.
// End is the offset of the trailing '\n'.
type Line struct {
	Chars []rune
	Start uint32
	End   uint32
}

// Body returns the line text without the trailing newline.
func (l Line) Body() string {
	if len(l.Chars) == 0 {
		return ""
	}
	return string(l.Chars[:len(l.Chars)-1])
}
