package lexer

// Options configures a Lexer.
type Options struct {
	// FileName is attached to every error; it is only used for display.
	FileName string
}
