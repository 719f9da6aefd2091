package diag

import (
	"fmt"
)

// Kind is the category of an Error.
type Kind uint16

const (
	// SyntaxError covers malformed tokens and unexpected tokens in expressions.
	SyntaxError Kind = iota + 1
	// StringNotTerminated is a string literal without its closing quote.
	StringNotTerminated
)

type kindInfo struct {
	code string
	name string
	exit int
}

// Статическая таблица: новые виды добавляются сюда, код выхода может различаться.
var kindTable = map[Kind]kindInfo{
	SyntaxError:         {code: "E0001", name: "SyntaxError", exit: 1},
	StringNotTerminated: {code: "E0002", name: "StringNotTerminated", exit: 1},
}

// Code returns the stable diagnostic code, e.g. "E0001".
func (k Kind) Code() string {
	if info, ok := kindTable[k]; ok {
		return info.code
	}
	return "E0000"
}

// Name returns the display name of the kind.
func (k Kind) Name() string {
	if info, ok := kindTable[k]; ok {
		return info.name
	}
	return "UnknownError"
}

// ExitCode returns the process exit code used by Abort.
func (k Kind) ExitCode() int {
	if info, ok := kindTable[k]; ok {
		return info.exit
	}
	return 1
}

func (k Kind) String() string {
	return fmt.Sprintf("[%s]: %s", k.Code(), k.Name())
}

// Kinds returns every known kind ordered by code.
func Kinds() []Kind {
	return []Kind{SyntaxError, StringNotTerminated}
}
