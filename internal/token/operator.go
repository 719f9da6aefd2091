package token

// Op is an operator variant.
type Op uint8

const (
	// Plus is '+'.
	Plus Op = iota + 1
	// Minus is '-'.
	Minus
	// Multiply is '*'.
	Multiply
	// Divide is '/'.
	Divide
	// Equals is '='.
	Equals
	// Exclamation is '!'.
	Exclamation
	// GreaterThan is '>'.
	GreaterThan
	// LessThan is '<'.
	LessThan
	// IsEqual is '=='.
	IsEqual
	// IsNotEqual is '!='.
	IsNotEqual
	// GreaterThanOrEqual is '>='.
	GreaterThanOrEqual
	// LessThanOrEqual is '<='.
	LessThanOrEqual
	// And is '&&'.
	And
	// Or is '||'.
	Or
	// Dot is '.'.
	Dot
	// Arrow is '->'.
	Arrow
)

type opInfo struct {
	name   string
	symbol string
}

var opTable = [...]opInfo{
	Plus:               {"Plus", "+"},
	Minus:              {"Minus", "-"},
	Multiply:           {"Multiply", "*"},
	Divide:             {"Divide", "/"},
	Equals:             {"Equals", "="},
	Exclamation:        {"Exclamation", "!"},
	GreaterThan:        {"GreaterThan", ">"},
	LessThan:           {"LessThan", "<"},
	IsEqual:            {"IsEqual", "=="},
	IsNotEqual:         {"IsNotEqual", "!="},
	GreaterThanOrEqual: {"GreaterThanOrEqual", ">="},
	LessThanOrEqual:    {"LessThanOrEqual", "<="},
	And:                {"And", "&&"},
	Or:                 {"Or", "||"},
	Dot:                {"Dot", "."},
	Arrow:              {"Arrow", "->"},
}

var operators = func() map[string]Op {
	m := make(map[string]Op, len(opTable))
	for op, info := range opTable {
		if info.symbol != "" {
			m[info.symbol] = Op(op)
		}
	}
	return m
}()

func (o Op) String() string {
	if int(o) < len(opTable) && opTable[o].name != "" {
		return opTable[o].name
	}
	return "Op(?)"
}

// Symbol returns the source spelling of the operator.
func (o Op) Symbol() string {
	if int(o) < len(opTable) {
		return opTable[o].symbol
	}
	return ""
}

// LookupOperator resolves a one- or two-character spelling.
// Lone '&' and '|' have no entry and do not resolve.
func LookupOperator(s string) (Op, bool) {
	op, ok := operators[s]
	return op, ok
}

// IsOperatorStart reports whether r can begin an operator.
func IsOperatorStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '>', '<', '=', '&', '!', '|', '.':
		return true
	default:
		return false
	}
}
