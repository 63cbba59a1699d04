package token

import "fmt"

// Token is a classified unit of source text produced by the lexer.
type Token struct {
	Type   Type
	Text   string
	Num    float64 // value of a NUMBER token
	Source *Location
}

// Type classifies a Token.
type Type uint

// Type constants used by the lexer and parser.
const (
	INVALID Type = iota
	ERROR
	EOF

	// Atomic expressions & literals
	NUMBER
	IDENTIFIER
	STRING

	// Delimiters
	PAREN_L
	PAREN_R
	QUOTE

	// Keywords
	DEFINE
	LET
	IF
	COND
	LAMBDA
	LOAD
	NIL
	TRUE
	FALSE

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:    "invalid",
		ERROR:      "error",
		EOF:        "EOF",
		NUMBER:     "number",
		IDENTIFIER: "identifier",
		STRING:     "string",
		PAREN_L:    "(",
		PAREN_R:    ")",
		QUOTE:      "'",
		DEFINE:     "define",
		LET:        "let",
		IF:         "if",
		COND:       "cond",
		LAMBDA:     "lambda",
		LOAD:       "load",
		NIL:        "nil",
		TRUE:       "#t",
		FALSE:      "#f",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// IsKeyword returns true if typ is one of the fixed keyword types.
func (typ Type) IsKeyword() bool {
	return DEFINE <= typ && typ <= FALSE
}

var keywords = map[string]Type{
	"define": DEFINE,
	"let":    LET,
	"if":     IF,
	"cond":   COND,
	"lambda": LAMBDA,
	"load":   LOAD,
	"nil":    NIL,
	"#t":     TRUE,
	"#f":     FALSE,
}

// Lookup returns the keyword type matching text exactly, or IDENTIFIER when
// text is not a keyword.  Matching is case-sensitive.
func Lookup(text string) Type {
	if typ, ok := keywords[text]; ok {
		return typ
	}
	return IDENTIFIER
}

type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	if loc == nil {
		return "<unknown>"
	}
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
