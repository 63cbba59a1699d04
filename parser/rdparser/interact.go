package rdparser

import (
	"errors"
	"io"
	"strings"

	"github.com/Graphics-Interpreter/GI/lisp"
	"github.com/Graphics-Interpreter/GI/parser/lexer"
)

// Interactive implements a parser for console input that arrives one line
// at a time.  Lines are accumulated until they contain at least one
// complete top-level form.  Each accumulated buffer is lexed from the
// beginning, so a form may span any number of lines.
type Interactive struct {
	name string
	buf  strings.Builder
}

// NewInteractive initializes and returns a new Interactive parser that
// attributes source locations to name.
func NewInteractive(name string) *Interactive {
	return &Interactive{name: name}
}

// Prompt returns prompt when p is not holding a partial form and a blank
// continuation prompt of the same width otherwise.
func (p *Interactive) Prompt(prompt string) string {
	if p.IsParsing() {
		return strings.Repeat(" ", len(prompt))
	}
	return prompt
}

// IsParsing returns true if p is holding input that does not yet form a
// complete expression.
func (p *Interactive) IsParsing() bool {
	return p.buf.Len() > 0
}

// Reset discards any partial input.
func (p *Interactive) Reset() {
	p.buf.Reset()
}

// ParseLine appends line to any pending input and returns the complete
// forms it now contains.  If the input ends inside a form no expressions
// are returned, no error is returned, and the input is retained until more
// lines arrive.  On a syntax error the forms completed before it are
// returned along with the error and all pending input is discarded so
// corrected source can be re-read.
func (p *Interactive) ParseLine(line string) ([]*lisp.Expr, error) {
	p.buf.WriteString(line)
	p.buf.WriteString("\n")
	parser := New(lexer.New(p.name).Append(p.buf.String()))
	var exprs []*lisp.Expr
	for !parser.AtEOF() {
		expr, err := parser.ParseOne()
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, nil
		}
		if err != nil {
			p.buf.Reset()
			return exprs, err
		}
		exprs = append(exprs, expr)
	}
	p.buf.Reset()
	return exprs, nil
}
