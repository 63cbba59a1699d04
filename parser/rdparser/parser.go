package rdparser

import (
	"io"

	"github.com/Graphics-Interpreter/GI/lisp"
	"github.com/Graphics-Interpreter/GI/parser/lexer"
	"github.com/Graphics-Interpreter/GI/parser/token"
)

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.  An empty stream contains no expressions
// and is not an error.
func (_ *reader) Read(name string, r io.Reader) ([]*lisp.Expr, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p := New(lexer.New(name).Append(string(b)))
	var exprs []*lisp.Expr
	for !p.AtEOF() {
		expr, err := p.ParseOne()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseOne parses the top-level form at the current token of lex.
func ParseOne(lex *lexer.Lexer) (*lisp.Expr, error) {
	return New(lex).ParseOne()
}

// ParseAll parses every remaining form in lex as a single sequence.
func ParseAll(lex *lexer.Lexer) (*lisp.Expr, error) {
	return New(lex).ParseAll()
}

// Parser is a recursive-descent parser consuming a lexer's token stream.
// The parser holds no tokens of its own; the lexer's current token is the
// next token to be parsed.
type Parser struct {
	lex *lexer.Lexer
}

// New returns a new Parser that reads tokens from lex.
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

// AtEOF returns true if all of the lexer's queued text has been consumed.
func (p *Parser) AtEOF() bool {
	return p.lex.Kind() == token.EOF
}

// ParseOne parses exactly one top-level form and advances the lexer past
// it.  If the input ends before the form is closed the returned error wraps
// io.ErrUnexpectedEOF.  If there is no form at all it wraps io.EOF.
func (p *Parser) ParseOne() (*lisp.Expr, error) {
	if p.AtEOF() {
		return nil, p.wrapf(io.EOF, "no expression")
	}
	return p.ParseExpression()
}

// ParseAll parses forms until the end of input and wraps them in a
// sequence.  Input containing no forms is a syntax error.
func (p *Parser) ParseAll() (*lisp.Expr, error) {
	start := p.loc()
	var exprs []*lisp.Expr
	for !p.AtEOF() {
		expr, err := p.ParseOne()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	if len(exprs) == 0 {
		return nil, lisp.Errorf(lisp.SyntaxError, "no expressions").At(start)
	}
	seq := lisp.Sequence(exprs)
	seq.Source = start
	return seq, nil
}

// ParseExpression parses an expression beginning at the current token.
func (p *Parser) ParseExpression() (*lisp.Expr, error) {
	tok := p.lex.Token()
	switch tok.Type {
	case token.NUMBER:
		p.lex.Advance()
		return at(lisp.Number(tok.Num), tok), nil
	case token.IDENTIFIER:
		p.lex.Advance()
		return at(lisp.Identifier(tok.Text), tok), nil
	case token.TRUE:
		p.lex.Advance()
		return at(lisp.True(), tok), nil
	case token.FALSE:
		p.lex.Advance()
		return at(lisp.False(), tok), nil
	case token.NIL:
		p.lex.Advance()
		return at(lisp.Nil(), tok), nil
	case token.QUOTE:
		return p.parseQuote()
	case token.PAREN_L:
		return p.parseForm()
	case token.EOF:
		return nil, p.unexpectedEOF()
	case token.ERROR, token.INVALID:
		p.lex.Advance()
		return nil, lisp.Errorf(lisp.SyntaxError, "%s", tok.Text).At(tok.Source)
	case token.STRING:
		p.lex.Advance()
		return nil, lisp.Errorf(lisp.SyntaxError, "string literal is only allowed in load: %q", tok.Text).At(tok.Source)
	default:
		p.lex.Advance()
		return nil, lisp.Errorf(lisp.SyntaxError, "unexpected %s", tok.Type).At(tok.Source)
	}
}

// parseQuote parses '() as the empty list.  No other quoted datum is
// supported.
func (p *Parser) parseQuote() (*lisp.Expr, error) {
	quote := p.lex.Token()
	p.lex.Advance()
	if err := p.expect(token.PAREN_L, "quote"); err != nil {
		return nil, err
	}
	if err := p.expect(token.PAREN_R, "quote"); err != nil {
		return nil, err
	}
	return at(lisp.Nil(), quote), nil
}

func (p *Parser) parseForm() (*lisp.Expr, error) {
	open := p.lex.Token()
	switch p.lex.Advance() {
	case token.DEFINE:
		return p.parseDefine(open)
	case token.LET:
		return p.parseLet(open)
	case token.IF:
		return p.parseIf(open)
	case token.COND:
		return p.parseCond(open)
	case token.LAMBDA:
		return p.parseLambda(open)
	case token.LOAD:
		return p.parseLoad(open)
	case token.PAREN_R:
		p.lex.Advance()
		return nil, lisp.Errorf(lisp.SyntaxError, "empty application").At(open.Source)
	}
	op, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	var args []*lisp.Expr
	for p.lex.Kind() != token.PAREN_R {
		if p.AtEOF() {
			return nil, p.unexpectedEOF()
		}
		arg, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.lex.Advance()
	return at(lisp.Application(op, args), open), nil
}

func (p *Parser) parseDefine(open *token.Token) (*lisp.Expr, error) {
	p.lex.Advance()
	tok := p.lex.Token()
	switch tok.Type {
	case token.IDENTIFIER:
		p.lex.Advance()
		if p.lex.Kind() == token.PAREN_R {
			return nil, lisp.Errorf(lisp.SyntaxError, "define: missing value for %s", tok.Text).At(open.Source)
		}
		val, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.PAREN_R, "define"); err != nil {
			return nil, err
		}
		return at(lisp.ValueBinding(tok.Text, val), open), nil
	case token.PAREN_L:
		p.lex.Advance()
		name := p.lex.Token()
		if name.Type != token.IDENTIFIER {
			return nil, p.unexpected("define")
		}
		p.lex.Advance()
		formals, err := p.parseFormals()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBody("define")
		if err != nil {
			return nil, err
		}
		return at(lisp.FunctionBinding(name.Text, formals, body), open), nil
	default:
		return nil, p.unexpected("define")
	}
}

func (p *Parser) parseLet(open *token.Token) (*lisp.Expr, error) {
	p.lex.Advance()
	if err := p.expectOpen("let"); err != nil {
		return nil, err
	}
	var names []string
	var exprs []*lisp.Expr
	for p.lex.Kind() != token.PAREN_R {
		if err := p.expectOpen("let"); err != nil {
			return nil, err
		}
		name := p.lex.Token()
		if name.Type != token.IDENTIFIER {
			return nil, p.unexpected("let")
		}
		p.lex.Advance()
		val, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.PAREN_R, "let"); err != nil {
			return nil, err
		}
		names = append(names, name.Text)
		exprs = append(exprs, val)
	}
	p.lex.Advance()
	body, err := p.parseBody("let")
	if err != nil {
		return nil, err
	}
	return at(lisp.Let(names, exprs, body), open), nil
}

func (p *Parser) parseIf(open *token.Token) (*lisp.Expr, error) {
	p.lex.Advance()
	var parts [3]*lisp.Expr
	for i := range parts {
		if p.lex.Kind() == token.PAREN_R {
			return nil, lisp.Errorf(lisp.SyntaxError, "if: expected condition and two branches").At(open.Source)
		}
		var err error
		parts[i], err = p.ParseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.PAREN_R, "if"); err != nil {
		return nil, err
	}
	return at(lisp.Conditional(parts[0], parts[1], parts[2]), open), nil
}

// parseCond desugars cond into nested conditionals.  When no clause
// matches the value is the empty list.
func (p *Parser) parseCond(open *token.Token) (*lisp.Expr, error) {
	p.lex.Advance()
	type clause struct {
		test   *lisp.Expr
		result *lisp.Expr
		source *token.Location
	}
	var clauses []clause
	var otherwise *lisp.Expr
	for p.lex.Kind() != token.PAREN_R {
		if otherwise != nil {
			return nil, lisp.Errorf(lisp.SyntaxError, "cond: else clause must be last").At(p.loc())
		}
		start := p.loc()
		if err := p.expectOpen("cond"); err != nil {
			return nil, err
		}
		var test *lisp.Expr
		tok := p.lex.Token()
		if tok.Type == token.IDENTIFIER && tok.Text == lisp.ElseSymbol {
			p.lex.Advance()
		} else {
			var err error
			test, err = p.ParseExpression()
			if err != nil {
				return nil, err
			}
		}
		result, err := p.parseBody("cond")
		if err != nil {
			return nil, err
		}
		if test == nil {
			otherwise = result
			continue
		}
		clauses = append(clauses, clause{test, result, start})
	}
	p.lex.Advance()
	expr := otherwise
	if expr == nil {
		expr = at(lisp.Nil(), open)
	}
	for i := len(clauses) - 1; i >= 0; i-- {
		expr = lisp.Conditional(clauses[i].test, clauses[i].result, expr)
		expr.Source = clauses[i].source
	}
	return expr, nil
}

func (p *Parser) parseLambda(open *token.Token) (*lisp.Expr, error) {
	p.lex.Advance()
	if err := p.expectOpen("lambda"); err != nil {
		return nil, err
	}
	formals, err := p.parseFormals()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody("lambda")
	if err != nil {
		return nil, err
	}
	return at(lisp.Lambda(formals, body), open), nil
}

// parseLoad accepts the filename as a string literal or as a bare
// identifier such as Base.scm.
func (p *Parser) parseLoad(open *token.Token) (*lisp.Expr, error) {
	tok := p.lex.Advance()
	if tok != token.STRING && tok != token.IDENTIFIER {
		return nil, p.unexpected("load")
	}
	name := p.lex.Token().Text
	p.lex.Advance()
	if err := p.expect(token.PAREN_R, "load"); err != nil {
		return nil, err
	}
	return at(lisp.FileLoad(name), open), nil
}

// parseFormals parses identifiers up to and including the closing paren of
// a parameter list.
func (p *Parser) parseFormals() ([]string, error) {
	formals := []string{}
	for p.lex.Kind() != token.PAREN_R {
		tok := p.lex.Token()
		switch tok.Type {
		case token.IDENTIFIER:
			formals = append(formals, tok.Text)
			p.lex.Advance()
		case token.EOF:
			return nil, p.unexpectedEOF()
		default:
			return nil, lisp.Errorf(lisp.TypeError, "parameter is not an identifier: %s", tok.Type).At(tok.Source)
		}
	}
	p.lex.Advance()
	for i, name := range formals {
		if name == lisp.VarArgSymbol && i != len(formals)-2 {
			return nil, lisp.Errorf(lisp.SyntaxError, "%s must precede exactly one parameter", lisp.VarArgSymbol).At(p.loc())
		}
	}
	return formals, nil
}

// parseBody parses one or more expressions up to and including the closing
// paren of form.  Multiple expressions are wrapped in a sequence.
func (p *Parser) parseBody(form string) (*lisp.Expr, error) {
	start := p.loc()
	var exprs []*lisp.Expr
	for p.lex.Kind() != token.PAREN_R {
		if p.AtEOF() {
			return nil, p.unexpectedEOF()
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	p.lex.Advance()
	switch len(exprs) {
	case 0:
		return nil, lisp.Errorf(lisp.SyntaxError, "%s: missing body", form).At(start)
	case 1:
		return exprs[0], nil
	default:
		seq := lisp.Sequence(exprs)
		seq.Source = start
		return seq, nil
	}
}

func (p *Parser) expectOpen(form string) error {
	return p.expect(token.PAREN_L, form)
}

func (p *Parser) expect(typ token.Type, form string) error {
	if p.lex.Kind() != typ {
		return p.unexpected(form)
	}
	p.lex.Advance()
	return nil
}

func (p *Parser) unexpected(form string) error {
	tok := p.lex.Token()
	if tok.Type == token.EOF {
		return p.unexpectedEOF()
	}
	return lisp.Errorf(lisp.SyntaxError, "%s: unexpected %s", form, tok.Type).At(tok.Source)
}

func (p *Parser) unexpectedEOF() error {
	return p.wrapf(io.ErrUnexpectedEOF, "unmatched (")
}

func (p *Parser) wrapf(err error, format string, v ...interface{}) error {
	return lisp.WrapError(lisp.SyntaxError, err, format, v...).At(p.loc())
}

func (p *Parser) loc() *token.Location {
	return p.lex.Token().Source
}

func at(expr *lisp.Expr, tok *token.Token) *lisp.Expr {
	expr.Source = tok.Source
	return expr
}
