package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Graphics-Interpreter/GI/parser/token"
)

const miscWordRunes = "0123456789" + miscWordSymbols
const miscWordSymbols = "+-*/<>=!?&%_#.^~$:"

// Lexer classifies source text into tokens.  Text is queued with Append and
// tokens are consumed one at a time with Advance.  Once all queued text has
// been consumed the current token is EOF, repeatedly, until more text is
// appended.
type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune
	tok     *token.Token
}

// New returns a Lexer that attributes tokens to file.  The returned lexer
// holds no text.
func New(file string) *Lexer {
	s := token.NewScanner(file)
	lex := &Lexer{
		scanner: s,
	}
	lex.tok = lex.eof()
	return lex
}

// Append queues text after any previously appended text and returns lex.  If
// the lexer had reached the end of its input the first token of text becomes
// the current token.
//
// Tokens are classified as soon as they are reached, so a token must not span
// two calls to Append.  Text split inside a number or identifier lexes as two
// tokens.  Callers accumulating partial input, like rdparser.Interactive,
// should buffer it and lex the whole text again.
func (lex *Lexer) Append(text string) *Lexer {
	lex.scanner.Append(text)
	if lex.tok.Type == token.EOF {
		lex.Advance()
	}
	return lex
}

// Token returns the current token.
func (lex *Lexer) Token() *token.Token {
	return lex.tok
}

// Kind returns the type of the current token.
func (lex *Lexer) Kind() token.Type {
	return lex.tok.Type
}

// Advance consumes the current token, classifies the next one, and returns
// its type.
func (lex *Lexer) Advance() token.Type {
	lex.tok = lex.NextToken()
	return lex.tok.Type
}

// NextToken scans and returns the next token in the input without altering
// the current token.  Most callers should use Advance.
func (lex *Lexer) NextToken() *token.Token {
	for {
		if !lex.skipSpaceAndComments() {
			return lex.eof()
		}
		lex.readChar()
		switch {
		case lex.ch == '(':
			return lex.scanner.EmitToken(token.PAREN_L)
		case lex.ch == ')':
			return lex.scanner.EmitToken(token.PAREN_R)
		case lex.ch == '\'':
			return lex.scanner.EmitToken(token.QUOTE)
		case lex.ch == '"':
			return lex.readString()
		case isDigit(lex.ch):
			return lex.readNumber()
		case lex.ch == '-' && isDigit(lex.peekRune()):
			return lex.readNumber()
		case lex.ch == '.' && isDigit(lex.peekRune()):
			return lex.readNumber()
		case isWordStart(lex.ch):
			lex.readWord()
			tok := lex.scanner.EmitToken(token.IDENTIFIER)
			tok.Type = token.Lookup(tok.Text)
			return tok
		default:
			// Unrecognized characters are skipped.
			lex.scanner.Ignore()
		}
	}
}

func (lex *Lexer) eof() *token.Token {
	lex.scanner.Ignore()
	return &token.Token{
		Type:   token.EOF,
		Source: lex.scanner.Loc(),
	}
}

func (lex *Lexer) errorf(format string, v ...interface{}) *token.Token {
	tok := lex.scanner.EmitToken(token.ERROR)
	tok.Text = fmt.Sprintf(format, v...)
	return tok
}

// skipSpaceAndComments returns false if the input is exhausted.
func (lex *Lexer) skipSpaceAndComments() bool {
	for {
		c, ok := lex.scanner.Peek()
		if !ok {
			return false
		}
		switch {
		case unicode.IsSpace(c):
			lex.readChar()
		case c == ';':
			for c, ok := lex.scanner.Peek(); ok && c != '\n'; c, ok = lex.scanner.Peek() {
				lex.readChar()
			}
		default:
			lex.scanner.Ignore()
			return true
		}
	}
}

func (lex *Lexer) readWord() {
	for isWord(lex.peekRune()) {
		lex.readChar()
	}
}

func (lex *Lexer) readNumber() *token.Token {
	lex.readDigits()
	if lex.ch != '.' && lex.peekRune() == '.' {
		lex.readChar()
		lex.readDigits()
	}
	switch lex.peekRune() {
	case 'e', 'E':
		lex.readChar()
		switch lex.peekRune() {
		case '+', '-':
			lex.readChar()
		}
		if !isDigit(lex.peekRune()) {
			return lex.errorf("invalid number literal: %s", lex.scanner.Text())
		}
		lex.readDigits()
	}
	text := lex.scanner.Text()
	x, err := strconv.ParseFloat(strings.TrimSuffix(text, "."), 64)
	if err != nil {
		return lex.errorf("invalid number literal: %s", text)
	}
	tok := lex.scanner.EmitToken(token.NUMBER)
	tok.Num = x
	return tok
}

func (lex *Lexer) readDigits() {
	for isDigit(lex.peekRune()) {
		lex.readChar()
	}
}

// readString scans a double-quoted literal.  The token text is the unescaped
// content without the quotes.
func (lex *Lexer) readString() *token.Token {
	var buf strings.Builder
	for {
		c, ok := lex.scanner.Peek()
		if !ok {
			return lex.errorf("unterminated string literal")
		}
		lex.readChar()
		switch c {
		case '"':
			tok := lex.scanner.EmitToken(token.STRING)
			tok.Text = buf.String()
			return tok
		case '\\':
			esc, ok := lex.scanner.Peek()
			if !ok {
				return lex.errorf("unterminated string literal")
			}
			lex.readChar()
			switch esc {
			case 'n':
				buf.WriteRune('\n')
			case 't':
				buf.WriteRune('\t')
			default:
				buf.WriteRune(esc)
			}
		default:
			buf.WriteRune(c)
		}
	}
}

func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func (lex *Lexer) readChar() bool {
	if lex.scanner.ScanRune() != nil {
		return false
	}
	lex.ch = lex.scanner.Rune()
	return true
}

func isWordStart(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(miscWordSymbols, c)
}

func isWord(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(miscWordRunes, c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
