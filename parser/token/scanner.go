package token

import (
	"io"
	"unicode/utf8"
)

// Scanner facilitates construction of tokens from source text which may be
// appended incrementally.  Reaching the end of the appended text is not
// permanent: a later call to Append makes more runes available.
type Scanner struct {
	file string

	// position of the next rune to be scanned
	totalPos int
	line     int
	col      int

	// position of the first rune in the current token
	startPos  int
	startLine int
	startCol  int

	buf   []rune
	start int // start of the current token
	next  int // index of the rune following c
	c     rune
}

// NewScanner initializes and returns a new Scanner that attributes tokens to
// file.  The scanner holds no text until Append is called.
func NewScanner(file string) *Scanner {
	s := &Scanner{
		file: file,
		line: 1,
		col:  1,
	}
	s.Ignore()
	return s
}

// Append queues text for scanning after any text previously appended.  Bytes
// which are not valid utf-8 are replaced with utf8.RuneError.
func (s *Scanner) Append(text string) {
	if s.start == len(s.buf) {
		// Everything buffered has been consumed so storage can be reused.
		s.buf = s.buf[:0]
		s.start = 0
		s.next = 0
	}
	for len(text) > 0 {
		c, n := utf8.DecodeRuneInString(text)
		s.buf = append(s.buf, c)
		text = text[n:]
	}
}

// EmitToken returns a token containing the text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to skip all text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.next
	s.startPos = s.totalPos
	s.startLine = s.line
	s.startCol = s.col
}

// Text returns a string containing text scanned since the last call to either
// EmitToken or Ignore.
func (s *Scanner) Text() string {
	return string(s.buf[s.start:s.next])
}

// Rune returns the last rune scanned.
func (s *Scanner) Rune() rune {
	return s.c
}

// Peek returns the next rune to be scanned.  If all appended text has been
// scanned Peek returns a false second value.
func (s *Scanner) Peek() (rune, bool) {
	if s.next >= len(s.buf) {
		return 0, false
	}
	return s.buf[s.next], true
}

// ScanRune includes the next rune in the current token.  ScanRune returns
// io.EOF if all appended text has been scanned.
func (s *Scanner) ScanRune() error {
	if s.next >= len(s.buf) {
		return io.EOF
	}
	s.c = s.buf[s.next]
	s.next++
	s.totalPos++
	if s.c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return nil
}

// LocStart returns a Location referencing the beginning of the current token.
func (s *Scanner) LocStart() *Location {
	return &Location{
		File: s.file,
		Pos:  s.startPos,
		Line: s.startLine,
		Col:  s.startCol,
	}
}

// Loc returns a Location referencing the next rune to be scanned.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.totalPos,
		Line: s.line,
		Col:  s.col,
	}
}
