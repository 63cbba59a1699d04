package lisp

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

// LoadString parses exprs and evaluates the result in s.
func (s *Scope) LoadString(name, exprs string) (*Expr, error) {
	return s.Load(name, strings.NewReader(exprs))
}

// LoadFile uses s.Runtime.Sources to read a source file and evaluates the
// expressions it contains in s.  Any error encountered while reading or
// parsing prevents execution of the loaded source and is returned.
func (s *Scope) LoadFile(name string) error {
	if s.Runtime.Sources == nil {
		return Errorf(ResourceNotFound, "cannot load %s: no sources in scope runtime", name)
	}
	src, err := s.Runtime.Sources.ReadSource(name)
	if errors.Is(err, ErrSourceNotFound) {
		return Errorf(ResourceNotFound, "cannot load %s: no such source", name)
	}
	if err != nil {
		return WrapError(ResourceNotFound, err, "cannot load %s", name)
	}
	_, err = s.Load(name, bytes.NewReader(src))
	return err
}

// Load reads expressions from r and evaluates them in order in s.  The value
// of the last expression is returned.  If s.Runtime.Reader has not been set
// then an error will be returned by Load.
func (s *Scope) Load(name string, r io.Reader) (*Expr, error) {
	if s.Runtime.Reader == nil {
		return nil, Errorf(UnknownError, "no reader for scope runtime")
	}
	exprs, err := s.Runtime.Reader.Read(name, r)
	if err != nil {
		return nil, err
	}
	ret := Void()
	for _, expr := range exprs {
		ret, err = s.Eval(expr)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}
