// Package lisplib is used to conveniently construct a scope with the
// standard library loaded.
package lisplib

import (
	"embed"
	"io/fs"

	"github.com/Graphics-Interpreter/GI/lisp"
	"github.com/Graphics-Interpreter/GI/lisp/lisplib/libio"
	"github.com/Graphics-Interpreter/GI/lisp/lisplib/libmath"
	"github.com/Graphics-Interpreter/GI/parser/rdparser"
)

// Names of the library sources embedded in the package.
const (
	BaseLibrary  = "Base.scm"
	TestLibrary  = "Test.scm"
	SetupLibrary = "setup.scm"
)

//go:embed scm/*.scm
var sources embed.FS

// FS returns the embedded library sources.
func FS() fs.FS {
	sub, err := fs.Sub(sources, "scm")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewScope returns a root scope with the default builtins, the host
// libraries, and a parser installed.  Load resolves names against the
// working directory first and falls back to the embedded library sources.
// The given configs are applied last and may override any of these.
func NewScope(configs ...lisp.Config) (*lisp.Scope, error) {
	s := lisp.NewScope()
	base := []lisp.Config{
		lisp.WithReader(rdparser.NewReader()),
		lisp.WithSources(&lisp.OSSource{}, lisp.FSSource(FS())),
		libio.LoadPackage,
		libmath.LoadPackage,
	}
	err := lisp.InitializeScope(s, append(base, configs...)...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// LoadLibrary loads the base library into s.  The host math library must
// already be present in s.
func LoadLibrary(s *lisp.Scope) error {
	return s.LoadFile(BaseLibrary)
}
