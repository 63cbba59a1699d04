package libio

import (
	"fmt"

	"github.com/Graphics-Interpreter/GI/lisp"
)

// LoadPackage adds the output builtins to s.  Output is written to the
// scope runtime's Stdout.
func LoadPackage(s *lisp.Scope) error {
	s.AddBuiltins(builtins...)
	return nil
}

var builtins = []lisp.BuiltinDef{
	lisp.Function("display", BuiltinDisplay, lisp.Formals("value")...),
	lisp.Function("newline", BuiltinNewline, lisp.Formals()...),
}

// BuiltinDisplay writes the display form of its argument.
func BuiltinDisplay(s *lisp.Scope, args []*lisp.Expr) (*lisp.Expr, error) {
	_, err := fmt.Fprint(s.Runtime.Stdout, args[0])
	if err != nil {
		return nil, err
	}
	return lisp.Void(), nil
}

// BuiltinNewline writes a newline to the runtime stdout.
func BuiltinNewline(s *lisp.Scope, args []*lisp.Expr) (*lisp.Expr, error) {
	_, err := fmt.Fprintln(s.Runtime.Stdout)
	if err != nil {
		return nil, err
	}
	return lisp.Void(), nil
}
