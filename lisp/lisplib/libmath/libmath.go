package libmath

import (
	"math"

	"github.com/Graphics-Interpreter/GI/lisp"
)

// LoadPackage adds the math builtins and constants to s.
func LoadPackage(s *lisp.Scope) error {
	s.Bind("pi", lisp.Number(math.Pi))
	s.AddBuiltins(builtins...)
	return nil
}

var builtins = []lisp.BuiltinDef{
	lisp.Function("ceil", unary(math.Ceil), lisp.Formals("number")...),
	lisp.Function("floor", unary(math.Floor), lisp.Formals("number")...),
	lisp.Function("truncate", unary(math.Trunc), lisp.Formals("number")...),
	lisp.Function("sqrt", unary(math.Sqrt), lisp.Formals("number")...),
	lisp.Function("exp", unary(math.Exp), lisp.Formals("number")...),
	lisp.Function("ln", unary(math.Log), lisp.Formals("number")...),
	lisp.Function("sin", unary(math.Sin), lisp.Formals("radians")...),
	lisp.Function("cos", unary(math.Cos), lisp.Formals("radians")...),
	lisp.Function("atan", builtinAtan, lisp.Formals("y", "x")...),
	lisp.Function("log", builtinLog, lisp.Formals("base", "number")...),
}

func unary(fn func(float64) float64) lisp.Builtin {
	return func(s *lisp.Scope, args []*lisp.Expr) (*lisp.Expr, error) {
		x := args[0]
		if x.Type != lisp.ENumber {
			return nil, lisp.Errorf(lisp.TypeError, "argument is not a number: %v", x)
		}
		return lisp.Number(fn(x.Num)), nil
	}
}

func builtinAtan(s *lisp.Scope, args []*lisp.Expr) (*lisp.Expr, error) {
	y, x := args[0], args[1]
	if y.Type != lisp.ENumber {
		return nil, lisp.Errorf(lisp.TypeError, "first argument is not a number: %v", y)
	}
	if x.Type != lisp.ENumber {
		return nil, lisp.Errorf(lisp.TypeError, "second argument is not a number: %v", x)
	}
	return lisp.Number(math.Atan2(y.Num, x.Num)), nil
}

func builtinLog(s *lisp.Scope, args []*lisp.Expr) (*lisp.Expr, error) {
	b, x := args[0], args[1]
	if b.Type != lisp.ENumber {
		return nil, lisp.Errorf(lisp.TypeError, "first argument is not a number: %v", b)
	}
	if x.Type != lisp.ENumber {
		return nil, lisp.Errorf(lisp.TypeError, "second argument is not a number: %v", x)
	}
	return lisp.Number(math.Log(x.Num) / math.Log(b.Num)), nil
}
