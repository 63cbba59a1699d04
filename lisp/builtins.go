package lisp

import "fmt"

// BuiltinDef is a native procedure with a name.
type BuiltinDef interface {
	Name() string
	Eval(s *Scope, args []*Expr) (*Expr, error)
}

type langBuiltin struct {
	name    string
	formals []string
	fun     Builtin
}

// Function returns a BuiltinDef which binds fn to name.  When formals are
// given the number of arguments is checked before fn is called, using the
// same rules as a lambda's formal parameters.
func Function(name string, fn Builtin, formals ...string) BuiltinDef {
	return &langBuiltin{name, formals, fn}
}

// Formals returns its arguments.  It exists to make builtin tables read
// like lambda definitions.
func Formals(argSymbols ...string) []string {
	return argSymbols
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(s *Scope, args []*Expr) (*Expr, error) {
	if fun.formals != nil {
		err := fun.checkArity(args)
		if err != nil {
			return nil, err
		}
	}
	return fun.fun(s, args)
}

func (fun *langBuiltin) checkArity(args []*Expr) error {
	n := len(fun.formals)
	if n >= 2 && fun.formals[n-2] == VarArgSymbol {
		if len(args) < n-2 {
			return fun.arityError(n-2, true, len(args))
		}
		return nil
	}
	if len(args) != n {
		return fun.arityError(n, false, len(args))
	}
	return nil
}

func (fun *langBuiltin) arityError(nformals int, variadic bool, nargs int) error {
	return arityError(&Expr{Str: fun.name}, nformals, variadic, nargs)
}

var langBuiltins = []*langBuiltin{
	{"cons", Formals("first", "second"), builtinCons},
	{"car", Formals("pair"), builtinCAR},
	{"cdr", Formals("pair"), builtinCDR},
	{"list", Formals(VarArgSymbol, "elems"), builtinList},
	{"null?", Formals("x"), builtinNullP},
	{"+", Formals(VarArgSymbol, "x"), builtinAdd},
	{"*", Formals(VarArgSymbol, "x"), builtinMul},
	{"<", Formals(VarArgSymbol, "x"), builtinLT},
	{"#opposite", Formals("x"), builtinOpposite},
	{"#reciprocal", Formals("x"), builtinReciprocal},
}

// DefaultBuiltins returns the primitive procedures every scope is
// initialized with.
func DefaultBuiltins() []BuiltinDef {
	ops := make([]BuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		ops[i] = langBuiltins[i]
	}
	return ops
}

func builtinCons(s *Scope, args []*Expr) (*Expr, error) {
	return Cons(args[0], args[1]), nil
}

func builtinCAR(s *Scope, args []*Expr) (*Expr, error) {
	if args[0].Type != EPair {
		return nil, Errorf(TypeError, "car: argument is not a pair: %v", args[0])
	}
	return args[0].Car(), nil
}

func builtinCDR(s *Scope, args []*Expr) (*Expr, error) {
	if args[0].Type != EPair {
		return nil, Errorf(TypeError, "cdr: argument is not a pair: %v", args[0])
	}
	return args[0].Cdr(), nil
}

func builtinList(s *Scope, args []*Expr) (*Expr, error) {
	return List(args...), nil
}

func builtinNullP(s *Scope, args []*Expr) (*Expr, error) {
	return Bool(args[0].IsNil()), nil
}

func builtinAdd(s *Scope, args []*Expr) (*Expr, error) {
	err := checkNumbers("+", args)
	if err != nil {
		return nil, err
	}
	sum := 0.0
	for _, c := range args {
		sum += c.Num
	}
	return Number(sum), nil
}

func builtinMul(s *Scope, args []*Expr) (*Expr, error) {
	err := checkNumbers("*", args)
	if err != nil {
		return nil, err
	}
	prod := 1.0
	for _, c := range args {
		prod *= c.Num
	}
	return Number(prod), nil
}

// builtinLT returns #t if its arguments are strictly increasing.  Every
// argument is checked even after the order has been found to fail.
func builtinLT(s *Scope, args []*Expr) (*Expr, error) {
	err := checkNumbers("<", args)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(args); i++ {
		if !(args[i-1].Num < args[i].Num) {
			return False(), nil
		}
	}
	return True(), nil
}

func builtinOpposite(s *Scope, args []*Expr) (*Expr, error) {
	err := checkNumbers("#opposite", args)
	if err != nil {
		return nil, err
	}
	return Number(-args[0].Num), nil
}

// builtinReciprocal follows IEEE 754 division: the reciprocal of zero is an
// infinity.
func builtinReciprocal(s *Scope, args []*Expr) (*Expr, error) {
	err := checkNumbers("#reciprocal", args)
	if err != nil {
		return nil, err
	}
	return Number(1 / args[0].Num), nil
}

func checkNumbers(name string, args []*Expr) error {
	for i, c := range args {
		if c.Type != ENumber {
			return Errorf(TypeError, "%s: %s argument is not a number: %v", name, ordinal(i+1), c)
		}
	}
	return nil
}

func ordinal(n int) string {
	switch {
	case n%100 >= 11 && n%100 <= 13:
		return fmt.Sprintf("%dth", n)
	case n%10 == 1:
		return fmt.Sprintf("%dst", n)
	case n%10 == 2:
		return fmt.Sprintf("%dnd", n)
	case n%10 == 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}
