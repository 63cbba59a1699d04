package lisp

import "github.com/Graphics-Interpreter/GI/parser/token"

// Eval evaluates v in the context of s and returns the resulting value.
//
// Evaluation is a plain recursive walk without tail-call elimination, so
// deeply recursive programs are bounded only by the goroutine stack.
// Exhausting it is fatal to the process and is not reported as an Error.
func (s *Scope) Eval(v *Expr) (*Expr, error) {
	switch v.Type {
	case ENumber, ETrue, EFalse, ENil, EBuiltin, EVoid:
		return v, nil
	case EIdentifier:
		val, err := s.Lookup(v.Str)
		if err != nil {
			return nil, err.(*Error).At(v.Source)
		}
		return val, nil
	case EPair:
		first, err := s.Eval(v.Cells[0])
		if err != nil {
			return nil, err
		}
		second, err := s.Eval(v.Cells[1])
		if err != nil {
			return nil, err
		}
		return Cons(first, second), nil
	case ESequence:
		return s.evalSequence(v)
	case EConditional:
		test, err := s.Eval(v.Cells[0])
		if err != nil {
			return nil, err
		}
		if test.Bool() {
			return s.Eval(v.Cells[1])
		}
		return s.Eval(v.Cells[2])
	case ELet:
		return s.evalLet(v)
	case EValueBinding:
		val, err := s.Eval(v.Body)
		if err != nil {
			return nil, err
		}
		s.Bind(v.Str, val)
		return Void(), nil
	case EFunctionBinding:
		fun := s.closure(v)
		fun.Str = v.Str
		// The procedure is visible in its own captured scope so that it can
		// call itself.  Definitions made after this point are not.
		fun.Env.Bind(v.Str, fun)
		s.Bind(v.Str, fun)
		return Void(), nil
	case ELambda:
		if v.Env != nil {
			// already a closure value
			return v, nil
		}
		return s.closure(v), nil
	case EApplication:
		return s.evalApplication(v)
	case EFileLoad:
		err := s.LoadFile(v.Str)
		if err != nil {
			if lerr, ok := err.(*Error); ok {
				lerr.At(v.Source)
			}
			return nil, err
		}
		return Void(), nil
	default:
		return nil, Errorf(TypeError, "expression cannot be evaluated: %v", v.Type).At(v.Source)
	}
}

func (s *Scope) evalSequence(v *Expr) (*Expr, error) {
	if len(v.Cells) == 0 {
		return nil, Errorf(SyntaxError, "empty sequence").At(v.Source)
	}
	var val *Expr
	for _, c := range v.Cells {
		var err error
		val, err = s.Eval(c)
		if err != nil {
			return nil, err
		}
	}
	return val, nil
}

// evalLet evaluates every binding in s, binds the results in a snapshot of
// s, and evaluates the body in the snapshot.  Nothing leaks into s.
func (s *Scope) evalLet(v *Expr) (*Expr, error) {
	letscope := s.Snapshot()
	for i, name := range v.Formals {
		val, err := s.Eval(v.Cells[i])
		if err != nil {
			return nil, err
		}
		letscope.Bind(name, val)
	}
	return letscope.Eval(v.Body)
}

// closure returns a procedure value for the lambda literal (or function
// binding) v which captures a snapshot of s.
func (s *Scope) closure(v *Expr) *Expr {
	return &Expr{
		Type:    ELambda,
		Formals: v.Formals,
		Body:    v.Body,
		Env:     s.Snapshot(),
		Source:  v.Source,
	}
}

func (s *Scope) evalApplication(v *Expr) (*Expr, error) {
	// A lambda literal in operator position evaluates to a closure over s,
	// which is then applied directly.
	fun, err := s.Eval(v.Cells[0])
	if err != nil {
		return nil, err
	}
	if !fun.IsCallable() {
		return nil, Errorf(NotCallable, "not a procedure: %v", fun).At(v.Source)
	}
	args := make([]*Expr, len(v.Cells)-1)
	for i, c := range v.Cells[1:] {
		args[i], err = s.Eval(c)
		if err != nil {
			return nil, err
		}
	}
	val, err := s.apply(fun, args, v.Source)
	if err != nil {
		if lerr, ok := err.(*Error); ok {
			lerr.At(v.Source)
		}
		return nil, err
	}
	return val, nil
}

// Apply invokes the procedure fun with argument values which have already
// been evaluated.  Builtins receive s as the calling scope.
func (s *Scope) Apply(fun *Expr, args []*Expr) (*Expr, error) {
	return s.apply(fun, args, nil)
}

func (s *Scope) apply(fun *Expr, args []*Expr, loc *token.Location) (*Expr, error) {
	stack := s.Runtime.Stack
	if stack == nil {
		return s.call(fun, args)
	}
	stack.Push(procName(fun), loc)
	val, err := s.call(fun, args)
	if lerr, ok := err.(*Error); ok && lerr.Stack == nil {
		lerr.Stack = stack.Copy()
	}
	stack.Pop()
	return val, err
}

func procName(fun *Expr) string {
	if fun.Str != "" {
		return fun.Str
	}
	return "lambda"
}

func (s *Scope) call(fun *Expr, args []*Expr) (*Expr, error) {
	switch fun.Type {
	case EBuiltin:
		val, err := fun.Builtin(s, args)
		if err == nil && val == nil {
			// host builtins may return nothing
			val = Void()
		}
		return val, err
	case ELambda:
		if fun.Env == nil {
			fun = s.closure(fun)
		}
		callscope := fun.Env.Snapshot()
		err := bindFormals(callscope, fun, args)
		if err != nil {
			return nil, err
		}
		return callscope.Eval(fun.Body)
	default:
		return nil, Errorf(NotCallable, "not a procedure: %v", fun)
	}
}

func bindFormals(s *Scope, fun *Expr, args []*Expr) error {
	formals := fun.Formals
	rest := ""
	if n := len(formals); n >= 2 && formals[n-2] == VarArgSymbol {
		rest = formals[n-1]
		formals = formals[:n-2]
	}
	if len(args) < len(formals) || (rest == "" && len(args) != len(formals)) {
		return arityError(fun, len(formals), rest != "", len(args))
	}
	for i, name := range formals {
		s.Bind(name, args[i])
	}
	if rest != "" {
		s.Bind(rest, List(args[len(formals):]...))
	}
	return nil
}

func arityError(fun *Expr, nformals int, variadic bool, nargs int) *Error {
	name := procName(fun)
	plural := "s"
	if nformals == 1 {
		plural = ""
	}
	if variadic {
		return Errorf(ArityError, "%s: expected at least %d argument%s (got %d)", name, nformals, plural, nargs)
	}
	return Errorf(ArityError, "%s: expected %d argument%s (got %d)", name, nformals, plural, nargs)
}
