package lisp

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/Graphics-Interpreter/GI/parser/token"
)

// ExprType is the type of an Expr
type ExprType uint

// Possible ExprType values
const (
	EInvalid ExprType = iota
	ENumber
	ETrue
	EFalse
	ENil
	EIdentifier
	EPair
	ESequence
	EConditional
	ELet
	EValueBinding
	EFunctionBinding
	ELambda
	EApplication
	EFileLoad
	EBuiltin
	EVoid
)

var exprTypeStrings = []string{
	EInvalid:         "INVALID",
	ENumber:          "number",
	ETrue:            "true",
	EFalse:           "false",
	ENil:             "nil",
	EIdentifier:      "identifier",
	EPair:            "pair",
	ESequence:        "sequence",
	EConditional:     "conditional",
	ELet:             "let",
	EValueBinding:    "value-binding",
	EFunctionBinding: "function-binding",
	ELambda:          "procedure",
	EApplication:     "application",
	EFileLoad:        "load",
	EBuiltin:         "builtin",
	EVoid:            "void",
}

func (t ExprType) String() string {
	if int(t) >= len(exprTypeStrings) {
		return exprTypeStrings[EInvalid]
	}
	return exprTypeStrings[t]
}

// Builtin is a native procedure.  It receives arguments which have already
// been evaluated and the scope of the caller.
type Builtin func(s *Scope, args []*Expr) (*Expr, error)

// Expr is both a node in a parsed expression tree and a runtime value.
// Self-evaluating literals are their own values.
//
// The meaning of the Cells, Formals, Str and Body fields depends on Type:
//
//	EIdentifier       Str is the name
//	EPair             Cells is [first, second]
//	ESequence         Cells are the members, evaluated in order
//	EConditional      Cells is [condition, true-branch, false-branch]
//	ELet              Formals are the bound names, Cells the value expressions
//	EValueBinding     Str is the name, Body the value expression
//	EFunctionBinding  Str is the name, Formals the parameters
//	ELambda           Formals are the parameters, Env the captured scope (nil
//	                  for an unevaluated literal), Str the name it was defined
//	                  with, if any
//	EApplication      Cells[0] is the operator, Cells[1:] the arguments
//	EFileLoad         Str is the filename
//	EBuiltin          Str is the name, Builtin the native procedure
//
// Only the two cells of a pair may be modified after construction.
type Expr struct {
	Type    ExprType
	Num     float64
	Str     string
	Cells   []*Expr
	Formals []string
	Body    *Expr
	Env     *Scope
	Builtin Builtin
	Source  *token.Location
}

// Number returns an Expr representing the number x.
func Number(x float64) *Expr {
	return &Expr{
		Type: ENumber,
		Num:  x,
	}
}

// Bool returns #t or #f.
func Bool(ok bool) *Expr {
	if ok {
		return True()
	}
	return False()
}

// True returns #t.
func True() *Expr {
	return &Expr{Type: ETrue}
}

// False returns #f.
func False() *Expr {
	return &Expr{Type: EFalse}
}

// Nil returns the empty list.
func Nil() *Expr {
	return &Expr{Type: ENil}
}

// Void returns the value of an expression evaluated only for effect.  Hosts
// should not display it.
func Void() *Expr {
	return &Expr{Type: EVoid}
}

// Identifier returns an Expr which looks up name when evaluated.
func Identifier(name string) *Expr {
	return &Expr{
		Type: EIdentifier,
		Str:  name,
	}
}

// Cons returns a pair of first and second.
func Cons(first, second *Expr) *Expr {
	return &Expr{
		Type:  EPair,
		Cells: []*Expr{first, second},
	}
}

// List returns a chain of pairs holding vs and terminated by Nil.
func List(vs ...*Expr) *Expr {
	lis := Nil()
	for i := len(vs) - 1; i >= 0; i-- {
		lis = Cons(vs[i], lis)
	}
	return lis
}

// Sequence returns an Expr evaluating each of exprs in order.
func Sequence(exprs []*Expr) *Expr {
	return &Expr{
		Type:  ESequence,
		Cells: exprs,
	}
}

// Conditional returns an if expression.
func Conditional(cond, then, otherwise *Expr) *Expr {
	return &Expr{
		Type:  EConditional,
		Cells: []*Expr{cond, then, otherwise},
	}
}

// Let returns an expression evaluating body in a scope extended with names
// bound to the values of exprs.
func Let(names []string, exprs []*Expr, body *Expr) *Expr {
	return &Expr{
		Type:    ELet,
		Formals: names,
		Cells:   exprs,
		Body:    body,
	}
}

// ValueBinding returns a define expression binding name to the value of
// expr.
func ValueBinding(name string, expr *Expr) *Expr {
	return &Expr{
		Type: EValueBinding,
		Str:  name,
		Body: expr,
	}
}

// FunctionBinding returns a define expression binding name to a procedure
// which can call itself by name.
func FunctionBinding(name string, formals []string, body *Expr) *Expr {
	return &Expr{
		Type:    EFunctionBinding,
		Str:     name,
		Formals: formals,
		Body:    body,
	}
}

// Lambda returns an unevaluated lambda literal.
func Lambda(formals []string, body *Expr) *Expr {
	return &Expr{
		Type:    ELambda,
		Formals: formals,
		Body:    body,
	}
}

// Application returns a procedure call expression.
func Application(op *Expr, args []*Expr) *Expr {
	cells := make([]*Expr, 0, len(args)+1)
	cells = append(cells, op)
	cells = append(cells, args...)
	return &Expr{
		Type:  EApplication,
		Cells: cells,
	}
}

// FileLoad returns an expression which evaluates the named source in the
// scope of the caller.
func FileLoad(name string) *Expr {
	return &Expr{
		Type: EFileLoad,
		Str:  name,
	}
}

// Fun returns a builtin procedure value.
func Fun(name string, fn Builtin) *Expr {
	return &Expr{
		Type:    EBuiltin,
		Str:     name,
		Builtin: fn,
	}
}

// Bool converts v to a boolean.  Only #f and the number zero are false.
func (v *Expr) Bool() bool {
	switch v.Type {
	case EFalse:
		return false
	case ENumber:
		return v.Num != 0
	default:
		return true
	}
}

// IsNil returns true if v is the empty list.
func (v *Expr) IsNil() bool {
	return v.Type == ENil
}

// IsVoid returns true if v carries no usable value.
func (v *Expr) IsVoid() bool {
	return v == nil || v.Type == EVoid
}

// IsCallable returns true if v may be applied to arguments.
func (v *Expr) IsCallable() bool {
	return v.Type == ELambda || v.Type == EBuiltin
}

// IsList returns true if v is a chain of pairs terminated by Nil.
func (v *Expr) IsList() bool {
	for v.Type == EPair {
		v = v.Cells[1]
	}
	return v.Type == ENil
}

// Car returns the first element of pair v.
func (v *Expr) Car() *Expr {
	return v.Cells[0]
}

// Cdr returns the second element of pair v.
func (v *Expr) Cdr() *Expr {
	return v.Cells[1]
}

// Slice returns the elements of list v.  The second return value is false if
// v is not a proper list.
func (v *Expr) Slice() ([]*Expr, bool) {
	var cells []*Expr
	for v.Type == EPair {
		cells = append(cells, v.Cells[0])
		v = v.Cells[1]
	}
	return cells, v.Type == ENil
}

func (v *Expr) String() string {
	switch v.Type {
	case ENumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case ETrue:
		return "#t"
	case EFalse:
		return "#f"
	case ENil:
		return "'()"
	case EIdentifier:
		return v.Str
	case EPair:
		return fmt.Sprintf("(%v, %v)", v.Cells[0], v.Cells[1])
	case ESequence:
		return exprString(v.Cells, "(begin ", ")")
	case EConditional:
		return exprString(v.Cells, "(if ", ")")
	case ELet:
		var buf bytes.Buffer
		buf.WriteString("(let (")
		for i, name := range v.Formals {
			if i > 0 {
				buf.WriteString(" ")
			}
			fmt.Fprintf(&buf, "(%s %v)", name, v.Cells[i])
		}
		fmt.Fprintf(&buf, ") %v)", v.Body)
		return buf.String()
	case EValueBinding:
		return fmt.Sprintf("(define %s %v)", v.Str, v.Body)
	case EFunctionBinding:
		return fmt.Sprintf("(define %s %v)", formalsString(append([]string{v.Str}, v.Formals...)), v.Body)
	case ELambda:
		if v.Env == nil {
			return fmt.Sprintf("(lambda %s %v)", formalsString(v.Formals), v.Body)
		}
		if v.Str != "" {
			return "#<procedure " + v.Str + ">"
		}
		return "#<procedure>"
	case EApplication:
		return exprString(v.Cells, "(", ")")
	case EFileLoad:
		return fmt.Sprintf("(load %q)", v.Str)
	case EBuiltin:
		return "#<builtin " + v.Str + ">"
	case EVoid:
		return "#<void>"
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func formalsString(formals []string) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	for i, name := range formals {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(name)
	}
	buf.WriteString(")")
	return buf.String()
}

func exprString(cells []*Expr, left string, right string) string {
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
