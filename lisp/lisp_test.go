package lisp_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Graphics-Interpreter/GI/lisp"
	"github.com/Graphics-Interpreter/GI/parser/rdparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScope(t *testing.T, configs ...lisp.Config) *lisp.Scope {
	t.Helper()
	s := lisp.NewScope()
	base := []lisp.Config{lisp.WithReader(rdparser.NewReader())}
	err := lisp.InitializeScope(s, append(base, configs...)...)
	require.NoError(t, err)
	return s
}

func TestBool(t *testing.T) {
	for _, test := range []struct {
		v    *lisp.Expr
		want bool
	}{
		{lisp.False(), false},
		{lisp.Number(0), false},
		{lisp.True(), true},
		{lisp.Number(5), true},
		{lisp.Number(-0.5), true},
		{lisp.Nil(), true},
		{lisp.Cons(lisp.Number(0), lisp.Nil()), true},
		{lisp.Void(), true},
	} {
		assert.Equal(t, test.want, test.v.Bool(), "value: %v", test.v)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "18", lisp.Number(18).String())
	assert.Equal(t, "-0.25", lisp.Number(-0.25).String())
	assert.Equal(t, "(1, (2, '()))", lisp.List(lisp.Number(1), lisp.Number(2)).String())
	assert.Equal(t, "(1, 2)", lisp.Cons(lisp.Number(1), lisp.Number(2)).String())
	assert.Equal(t, "'()", lisp.List().String())
	assert.Equal(t, "#t", lisp.Bool(true).String())
	assert.Equal(t, "#f", lisp.Bool(false).String())
	lambda := lisp.Lambda([]string{"x"}, lisp.Identifier("x"))
	assert.Equal(t, "(lambda (x) x)", lambda.String())
}

func TestSlice(t *testing.T) {
	cells, ok := lisp.List(lisp.Number(1), lisp.Number(2)).Slice()
	assert.True(t, ok)
	assert.Len(t, cells, 2)
	_, ok = lisp.Cons(lisp.Number(1), lisp.Number(2)).Slice()
	assert.False(t, ok)
	assert.True(t, lisp.Nil().IsList())
	assert.False(t, lisp.Number(1).IsList())
}

func TestScopeSnapshot(t *testing.T) {
	s := lisp.NewScope()
	s.Bind("a", lisp.Number(1))
	cp := s.Snapshot()
	s.Bind("b", lisp.Number(2))
	cp.Bind("a", lisp.Number(3))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, cp.Len())
	assert.Equal(t, []string{"a", "b"}, s.Names())

	v, err := s.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())
	v, err = cp.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, "3", v.String())

	_, err = cp.Lookup("b")
	require.Error(t, err)
	assert.Equal(t, lisp.UnboundIdentifier, lisp.KindOf(err))
	assert.Same(t, s.Runtime, cp.Runtime)
}

func TestEvalTree(t *testing.T) {
	s := newScope(t)
	// ((lambda (x y) (if (< x y) (cons x y) nil)) 1 2)
	body := lisp.Conditional(
		lisp.Application(lisp.Identifier("<"), []*lisp.Expr{lisp.Identifier("x"), lisp.Identifier("y")}),
		lisp.Application(lisp.Identifier("cons"), []*lisp.Expr{lisp.Identifier("x"), lisp.Identifier("y")}),
		lisp.Nil(),
	)
	expr := lisp.Application(lisp.Lambda([]string{"x", "y"}, body), []*lisp.Expr{lisp.Number(1), lisp.Number(2)})
	v, err := s.Eval(expr)
	require.NoError(t, err)
	assert.Equal(t, "(1, 2)", v.String())

	pair := lisp.Cons(lisp.Application(lisp.Identifier("+"), []*lisp.Expr{lisp.Number(1), lisp.Number(1)}), lisp.Nil())
	v, err = s.Eval(pair)
	require.NoError(t, err)
	assert.Equal(t, "(2, '())", v.String())
}

func TestEvalDeterministic(t *testing.T) {
	s := newScope(t)
	_, err := s.LoadString("test", "(define (sq x) (* x x))")
	require.NoError(t, err)
	exprs, err := rdparser.NewReader().Read("test", bytes.NewReader([]byte("(sq (+ 1 2))")))
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	first, err := s.Eval(exprs[0])
	require.NoError(t, err)
	second, err := s.Eval(exprs[0])
	require.NoError(t, err)
	assert.Equal(t, "9", first.String())
	assert.Equal(t, first.String(), second.String())
}

func TestDefineVoid(t *testing.T) {
	s := newScope(t)
	v, err := s.LoadString("test", "(define n 0)")
	require.NoError(t, err)
	assert.True(t, v.IsVoid())
	n, err := s.Lookup("n")
	require.NoError(t, err)
	assert.False(t, n.Bool())

	_, err = s.LoadString("test", "(define n 5)")
	require.NoError(t, err)
	n, err = s.Lookup("n")
	require.NoError(t, err)
	assert.True(t, n.Bool())
}

func TestErrorKinds(t *testing.T) {
	s := newScope(t, lisp.WithSources(lisp.SourceFunc(func(name string) ([]byte, error) {
		return nil, lisp.ErrSourceNotFound
	})))
	for _, test := range []struct {
		src  string
		kind lisp.ErrorKind
	}{
		{"(define n)", lisp.SyntaxError},
		{"(car 5", lisp.SyntaxError},
		{"(define (f 1) 1)", lisp.TypeError},
		{"(nope 1)", lisp.UnboundIdentifier},
		{"(car 5)", lisp.TypeError},
		{"((lambda (x) x) 1 2)", lisp.ArityError},
		{"(1 2)", lisp.NotCallable},
		{`(load "nope.scm")`, lisp.ResourceNotFound},
	} {
		_, err := s.LoadString("test", test.src)
		if assert.Error(t, err, "source: %s", test.src) {
			assert.Equal(t, test.kind, lisp.KindOf(err), "source: %s: %v", test.src, err)
		}
	}
	assert.Equal(t, lisp.UnknownError, lisp.KindOf(errors.New("other")))
	assert.Equal(t, "type-error", lisp.TypeError.String())
}

func TestRegisterBuiltin(t *testing.T) {
	var got []*lisp.Expr
	var caller *lisp.Scope
	errBoom := errors.New("boom")
	s := newScope(t)
	s.RegisterBuiltin("record", func(s *lisp.Scope, args []*lisp.Expr) (*lisp.Expr, error) {
		got = args
		caller = s
		return lisp.Number(float64(len(args))), nil
	})
	s.RegisterBuiltin("boom", func(s *lisp.Scope, args []*lisp.Expr) (*lisp.Expr, error) {
		return nil, errBoom
	})

	v, err := s.LoadString("test", "(let ((x 2)) (record x (+ x 1)))")
	require.NoError(t, err)
	assert.Equal(t, "2", v.String())
	if assert.Len(t, got, 2) {
		assert.Equal(t, "2", got[0].String())
		assert.Equal(t, "3", got[1].String())
	}
	if assert.NotNil(t, caller) {
		x, err := caller.Lookup("x")
		require.NoError(t, err)
		assert.Equal(t, "2", x.String())
	}

	_, err = s.LoadString("test", "(define (f) (boom)) (f)")
	assert.ErrorIs(t, err, errBoom)
}

func TestLoadFile(t *testing.T) {
	files := map[string]string{
		"lib.scm":  "(define (twice x) (* 2 x)) (define k 21)",
		"main.scm": `(load "lib.scm") (twice k)`,
		"bad.scm":  "(define ok 1) (car 1) (define never 2)",
	}
	s := newScope(t, lisp.WithSources(lisp.SourceFunc(func(name string) ([]byte, error) {
		src, ok := files[name]
		if !ok {
			return nil, lisp.ErrSourceNotFound
		}
		return []byte(src), nil
	})))
	v, err := s.LoadString("test", `(load "main.scm") (twice k)`)
	require.NoError(t, err)
	assert.Equal(t, "42", v.String())
	_, err = s.Lookup("twice")
	assert.NoError(t, err)

	err = s.LoadFile("bad.scm")
	assert.Equal(t, lisp.TypeError, lisp.KindOf(err))
	_, err = s.Lookup("ok")
	assert.NoError(t, err)
	_, err = s.Lookup("never")
	assert.Error(t, err)

	err = s.LoadFile("missing.scm")
	assert.Equal(t, lisp.ResourceNotFound, lisp.KindOf(err))
}

func TestChainSources(t *testing.T) {
	a := lisp.SourceFunc(func(name string) ([]byte, error) {
		if name == "a.scm" {
			return []byte("1"), nil
		}
		return nil, lisp.ErrSourceNotFound
	})
	b := lisp.SourceFunc(func(name string) ([]byte, error) {
		return []byte(name), nil
	})
	src := lisp.ChainSources(a, b)
	v, err := src.ReadSource("a.scm")
	require.NoError(t, err)
	assert.Equal(t, "1", string(v))
	v, err = src.ReadSource("b.scm")
	require.NoError(t, err)
	assert.Equal(t, "b.scm", string(v))
	_, err = lisp.ChainSources(a).ReadSource("c.scm")
	assert.ErrorIs(t, err, lisp.ErrSourceNotFound)
}

func TestErrorStack(t *testing.T) {
	s := newScope(t)
	_, err := s.LoadString("test", "(define (inner x) (car x))\n(define (outer x) (inner x))\n(outer 1)")
	require.Error(t, err)
	var lerr *lisp.Error
	require.True(t, errors.As(err, &lerr))
	require.NotNil(t, lerr.Stack)
	names := make([]string, len(lerr.Stack.Frames))
	for i, f := range lerr.Stack.Frames {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"outer", "inner", "car"}, names)
	assert.Equal(t, 0, s.Runtime.Stack.Depth())

	var buf bytes.Buffer
	_, err = lerr.Stack.DebugPrint(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Stack Trace [3 frames -- entrypoint last]:\n")
	assert.Contains(t, buf.String(), "height 2: test:1:19: car\n")
}
