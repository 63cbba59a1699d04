package repl

import (
	"bytes"
	"testing"

	"github.com/Graphics-Interpreter/GI/lisp"
	"github.com/Graphics-Interpreter/GI/lisp/lisplib"
	"github.com/Graphics-Interpreter/GI/parser/rdparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalPrint(t *testing.T) {
	var out, errout bytes.Buffer
	s, err := lisplib.NewScope(lisp.WithStdout(&out), lisp.WithStderr(&errout))
	require.NoError(t, err)
	require.NoError(t, lisplib.LoadLibrary(s))

	p := rdparser.NewInteractive("console")
	for _, line := range []string{
		"(define (fact n)",
		"  (if (= n 0) 1 (* n (fact (- n 1)))))",
		"(fact 5) (car 5)",
		"(list 1 2)",
	} {
		exprs, err := p.ParseLine(line)
		require.NoError(t, err)
		EvalPrint(s, &out, exprs)
	}
	assert.Equal(t, ";Value: 120\n;Value: (1, (2, '()))\n", out.String())
	assert.Equal(t, "car: argument is not a pair: 5\n", errout.String())
}

func TestEvalPrintContinues(t *testing.T) {
	var out, errout bytes.Buffer
	s, err := lisplib.NewScope(lisp.WithStderr(&errout))
	require.NoError(t, err)

	p := rdparser.NewInteractive("console")
	exprs, err := p.ParseLine("(define x 1) (undefined) x")
	require.NoError(t, err)
	EvalPrint(s, &out, exprs)
	assert.Equal(t, ";Value: 1\n", out.String())
	assert.Equal(t, "unbound identifier: undefined\n", errout.String())
}

func TestEvalPrintBeforeSyntaxError(t *testing.T) {
	var out, errout bytes.Buffer
	s, err := lisplib.NewScope(lisp.WithStderr(&errout))
	require.NoError(t, err)

	p := rdparser.NewInteractive("console")
	exprs, err := p.ParseLine("(define x 1) x )")
	assert.Equal(t, lisp.SyntaxError, lisp.KindOf(err))
	EvalPrint(s, &out, exprs)
	assert.Equal(t, ";Value: 1\n", out.String())
	assert.Empty(t, errout.String())

	exprs, err = p.ParseLine("x")
	require.NoError(t, err)
	EvalPrint(s, &out, exprs)
	assert.Equal(t, ";Value: 1\n;Value: 1\n", out.String())
}
