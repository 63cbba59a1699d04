// Package lisptest runs sequences of source expressions against fresh
// scopes and checks the display form of each result.
package lisptest

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/Graphics-Interpreter/GI/lisp"
	"github.com/Graphics-Interpreter/GI/lisp/lisplib"
	"github.com/Graphics-Interpreter/GI/parser/lexer"
	"github.com/Graphics-Interpreter/GI/parser/rdparser"
)

// TestSequence is a sequence of expressions which are evaluated sequentially
// in one scope.
type TestSequence []struct {
	Expr   string // a source expression
	Result string // the display form of the result, or the error message
	Output string // text written to stdout during evaluation
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// Runner is a test runner.
type Runner struct {
	// Loader is used to initialize each test scope after the default
	// builtins and host libraries are bound.  When Loader is nil
	// lisplib.LoadLibrary is used.
	Loader func(*lisp.Scope) error
}

// NewScope returns a scope for a single test sequence.  Program output is
// written to stdout.
func (r *Runner) NewScope(stdout io.Writer) (*lisp.Scope, error) {
	s, err := lisplib.NewScope(lisp.WithStdout(stdout))
	if err != nil {
		return nil, err
	}
	loader := r.Loader
	if loader == nil {
		loader = lisplib.LoadLibrary
	}
	err = loader(s)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// RunTestSuite runs each TestSequence in tests in an isolated scope.
func (r *Runner) RunTestSuite(t *testing.T, tests TestSuite) {
	t.Helper()
	for i, test := range tests {
		var out bytes.Buffer
		s, err := r.NewScope(&out)
		if err != nil {
			t.Errorf("test %d %q: failed to initialize scope: %v", i, test.Name, err)
			continue
		}
		for j, expr := range test.TestSequence {
			out.Reset()
			v, err := rdparser.ParseAll(lexer.New("test").Append(expr.Expr))
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(v.Cells) != 1 {
				t.Errorf("test %d %q: expr %d: more than one expression parsed (%d)", i, test.Name, j, len(v.Cells))
				continue
			}
			result := Display(s.Eval(v.Cells[0]))
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if out.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, out.String())
			}
		}
	}
}

// RunTestSuite runs tests using a default Runner.
func RunTestSuite(t *testing.T, tests TestSuite) {
	t.Helper()
	r := &Runner{}
	r.RunTestSuite(t, tests)
}

// RunCoreTestSuite runs tests in scopes holding only the primitive
// builtins and the host libraries, without the base library.
func RunCoreTestSuite(t *testing.T, tests TestSuite) {
	t.Helper()
	r := &Runner{Loader: func(*lisp.Scope) error { return nil }}
	r.RunTestSuite(t, tests)
}

// Display returns the display form of an evaluation result.  Errors are
// displayed as their message.
func Display(v *lisp.Expr, err error) string {
	if err != nil {
		return err.Error()
	}
	return v.String()
}

// BenchmarkParse returns a benchmark which parses the file at path.
func BenchmarkParse(path string, newReader func() lisp.Reader) func(*testing.B) {
	return func(b *testing.B) {
		source, err := os.ReadFile(path)
		if err != nil {
			b.Fatalf("Failed to read test fixture: %v", err)
		}
		reader := newReader()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, err := reader.Read(path, bytes.NewReader(source))
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
