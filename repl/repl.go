// Package repl implements the interactive console.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Graphics-Interpreter/GI/lisp"
	"github.com/Graphics-Interpreter/GI/lisp/lisplib"
	"github.com/Graphics-Interpreter/GI/parser/rdparser"
	"github.com/chzyer/readline"
)

// ValuePrefix precedes each value printed by the console.
const ValuePrefix = ";Value: "

// RunRepl runs a simple repl.  The console scope is built with
// lisplib.NewScope using configs and the base library is loaded into it
// unless bootstrap is false.
func RunRepl(prompt string, bootstrap bool, configs ...lisp.Config) {
	s, err := lisplib.NewScope(configs...)
	if err != nil {
		errln(err)
		os.Exit(1)
	}
	if bootstrap {
		err = lisplib.LoadLibrary(s)
		if err != nil {
			errln(err)
			os.Exit(1)
		}
	}

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	p := rdparser.NewInteractive("console")
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			p.Reset()
			rl.SetPrompt(prompt)
			continue
		}
		if err != nil {
			if err != io.EOF {
				errln(err)
			}
			break
		}
		exprs, err := p.ParseLine(line)
		rl.SetPrompt(p.Prompt(prompt))
		EvalPrint(s, os.Stdout, exprs)
		if err != nil {
			errln(err)
		}
	}
	errln("done")
}

// EvalPrint evaluates each of exprs in s and writes the display form of
// every result that carries a value to w.  Errors are reported on the
// scope's Stderr and evaluation continues with the next expression.
func EvalPrint(s *lisp.Scope, w io.Writer, exprs []*lisp.Expr) {
	for _, expr := range exprs {
		v, err := s.Eval(expr)
		if err != nil {
			fmt.Fprintln(s.Runtime.Stderr, err)
			var lerr *lisp.Error
			if errors.As(err, &lerr) && lerr.Stack != nil && lerr.Stack.Depth() > 1 {
				lerr.Stack.DebugPrint(s.Runtime.Stderr)
			}
			continue
		}
		if v.IsVoid() {
			continue
		}
		fmt.Fprintln(w, ValuePrefix+v.String())
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
