package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Graphics-Interpreter/GI/lisp"
	"github.com/Graphics-Interpreter/GI/lisp/lispjson"
	"github.com/Graphics-Interpreter/GI/lisp/lisplib"
	"github.com/Graphics-Interpreter/GI/lisp/lisplib/libdraw"
	"github.com/spf13/cobra"
)

var (
	runExpression  bool
	runPrint       bool
	runJSON        bool
	runOutput      string
	runNoBootstrap bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] FILE...",
	Short: "Run scheme code",
	Long: `Run scheme code supplied via the command line or a file.  The drawing
helpers in setup.scm are loaded first.  Anything painted is saved as a PNG.`,
	Run: func(cmd *cobra.Command, args []string) {
		if runJSON {
			runPrint = true
		}
		canvas := libdraw.NewCanvas(libdraw.DefaultWidth, libdraw.DefaultHeight)
		s, err := lisplib.NewScope(libdraw.LoadPackage(canvas))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if !runNoBootstrap {
			err = s.LoadFile(lisplib.SetupLibrary)
			if err != nil {
				runError(err)
			}
		}
		for _, arg := range args {
			err := runSource(s, os.Stdout, arg)
			if err != nil {
				runError(err)
			}
		}
		if len(canvas.Segments()) > 0 || cmd.Flags().Changed("output") {
			err = canvas.SavePNG(runOutput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	},
}

// runSource evaluates one command line argument.  Files are read through
// the scope's source providers so that load and the command line resolve
// names identically.
func runSource(s *lisp.Scope, w io.Writer, arg string) error {
	name := "expression"
	r := io.Reader(strings.NewReader(arg))
	if !runExpression {
		name = arg
		src, err := s.Runtime.Sources.ReadSource(arg)
		if errors.Is(err, lisp.ErrSourceNotFound) {
			return lisp.Errorf(lisp.ResourceNotFound, "cannot load %s: no such source", arg)
		}
		if err != nil {
			return err
		}
		r = strings.NewReader(string(src))
	}
	exprs, err := s.Runtime.Reader.Read(name, r)
	if err != nil {
		return err
	}
	for _, expr := range exprs {
		v, err := s.Eval(expr)
		if err != nil {
			return err
		}
		if runPrint && !v.IsVoid() {
			err = runPrintValue(w, v)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func runPrintValue(w io.Writer, v *lisp.Expr) error {
	if !runJSON {
		_, err := fmt.Fprintln(w, v)
		return err
	}
	b, err := lispjson.Dump(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// runError reports err and exits.  Definitions made before the failure are
// not rolled back, but nothing is saved.
func runError(err error) {
	fmt.Fprintln(os.Stderr, err)
	var lerr *lisp.Error
	if errors.As(err, &lerr) && lerr.Stack != nil {
		lerr.Stack.DebugPrint(os.Stderr)
	}
	os.Exit(1)
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as scheme expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
	runCmd.Flags().BoolVar(&runJSON, "json", false,
		"Print values as JSON (implies --print)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "output.png",
		"Image file written when anything is painted")
	runCmd.Flags().BoolVar(&runNoBootstrap, "no-bootstrap", false,
		"Do not load setup.scm and the base library")
}
