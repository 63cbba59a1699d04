package cmd

import (
	"github.com/Graphics-Interpreter/GI/lisp/lisplib/libdraw"
	"github.com/Graphics-Interpreter/GI/repl"
	"github.com/spf13/cobra"
)

var replNoBootstrap bool

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive console",
	Long: `Start an interactive console.  Each complete form is evaluated as soon
as it has been entered and its value is printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		canvas := libdraw.NewCanvas(libdraw.DefaultWidth, libdraw.DefaultHeight)
		repl.RunRepl("]=> ", !replNoBootstrap, libdraw.LoadPackage(canvas))
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replNoBootstrap, "no-bootstrap", false,
		"Do not load the base library")
}
