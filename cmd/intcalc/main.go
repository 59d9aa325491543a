package main

import (
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intcalc",
	Short: "Interactive 64-bit integer calculator",
	Long: `intcalc reads one arithmetic expression per line and prints its value.

Expressions use decimal integers, + - * /, unary minus, and parentheses.
Arithmetic is on signed 64-bit integers; overflow and division by zero are
reported with the position of the failing subexpression.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runREPL,
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runREPL(cmd *cobra.Command, args []string) error {
	r := &repl{
		out:    cmd.OutOrStdout(),
		errs:   cmd.ErrOrStderr(),
		styles: newStyles(colorEnabled(os.Stdout), colorEnabled(os.Stderr)),
	}
	in := cmd.InOrStdin()
	if in == os.Stdin && isatty.IsTerminal(os.Stdin.Fd()) {
		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)
		r.in = ln
	} else {
		r.in = newScanReader(in, r.out)
	}
	return r.run()
}
