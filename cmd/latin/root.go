// Command latin is the CLI front end for the Language interpreter (spec 6):
// run a source file, or drop into an interactive REPL when none is given.
//
// Grounded on CWBudde-go-dws's cmd/dwscript/cmd package: a cobra root command
// holding shared persistent flags, with run/repl wired as both explicit
// subcommands and the root's own default behavior so `latin`, `latin FILE`,
// `latin run FILE`, and `latin repl` are all equivalent invocation shapes.
package main

import (
	"fmt"
	"os"

	"github.com/corvusling/latin/internal/diagio"
	"github.com/spf13/cobra"
)

var (
	englishFlag bool
	forceRepl   bool
)

var rootCmd = &cobra.Command{
	Use:   "latin [file]",
	Short: "Interpreter for the Latin-keyword line-interpreted language",
	Long: `latin runs programs written in a small Latin-keyword scripting
language: variables, records, conditionals, loops, functions, and an
exception mechanism built from IACE/CAPE/FINIS.

With a file argument, the file is read and executed. With no argument (and
no --repl), the interpreter drops into an interactive line-at-a-time REPL.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if forceRepl || len(args) == 0 {
			return runRepl()
		}
		return runFile(args[0])
	},
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().BoolVar(&englishFlag, "english", false, "print diagnostics in English instead of Latin")
	rootCmd.Flags().BoolVar(&forceRepl, "repl", false, "force interactive REPL mode even if a file is given")
	rootCmd.AddCommand(runCmd, replCmd)
}

// Execute runs the root command, returning the process exit code (spec 6:
// 0 on normal termination, 1 on any fatal error). A fatal *diagio.Error is
// rendered via its own Format, honoring --english; any other error (bad
// flags, a missing file) prints as-is.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	if de, ok := err.(*diagio.Error); ok {
		fmt.Fprintln(os.Stderr, de.Format(englishFlag))
	} else {
		fmt.Fprintln(os.Stderr, "latin:", err)
	}
	return 1
}

func main() {
	os.Exit(Execute())
}
