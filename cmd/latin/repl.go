package main

import (
	"os"

	"github.com/corvusling/latin/internal/interp"
	"github.com/corvusling/latin/internal/repl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

// runRepl starts an interactive session over stdin/stderr (spec 6).
func runRepl() error {
	engine := interp.New(
		interp.WithEnglish(englishFlag),
		interp.WithSourceName("<repl>"),
	)
	session := repl.New(engine, os.Stdin, os.Stderr)
	return session.Run()
}
