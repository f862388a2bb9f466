package main

import (
	"os"

	"github.com/corvusling/latin/internal/interp"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Execute a Language source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(args[0])
	},
}

// runFile reads path and executes it to completion. The error returned, if
// any, is printed once by Execute (spec 6: exit 1 on any fatal error).
func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	engine := interp.New(
		interp.WithEnglish(englishFlag),
		interp.WithSourceName(path),
	)
	return engine.Run(string(src))
}
