// Package main provides the grepbridge command-line interface.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Cyclone1070/grepbridge/internal/cmd"
	"github.com/fatih/color"
)

// Exit codes follow grep: 0 on a match, 1 on no match, 2 on error.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := cmd.NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SilenceErrors = true

	err := root.Execute()
	switch {
	case err == nil:
		return exitMatch
	case errors.Is(err, cmd.ErrNoMatches):
		return exitNoMatch
	default:
		fmt.Fprintf(stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), err)
		return exitError
	}
}
