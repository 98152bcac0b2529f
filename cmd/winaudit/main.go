// Package main is the entry point for winaudit, a read-only Windows
// configuration auditor.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// version is set at build time via -ldflags. The default is a dev fallback
// for plain `go install` or `go run` usage.
var version = "0.3.0"

// exitError carries an exit code for failures that were already reported.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(stderr, "  ✗ %v\n", err)
	return 1
}
