// Command simplesig converts a directory of PRONOM format report XML
// files into one simplified signature file.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/jrh-151/simplesig/internal/cli"
	"github.com/jrh-151/simplesig/pkg/simplesig"
)

func main() {
	// A panic anywhere in the pipeline must still exit with its own code
	// and a stack trace, never a partial signature file and status 2.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(simplesig.ExitPanic)
		}
	}()

	// Exercised by the release smoke tests to verify the recover path.
	if os.Getenv("SIMPLESIG_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(simplesig.ExitCodeForError(err))
	}
}
