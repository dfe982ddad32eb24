package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jrh-151/simplesig/pkg/simplesig"
)

// InteractiveApprover implements the Approver interface for console-based
// confirmation. It asks before an existing signature file is overwritten,
// since the file may carry manual edits.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover reading from
// stdin and prompting on stderr.
func NewInteractiveApprover(verbose bool) simplesig.Approver {
	return &InteractiveApprover{verbose: verbose, input: os.Stdin, output: os.Stderr}
}

// RequestApproval asks the user to confirm overwriting outputPath.
// Anything other than "y" or "yes" declines.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, outputPath string) (bool, error) {
	fmt.Fprintf(a.output, "\nOutput file '%s' already exists and will be replaced.\n", outputPath)
	fmt.Fprint(a.output, "Overwrite? [y/N]: ")

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		switch strings.ToLower(input) {
		case "y", "yes":
			fmt.Fprintln(a.output, "Confirmed. Overwriting...")
			return true, nil
		}
		fmt.Fprintln(a.output, "Operation cancelled.")
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ simplesig.Approver = (*InteractiveApprover)(nil)
