package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jrh-151/simplesig/pkg/simplesig"
)

// ForcedApprover implements the Approver interface for non-interactive
// approval. It displays a short countdown and then approves, used when
// the --force flag is provided.
type ForcedApprover struct {
	verbose bool
	output  io.Writer
	sleepFn func(time.Duration)
}

// NewForcedApprover creates a new ForcedApprover.
func NewForcedApprover(verbose bool) simplesig.Approver {
	return &ForcedApprover{verbose: verbose, output: os.Stderr, sleepFn: time.Sleep}
}

// RequestApproval displays a countdown and approves once it elapses.
func (a *ForcedApprover) RequestApproval(ctx context.Context, outputPath string) (bool, error) {
	fmt.Fprintf(a.output, "\nOutput file '%s' already exists and will be replaced.\n", outputPath)

	countdownSeconds := int(simplesig.DefaultForceApprovalCountdown.Seconds())
	for i := countdownSeconds; i > 0; i-- {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
			fmt.Fprintf(a.output, "\rOverwriting in: %d seconds... (Press Ctrl+C to cancel)", i)
			a.sleepFn(1 * time.Second)
		}
	}

	fmt.Fprintf(a.output, "\rProceeding with overwrite...                              \n")
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ simplesig.Approver = (*ForcedApprover)(nil)
