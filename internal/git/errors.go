package git

import (
	"fmt"
	"strings"
)

// Step names for the materialization primitives. CommandError.Step carries
// one of these (or the git subcommand name for query operations) so callers
// can tell the user exactly which step failed.
const (
	StepFetch    = "fetch"
	StepBranch   = "branch"
	StepCheckout = "checkout"
)

// CommandError is a git invocation that exited non-zero. It is fatal to the
// operation that issued it and is never silently swallowed.
type CommandError struct {
	Step     string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf("git %s failed with exit code %d", e.Step, e.ExitCode)
	}
	return fmt.Sprintf("git %s failed with exit code %d: %s", e.Step, e.ExitCode, stderr)
}
