package diff

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bjulian5/prget/internal/common"
	"github.com/bjulian5/prget/internal/ui"
)

// Command prints the raw diff of a pull request
type Command struct{}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "diff <number>",
		Short: "Print the raw diff of a pull request",
		Long: `Fetch and print the raw diff of a pull request.

This is read-only: no local git state is touched, so a PR can be inspected
before deciding to check it out.

Example:
  prget diff 42 | less`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil || number <= 0 {
				return fmt.Errorf("invalid pull request number: %s", args[0])
			}
			return c.Run(cmd.Context(), number)
		},
	}

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context, number int) error {
	ws, err := common.NewWorkspace()
	if err != nil {
		return err
	}

	pull, err := ws.GH.Get(ctx, number)
	if err != nil {
		return fmt.Errorf("failed to fetch PR #%d: %w", number, err)
	}

	diffText, err := ws.GH.FetchDiff(ctx, pull)
	if err != nil {
		return fmt.Errorf("failed to fetch diff for PR #%d: %w", number, err)
	}

	ui.Print(diffText)
	return nil
}
