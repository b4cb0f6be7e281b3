package open

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/bjulian5/prget/internal/common"
	"github.com/bjulian5/prget/internal/ui"
)

// Command opens a pull request in the browser
type Command struct {
	// Flags
	PrintOnly bool // Print the URL instead of opening a browser
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "open <number>",
		Short: "Open a pull request in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil || number <= 0 {
				return fmt.Errorf("invalid pull request number: %s", args[0])
			}
			return c.Run(cmd.Context(), number)
		},
	}

	cmd.Flags().BoolVar(&c.PrintOnly, "print", false, "Print the URL instead of opening a browser")

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

	if c.PrintOnly {
		ui.Print(pull.HTMLURL)
		return nil
	}
	return browser.OpenURL(pull.HTMLURL)
}
