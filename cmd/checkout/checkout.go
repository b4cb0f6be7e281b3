package checkout

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bjulian5/prget/internal/common"
	"github.com/bjulian5/prget/internal/gh"
	"github.com/bjulian5/prget/internal/git"
	"github.com/bjulian5/prget/internal/pr"
	"github.com/bjulian5/prget/internal/ui"
)

// Command materializes a pull request locally
type Command struct {
	// Flags
	Detach     bool   // Checkout the head commit as a detached HEAD
	Branch     string // Name for the local branch (default pull-request-<n>)
	NoCheckout bool   // Create the branch but leave the working tree alone
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "checkout <number>",
		Short: "Fetch a pull request and check it out locally",
		Long: `Fetch the head commit of a pull request and materialize it locally.

By default the PR is checked out on a new branch named pull-request-<number>.
Use --branch to pick a different name, --detach for a detached HEAD, or
--no-checkout to create the branch without touching the working tree.

Example:
  prget checkout 42                     # branch pull-request-42, checked out
  prget checkout 42 --branch fix-leak   # custom branch name
  prget checkout 42 --detach            # detached HEAD at the PR head
  prget checkout 42 --no-checkout       # branch only`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil || number <= 0 {
				return fmt.Errorf("invalid pull request number: %s", args[0])
			}
			return c.Run(cmd.Context(), number)
		},
	}

	cmd.Flags().BoolVar(&c.Detach, "detach", false, "Checkout the PR head as a detached HEAD")
	cmd.Flags().StringVar(&c.Branch, "branch", "", "Branch name to create (default pull-request-<number>)")
	cmd.Flags().BoolVar(&c.NoCheckout, "no-checkout", false, "Create the branch without checking it out")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context, number int) error {
	if c.Detach && (c.Branch != "" || c.NoCheckout) {
		return fmt.Errorf("--detach cannot be combined with --branch or --no-checkout")
	}

	ws, err := common.NewWorkspace()
	if err != nil {
		return err
	}

	pull, err := ws.GH.Get(ctx, number)
	if err != nil {
		return fmt.Errorf("failed to fetch PR #%d: %w", number, err)
	}

	intent := c.intent(pull)
	return Materialize(ws.Git, pull, intent)
}

// intent maps the flags onto a checkout intent
func (c *Command) intent(pull gh.PullRequest) pr.Intent {
	if c.Detach {
		return pr.DetachedHead()
	}

	name := c.Branch
	if name == "" {
		name = pr.DefaultBranchName(pull.Number)
	}
	if c.NoCheckout {
		return pr.NewBranchNoCheckout(name)
	}
	return pr.NewBranch(name)
}

// Materialize runs the engine for pull and intent, reporting each step.
// Shared with the interactive list command.
func Materialize(gitClient *git.Client, pull gh.PullRequest, intent pr.Intent) error {
	engine := pr.NewEngine(gitClient)

	ui.Infof("Fetching PR #%d (%s)...", pull.Number, pull.HeadRef)
	result, err := engine.Materialize(pull, intent)
	if err != nil {
		ui.Errorf("Step %q failed: %v", result.FailedStep(), err)
		return err
	}

	switch intent.Kind() {
	case pr.IntentDetachedHead:
		ui.Successf("Checked out PR #%d at %s (detached HEAD)", pull.Number, pull.HeadSHA)
	case pr.IntentNewBranch:
		ui.Successf("Checked out PR #%d on branch %s", pull.Number, intent.BranchName())
	case pr.IntentNewBranchNoCheckout:
		ui.Successf("Created branch %s for PR #%d", intent.BranchName(), pull.Number)
	}
	return nil
}
