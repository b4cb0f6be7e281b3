package list

import (
	"context"
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/bjulian5/prget/cmd/checkout"
	"github.com/bjulian5/prget/internal/common"
	"github.com/bjulian5/prget/internal/gh"
	"github.com/bjulian5/prget/internal/pr"
	"github.com/bjulian5/prget/internal/ui"
)

// Command lists open pull requests and drives the per-PR actions
type Command struct {
	// Flags
	Plain   bool // Print a table instead of the interactive finder
	Page    int  // Fetch a single page instead of all open PRs
	PerPage int  // Page size for --page
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open pull requests",
		Long: `List the open pull requests of the repository's base remote.

Without flags this opens a fuzzy finder; selecting a PR offers checkout
(detached or on a branch), branch creation without checkout, viewing the
diff, and opening the PR in the browser.

Example:
  prget list               # interactive selection
  prget list --plain       # table output, no prompts
  prget list --page 2      # a single API page`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&c.Plain, "plain", false, "Print a table instead of the interactive finder")
	cmd.Flags().IntVar(&c.Page, "page", 0, "Fetch a single page of results")
	cmd.Flags().IntVar(&c.PerPage, "per-page", 0, "Page size for --page (capped by per_page_max)")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	ws, err := common.NewWorkspace()
	if err != nil {
		return err
	}

	var pulls []gh.PullRequest
	if c.Page > 0 {
		pulls, err = ws.GH.ListOpen(ctx, c.Page, c.PerPage)
	} else {
		pulls, err = ws.GH.ListAllOpen(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list pull requests for %s/%s: %w", ws.Base.Owner, ws.Base.Repo, err)
	}

	if len(pulls) == 0 {
		ui.Info("No pull requests found.")
		return nil
	}

	if c.Plain {
		ui.Print(ui.RenderPRTable(pulls))
		return nil
	}

	pull, ok, err := ui.SelectPR(pulls)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	return c.runAction(ctx, ws, pull)
}

var actions = []string{
	"Checkout as detached HEAD",
	"Checkout as local branch",
	"Create local branch, but do not checkout",
	"View diff",
	"Open in browser",
}

// runAction prompts for and performs one of the per-PR actions
func (c *Command) runAction(ctx context.Context, ws *common.Workspace, pull gh.PullRequest) error {
	idx, ok := ui.SelectAction(actions)
	if !ok {
		return nil
	}

	switch idx {
	case 0:
		return checkout.Materialize(ws.Git, pull, pr.DetachedHead())
	case 1:
		name, ok := ui.PromptBranchName(
			fmt.Sprintf("Enter branch name for PR %d", pull.Number),
			pr.DefaultBranchName(pull.Number),
		)
		if !ok {
			return nil
		}
		return checkout.Materialize(ws.Git, pull, pr.NewBranch(name))
	case 2:
		name, ok := ui.PromptBranchName(
			fmt.Sprintf("Enter branch name for PR %d", pull.Number),
			pr.DefaultBranchName(pull.Number),
		)
		if !ok {
			return nil
		}
		return checkout.Materialize(ws.Git, pull, pr.NewBranchNoCheckout(name))
	case 3:
		diffText, err := ws.GH.FetchDiff(ctx, pull)
		if err != nil {
			return fmt.Errorf("failed to fetch diff for PR #%d: %w", pull.Number, err)
		}
		ui.Print(diffText)
		return nil
	case 4:
		return browser.OpenURL(pull.HTMLURL)
	default:
		return nil
	}
}
