package create

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/bjulian5/prget/internal/common"
	"github.com/bjulian5/prget/internal/pr"
	"github.com/bjulian5/prget/internal/ui"
)

const pushPrompt = "You have not set an upstream for the active branch. Would you like to push to a remote?"

// Command opens the comparison page for creating a pull request from the
// current branch
type Command struct {
	// Flags
	PrintOnly bool // Print the URL instead of opening a browser
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open the compare page to create a pull request",
		Long: `Open the hosting site's comparison page for creating a pull request
from the current branch against the base repository's canonical branch.

If the active branch has no upstream yet, prget offers to push it first and
then re-enters the flow. If the branch has diverged from its upstream the
flow aborts so a PR is never opened against stale remote state.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&c.PrintOnly, "print", false, "Print the URL instead of opening a browser")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	ws, err := common.NewWorkspace()
	if err != nil {
		return err
	}

	baseBranch := common.IntegratedBranch(ws.Git)

	url, err := pr.ResolveCompareURL(ws.Git, ws.Base, baseBranch)
	if errors.Is(err, pr.ErrNoUpstream) {
		if !ui.ConfirmYesNo(pushPrompt) {
			return nil
		}
		if err := c.pushActiveBranch(ws); err != nil {
			return err
		}
		// Re-enter the flow now that the upstream exists
		url, err = pr.ResolveCompareURL(ws.Git, ws.Base, baseBranch)
	}

	var divergence *pr.DivergenceError
	switch {
	case errors.As(err, &divergence):
		ui.Warningf("Your current branch is different from its remote counterpart: %s.", divergence.Description())
		return nil
	case errors.Is(err, pr.ErrUpstreamUndetermined):
		ui.Error("Unable to determine remote.")
		return nil
	case err != nil:
		return err
	}

	if c.PrintOnly {
		ui.Print(url)
		return nil
	}
	return browser.OpenURL(url)
}

// pushActiveBranch pushes the current branch to the base remote, setting it
// as upstream.
func (c *Command) pushActiveBranch(ws *common.Workspace) error {
	branch, err := ws.Git.CurrentBranch()
	if err != nil {
		return err
	}
	if branch == "HEAD" {
		return fmt.Errorf("cannot push a detached HEAD")
	}

	remotes, err := ws.Git.Remotes()
	if err != nil {
		return err
	}
	if len(remotes) == 0 {
		return fmt.Errorf("no git remote configured")
	}
	remoteName := remotes[0]
	for _, r := range remotes {
		if r == "origin" {
			remoteName = r
			break
		}
	}

	ui.Infof("Pushing %s to %s...", branch, remoteName)
	if err := ws.Git.Push(remoteName, branch, true); err != nil {
		return err
	}
	ui.Successf("Pushed %s", branch)
	return nil
}
