package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Client provides git operations for a repository
type Client struct {
	gitRoot string
}

// NewClient creates a new git client for the current directory
func NewClient() (*Client, error) {
	return NewClientAt("")
}

// NewClientAt creates a new git client for the repository containing dir
func NewClientAt(dir string) (*Client, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("not in a git repository: %w", err)
	}
	return &Client{gitRoot: strings.TrimSpace(string(output))}, nil
}

// GitRoot returns the root directory of the git repository
func (c *Client) GitRoot() string {
	return c.gitRoot
}

// run executes a git command in the repository and returns its stdout.
// A non-zero exit becomes a *CommandError recording the step, exit code
// and stderr.
func (c *Client) run(step string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.gitRoot

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return "", &CommandError{
			Step:     step,
			Args:     args,
			ExitCode: exitCode,
			Stderr:   stderr.String(),
		}
	}
	return stdout.String(), nil
}

// Fetch fetches refspec from remoteURL into the local object database.
// remoteURL may be any URL or path git accepts as a remote.
func (c *Client) Fetch(remoteURL string, refspec string) error {
	_, err := c.run(StepFetch, "fetch", remoteURL, refspec)
	return err
}

// CreateBranch creates a new branch at the specified commit without
// checking it out. Fails if the name already exists or is invalid.
func (c *Client) CreateBranch(name string, commitHash string) error {
	_, err := c.run(StepBranch, "branch", name, commitHash)
	return err
}

// Checkout checks out the given ref. A bare commit SHA produces a
// detached HEAD.
func (c *Client) Checkout(ref string) error {
	_, err := c.run(StepCheckout, "checkout", ref)
	return err
}

// CurrentBranch returns the name of the current git branch, or "HEAD"
// when detached.
func (c *Client) CurrentBranch() (string, error) {
	output, err := c.run("rev-parse", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return strings.TrimSpace(output), nil
}

// BranchExists checks if a local branch exists
func (c *Client) BranchExists(name string) bool {
	_, err := c.run("rev-parse", "rev-parse", "--verify", "refs/heads/"+name)
	return err == nil
}

// CommitHash returns the commit hash for a given ref
func (c *Client) CommitHash(ref string) (string, error) {
	output, err := c.run("rev-parse", "rev-parse", ref)
	if err != nil {
		return "", fmt.Errorf("failed to get commit hash for %s: %w", ref, err)
	}
	return strings.TrimSpace(output), nil
}

// HasUncommittedChanges checks if there are any uncommitted changes in the
// working directory
func (c *Client) HasUncommittedChanges() (bool, error) {
	output, err := c.run("status", "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to check git status: %w", err)
	}
	return len(strings.TrimSpace(output)) > 0, nil
}

// Remotes returns the configured remote names in git's order
func (c *Client) Remotes() ([]string, error) {
	output, err := c.run("remote", "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return nil, nil
	}
	return strings.Split(trimmed, "\n"), nil
}

// RemoteURL returns the fetch URL configured for the named remote
func (c *Client) RemoteURL(name string) (string, error) {
	output, err := c.run("remote", "remote", "get-url", name)
	if err != nil {
		return "", fmt.Errorf("failed to get URL for remote %s: %w", name, err)
	}
	return strings.TrimSpace(output), nil
}

// Push pushes branch to the named remote, optionally setting it as the
// branch's upstream.
func (c *Client) Push(remote string, branch string, setUpstream bool) error {
	args := []string{"push"}
	if setUpstream {
		args = append(args, "--set-upstream")
	}
	args = append(args, remote, branch)

	if _, err := c.run("push", args...); err != nil {
		return fmt.Errorf("failed to push branch %s to %s: %w", branch, remote, err)
	}
	return nil
}
