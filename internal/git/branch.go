package git

import (
	"fmt"
	"strconv"
	"strings"
)

// RemoteBranchRef identifies a branch on a named remote. It is derived from
// local git state at call time and never cached; the configuration may
// change between calls.
type RemoteBranchRef struct {
	Remote string
	Branch string
}

func (r RemoteBranchRef) String() string {
	return r.Remote + "/" + r.Branch
}

// UpstreamForActiveBranch returns the upstream configured for the active
// branch. ok is false when no upstream is configured; that is not an error.
func (c *Client) UpstreamForActiveBranch() (ref RemoteBranchRef, ok bool, err error) {
	output, runErr := c.run("rev-parse", "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}")
	if runErr != nil {
		// git exits non-zero when no upstream is configured
		return RemoteBranchRef{}, false, nil
	}

	ref, err = splitRemoteRef(strings.TrimSpace(output))
	if err != nil {
		return RemoteBranchRef{}, false, err
	}
	return ref, true, nil
}

// ActiveRemoteBranch returns the remote branch the active branch tracks,
// verified to exist as a remote-tracking ref locally. ok is false when the
// upstream is missing or its remote-tracking ref cannot be resolved.
func (c *Client) ActiveRemoteBranch() (ref RemoteBranchRef, ok bool, err error) {
	ref, ok, err = c.UpstreamForActiveBranch()
	if err != nil || !ok {
		return RemoteBranchRef{}, false, err
	}

	if _, verifyErr := c.run("rev-parse", "rev-parse", "--verify", "refs/remotes/"+ref.Remote+"/"+ref.Branch); verifyErr != nil {
		return RemoteBranchRef{}, false, nil
	}
	return ref, true, nil
}

// BranchStatus reports how far the active branch has diverged from its
// upstream: ahead is commits only on the local branch, behind commits only
// on the upstream.
func (c *Client) BranchStatus() (ahead int, behind int, err error) {
	output, runErr := c.run("rev-list", "rev-list", "--left-right", "--count", "@{upstream}...HEAD")
	if runErr != nil {
		return 0, 0, fmt.Errorf("failed to compare branch with upstream: %w", runErr)
	}

	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", output)
	}

	behind, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", output)
	}
	ahead, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", output)
	}
	return ahead, behind, nil
}

// DefaultRemoteBranch returns the branch refs/remotes/<remote>/HEAD points
// at. ok is false when the symbolic ref is not known locally (a fresh
// remote added without a fetch, for instance).
func (c *Client) DefaultRemoteBranch(remote string) (branch string, ok bool) {
	output, err := c.run("symbolic-ref", "symbolic-ref", "--short", "refs/remotes/"+remote+"/HEAD")
	if err != nil {
		return "", false
	}
	ref, err := splitRemoteRef(strings.TrimSpace(output))
	if err != nil {
		return "", false
	}
	return ref.Branch, true
}

// splitRemoteRef splits "origin/feature/x" into remote "origin" and branch
// "feature/x". Only the first segment is the remote name.
func splitRemoteRef(s string) (RemoteBranchRef, error) {
	slash := strings.Index(s, "/")
	if slash <= 0 || slash == len(s)-1 {
		return RemoteBranchRef{}, fmt.Errorf("unexpected upstream ref: %q", s)
	}
	return RemoteBranchRef{Remote: s[:slash], Branch: s[slash+1:]}, nil
}
