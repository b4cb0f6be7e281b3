package pr

import (
	"errors"
	"fmt"

	"github.com/bjulian5/prget/internal/git"
	"github.com/bjulian5/prget/internal/remote"
)

// ErrNoUpstream is returned when the active branch has no upstream
// configured. Callers should offer to push the branch and re-enter the
// compare flow afterwards.
var ErrNoUpstream = errors.New("active branch has no upstream")

// ErrUpstreamUndetermined is returned when an upstream is configured but
// the remote branch cannot be resolved. The compare flow aborts; no URL is
// built.
var ErrUpstreamUndetermined = errors.New("unable to determine remote branch")

// DivergenceError reports that the active branch differs from its remote
// counterpart. It is advisory: the compare flow aborts rather than building
// a URL against possibly-stale remote state.
type DivergenceError struct {
	Ahead  int
	Behind int
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("branch has diverged from its upstream: %s", e.Description())
}

// Description renders the divergence for user-facing messages.
func (e *DivergenceError) Description() string {
	switch {
	case e.Ahead > 0 && e.Behind > 0:
		return fmt.Sprintf("%d commit(s) ahead and %d behind", e.Ahead, e.Behind)
	case e.Ahead > 0:
		return fmt.Sprintf("%d commit(s) ahead", e.Ahead)
	default:
		return fmt.Sprintf("%d commit(s) behind", e.Behind)
	}
}

// BranchStateClient is the subset of git queries the compare flow reads.
// *git.Client satisfies it.
type BranchStateClient interface {
	UpstreamForActiveBranch() (git.RemoteBranchRef, bool, error)
	ActiveRemoteBranch() (git.RemoteBranchRef, bool, error)
	BranchStatus() (ahead int, behind int, err error)
	RemoteURL(name string) (string, error)
}

// ResolveCompareURL resolves the active branch's upstream and builds the
// comparison URL for opening a new pull request against base/baseBranch.
//
// Outcomes:
//   - no upstream configured: ErrNoUpstream
//   - upstream configured but undeterminable: ErrUpstreamUndetermined
//   - branch diverged from its upstream: *DivergenceError
//   - otherwise: the compare URL with the tracked remote branch as head
func ResolveCompareURL(g BranchStateClient, base remote.Descriptor, baseBranch string) (string, error) {
	_, ok, err := g.UpstreamForActiveBranch()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNoUpstream
	}

	ref, ok, err := g.ActiveRemoteBranch()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrUpstreamUndetermined
	}

	ahead, behind, err := g.BranchStatus()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUndetermined, err)
	}
	if ahead != 0 || behind != 0 {
		return "", &DivergenceError{Ahead: ahead, Behind: behind}
	}

	remoteURL, err := g.RemoteURL(ref.Remote)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUndetermined, err)
	}
	head, err := remote.Parse(remoteURL)
	if err != nil {
		return "", err
	}

	return remote.CompareURL(base, baseBranch, head.Owner, ref.Branch), nil
}
