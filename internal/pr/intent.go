package pr

import "fmt"

// IntentKind enumerates the ways a pull request can be materialized locally.
type IntentKind int

const (
	// IntentDetachedHead checks out the PR's head commit directly.
	IntentDetachedHead IntentKind = iota
	// IntentNewBranch creates a local branch at the head commit and checks
	// it out.
	IntentNewBranch
	// IntentNewBranchNoCheckout creates the local branch but leaves the
	// working tree untouched.
	IntentNewBranchNoCheckout
)

// Intent is a user's already-resolved choice of local checkout action.
// It is constructed once from user selection and consumed exactly once by
// Engine.Materialize.
type Intent struct {
	kind   IntentKind
	branch string
}

// DetachedHead returns the intent to check out the PR head as a detached
// HEAD.
func DetachedHead() Intent {
	return Intent{kind: IntentDetachedHead}
}

// NewBranch returns the intent to create branch name at the PR head and
// check it out.
func NewBranch(name string) Intent {
	return Intent{kind: IntentNewBranch, branch: name}
}

// NewBranchNoCheckout returns the intent to create branch name at the PR
// head without checking it out.
func NewBranchNoCheckout(name string) Intent {
	return Intent{kind: IntentNewBranchNoCheckout, branch: name}
}

// Kind returns the intent variant.
func (i Intent) Kind() IntentKind {
	return i.kind
}

// BranchName returns the branch name for the branch-creating variants, and
// "" for DetachedHead.
func (i Intent) BranchName() string {
	return i.branch
}

func (i Intent) String() string {
	switch i.kind {
	case IntentDetachedHead:
		return "detached HEAD"
	case IntentNewBranch:
		return fmt.Sprintf("branch %s", i.branch)
	case IntentNewBranchNoCheckout:
		return fmt.Sprintf("branch %s (no checkout)", i.branch)
	default:
		return "unknown"
	}
}

// DefaultBranchName is the branch name offered when the user does not pick
// one: pull-request-<number>.
func DefaultBranchName(number int) string {
	return fmt.Sprintf("pull-request-%d", number)
}
