package pr

import (
	"fmt"
	"sync"

	"github.com/bjulian5/prget/internal/gh"
	"github.com/bjulian5/prget/internal/git"
)

// GitClient is the subset of git operations the engine needs. *git.Client
// satisfies it; tests substitute a recording fake.
type GitClient interface {
	GitRoot() string
	Fetch(remoteURL string, refspec string) error
	CreateBranch(name string, commitHash string) error
	Checkout(ref string) error
}

// State is the engine's position in the fetch -> branch -> checkout
// sequence.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateBranchCreating
	StateCheckout
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateBranchCreating:
		return "creating branch"
	case StateCheckout:
		return "checking out"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StepResult records one issued git step and its outcome.
type StepResult struct {
	Step string // git.StepFetch, git.StepBranch or git.StepCheckout
	Err  error  // nil on success
}

// Result describes a completed (or aborted) materialization. Steps holds
// every git step actually issued, in order; skipped steps never appear.
type Result struct {
	State State
	Steps []StepResult
}

// FailedStep returns the step that terminated the operation, or "" when the
// operation succeeded.
func (r Result) FailedStep() string {
	for _, s := range r.Steps {
		if s.Err != nil {
			return s.Step
		}
	}
	return ""
}

// Engine turns a selected pull request plus a checkout intent into local
// git state. All git steps within one Materialize call run sequentially,
// and calls against the same repository never interleave.
type Engine struct {
	git GitClient
}

// NewEngine creates a materialization engine on top of the given git client.
func NewEngine(gitClient GitClient) *Engine {
	return &Engine{git: gitClient}
}

// repoLocks serializes materializations per repository root. The working
// tree is a single mutable resource.
var repoLocks sync.Map

func lockRepo(gitRoot string) *sync.Mutex {
	mu, _ := repoLocks.LoadOrStore(gitRoot, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Materialize runs the fetch -> branch -> checkout sequence for pull and
// intent.
//
// The fetch is mandatory for every intent variant, including DetachedHead:
// the head commit may not exist in the local object database yet. A failed
// fetch aborts everything - there is nothing to branch or checkout. A failed
// branch creation aborts before checkout so an unrelated ref is never
// checked out under a misleading name. A failed checkout leaves the created
// branch intact; it is harmless and the user may retry manually.
func (e *Engine) Materialize(pull gh.PullRequest, intent Intent) (Result, error) {
	mu := lockRepo(e.git.GitRoot())
	mu.Lock()
	defer mu.Unlock()

	result := Result{State: StateFetching}

	if err := e.git.Fetch(pull.HeadRepoCloneURL, pull.HeadRef); err != nil {
		result.State = StateFailed
		result.Steps = append(result.Steps, StepResult{Step: git.StepFetch, Err: err})
		return result, fmt.Errorf("failed to fetch PR #%d: %w", pull.Number, err)
	}
	result.Steps = append(result.Steps, StepResult{Step: git.StepFetch})

	if intent.Kind() == IntentNewBranch || intent.Kind() == IntentNewBranchNoCheckout {
		result.State = StateBranchCreating
		if err := e.git.CreateBranch(intent.BranchName(), pull.HeadSHA); err != nil {
			result.State = StateFailed
			result.Steps = append(result.Steps, StepResult{Step: git.StepBranch, Err: err})
			return result, fmt.Errorf("failed to create branch %s for PR #%d: %w", intent.BranchName(), pull.Number, err)
		}
		result.Steps = append(result.Steps, StepResult{Step: git.StepBranch})
	}

	if intent.Kind() != IntentNewBranchNoCheckout {
		result.State = StateCheckout
		ref := pull.HeadSHA
		if intent.Kind() == IntentNewBranch {
			ref = intent.BranchName()
		}
		if err := e.git.Checkout(ref); err != nil {
			result.State = StateFailed
			result.Steps = append(result.Steps, StepResult{Step: git.StepCheckout, Err: err})
			return result, fmt.Errorf("failed to checkout PR #%d: %w", pull.Number, err)
		}
		result.Steps = append(result.Steps, StepResult{Step: git.StepCheckout})
	}

	result.State = StateDone
	return result, nil
}
