package pr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/prget/internal/gh"
	"github.com/bjulian5/prget/internal/git"
)

// call records one git invocation issued by the engine
type call struct {
	op   string
	args []string
}

// fakeGit records every invocation and fails the configured steps
type fakeGit struct {
	root     string
	calls    []call
	failStep string
}

func (f *fakeGit) GitRoot() string {
	if f.root == "" {
		return "/tmp/fake-repo"
	}
	return f.root
}

func (f *fakeGit) fail(step string) error {
	if f.failStep == step {
		return &git.CommandError{Step: step, ExitCode: 128, Stderr: "boom"}
	}
	return nil
}

func (f *fakeGit) Fetch(remoteURL, refspec string) error {
	f.calls = append(f.calls, call{op: git.StepFetch, args: []string{remoteURL, refspec}})
	return f.fail(git.StepFetch)
}

func (f *fakeGit) CreateBranch(name, commitHash string) error {
	f.calls = append(f.calls, call{op: git.StepBranch, args: []string{name, commitHash}})
	return f.fail(git.StepBranch)
}

func (f *fakeGit) Checkout(ref string) error {
	f.calls = append(f.calls, call{op: git.StepCheckout, args: []string{ref}})
	return f.fail(git.StepCheckout)
}

func testPR() gh.PullRequest {
	return gh.PullRequest{
		Number:           42,
		Title:            "Add widget frobnication",
		Author:           "alice",
		HeadRepoCloneURL: "https://github.com/alice/widgets.git",
		HeadRef:          "feature-x",
		HeadSHA:          "abc123abc123abc123abc123abc123abdeadbeef",
	}
}

func steps(calls []call) []string {
	out := make([]string, 0, len(calls))
	for _, c := range calls {
		out = append(out, c.op)
	}
	return out
}

func TestMaterialize(t *testing.T) {
	pull := testPR()

	testCases := []struct {
		desc          string
		intent        Intent
		failStep      string
		expectedSteps []string
		expectedState State
		expectFailed  string
	}{
		{
			desc:          "new branch runs fetch, branch, checkout",
			intent:        NewBranch("pull-request-42"),
			expectedSteps: []string{git.StepFetch, git.StepBranch, git.StepCheckout},
			expectedState: StateDone,
		},
		{
			desc:          "detached head never creates a branch",
			intent:        DetachedHead(),
			expectedSteps: []string{git.StepFetch, git.StepCheckout},
			expectedState: StateDone,
		},
		{
			desc:          "branch without checkout never checks out",
			intent:        NewBranchNoCheckout("pull-request-42"),
			expectedSteps: []string{git.StepFetch, git.StepBranch},
			expectedState: StateDone,
		},
		{
			desc:          "failed fetch issues nothing else",
			intent:        NewBranch("pull-request-42"),
			failStep:      git.StepFetch,
			expectedSteps: []string{git.StepFetch},
			expectedState: StateFailed,
			expectFailed:  git.StepFetch,
		},
		{
			desc:          "failed branch creation skips checkout",
			intent:        NewBranch("pull-request-42"),
			failStep:      git.StepBranch,
			expectedSteps: []string{git.StepFetch, git.StepBranch},
			expectedState: StateFailed,
			expectFailed:  git.StepBranch,
		},
		{
			desc:          "failed checkout leaves the branch intact",
			intent:        NewBranch("pull-request-42"),
			failStep:      git.StepCheckout,
			expectedSteps: []string{git.StepFetch, git.StepBranch, git.StepCheckout},
			expectedState: StateFailed,
			expectFailed:  git.StepCheckout,
		},
		{
			desc:          "failed fetch aborts detached head too",
			intent:        DetachedHead(),
			failStep:      git.StepFetch,
			expectedSteps: []string{git.StepFetch},
			expectedState: StateFailed,
			expectFailed:  git.StepFetch,
		},
	}

	for i, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			// distinct roots so the per-repo locks don't interfere
			fake := &fakeGit{root: fmt.Sprintf("/tmp/fake-repo-%d", i), failStep: tc.failStep}
			engine := NewEngine(fake)

			result, err := engine.Materialize(pull, tc.intent)

			assert.Equal(t, tc.expectedSteps, steps(fake.calls))
			assert.Equal(t, tc.expectedState, result.State)
			if tc.expectedState == StateFailed {
				require.Error(t, err)
				assert.Equal(t, tc.expectFailed, result.FailedStep())

				var cmdErr *git.CommandError
				require.ErrorAs(t, err, &cmdErr)
				assert.Equal(t, tc.expectFailed, cmdErr.Step)
			} else {
				require.NoError(t, err)
				assert.Empty(t, result.FailedStep())
			}
		})
	}
}

func TestMaterializeCommandArguments(t *testing.T) {
	pull := testPR()

	t.Run("new branch sequence", func(t *testing.T) {
		fake := &fakeGit{root: t.TempDir()}
		_, err := NewEngine(fake).Materialize(pull, NewBranch("pull-request-42"))
		require.NoError(t, err)

		expected := []call{
			{op: git.StepFetch, args: []string{"https://github.com/alice/widgets.git", "feature-x"}},
			{op: git.StepBranch, args: []string{"pull-request-42", pull.HeadSHA}},
			{op: git.StepCheckout, args: []string{"pull-request-42"}},
		}
		assert.Equal(t, expected, fake.calls)
	})

	t.Run("detached head checks out the sha", func(t *testing.T) {
		fake := &fakeGit{root: t.TempDir()}
		_, err := NewEngine(fake).Materialize(pull, DetachedHead())
		require.NoError(t, err)

		expected := []call{
			{op: git.StepFetch, args: []string{"https://github.com/alice/widgets.git", "feature-x"}},
			{op: git.StepCheckout, args: []string{pull.HeadSHA}},
		}
		assert.Equal(t, expected, fake.calls)
	})
}

func TestDefaultBranchName(t *testing.T) {
	assert.Equal(t, "pull-request-42", DefaultBranchName(42))
}
