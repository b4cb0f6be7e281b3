package pr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/prget/internal/gh"
	"github.com/bjulian5/prget/internal/pr"
	"github.com/bjulian5/prget/internal/testutil"
)

// These tests run the engine against real git repositories: a "remote" repo
// standing in for the PR author's fork, and a separate local repo to
// materialize into. git fetch accepts a filesystem path as the remote.

func TestMaterializeAgainstRealGit(t *testing.T) {
	upstream := testutil.NewTestGitClient(t)
	headSHA := testutil.CreateBranchWithCommit(t, upstream, "feature-x")

	pull := gh.PullRequest{
		Number:           7,
		Title:            "Feature X",
		HeadRepoCloneURL: upstream.GitRoot(),
		HeadRef:          "feature-x",
		HeadSHA:          headSHA,
	}

	t.Run("new branch", func(t *testing.T) {
		local := testutil.NewTestGitClient(t)
		result, err := pr.NewEngine(local).Materialize(pull, pr.NewBranch("pull-request-7"))
		require.NoError(t, err)
		assert.Equal(t, pr.StateDone, result.State)

		branch, err := local.CurrentBranch()
		require.NoError(t, err)
		assert.Equal(t, "pull-request-7", branch)

		sha, err := local.CommitHash("HEAD")
		require.NoError(t, err)
		assert.Equal(t, headSHA, sha)
	})

	t.Run("detached head", func(t *testing.T) {
		local := testutil.NewTestGitClient(t)
		result, err := pr.NewEngine(local).Materialize(pull, pr.DetachedHead())
		require.NoError(t, err)
		assert.Equal(t, pr.StateDone, result.State)

		branch, err := local.CurrentBranch()
		require.NoError(t, err)
		assert.Equal(t, "HEAD", branch)

		sha, err := local.CommitHash("HEAD")
		require.NoError(t, err)
		assert.Equal(t, headSHA, sha)
	})

	t.Run("branch without checkout", func(t *testing.T) {
		local := testutil.NewTestGitClient(t)
		result, err := pr.NewEngine(local).Materialize(pull, pr.NewBranchNoCheckout("pull-request-7"))
		require.NoError(t, err)
		assert.Equal(t, pr.StateDone, result.State)

		// Branch exists and points at the head commit
		assert.True(t, local.BranchExists("pull-request-7"))
		sha, err := local.CommitHash("pull-request-7")
		require.NoError(t, err)
		assert.Equal(t, headSHA, sha)

		// Working tree untouched
		branch, err := local.CurrentBranch()
		require.NoError(t, err)
		assert.Equal(t, "main", branch)
	})

	t.Run("existing branch name aborts before checkout", func(t *testing.T) {
		local := testutil.NewTestGitClient(t)
		testutil.CreateBranchWithCommit(t, local, "pull-request-7")

		before, err := local.CurrentBranch()
		require.NoError(t, err)

		result, err := pr.NewEngine(local).Materialize(pull, pr.NewBranch("pull-request-7"))
		require.Error(t, err)
		assert.Equal(t, pr.StateFailed, result.State)
		assert.Equal(t, "branch", result.FailedStep())

		// No checkout was attempted
		after, err := local.CurrentBranch()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestMaterializeFetchFailure(t *testing.T) {
	local := testutil.NewTestGitClient(t)

	pull := gh.PullRequest{
		Number:           9,
		HeadRepoCloneURL: local.GitRoot() + "/does-not-exist",
		HeadRef:          "nope",
		HeadSHA:          "0123456789012345678901234567890123456789",
	}

	result, err := pr.NewEngine(local).Materialize(pull, pr.NewBranch("pull-request-9"))
	require.Error(t, err)
	assert.Equal(t, pr.StateFailed, result.State)
	assert.Equal(t, "fetch", result.FailedStep())
	assert.False(t, local.BranchExists("pull-request-9"))
}
