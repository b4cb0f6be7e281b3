package pr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/prget/internal/git"
	"github.com/bjulian5/prget/internal/remote"
)

// fakeBranchState scripts the git queries the compare flow reads
type fakeBranchState struct {
	upstream    git.RemoteBranchRef
	hasUpstream bool
	remoteRef   git.RemoteBranchRef
	hasRemote   bool
	ahead       int
	behind      int
	remoteURLs  map[string]string
}

func (f *fakeBranchState) UpstreamForActiveBranch() (git.RemoteBranchRef, bool, error) {
	return f.upstream, f.hasUpstream, nil
}

func (f *fakeBranchState) ActiveRemoteBranch() (git.RemoteBranchRef, bool, error) {
	return f.remoteRef, f.hasRemote, nil
}

func (f *fakeBranchState) BranchStatus() (int, int, error) {
	return f.ahead, f.behind, nil
}

func (f *fakeBranchState) RemoteURL(name string) (string, error) {
	url, ok := f.remoteURLs[name]
	if !ok {
		return "", &git.CommandError{Step: "remote", ExitCode: 2, Stderr: "no such remote"}
	}
	return url, nil
}

func baseDescriptor() remote.Descriptor {
	return remote.Descriptor{
		Host:  "github.com",
		Owner: "acme",
		Repo:  "widgets",
		URL:   "https://github.com/acme/widgets",
	}
}

func TestResolveCompareURL(t *testing.T) {
	t.Run("no upstream", func(t *testing.T) {
		g := &fakeBranchState{hasUpstream: false}
		_, err := ResolveCompareURL(g, baseDescriptor(), "main")
		assert.ErrorIs(t, err, ErrNoUpstream)
	})

	t.Run("upstream configured but remote branch unresolvable", func(t *testing.T) {
		g := &fakeBranchState{
			upstream:    git.RemoteBranchRef{Remote: "fork", Branch: "feature-x"},
			hasUpstream: true,
			hasRemote:   false,
		}
		_, err := ResolveCompareURL(g, baseDescriptor(), "main")
		assert.ErrorIs(t, err, ErrUpstreamUndetermined)
	})

	t.Run("diverged branch aborts", func(t *testing.T) {
		g := &fakeBranchState{
			upstream:    git.RemoteBranchRef{Remote: "fork", Branch: "feature-x"},
			hasUpstream: true,
			remoteRef:   git.RemoteBranchRef{Remote: "fork", Branch: "feature-x"},
			hasRemote:   true,
			ahead:       2,
			behind:      1,
			remoteURLs:  map[string]string{"fork": "git@github.com:alice/widgets.git"},
		}
		_, err := ResolveCompareURL(g, baseDescriptor(), "main")

		var divergence *DivergenceError
		require.ErrorAs(t, err, &divergence)
		assert.Equal(t, 2, divergence.Ahead)
		assert.Equal(t, 1, divergence.Behind)
		assert.Contains(t, divergence.Description(), "2 commit(s) ahead")
	})

	t.Run("unknown remote URL is undetermined", func(t *testing.T) {
		g := &fakeBranchState{
			upstream:    git.RemoteBranchRef{Remote: "fork", Branch: "feature-x"},
			hasUpstream: true,
			remoteRef:   git.RemoteBranchRef{Remote: "fork", Branch: "feature-x"},
			hasRemote:   true,
			remoteURLs:  map[string]string{},
		}
		_, err := ResolveCompareURL(g, baseDescriptor(), "main")
		assert.ErrorIs(t, err, ErrUpstreamUndetermined)
	})

	t.Run("clean upstream builds the compare URL", func(t *testing.T) {
		g := &fakeBranchState{
			upstream:    git.RemoteBranchRef{Remote: "fork", Branch: "feature-x"},
			hasUpstream: true,
			remoteRef:   git.RemoteBranchRef{Remote: "fork", Branch: "feature-x"},
			hasRemote:   true,
			remoteURLs:  map[string]string{"fork": "git@github.com:alice/widgets.git"},
		}
		url, err := ResolveCompareURL(g, baseDescriptor(), "main")
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/acme/widgets/compare/acme:main...alice:feature-x?expand=1", url)
	})
}
