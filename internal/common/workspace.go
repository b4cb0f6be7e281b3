package common

import (
	"fmt"

	"github.com/bjulian5/prget/internal/config"
	"github.com/bjulian5/prget/internal/gh"
	"github.com/bjulian5/prget/internal/git"
	"github.com/bjulian5/prget/internal/remote"
	"github.com/bjulian5/prget/internal/ui"
)

// Workspace bundles everything a command needs: loaded configuration, the
// local git client, the resolved base remote and the hosting-API client.
type Workspace struct {
	Config config.Config
	Git    *git.Client
	Base   remote.Descriptor
	GH     *gh.Client
}

// NewWorkspace initializes a workspace for the repository in the current
// directory. Errors are suitable for returning from RunE.
func NewWorkspace() (*Workspace, error) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return nil, err
	}

	gitClient, err := git.NewClient()
	if err != nil {
		ui.Error("Not in a git repository")
		return nil, fmt.Errorf("git client initialization failed: %w", err)
	}

	base, err := ResolveBaseRemote(gitClient)
	if err != nil {
		return nil, err
	}

	ghClient := gh.NewClient(base,
		gh.WithTimeout(cfg.HTTPTimeout()),
		gh.WithPerPageMax(cfg.GitHub.PerPageMax),
		gh.WithToken(cfg.GitHub.Token),
	)

	return &Workspace{
		Config: cfg,
		Git:    gitClient,
		Base:   base,
		GH:     ghClient,
	}, nil
}

// ResolveBaseRemote parses the integrated remote of the repository:
// "origin" when configured, otherwise the first remote git reports.
func ResolveBaseRemote(gitClient *git.Client) (remote.Descriptor, error) {
	remotes, err := gitClient.Remotes()
	if err != nil {
		return remote.Descriptor{}, err
	}
	if len(remotes) == 0 {
		return remote.Descriptor{}, fmt.Errorf("no git remote configured")
	}

	name := remotes[0]
	for _, r := range remotes {
		if r == "origin" {
			name = r
			break
		}
	}

	url, err := gitClient.RemoteURL(name)
	if err != nil {
		return remote.Descriptor{}, err
	}
	return remote.Parse(url)
}

// IntegratedBranch returns the canonical base branch of the remote the
// descriptor was parsed from, falling back to "main" when the remote HEAD
// is unknown locally.
func IntegratedBranch(gitClient *git.Client) string {
	remotes, err := gitClient.Remotes()
	if err != nil || len(remotes) == 0 {
		return "main"
	}

	name := remotes[0]
	for _, r := range remotes {
		if r == "origin" {
			name = r
			break
		}
	}

	if branch, ok := gitClient.DefaultRemoteBranch(name); ok {
		return branch
	}
	return "main"
}
