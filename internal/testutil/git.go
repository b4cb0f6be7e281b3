package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bjulian5/prget/internal/git"
)

// NewTestGitClient creates a git client in a temporary repository with an
// initial commit on main.
func NewTestGitClient(t *testing.T) *git.Client {
	t.Helper()
	tempDir := t.TempDir()

	runGit(t, tempDir, "init", "--initial-branch=main")
	runGit(t, tempDir, "config", "user.email", "test@example.com")
	runGit(t, tempDir, "config", "user.name", "test")

	gitClient, err := git.NewClientAt(tempDir)
	require.NoError(t, err)

	CreateCommit(t, gitClient, "README.md", "initial\n", "Initial commit")
	return gitClient
}

// CreateCommit writes a file, stages it and commits, returning the new
// commit's SHA. Commit dates are pinned for reproducibility.
func CreateCommit(t *testing.T, gitClient *git.Client, name, content, message string) string {
	t.Helper()
	root := gitClient.GitRoot()

	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	runGit(t, root, "add", ".")

	cmd := exec.Command("git", "commit", "-m", message)
	cmd.Dir = root
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_DATE=2024-01-01T00:00:00Z",
		"GIT_COMMITTER_DATE=2024-01-01T00:00:00Z",
	)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git commit failed: %s", string(output))

	sha, err := gitClient.CommitHash("HEAD")
	require.NoError(t, err)
	return sha
}

// CreateBranchWithCommit creates branch off the current HEAD, adds one
// commit to it, then returns to the original branch. Returns the SHA of the
// new commit.
func CreateBranchWithCommit(t *testing.T, gitClient *git.Client, branch string) string {
	t.Helper()

	current, err := gitClient.CurrentBranch()
	require.NoError(t, err)

	runGit(t, gitClient.GitRoot(), "checkout", "-b", branch)
	sha := CreateCommit(t, gitClient, fmt.Sprintf("file-%s.txt", strings.ReplaceAll(branch, "/", "-")), branch+"\n", "Commit on "+branch)
	runGit(t, gitClient.GitRoot(), "checkout", current)

	return sha
}

// WriteFile writes an (uncommitted) file into the working tree.
func WriteFile(t *testing.T, root, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0644))
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s failed: %s", strings.Join(args, " "), string(output))
}
