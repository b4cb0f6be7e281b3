package gh

import "time"

// PullRequest is an immutable snapshot of an open pull request as returned
// by the hosting API. It is never mutated after being fetched.
type PullRequest struct {
	Number           int       // PR number
	Title            string    // PR title
	Author           string    // login of the PR author
	CreatedAt        time.Time // when the PR was opened
	HeadRepoCloneURL string    // clone URL of the repo the head branch lives in
	HeadRef          string    // head branch name
	HeadSHA          string    // head commit SHA
	DiffURL          string    // URL of the raw diff
	HTMLURL          string    // web URL of the PR
}
