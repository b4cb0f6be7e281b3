package gh

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/go-github/v60/github"

	"github.com/bjulian5/prget/internal/remote"
)

const defaultTimeout = 10 * time.Second

// Client provides hosting-API operations for a single repository.
type Client struct {
	api        *github.Client
	http       *http.Client
	desc       remote.Descriptor
	perPageMax int
}

// Option configures the client.
type Option func(*Client)

// WithToken authenticates API requests with the given token.
func WithToken(token string) Option {
	return func(c *Client) {
		if token != "" {
			c.api = c.api.WithAuthToken(token)
		}
	}
}

// WithTimeout bounds every network call made by the client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithPerPageMax caps the page size used when listing pull requests.
func WithPerPageMax(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.perPageMax = n
		}
	}
}

// WithBaseURL points the API client at a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.api.BaseURL, _ = c.api.BaseURL.Parse(url + "/")
	}
}

// NewClient creates an API client for the repository identified by desc.
// Non-github.com hosts are addressed through the usual /api/v3 prefix.
func NewClient(desc remote.Descriptor, opts ...Option) *Client {
	httpClient := &http.Client{Timeout: defaultTimeout}
	c := &Client{
		api:        github.NewClient(httpClient),
		http:       httpClient,
		desc:       desc,
		perPageMax: 100,
	}

	if desc.Host != "" && desc.Host != "github.com" {
		c.api.BaseURL, _ = c.api.BaseURL.Parse(fmt.Sprintf("https://%s/api/v3/", desc.Host))
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Repo returns the descriptor this client addresses.
func (c *Client) Repo() remote.Descriptor {
	return c.desc
}

// ListOpen returns a single page of open pull requests in the order the API
// supplies them. An empty slice means the repository has no open PRs on that
// page; it is not an error. perPage is clamped to the configured cap.
func (c *Client) ListOpen(ctx context.Context, page, perPage int) ([]PullRequest, error) {
	if perPage <= 0 || perPage > c.perPageMax {
		perPage = c.perPageMax
	}

	opts := &github.PullRequestListOptions{
		State: "open",
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: perPage,
		},
	}

	apiPRs, resp, err := c.api.PullRequests.List(ctx, c.desc.Owner, c.desc.Repo, opts)
	if err != nil {
		return nil, fetchError(c.apiURL("repos/%s/%s/pulls", c.desc.Owner, c.desc.Repo), resp, err)
	}

	prs := make([]PullRequest, 0, len(apiPRs))
	for _, pr := range apiPRs {
		prs = append(prs, fromAPI(pr))
	}
	return prs, nil
}

// ListAllOpen returns every open pull request, walking pages of the
// configured maximum size until the API reports no further page.
func (c *Client) ListAllOpen(ctx context.Context) ([]PullRequest, error) {
	var all []PullRequest
	for page := 1; ; page++ {
		prs, err := c.ListOpen(ctx, page, c.perPageMax)
		if err != nil {
			return nil, err
		}
		all = append(all, prs...)
		if len(prs) < c.perPageMax {
			return all, nil
		}
	}
}

// Get fetches a single pull request by number.
func (c *Client) Get(ctx context.Context, number int) (PullRequest, error) {
	pr, resp, err := c.api.PullRequests.Get(ctx, c.desc.Owner, c.desc.Repo, number)
	if err != nil {
		return PullRequest{}, fetchError(c.apiURL("repos/%s/%s/pulls/%d", c.desc.Owner, c.desc.Repo, number), resp, err)
	}
	return fromAPI(pr), nil
}

// FetchDiff performs a single GET against the PR's diff URL and returns the
// raw diff text. Non-2xx responses fail; there are no retries, diffs are for
// display only.
func (c *Client) FetchDiff(ctx context.Context, pr PullRequest) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pr.DiffURL, nil)
	if err != nil {
		return "", &FetchError{URL: pr.DiffURL, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &FetchError{URL: pr.DiffURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &FetchError{URL: pr.DiffURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: pr.DiffURL, Err: err}
	}
	return string(body), nil
}

// fromAPI converts a go-github pull request to our snapshot type
func fromAPI(pr *github.PullRequest) PullRequest {
	return PullRequest{
		Number:           pr.GetNumber(),
		Title:            pr.GetTitle(),
		Author:           pr.GetUser().GetLogin(),
		CreatedAt:        pr.GetCreatedAt().Time,
		HeadRepoCloneURL: pr.GetHead().GetRepo().GetCloneURL(),
		HeadRef:          pr.GetHead().GetRef(),
		HeadSHA:          pr.GetHead().GetSHA(),
		DiffURL:          pr.GetDiffURL(),
		HTMLURL:          pr.GetHTMLURL(),
	}
}

// apiURL renders an API endpoint for error messages
func (c *Client) apiURL(format string, args ...interface{}) string {
	return c.api.BaseURL.String() + fmt.Sprintf(format, args...)
}

// fetchError normalizes go-github errors into a FetchError carrying the
// HTTP status when one is available.
func fetchError(url string, resp *github.Response, err error) error {
	fe := &FetchError{URL: url, Err: err}
	if resp != nil {
		fe.StatusCode = resp.StatusCode
	}
	return fe
}
