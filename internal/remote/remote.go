package remote

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedRemoteURL is returned when a remote URL matches neither the
// HTTPS nor the SSH form.
var ErrMalformedRemoteURL = errors.New("malformed remote url")

// Descriptor identifies a repository on a GitHub-style host.
// It is derived deterministically from a remote URL and never mutated.
type Descriptor struct {
	Host  string // lowercased domain, e.g. "github.com"
	Owner string
	Repo  string
	URL   string // canonical web URL, e.g. "https://github.com/acme/widgets"
}

// Parse parses a git remote URL into a Descriptor.
// Supported forms:
//
//	https://host/owner/repo(.git)
//	git@host:owner/repo(.git)
//
// The host is matched case-insensitively, owner and repo are preserved as-is.
func Parse(rawURL string) (Descriptor, error) {
	raw := strings.TrimSpace(rawURL)

	var host, path string
	switch {
	case strings.HasPrefix(raw, "https://"), strings.HasPrefix(raw, "http://"):
		rest := raw[strings.Index(raw, "//")+2:]
		slash := strings.Index(rest, "/")
		if slash <= 0 {
			return Descriptor{}, fmt.Errorf("%w: %q", ErrMalformedRemoteURL, rawURL)
		}
		host, path = rest[:slash], rest[slash+1:]
	case strings.HasPrefix(raw, "git@"):
		rest := strings.TrimPrefix(raw, "git@")
		colon := strings.Index(rest, ":")
		if colon <= 0 {
			return Descriptor{}, fmt.Errorf("%w: %q", ErrMalformedRemoteURL, rawURL)
		}
		host, path = rest[:colon], rest[colon+1:]
	default:
		return Descriptor{}, fmt.Errorf("%w: %q", ErrMalformedRemoteURL, rawURL)
	}

	path = strings.TrimSuffix(path, "/")
	path = strings.TrimSuffix(path, ".git")

	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrMalformedRemoteURL, rawURL)
	}

	host = strings.ToLower(host)
	return Descriptor{
		Host:  host,
		Owner: parts[0],
		Repo:  parts[1],
		URL:   fmt.Sprintf("https://%s/%s/%s", host, parts[0], parts[1]),
	}, nil
}

// CompareURL builds the hosting-site comparison / PR-creation URL for the
// given base repository and head branch. Pure string composition.
func CompareURL(base Descriptor, baseBranch, headOwner, headBranch string) string {
	return fmt.Sprintf("%s/compare/%s:%s...%s:%s?expand=1",
		base.URL, base.Owner, baseBranch, headOwner, headBranch)
}
