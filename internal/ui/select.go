package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/bjulian5/prget/internal/gh"
)

func init() {
	// Force lipgloss to initialize and detect terminal before fuzzy finder starts
	// This prevents ANSI escape sequences from leaking into the finder input
	_ = lipgloss.NewStyle().Render("")
	_ = lipgloss.HasDarkBackground()
}

// SelectPR presents a fuzzy finder over the open pull requests.
// Returns the selected PR and true, or false if the user cancelled.
func SelectPR(pulls []gh.PullRequest) (gh.PullRequest, bool, error) {
	os.Stdout.Sync()
	os.Stderr.Sync()

	idx, err := fuzzyfinder.Find(
		pulls,
		func(i int) string {
			return FormatPRFinderLine(pulls[i])
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return FormatPRPreview(pulls[i])
		}),
	)

	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		return gh.PullRequest{}, false, nil
	}

	return pulls[idx], true, nil
}

// SelectAction presents a fuzzy finder over the given action labels.
// Returns the selected index and true, or false if the user cancelled.
func SelectAction(actions []string) (int, bool) {
	os.Stdout.Sync()
	os.Stderr.Sync()

	idx, err := fuzzyfinder.Find(
		actions,
		func(i int) string { return actions[i] },
	)
	if err != nil {
		return 0, false
	}
	return idx, true
}
