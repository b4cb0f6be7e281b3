package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bjulian5/prget/internal/gh"
)

const (
	maxTitleLength = 60
	shaDisplayLen  = 7
)

// Truncate truncates text to maxLen with an ellipsis if needed
// Uses lipgloss for proper ANSI-aware width handling
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	width := lipgloss.Width(text)
	if width <= maxLen {
		return text
	}

	if maxLen <= 3 {
		return lipgloss.NewStyle().MaxWidth(maxLen).Render(text)
	}

	return lipgloss.NewStyle().MaxWidth(maxLen-3).Render(text) + "..."
}

// FormatPRFinderLine renders a one-line entry for the fuzzy finder:
// "42: Fix widget frobnication"
func FormatPRFinderLine(pull gh.PullRequest) string {
	return fmt.Sprintf("%d: %s", pull.Number, Truncate(pull.Title, maxTitleLength))
}

// FormatPRPreview renders the preview pane for a pull request.
func FormatPRPreview(pull gh.PullRequest) string {
	var b strings.Builder

	b.WriteString(BoldStyle.Render(fmt.Sprintf("#%d %s", pull.Number, pull.Title)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Opened by %s, %s.\n", pull.Author, RelativeTime(pull.CreatedAt, time.Now())))
	b.WriteString(Dim(fmt.Sprintf("%s @ %s\n", pull.HeadRef, shortSHA(pull.HeadSHA))))
	b.WriteString(Dim(pull.HTMLURL))

	return b.String()
}

// RelativeTime renders t relative to now, in the coarsest sensible unit:
// "just now", "5 minutes ago", "3 days ago", ...
func RelativeTime(t time.Time, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	case d < 365*24*time.Hour:
		return plural(int(d.Hours()/(24*30)), "month")
	default:
		return plural(int(d.Hours()/(24*365)), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func shortSHA(sha string) string {
	if len(sha) <= shaDisplayLen {
		return sha
	}
	return sha[:shaDisplayLen]
}
