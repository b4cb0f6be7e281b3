package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bjulian5/prget/internal/gh"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		t        time.Time
		expected string
	}{
		{"seconds ago", now.Add(-30 * time.Second), "just now"},
		{"one minute", now.Add(-61 * time.Second), "1 minute ago"},
		{"minutes", now.Add(-45 * time.Minute), "45 minutes ago"},
		{"hours", now.Add(-3 * time.Hour), "3 hours ago"},
		{"days", now.Add(-72 * time.Hour), "3 days ago"},
		{"months", now.Add(-65 * 24 * time.Hour), "2 months ago"},
		{"years", now.Add(-800 * 24 * time.Hour), "2 years ago"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RelativeTime(tc.t, now))
		})
	}
}

func TestFormatPRFinderLine(t *testing.T) {
	line := FormatPRFinderLine(gh.PullRequest{Number: 42, Title: "Fix widget frobnication"})
	assert.Equal(t, "42: Fix widget frobnication", line)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "", Truncate("anything", 0))
	assert.Equal(t, "very lo...", Truncate("very long text here", 10))
}
