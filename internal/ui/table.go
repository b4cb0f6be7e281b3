package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bjulian5/prget/internal/gh"
)

// RenderPRTable renders the open pull requests as a table sized to the
// current terminal.
func RenderPRTable(pulls []gh.PullRequest) string {
	width := GetTerminalWidth()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(TableBorderStyle).
		Width(width).
		StyleFunc(prTableStyleFunc).
		Headers("PR", "TITLE", "AUTHOR", "OPENED")

	now := time.Now()
	for _, pull := range pulls {
		t.Row(
			strconv.Itoa(pull.Number),
			Truncate(pull.Title, width/2),
			pull.Author,
			RelativeTime(pull.CreatedAt, now),
		)
	}

	return t.Render()
}

// prTableStyleFunc provides default styling for table cells
func prTableStyleFunc(row, col int) lipgloss.Style {
	switch {
	case row == table.HeaderRow:
		return TableHeaderStyle
	case row%2 == 0:
		return TableCellStyle
	default:
		return TableRowAltStyle
	}
}
