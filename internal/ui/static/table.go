// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as tables and
// formatted text displays.
package static

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/phkaiser13/peitch/internal/ui/styles"
	"github.com/phkaiser13/peitch/internal/workflow"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// RepoStatusHeaders returns the column headers for batch status tables.
func RepoStatusHeaders() []string {
	return []string{"REPO", "STATE", "DETAIL"}
}

// RepoStatusRow formats one repository check result as a table row.
// The REPO cell carries an OSC 8 hyperlink to the repository directory
// and the STATE cell is colored by outcome.
func RepoStatusRow(st workflow.RepoStatus) []string {
	failed := st.Err != nil

	state := styles.RepoStateStyle(st.Clean, failed)(styles.FormatRepoState(st.Clean, failed))

	detail := ""
	if failed {
		detail = styles.MutedStyle.Render(st.Err.Error())
	}

	return []string{styles.FormatRepoRef(st.Name, st.Path), state, detail}
}

// FileStatsHeaders returns the column headers for repository analysis tables.
func FileStatsHeaders() []string {
	return []string{"CATEGORY", "FILES"}
}

// FileStatsRows formats a repository file breakdown as table rows.
// Files matching none of the tracked categories are reported as Other.
func FileStatsRows(st workflow.FileStats) [][]string {
	other := st.Total - st.Source - st.Docs - st.Config
	if other < 0 {
		other = 0
	}
	return [][]string{
		{"Source", strconv.Itoa(st.Source)},
		{"Documentation", strconv.Itoa(st.Docs)},
		{"Configuration", strconv.Itoa(st.Config)},
		{"Other", strconv.Itoa(other)},
		{"Total", strconv.Itoa(st.Total)},
	}
}
