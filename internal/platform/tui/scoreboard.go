package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Leaderboard layout constants
const (
	tableMinWidth  = 40
	tableMaxHeight = 12 // header plus ten rows
)

// newLeaderboardTable creates the end screen table sized for the terminal.
func newLeaderboardTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Name", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: 13},
	}

	// Drop the date column on narrow terminals.
	if width-4 < tableMinWidth {
		columns = columns[:4]
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(max(3, min(tableMaxHeight, height-12))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// leaderboardRows converts entries to table rows, keeping only as many
// columns as the table has.
func leaderboardRows(entries []breakout.ScoreEntry, columns int) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Level),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
		rows[i] = row[:min(columns, len(row))]
	}
	return rows
}

// highlightEntry moves the table cursor to the row matching name.
func highlightEntry(t *table.Model, entries []breakout.ScoreEntry, name string) {
	t.GotoTop()
	for i, e := range entries {
		if e.Name == name {
			t.SetCursor(i)
			return
		}
	}
}

// renderLeaderboard renders the table or an empty message inside a border.
func renderLeaderboard(t table.Model, entries []breakout.ScoreEntry) string {
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return tableStyle.Render(emptyStyle.Render("No scores recorded yet.\nBe the first on the board!"))
	}

	return tableStyle.Render(t.View())
}
