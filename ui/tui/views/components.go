package views

import (
	"fmt"

	"finsight/internal/content"
	"finsight/internal/output"
	"finsight/internal/ratios"
	"finsight/ui/tui/state"
	"finsight/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth = 30
	maxCardCols  = 3
)

// NavZoneID is the bubblezone id of a sidebar entry.
func NavZoneID(p state.Page) string {
	return "nav_" + p.String()
}

// ModeZoneID is the bubblezone id of a context mode pill.
func ModeZoneID(m content.ContextMode) string {
	return "mode_" + m.String()
}

func ColorForStatus(status ratios.Status) lipgloss.Style {
	return styles.RatioValueStyle.Foreground(styles.StatusColor(string(status)))
}

// RatioCard renders one ratio the way the .ratio-card class does.
func RatioCard(item output.Item) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.RatioTitleStyle.Render(item.Label),
		ColorForStatus(item.Status).Render(output.FormatValue(item.Value)),
		styles.DescStyle.Width(26).Render(item.Note),
	)
	return styles.RatioCardStyle(string(item.Status)).Render(body)
}

// CardGrid lays cards out in rows of at most cols cards.
func CardGrid(cards []string, cols int) string {
	if cols < 1 {
		cols = 1
	}
	var rows []string
	for i := 0; i < len(cards); i += cols {
		end := min(i+cols, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, spaced(cards[i:end])...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func spaced(cards []string) []string {
	out := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, c)
	}
	return out
}

// columnsFor picks how many cards of cardWidth fit in width, capped at maxCardCols.
func columnsFor(width, cardWidth int) int {
	if width <= 0 {
		return maxCardCols
	}
	return max(1, min(maxCardCols, width/cardWidth))
}

// contentWidth is the width left for a page once the sidebar is drawn.
func contentWidth(total int) int {
	if total <= 0 {
		return 0
	}
	return max(40, total-sidebarWidth-2)
}

func header(title string, width int) string {
	st := styles.MainHeaderStyle
	if width > 0 {
		st = st.Width(width)
	}
	return st.Render(title)
}

func errorBox(err error) string {
	return styles.ErrorStyle.Render(fmt.Sprintf("Error: %v", err))
}
