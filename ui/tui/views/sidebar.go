package views

import (
	"math"

	"finsight/internal/content"
	"finsight/ui/tui/state"
	"finsight/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// SidebarView draws the logo, the page selector, and the About box.
type SidebarView struct{}

func (v SidebarView) Render(s state.Session, props ViewProps) string {
	// 1. Logo
	logo := styles.LogoStyle.
		Width(sidebarWidth-2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Heading).
		Align(lipgloss.Center).
		Render(content.ProductName)

	// 2. Navigation
	var items []string
	for i, p := range state.Pages() {
		dist := math.Abs(float64(i) - props.AnimCursor)
		selectionStrength := 0.0
		if dist < 1.0 {
			selectionStrength = 1.0 - dist
		}

		marker := "○"
		if p == s.Page() {
			marker = "●"
		}

		borderColor := lipgloss.Color("#444")
		if selectionStrength > 0.1 || i == props.NavCursor {
			borderColor = styles.Accent
		}

		boxStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1).
			MarginLeft(int(selectionStrength * 2)).
			Width(sidebarWidth - 6)
		if p == s.Page() {
			boxStyle = boxStyle.Bold(true).Foreground(styles.Heading)
		} else {
			boxStyle = boxStyle.Foreground(lipgloss.Color("#AAA"))
		}

		item := boxStyle.Render(marker + " " + p.String())
		items = append(items, zone.Mark(NavZoneID(p), item))
	}

	nav := lipgloss.JoinVertical(lipgloss.Left,
		styles.SubHeaderStyle.Render("Navigation"),
		lipgloss.JoinVertical(lipgloss.Left, items...),
	)

	// 3. About
	about := lipgloss.JoinVertical(lipgloss.Left,
		styles.SubHeaderStyle.Render(content.AboutTitle),
		styles.DescStyle.Width(sidebarWidth-2).Render(content.AboutBody),
		"",
		styles.HintStyle.Render(content.Copyright),
		styles.HintStyle.Render("\n[1/2/3] Page • [↑/↓] Move\n[Enter] Select • [Q] Quit"),
	)

	return lipgloss.NewStyle().
		Width(sidebarWidth).
		PaddingRight(1).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(styles.Subtle).
		Render(lipgloss.JoinVertical(lipgloss.Left, logo, nav, about))
}
