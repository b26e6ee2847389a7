package views

import (
	"finsight/internal/content"
	"finsight/ui/tui/state"
	"finsight/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// pageViews maps every page to its renderer; pages never render each other.
var pageViews = map[state.Page]View{
	state.PageHome:     HomeView{},
	state.PageAnalysis: AnalysisView{},
	state.PageHelp:     HelpView{},
}

// RenderPage renders only the body of the current page.
func RenderPage(s state.Session, props ViewProps) string {
	return pageViews[s.Page()].Render(s, props)
}

// RenderLayout draws sidebar, page and footer, and registers mouse zones.
func RenderLayout(s state.Session, props ViewProps) string {
	sidebar := SidebarView{}.Render(s, props)

	page := lipgloss.NewStyle().PaddingLeft(2).Render(lipgloss.JoinVertical(lipgloss.Left,
		RenderPage(s, props),
		styles.FooterStyle.Render(content.Footer),
	))

	return zone.Scan(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, page))
}
