package views

import (
	"finsight/internal/content"
	"finsight/ui/tui/state"
	"finsight/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type AnalysisView struct{}

func (v AnalysisView) Render(s state.Session, props ViewProps) string {
	width := contentWidth(props.Width)

	sections := []string{header(content.AnalysisHeadline, width)}
	if s.UploadedFile != "" {
		sections = append(sections, styles.InfoStyle.Render(content.UploadedLabel(s.UploadedFile)))
	}

	// Context mode
	sections = append(sections,
		styles.SubHeaderStyle.Render(content.ContextTitle),
		content.ContextPrompt,
		modePills(s.ContextMode),
		styles.InfoStyle.Render(s.ContextMode.Description()),
	)

	if props.Err != nil {
		sections = append(sections, errorBox(props.Err))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}
	if props.Payload == nil {
		sections = append(sections, styles.DescStyle.Render("No analysis available."))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	// Ratio cards
	sections = append(sections, styles.SubHeaderStyle.Render(content.RatiosTitle))
	cols := columnsFor(width, 34)
	for _, sec := range props.Payload.Report.Sections {
		cards := make([]string, 0, len(sec.Items))
		for _, item := range sec.Items {
			cards = append(cards, RatioCard(item))
		}
		sections = append(sections,
			lipgloss.NewStyle().Bold(true).Render(sec.Title),
			CardGrid(cards, cols),
		)
	}

	// Chart
	sections = append(sections,
		styles.SubHeaderStyle.Render(content.ChartSection),
		props.ChartView,
	)

	// Insights
	insights := []string{styles.RatioTitleStyle.Render(content.InsightsCard)}
	for _, line := range props.Payload.Insights {
		insights = append(insights, lipgloss.NewStyle().Width(70).Render(line))
	}
	sections = append(sections,
		styles.SubHeaderStyle.Render(content.InsightsTitle),
		styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, insights...)),
		styles.HintStyle.Render("[←/→] Context mode"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func modePills(selected content.ContextMode) string {
	var pills []string
	for _, m := range content.ContextModes() {
		st := lipgloss.NewStyle().Padding(0, 2).MarginRight(1).Border(lipgloss.RoundedBorder())
		label := "○ " + m.String()
		if m == selected {
			label = "● " + m.String()
			st = st.Bold(true).BorderForeground(styles.Accent).Foreground(styles.Accent)
		} else {
			st = st.BorderForeground(lipgloss.Color("#444"))
		}
		pills = append(pills, zone.Mark(ModeZoneID(m), st.Render(label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pills...)
}
