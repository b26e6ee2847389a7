package views

import (
	"finsight/internal/content"
	"finsight/ui/tui/state"
	"finsight/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type HomeView struct{}

func (v HomeView) Render(s state.Session, props ViewProps) string {
	width := contentWidth(props.Width)

	welcome := styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.RatioTitleStyle.Render(content.WelcomeTitle),
		lipgloss.NewStyle().Width(60).Render(content.WelcomeBody),
	))

	var boxes []string
	for _, f := range content.Features {
		boxes = append(boxes, styles.FeatureBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			f.Icon,
			styles.FeatureTitle.Render(f.Title),
			lipgloss.NewStyle().Width(24).Render(f.Body),
		)))
	}
	features := CardGrid(boxes, columnsFor(width, 30))

	sections := []string{
		header(content.HomeHeadline, width),
		welcome,
		styles.SubHeaderStyle.Render(content.HowItWorksTitle),
		features,
		styles.SubHeaderStyle.Render(content.UploadTitle),
		v.upload(s, props),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v HomeView) upload(s state.Session, props ViewProps) string {
	if props.Picking {
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.CardStyle.Render(props.PickerView),
			styles.HintStyle.Render("[Enter] Choose • [Esc] Cancel"),
		)
	}

	box := styles.UploadBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render(content.UploadPrompt),
		content.UploadHint,
		styles.HintStyle.Render("[U] Browse files"),
	))

	lines := []string{box, styles.InfoStyle.Render(content.SupportedHint)}
	if s.UploadedFile != "" {
		lines = append(lines, styles.SuccessStyle.Render(content.UploadedLabel(s.UploadedFile)))
	}
	if s.Analyzing {
		lines = append(lines, props.SpinnerView+" "+content.AnalyzingText)
	}
	if s.AnalysisReady {
		lines = append(lines, styles.SuccessStyle.Render(content.AnalysisDone))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
