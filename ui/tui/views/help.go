package views

import (
	"finsight/internal/content"
	"finsight/ui/tui/state"
	"finsight/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type HelpView struct{}

// Render shows the FAQ as pre-rendered markdown, falling back to the raw source.
func (v HelpView) Render(s state.Session, props ViewProps) string {
	faq := props.FAQView
	if faq == "" {
		faq = content.FAQ
	}

	contact := styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.RatioTitleStyle.Render(content.ContactCard),
		content.ContactEmail,
		content.ContactPhone,
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		header(content.HelpHeadline, contentWidth(props.Width)),
		styles.SubHeaderStyle.Render(content.FAQTitle),
		faq,
		styles.SubHeaderStyle.Render(content.ContactTitle),
		contact,
	)
}
