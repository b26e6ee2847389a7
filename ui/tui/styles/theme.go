package styles

import "github.com/charmbracelet/lipgloss"

var sheet = MustParseSheet(sheetCSS)

var (
	Primary   = lipgloss.Color(sheet.Var("primary"))
	Secondary = lipgloss.Color(sheet.Var("secondary"))
	Accent    = lipgloss.Color(sheet.Var("accent"))
	Alert     = lipgloss.Color(sheet.Var("warning")) // the sheet names its red "warning"
	Text      = lipgloss.Color(sheet.Var("text"))
	Muted     = lipgloss.Color(sheet.Prop("ratio-description", "color"))

	Healthy = lipgloss.Color(sheet.Hex("ratio-healthy", "border-left"))
	Warning = lipgloss.Color(sheet.Hex("ratio-warning", "border-left"))
	Danger  = lipgloss.Color(sheet.Hex("ratio-danger", "border-left"))

	// Primary navy is unreadable on dark terminals; headings adapt.
	Heading = lipgloss.AdaptiveColor{Light: string(Primary), Dark: "#7FA7D9"}
	Subtle  = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Body    = lipgloss.AdaptiveColor{Light: string(Text), Dark: "#DDDDDD"}
	Panel   = lipgloss.AdaptiveColor{Light: string(Secondary), Dark: "#1F2630"}

	MainHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Primary).
			Padding(1, 2).
			MarginBottom(1)

	SubHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Heading).
			MarginTop(1)

	CardStyle = lipgloss.NewStyle().
			Foreground(Body).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(1, 2).
			Margin(0, 1, 1, 0)

	// .feature-box: secondary panel background
	FeatureBoxStyle = lipgloss.NewStyle().
			Foreground(Body).
			Background(Panel).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Heading).
			Padding(1, 1).
			Margin(0, 1, 1, 0).
			Width(28).
			Align(lipgloss.Center)

	UploadBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.Border{Top: "╌", Bottom: "╌", Left: "╎", Right: "╎", TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘"}).
			BorderForeground(lipgloss.Color("#ccc")).
			Padding(1, 4).
			Align(lipgloss.Center)

	RatioTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(Heading)
	RatioValueStyle = lipgloss.NewStyle().Bold(true)
	FeatureTitle    = RatioTitleStyle.Background(Panel)
	DescStyle       = lipgloss.NewStyle().Foreground(Muted).Italic(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	InfoStyle    = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0b5394", Dark: "#8fc1ff"}).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#2196F3")).
			PaddingLeft(1)
	ErrorStyle = lipgloss.NewStyle().Foreground(Alert).Bold(true)

	LogoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Heading).
			MarginBottom(1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Align(lipgloss.Center).
			Padding(1, 0)

	HintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
)

// StatusColor returns the border colour of a ratio card for a status name.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "warning":
		return Warning
	case "danger":
		return Danger
	default:
		return Healthy
	}
}

// RatioCardStyle mirrors the .ratio-card/.ratio-<status> classes: a thick left border in the status colour.
func RatioCardStyle(status string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(StatusColor(status)).
		Padding(0, 1).
		MarginBottom(1).
		Width(30)
}
