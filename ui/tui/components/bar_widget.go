package components

import (
	"fmt"
	"strings"

	"finsight/internal/chart"
	"finsight/internal/output"
	"finsight/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minBarWidth  = 24
	minBarHeight = 6
)

// BarWidget draws a chart.Chart in the terminal, one coloured bar per ratio.
type BarWidget struct {
	Chart  chart.Chart
	Width  int
	Height int
}

func NewBarWidget(c chart.Chart, width, height int) *BarWidget {
	w := &BarWidget{Chart: c}
	w.Resize(width, height)
	return w
}

func (b *BarWidget) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the chart is static.
func (b *BarWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return b, nil
}

func (b *BarWidget) SetChart(c chart.Chart) {
	b.Chart = c
}

func (b *BarWidget) Resize(w, h int) {
	b.Width = max(w, minBarWidth)
	b.Height = max(h, minBarHeight)
}

// Data converts the chart into ntcharts bar data, coloured by status.
func (b *BarWidget) Data() []barchart.BarData {
	data := make([]barchart.BarData, 0, len(b.Chart.Bars))
	for _, bar := range b.Chart.Bars {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(chart.Color(bar.Status)))
		data = append(data, barchart.BarData{
			Label: shortLabel(bar.Label),
			Values: []barchart.BarValue{
				{Name: bar.Label, Value: bar.Value, Style: style},
			},
		})
	}
	return data
}

func (b *BarWidget) View() string {
	if len(b.Chart.Bars) == 0 {
		return styles.CardStyle.Render(styles.DescStyle.Render("No chart data"))
	}

	bc := barchart.New(b.Width, b.Height)
	for _, d := range b.Data() {
		bc.Push(d)
	}
	bc.Draw()

	return styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			styles.RatioTitleStyle.Render(b.Chart.Title),
			styles.DescStyle.Render(b.Chart.YLabel),
			bc.View(),
			b.legend(),
		),
	)
}

// legend lists each bar's value and the threshold the colours are judged against.
func (b *BarWidget) legend() string {
	var sb strings.Builder
	for _, bar := range b.Chart.Bars {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(chart.Color(bar.Status))).Render("■")
		fmt.Fprintf(&sb, "%s %s %s\n", swatch, bar.Label, output.FormatValue(bar.Value))
	}
	if b.Chart.Threshold > 0 {
		threshold := lipgloss.NewStyle().Foreground(styles.Alert).Render("╌╌")
		fmt.Fprintf(&sb, "%s threshold %s", threshold, output.FormatValue(b.Chart.Threshold))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// shortLabel trims the trailing " Ratio" so labels fit under narrow bars.
func shortLabel(label string) string {
	return strings.TrimSuffix(label, " Ratio")
}
