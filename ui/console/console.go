package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"finsight/internal/content"
	"finsight/internal/output"
	"finsight/internal/ratios"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

const labelWidth = 24

// Print renders the ratio report to the writer in a highly compact format.
func Print(w io.Writer, report output.Report) {
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", strings.ToUpper(content.ProductName)+" RATIO REPORT", colorReset)

	for _, sec := range report.Sections {
		// Section Header
		fmt.Fprintf(w, "%s%s%s\n", colorCyan, "─ "+sec.Title, colorReset)

		for _, it := range sec.Items {
			label := it.Label
			if utf8.RuneCountInString(label) > labelWidth-2 {
				label = string([]rune(label)[:labelWidth-5]) + "..."
			}

			// Dots leader
			dots := strings.Repeat("·", labelWidth-utf8.RuneCountInString(label))

			// Format: "  Label............... Value Status"
			fmt.Fprintf(w, "  %s%s %8s %s\n", label, colorCyan+dots+colorReset, output.FormatValue(it.Value), marker(it.Status))
		}
	}

	// Single-line Summary
	fmt.Fprintf(w, "%s─ Summary%s: %d healthy | %d warning | %d danger\n\n",
		colorCyan, colorReset, report.Healthy, report.Warning, report.Danger)
}

func marker(status ratios.Status) string {
	color := colorFor(status)
	switch status {
	case ratios.StatusWarning:
		return color + "!" + colorReset
	case ratios.StatusDanger:
		return color + "X" + colorReset
	default:
		return color + "✓" + colorReset
	}
}

func colorFor(status ratios.Status) string {
	switch status {
	case ratios.StatusWarning:
		return colorYellow
	case ratios.StatusDanger:
		return colorRed
	default:
		return colorGreen
	}
}
