// Package content holds the static copy rendered by the FinSight views.
package content

import (
	"path/filepath"
	"strings"
)

const (
	ProductName = "FinSight"
	Version     = "0.1"

	HomeHeadline = "Simplify Financial Analysis with FinSight"
	WelcomeTitle = "Welcome to FinSight"
	WelcomeBody  = "FinSight helps founders, CFOs, investors, and consultants analyze financial statements, " +
		"extract key ratios, and visualize insights quickly and accurately."

	HowItWorksTitle = "How It Works"
	UploadTitle     = "Upload Your Financial Documents"
	UploadPrompt    = "Upload balance sheets or income statements"
	UploadHint      = "Drag and drop your files here or click to browse"
	SupportedHint   = "Supported formats: PDF, Excel, CSV"
	AnalyzingText   = "Analyzing your financial document..."
	AnalysisDone    = "Analysis complete! Navigate to the Analysis page to view results."

	AnalysisHeadline = "Financial Analysis"
	ContextTitle     = "Select Context Mode"
	ContextPrompt    = "Choose a context mode for your analysis:"
	RatiosTitle      = "Key Financial Ratios"
	ChartSection     = "Visualizations"
	ChartTitle       = "Key Financial Ratios"
	ChartYLabel      = "Ratio Value"
	InsightsTitle    = "AI-Generated Insights"
	InsightsCard     = "Financial Health Summary"

	HelpHeadline = "Help & Support"
	FAQTitle     = "Frequently Asked Questions"
	ContactTitle = "Contact Us"
	ContactCard  = "Need help?"
	ContactEmail = "Email: support@finsight.com"
	ContactPhone = "Phone: (555) 123-4567"

	AboutTitle = "About FinSight"
	AboutBody  = "FinSight helps you analyze financial statements, extract key ratios, and visualize insights quickly and accurately."
	Copyright  = "© 2025 FinSight"
	Footer     = "FinSight Prototype - Version 0.1 - © 2025 FinSight"
)

// Feature is one of the "How It Works" boxes on the Home page.
type Feature struct {
	Icon  string
	Title string
	Body  string
}

var Features = []Feature{
	{Icon: "📄", Title: "Upload Files", Body: "Upload balance sheets and income statements in PDF, Excel, or CSV format."},
	{Icon: "📊", Title: "Get Ratios", Body: "FinSight automatically calculates key financial ratios and metrics."},
	{Icon: "📈", Title: "Visualize Insights", Body: "View insights through intuitive charts and customizable reports."},
}

// Insights are the static summary lines of the insights card.
var Insights = []string{
	"Your company shows strong liquidity with a Current Ratio of 1.8. The Gross Margin of 35% is above average.",
	"Monitor the Cash Ratio (0.5), which indicates limited cash reserves.",
}

// FAQ is rendered as markdown on the Help page.
const FAQ = `### How do I upload files?

1. Navigate to the Home page.
2. Click the "Upload Your Financial Documents" section.
3. Drag and drop or browse for files (PDF, Excel, CSV).

### What financial ratios are calculated?

- **Liquidity**: Current Ratio, Quick Ratio, Cash Ratio
- **Profitability**: Gross Margin, Net Profit Margin, ROE
`

// SupportedExtensions are the file types offered by the upload picker.
var SupportedExtensions = []string{".pdf", ".xlsx", ".csv"}

// IsSupported reports whether name carries a supported extension. The file is never opened.
func IsSupported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// UploadedLabel is the echo shown after a file is picked.
func UploadedLabel(name string) string {
	return "File Uploaded: " + name
}
