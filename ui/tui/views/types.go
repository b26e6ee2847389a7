package views

import (
	"finsight/internal/output"
	"finsight/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Component States
	NavCursor   int
	AnimCursor  float64
	SpinnerView string
	ChartView   string
	FAQView     string
	PickerView  string
	Picking     bool

	// Analysis data; nil until it has been built.
	Payload *output.AnalysisPayload
	Err     error
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.Session, props ViewProps) string
}
