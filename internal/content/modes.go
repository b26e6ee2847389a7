package content

import (
	"errors"
	"fmt"
)

// ContextMode is a cosmetic display-emphasis selector on the Analysis page.
type ContextMode int

const (
	ModeInvestor ContextMode = iota
	ModeBoard
	ModeAudit
)

// ErrInvalidContextMode is returned for mode names other than Investor, Board or Audit.
var ErrInvalidContextMode = errors.New("invalid context mode")

var modeNames = [...]string{"Investor", "Board", "Audit"}

var modeDescriptions = [...]string{
	"Investor Mode: Emphasizes growth metrics and visualizations suitable for pitches.",
	"Board Mode: Focuses on comprehensive performance indicators for board meetings.",
	"Audit Mode: Highlights compliance metrics and financial health indicators.",
}

// ContextModes lists the modes in selector order.
func ContextModes() []ContextMode {
	return []ContextMode{ModeInvestor, ModeBoard, ModeAudit}
}

func ParseContextMode(name string) (ContextMode, error) {
	for i, n := range modeNames {
		if n == name {
			return ContextMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidContextMode, name)
}

func (m ContextMode) valid() bool {
	return m >= ModeInvestor && m <= ModeAudit
}

func (m ContextMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("ContextMode(%d)", int(m))
	}
	return modeNames[m]
}

// Description is the static blurb shown for the mode.
func (m ContextMode) Description() string {
	if !m.valid() {
		return ""
	}
	return modeDescriptions[m]
}

func (m ContextMode) Next() ContextMode {
	return ContextMode((int(m) + 1) % len(modeNames))
}

func (m ContextMode) Prev() ContextMode {
	return ContextMode((int(m) + len(modeNames) - 1) % len(modeNames))
}
