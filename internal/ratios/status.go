package ratios

import (
	"errors"
	"fmt"
)

// Status is the qualitative classification attached to a ratio for display.
type Status string

const (
	StatusHealthy Status = "healthy"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

// ErrInvalidStatus is returned when a status outside healthy/warning/danger is parsed.
var ErrInvalidStatus = errors.New("invalid ratio status")

// ParseStatus converts a raw status string into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusHealthy, StatusWarning, StatusDanger:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Rule classifies a ratio value into a Status.
type Rule func(value float64) Status

// BelowThreshold marks values strictly below t as warning and everything else as healthy.
func BelowThreshold(t float64) Rule {
	return func(value float64) Status {
		if value < t {
			return StatusWarning
		}
		return StatusHealthy
	}
}

// DefaultChartRule is the colouring rule of the key ratios chart.
var DefaultChartRule = BelowThreshold(1.0)

// Thresholds defines warning and danger floors for ratios where lower is worse.
type Thresholds struct {
	Warning float64 `yaml:"warning"`
	Danger  float64 `yaml:"danger"`
}

// Rule returns a Rule that reports danger below Danger, warning below Warning.
func (t Thresholds) Rule() Rule {
	return func(value float64) Status {
		return getStatus(value, t.Warning, t.Danger)
	}
}

func getStatus(value, warning, danger float64) Status {
	if value < danger {
		return StatusDanger
	}
	if value < warning {
		return StatusWarning
	}
	return StatusHealthy
}
