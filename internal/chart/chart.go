// Package chart builds the static key-ratio bar chart and renders it as an image.
package chart

import (
	"errors"
	"fmt"

	"finsight/internal/content"
	"finsight/internal/ratios"
)

// ErrInvalidInput is returned when labels and values cannot form a chart.
var ErrInvalidInput = errors.New("invalid chart input")

// KeyRatioNames are the bars of the Analysis page chart, in order.
var KeyRatioNames = []string{"Current Ratio", "Quick Ratio", "Cash Ratio"}

const DefaultThreshold = 1.0

const (
	ColorHealthy = "#4CAF50"
	ColorWarning = "#FF9800"
	ColorDanger  = "#f44336"
)

type Bar struct {
	Label  string
	Value  float64
	Status ratios.Status
}

// Chart is a styled bar chart independent of any output format.
type Chart struct {
	Title     string
	YLabel    string
	Threshold float64
	Bars      []Bar
}

// NewBarChart pairs categories with values and colours each bar with rule.
// A nil rule falls back to ratios.DefaultChartRule and a reference line at
// DefaultThreshold. A custom rule carries no known threshold, so the chart has
// none (Threshold 0); use ThresholdChart to get both.
func NewBarChart(categories []string, values []float64, rule ratios.Rule) (Chart, error) {
	if len(categories) != len(values) {
		return Chart{}, fmt.Errorf("%w: %d categories but %d values", ErrInvalidInput, len(categories), len(values))
	}
	if len(categories) == 0 {
		return Chart{}, fmt.Errorf("%w: no bars", ErrInvalidInput)
	}
	threshold := 0.0
	if rule == nil {
		rule = ratios.DefaultChartRule
		threshold = DefaultThreshold
	}

	bars := make([]Bar, len(categories))
	for i, label := range categories {
		bars[i] = Bar{Label: label, Value: values[i], Status: rule(values[i])}
	}
	return Chart{
		Title:     content.ChartTitle,
		YLabel:    content.ChartYLabel,
		Threshold: threshold,
		Bars:      bars,
	}, nil
}

// ThresholdChart colours values below threshold as warning and draws the
// reference line at the same threshold.
func ThresholdChart(categories []string, values []float64, threshold float64) (Chart, error) {
	c, err := NewBarChart(categories, values, ratios.BelowThreshold(threshold))
	if err != nil {
		return Chart{}, err
	}
	c.Threshold = threshold
	return c, nil
}

// KeyRatios builds the Analysis page chart from the provider's liquidity ratios.
func KeyRatios(p ratios.Provider, threshold float64) (Chart, error) {
	liquidity := ratios.CategoryByName(p.Ratios(), ratios.CategoryLiquidity)
	if liquidity == nil {
		return Chart{}, fmt.Errorf("%w: no %q category", ErrInvalidInput, ratios.CategoryLiquidity)
	}
	values := make([]float64, 0, len(KeyRatioNames))
	for _, name := range KeyRatioNames {
		e, ok := liquidity.Lookup(name)
		if !ok {
			return Chart{}, fmt.Errorf("%w: ratio %q not provided", ErrInvalidInput, name)
		}
		values = append(values, e.Value)
	}

	return ThresholdChart(KeyRatioNames, values, threshold)
}

// Color returns the hex colour used for a status.
func Color(s ratios.Status) string {
	switch s {
	case ratios.StatusWarning:
		return ColorWarning
	case ratios.StatusDanger:
		return ColorDanger
	default:
		return ColorHealthy
	}
}

// MaxValue is the largest of the bar values and the threshold.
func (c Chart) MaxValue() float64 {
	m := c.Threshold
	for _, b := range c.Bars {
		if b.Value > m {
			m = b.Value
		}
	}
	return m
}
