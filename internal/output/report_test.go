package output

import (
	"errors"
	"testing"

	"finsight/internal/chart"
	"finsight/internal/content"
	"finsight/internal/ratios"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	r := BuildReport(ratios.MockProvider{}.Ratios())

	require.Len(t, r.Sections, 2)
	assert.Equal(t, "liquidity_ratios", r.Sections[0].ID)
	assert.Equal(t, "Profitability Ratios", r.Sections[1].Title)
	assert.Equal(t, 5, r.Healthy)
	assert.Equal(t, 1, r.Warning)
	assert.Equal(t, 0, r.Danger)

	sec := r.Sections[1]
	assert.Equal(t, "profitability_ratios", sec.ID)
	require.Len(t, sec.Items, 3)
	roe := sec.Items[2]
	assert.Equal(t, "return_on_equity_roe", roe.Key)
	assert.Equal(t, 15.2, roe.Value)
	assert.Equal(t, "Measures profitability relative to shareholders' equity.", roe.Note)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.8, "1.8"},
		{35.0, "35.0"},
		{8.5, "8.5"},
		{0.5, "0.5"},
		{2, "2.0"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

type badProvider struct{}

func (badProvider) Ratios() []ratios.Category {
	return []ratios.Category{{Name: "Liquidity Ratios", Entries: []ratios.Entry{{Name: "Current Ratio", Status: "unknown"}}}}
}

type partialProvider struct{}

func (partialProvider) Ratios() []ratios.Category {
	return []ratios.Category{{Name: "Liquidity Ratios", Entries: []ratios.Entry{{Name: "Current Ratio", Value: 2, Status: ratios.StatusHealthy}}}}
}

func TestBuildAnalysis(t *testing.T) {
	payload, err := BuildAnalysis(ratios.MockProvider{}, content.ModeAudit, "balance_sheet.csv", chart.DefaultThreshold)
	require.NoError(t, err)

	assert.Equal(t, content.ModeAudit, payload.Mode)
	assert.Equal(t, "balance_sheet.csv", payload.UploadName)
	assert.Len(t, payload.Report.Sections, 2)
	assert.Len(t, payload.Chart.Bars, 3)
	assert.Equal(t, content.Insights, payload.Insights)
}

func TestBuildAnalysisErrors(t *testing.T) {
	_, err := BuildAnalysis(badProvider{}, content.ModeInvestor, "", chart.DefaultThreshold)
	assert.True(t, errors.Is(err, ratios.ErrInvalidStatus))

	_, err = BuildAnalysis(partialProvider{}, content.ModeInvestor, "", chart.DefaultThreshold)
	assert.True(t, errors.Is(err, chart.ErrInvalidInput))
}
