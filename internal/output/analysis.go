package output

import (
	"fmt"

	"finsight/internal/chart"
	"finsight/internal/content"
	"finsight/internal/ratios"
)

// AnalysisPayload is everything the Analysis page shows, bundled once.
type AnalysisPayload struct {
	Mode       content.ContextMode
	UploadName string
	Report     Report
	Chart      chart.Chart
	Insights   []string
}

// BuildAnalysis runs Collect -> Validate -> Chart -> Bundle over the provider's
// static data. Nothing is computed from the uploaded file; only its name is carried.
func BuildAnalysis(p ratios.Provider, mode content.ContextMode, upload string, threshold float64) (*AnalysisPayload, error) {
	// 1. Collect
	cats := p.Ratios()

	// 2. Validate
	if err := ratios.Validate(cats); err != nil {
		return nil, fmt.Errorf("validate ratios: %w", err)
	}

	// 3. Chart
	c, err := chart.KeyRatios(p, threshold)
	if err != nil {
		return nil, fmt.Errorf("build chart: %w", err)
	}

	// 4. Bundle
	return &AnalysisPayload{
		Mode:       mode,
		UploadName: upload,
		Report:     BuildReport(cats),
		Chart:      c,
		Insights:   content.Insights,
	}, nil
}
