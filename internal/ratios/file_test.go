package ratios

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = `
categories:
  - name: Leverage Ratios
    ratios:
      - name: Debt to Equity
        value: 2.4
        status: danger
        description: Total liabilities relative to equity.
      - name: Interest Coverage
        value: 3.1
        status: healthy
        description: Operating income over interest expense.
  - name: Liquidity Ratios
    ratios:
      - name: Current Ratio
        value: 1.8
        status: healthy
        description: Short-term solvency.
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0o644))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, p.Path())

	cats := p.Ratios()
	require.Len(t, cats, 2)
	assert.Equal(t, "Leverage Ratios", cats[0].Name)
	assert.Equal(t, "Interest Coverage", cats[0].Entries[1].Name)
	assert.Equal(t, StatusDanger, cats[0].Entries[0].Status)
	assert.Equal(t, 1.8, cats[1].Entries[0].Value)
}

func TestParseRejectsUnknownStatus(t *testing.T) {
	_, err := Parse("inline", []byte(`
categories:
  - name: Liquidity Ratios
    ratios:
      - name: Current Ratio
        value: 1.8
        status: great
`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "categories: [unterminated"},
		{"no categories", "categories: []"},
		{"empty ratios", "categories:\n  - name: A\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.name, []byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = LoadFile("  ")
	assert.Error(t, err)
}

func TestMarshalIsReadable(t *testing.T) {
	mock := MockProvider{}.Ratios()

	data, err := Marshal(mock)
	require.NoError(t, err)
	assert.Contains(t, string(data), "categories:")

	p, err := Parse("generated.yaml", data)
	require.NoError(t, err)
	assert.Equal(t, mock, p.Ratios())
}

func TestParseDerivesStatusFromThresholds(t *testing.T) {
	p, err := Parse("inline", []byte(`
categories:
  - name: Liquidity Ratios
    ratios:
      - name: Current Ratio
        value: 0.7
        thresholds:
          warning: 1.0
          danger: 0.5
      - name: Quick Ratio
        value: 0.3
        thresholds: {warning: 1.0, danger: 0.5}
`))
	require.NoError(t, err)

	cats := p.Ratios()
	assert.Equal(t, StatusWarning, cats[0].Entries[0].Status)
	assert.Equal(t, StatusDanger, cats[0].Entries[1].Status)

	// Returned copies do not share thresholds with the provider.
	cats[0].Entries[0].Thresholds.Warning = 99
	assert.Equal(t, 1.0, p.Ratios()[0].Entries[0].Thresholds.Warning)
}

func TestParseMissingStatusWithoutThresholds(t *testing.T) {
	_, err := Parse("inline", []byte(`
categories:
  - name: Liquidity Ratios
    ratios:
      - name: Current Ratio
        value: 0.7
`))
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}
