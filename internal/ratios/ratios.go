// Package ratios holds the financial ratio data shown by FinSight.
//
// The data set is static: nothing here parses documents or computes ratios.
package ratios

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Entry is a single named ratio. A file entry may omit Status and give
// Thresholds instead; the status is then derived from Value.
type Entry struct {
	Name        string      `yaml:"name"`
	Value       float64     `yaml:"value"`
	Status      Status      `yaml:"status,omitempty"`
	Thresholds  *Thresholds `yaml:"thresholds,omitempty"`
	Description string      `yaml:"description"`
}

// Category groups entries; entry order is display order.
type Category struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"ratios"`
}

// Provider supplies ratio categories in display order.
type Provider interface {
	Ratios() []Category
}

const (
	CategoryLiquidity     = "Liquidity Ratios"
	CategoryProfitability = "Profitability Ratios"
)

var mockRatios = []Category{
	{
		Name: CategoryLiquidity,
		Entries: []Entry{
			{Name: "Current Ratio", Value: 1.8, Status: StatusHealthy, Description: "Measures the company's ability to pay short-term obligations."},
			{Name: "Quick Ratio", Value: 1.2, Status: StatusHealthy, Description: "A more stringent measure of liquidity, excluding inventory."},
			{Name: "Cash Ratio", Value: 0.5, Status: StatusWarning, Description: "Measures a company's ability to cover short-term liabilities with cash."},
		},
	},
	{
		Name: CategoryProfitability,
		Entries: []Entry{
			{Name: "Gross Margin", Value: 35.0, Status: StatusHealthy, Description: "Percentage of revenue retained after direct costs."},
			{Name: "Net Profit Margin", Value: 8.5, Status: StatusHealthy, Description: "Percentage of revenue that is net income."},
			{Name: "Return on Equity (ROE)", Value: 15.2, Status: StatusHealthy, Description: "Measures profitability relative to shareholders' equity."},
		},
	},
}

// MockProvider serves the built-in demonstration ratios.
type MockProvider struct{}

// Ratios returns a fresh copy of the mock data set on every call.
func (MockProvider) Ratios() []Category {
	return clone(mockRatios)
}

func clone(in []Category) []Category {
	out := make([]Category, len(in))
	for i, c := range in {
		entries := append([]Entry(nil), c.Entries...)
		for j := range entries {
			if t := entries[j].Thresholds; t != nil {
				tc := *t
				entries[j].Thresholds = &tc
			}
		}
		out[i] = Category{Name: c.Name, Entries: entries}
	}
	return out
}

// Classify fills in missing statuses from each entry's thresholds.
// Entries that already carry a status are left alone.
func Classify(categories []Category) {
	for i := range categories {
		for j := range categories[i].Entries {
			e := &categories[i].Entries[j]
			if e.Status == "" && e.Thresholds != nil {
				e.Status = e.Thresholds.Rule()(e.Value)
			}
		}
	}
}

// Validate checks that the category is named and every entry carries a known status.
func (c Category) Validate() error {
	var merr *multierror.Error
	if strings.TrimSpace(c.Name) == "" {
		merr = multierror.Append(merr, errors.New("category name must not be empty"))
	}
	if len(c.Entries) == 0 {
		merr = multierror.Append(merr, fmt.Errorf("category %q has no ratios", c.Name))
	}
	for i, e := range c.Entries {
		if strings.TrimSpace(e.Name) == "" {
			merr = multierror.Append(merr, fmt.Errorf("category %q: ratio %d has no name", c.Name, i))
		}
		if t := e.Thresholds; t != nil && t.Danger > t.Warning {
			merr = multierror.Append(merr, fmt.Errorf("category %q: ratio %q: danger threshold %v must not exceed warning %v", c.Name, e.Name, t.Danger, t.Warning))
		}
		if !e.Status.Valid() {
			merr = multierror.Append(merr, fmt.Errorf("category %q: ratio %q: %w: %q", c.Name, e.Name, ErrInvalidStatus, e.Status))
		}
	}
	return merr.ErrorOrNil()
}

// Validate checks every category and rejects duplicate category names.
func Validate(categories []Category) error {
	var merr *multierror.Error
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if err := c.Validate(); err != nil {
			merr = multierror.Append(merr, err)
		}
		if seen[c.Name] {
			merr = multierror.Append(merr, fmt.Errorf("duplicate category %q", c.Name))
		}
		seen[c.Name] = true
	}
	return merr.ErrorOrNil()
}

// CategoryByName returns the named category, or nil.
func CategoryByName(categories []Category, name string) *Category {
	for i := range categories {
		if categories[i].Name == name {
			return &categories[i]
		}
	}
	return nil
}

// Lookup finds a ratio of the category by name.
func (c Category) Lookup(name string) (Entry, bool) {
	for _, e := range c.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
