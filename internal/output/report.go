package output

import (
	"strconv"
	"strings"

	"finsight/internal/ratios"
)

// UI/view-model types (no printing here)
type Item struct {
	Key    string
	Label  string
	Value  float64
	Status ratios.Status
	Note   string
}

type Section struct {
	ID    string // slug of the category name
	Title string
	Items []Item
}

type Report struct {
	Sections []Section
	Healthy  int
	Warning  int
	Danger   int
}

// BuildReport converts ratio categories into UI-ready sections, preserving order.
func BuildReport(categories []ratios.Category) Report {
	var r Report
	for _, c := range categories {
		sec := Section{ID: slug(c.Name), Title: c.Name}
		for _, e := range c.Entries {
			sec.Items = append(sec.Items, Item{
				Key:    slug(e.Name),
				Label:  e.Name,
				Value:  e.Value,
				Status: e.Status,
				Note:   e.Description,
			})
			switch e.Status {
			case ratios.StatusWarning:
				r.Warning++
			case ratios.StatusDanger:
				r.Danger++
			default:
				r.Healthy++
			}
		}
		r.Sections = append(r.Sections, sec)
	}
	return r
}

// FormatValue renders a ratio value the way the cards show it: 1.8, 35.0, 15.2.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func slug(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer("(", "", ")", "").Replace(s)
	return strings.Join(strings.Fields(s), "_")
}
