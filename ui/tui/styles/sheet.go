package styles

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
)

// The FinSight style sheet, kept verbatim. Terminal colours are read from it.
//
//go:embed finsight.css
var sheetCSS string

var (
	ruleRe  = regexp.MustCompile(`(?s)([^{}]+)\{([^}]*)\}`)
	varRefR = regexp.MustCompile(`^var\(--([A-Za-z0-9-]+)\)$`)
	hexRe   = regexp.MustCompile(`#[0-9A-Fa-f]{3,6}\b`)
)

// Sheet is a parsed view of a flat CSS document: selector -> property -> value.
type Sheet struct {
	rules map[string]map[string]string
}

// ParseSheet reads simple selector blocks. Nested at-rules are not supported.
func ParseSheet(css string) (*Sheet, error) {
	s := &Sheet{rules: map[string]map[string]string{}}
	for _, m := range ruleRe.FindAllStringSubmatch(css, -1) {
		selector := strings.TrimSpace(m[1])
		if selector == "" {
			return nil, fmt.Errorf("style sheet: empty selector")
		}
		decls := s.rules[selector]
		if decls == nil {
			decls = map[string]string{}
			s.rules[selector] = decls
		}
		for _, decl := range strings.Split(m[2], ";") {
			prop, value, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			decls[strings.TrimSpace(prop)] = strings.TrimSpace(value)
		}
	}
	if len(s.rules) == 0 {
		return nil, fmt.Errorf("style sheet: no rules")
	}
	return s, nil
}

// MustParseSheet is ParseSheet for the embedded sheet.
func MustParseSheet(css string) *Sheet {
	s, err := ParseSheet(css)
	if err != nil {
		panic(err)
	}
	return s
}

// Var returns a :root custom property, e.g. Var("primary").
func (s *Sheet) Var(name string) string {
	return s.rules[":root"]["--"+name]
}

// Prop returns a property of a class selector with var() references resolved.
func (s *Sheet) Prop(class, prop string) string {
	v := s.rules["."+class][prop]
	if m := varRefR.FindStringSubmatch(v); m != nil {
		return s.Var(m[1])
	}
	return v
}

// Hex extracts the first hex colour of a class property, e.g. a border shorthand.
func (s *Sheet) Hex(class, prop string) string {
	return hexRe.FindString(s.Prop(class, prop))
}
