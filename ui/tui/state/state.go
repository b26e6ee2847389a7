package state

import (
	"errors"
	"fmt"

	"finsight/internal/content"

	"github.com/google/uuid"
)

type Page int

const (
	PageHome     Page = iota // "Home"
	PageAnalysis             // "Analysis"
	PageHelp                 // "Help"
)

// ErrInvalidPage is returned when a page name outside Home/Analysis/Help is selected.
var ErrInvalidPage = errors.New("invalid page")

var pageNames = [...]string{"Home", "Analysis", "Help"}

// Pages lists the pages in navigation order.
func Pages() []Page {
	return []Page{PageHome, PageAnalysis, PageHelp}
}

func ParsePage(name string) (Page, error) {
	for i, n := range pageNames {
		if n == name {
			return Page(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPage, name)
}

func (p Page) Valid() bool {
	return p >= PageHome && p <= PageHelp
}

func (p Page) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Page(%d)", int(p))
	}
	return pageNames[p]
}

// Session is the navigation state of one viewer. It is passed explicitly to
// every view; nothing in the UI reads it from a package variable.
type Session struct {
	ID string

	page Page

	// Cosmetic values echoed back to the viewer.
	UploadedFile  string
	Analyzing     bool
	AnalysisReady bool
	ContextMode   content.ContextMode
}

// NewSession starts on the Home page in Investor mode.
func NewSession() *Session {
	return &Session{
		ID:          uuid.NewString(),
		page:        PageHome,
		ContextMode: content.ModeInvestor,
	}
}

// SetPage selects a page by name. Unknown names leave the page unchanged.
func (s *Session) SetPage(name string) error {
	p, err := ParsePage(name)
	if err != nil {
		return err
	}
	s.page = p
	return nil
}

// Navigate selects a page by value; an out-of-range page is a programming error.
func (s *Session) Navigate(p Page) {
	if !p.Valid() {
		panic(fmt.Sprintf("state: navigate to %v: %v", p, ErrInvalidPage))
	}
	s.page = p
}

func (s *Session) Page() Page { return s.page }

func (s *Session) PageName() string { return s.page.String() }
