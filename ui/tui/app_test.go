package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"finsight/internal/config"
	"finsight/internal/content"
	"finsight/internal/ratios"
	"finsight/ui/tui/state"
	"finsight/ui/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("github.com/lrstanley/bubblezone.(*Manager).zoneWorker"),
	)
}

// immediate runs scheduled work without waiting.
func immediate(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg { return fn(time.Now()) }
}

func newTestModel(t *testing.T) *MainModel {
	t.Helper()
	m := InitialModel(ratios.MockProvider{}, config.DefaultConfig(), WithScheduler(immediate))
	return &m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m *MainModel, msg tea.Msg) (*MainModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(*MainModel), cmd
}

func TestInitialState(t *testing.T) {
	m := newTestModel(t)

	s := m.Session()
	assert.Equal(t, state.PageHome, s.Page())
	assert.Equal(t, content.ModeInvestor, s.ContextMode)
	assert.Empty(t, s.UploadedFile)
	assert.NotEmpty(t, s.ID)
	require.NoError(t, m.err)
	require.NotNil(t, m.payload)
}

func TestNavCursor(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.navCursor)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.navCursor, "cursor stops at the last page")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, state.PageHelp, m.session.Page())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.navCursor)
	assert.Equal(t, state.PageHelp, m.session.Page(), "moving the cursor does not change page")
}

func TestNumberKeysJumpToPage(t *testing.T) {
	m := newTestModel(t)

	tests := []struct {
		key  string
		want state.Page
	}{
		{"2", state.PageAnalysis},
		{"3", state.PageHelp},
		{"1", state.PageHome},
	}
	for _, tt := range tests {
		m, _ = send(t, m, key(tt.key))
		assert.Equal(t, tt.want, m.session.Page(), "key %s", tt.key)
		assert.Equal(t, int(tt.want), m.navCursor)
	}
}

func TestNavAnimationLogic(t *testing.T) {
	m := newTestModel(t)
	m.navCursor = 1

	if m.animCursor != 0 {
		t.Errorf("Expected initial animCursor 0, got %f", m.animCursor)
	}

	animateMsg := AnimateMsg(time.Now())
	m, _ = send(t, m, animateMsg)
	if m.animCursor <= 0 || m.animCursor >= 1.0 {
		t.Errorf("Expected animCursor between 0 and 1 after one frame, got %f", m.animCursor)
	}

	m, _ = send(t, m, animateMsg)
	prev := m.animCursor
	m, _ = send(t, m, animateMsg)
	if m.animCursor <= prev {
		t.Errorf("Expected animCursor to continue increasing, got %f (prev %f)", m.animCursor, prev)
	}
}

func TestUploadMovesToAnalysis(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balance_sheet.csv")

	m := newTestModel(t)
	m, cmd := send(t, m, FileSelectedMsg{Path: path})
	require.NotNil(t, cmd)

	assert.True(t, m.session.Analyzing)
	assert.Equal(t, "balance_sheet.csv", m.session.UploadedFile)
	assert.Equal(t, state.PageHome, m.session.Page(), "still on Home until the delay elapses")
	assert.Contains(t, m.View(), content.AnalyzingText)

	m, _ = send(t, m, cmd())

	assert.Equal(t, state.PageAnalysis, m.session.Page())
	assert.True(t, m.session.AnalysisReady)
	assert.False(t, m.session.Analyzing)
	assert.Contains(t, m.View(), "File Uploaded: balance_sheet.csv")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "the uploaded file is never created or read")
}

func TestAnalysisDoneStaysOffHome(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, FileSelectedMsg{Path: "report.pdf"})
	m, _ = send(t, m, key("3"))

	m, _ = send(t, m, cmd())
	assert.Equal(t, state.PageHelp, m.session.Page())
	assert.True(t, m.session.AnalysisReady)
}

func TestStaleAnalysisIgnored(t *testing.T) {
	m := newTestModel(t)
	m, first := send(t, m, FileSelectedMsg{Path: "a.csv"})
	m, second := send(t, m, FileSelectedMsg{Path: "b.xlsx"})

	m, _ = send(t, m, first())
	assert.Equal(t, state.PageHome, m.session.Page())
	assert.True(t, m.session.Analyzing)

	m, _ = send(t, m, second())
	assert.Equal(t, state.PageAnalysis, m.session.Page())
	assert.Equal(t, "b.xlsx", m.session.UploadedFile)
}

func TestUnsupportedUploadIgnored(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, FileSelectedMsg{Path: "/tmp/notes.txt"})
	assert.Nil(t, cmd)
	assert.Empty(t, m.session.UploadedFile)
	assert.Equal(t, 0, m.uploadSeq)
}

func TestContextModeCycling(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, key("m"))
	assert.Equal(t, content.ModeInvestor, m.session.ContextMode, "mode keys only act on Analysis")

	m, _ = send(t, m, key("2"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, content.ModeBoard, m.session.ContextMode)
	m, _ = send(t, m, key("l"))
	assert.Equal(t, content.ModeAudit, m.session.ContextMode)
	assert.Equal(t, content.ModeAudit, m.payload.Mode)

	view := m.View()
	assert.Contains(t, view, content.ModeAudit.Description())
	assert.NotContains(t, view, content.ModeInvestor.Description())
	assert.NotContains(t, view, content.ModeBoard.Description())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, content.ModeBoard, m.session.ContextMode)
}

func TestPickerOpenClose(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, key("u"))
	assert.True(t, m.picking)
	assert.NotNil(t, cmd)

	m, _ = send(t, m, key("q"))
	assert.False(t, m.quitting, "q is passed to the picker while it is open")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.picking)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, "Bye!\n", m.View())
}

func TestMouseOutsideZonesIsNoop(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.MouseMsg{X: 500, Y: 500, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, state.PageHome, m.session.Page())
}

// clickZone renders the model, waits for id to be registered and clicks its top-left cell.
func clickZone(t *testing.T, m *MainModel, id string) *MainModel {
	t.Helper()
	zone.Clear(id)
	_ = m.View()

	require.Eventually(t, func() bool { return !zone.Get(id).IsZero() },
		time.Second, 5*time.Millisecond, "zone %s never registered", id)

	z := zone.Get(id)
	m, _ = send(t, m, tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	return m
}

func TestMouseNavAndModePills(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 160, Height: 60})

	m = clickZone(t, m, views.NavZoneID(state.PageHelp))
	assert.Equal(t, state.PageHelp, m.session.Page())

	m = clickZone(t, m, views.NavZoneID(state.PageAnalysis))
	assert.Equal(t, state.PageAnalysis, m.session.Page())

	m = clickZone(t, m, views.ModeZoneID(content.ModeAudit))
	assert.Equal(t, content.ModeAudit, m.session.ContextMode)
	assert.Equal(t, content.ModeAudit, m.payload.Mode)
}

func TestPickerClosedWhenLeavingHome(t *testing.T) {
	m := newTestModel(t)
	m, done := send(t, m, FileSelectedMsg{Path: "balance_sheet.csv"})
	m, _ = send(t, m, key("u"))
	require.True(t, m.picking)

	// Analysis finishing while the picker is open keeps the viewer on Home.
	m, _ = send(t, m, done())
	assert.Equal(t, state.PageHome, m.session.Page())
	assert.True(t, m.session.AnalysisReady)
	assert.True(t, m.picking)

	// Leaving Home by mouse closes the picker so keys work again.
	m = clickZone(t, m, views.NavZoneID(state.PageAnalysis))
	assert.Equal(t, state.PageAnalysis, m.session.Page())
	assert.False(t, m.picking)

	m, _ = send(t, m, key("3"))
	assert.Equal(t, state.PageHelp, m.session.Page())
	m, _ = send(t, m, key("q"))
	assert.True(t, m.quitting)
}

func TestNavigateAwayClosesPicker(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, key("u"))
	require.True(t, m.picking)

	m.navigate(state.PageHelp)
	assert.False(t, m.picking)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, key("2"))
	assert.Equal(t, state.PageAnalysis, m.session.Page())
}

func TestInitialUploadOption(t *testing.T) {
	m := InitialModel(ratios.MockProvider{}, config.DefaultConfig(), WithScheduler(immediate), WithUpload("data/income.xlsx"))
	assert.NotNil(t, m.Init())
	assert.Equal(t, "data/income.xlsx", m.initialUpload)
}

func TestStartPageOption(t *testing.T) {
	m := InitialModel(ratios.MockProvider{}, config.DefaultConfig(), WithPage("Help"))
	assert.Equal(t, state.PageHelp, m.session.Page())
	assert.Equal(t, 2, m.navCursor)

	m = InitialModel(ratios.MockProvider{}, config.DefaultConfig(), WithPage("Settings"))
	assert.Equal(t, state.PageHome, m.session.Page())
}
