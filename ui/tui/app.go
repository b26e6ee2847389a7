package tui

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"finsight/internal/chart"
	"finsight/internal/config"
	"finsight/internal/content"
	"finsight/internal/output"
	"finsight/internal/ratios"
	"finsight/ui/tui/components"
	"finsight/ui/tui/state"
	"finsight/ui/tui/views"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"
)

// Scheduler delivers fn's message after d. tea.Tick in production.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	provider ratios.Provider
	config   config.Config
	session  *state.Session
	logger   *zap.Logger
	schedule Scheduler

	spinner   spinner.Model
	picker    filepicker.Model
	picking   bool
	barWidget *components.BarWidget
	faqView   string
	payload   *output.AnalysisPayload
	err       error

	navCursor  int
	animCursor float64
	velocity   float64 // Physics velocity
	spring     harmonica.Spring

	uploadSeq     int
	initialUpload string
	startPage     string
	quitting      bool
	width         int
	height        int
}

// Messages
type AnimateMsg time.Time

// FileSelectedMsg reports a picked file. Only its base name is kept; the file is never read.
type FileSelectedMsg struct {
	Path string
}

// AnalysisDoneMsg ends the simulated analysis started by upload Seq.
type AnalysisDoneMsg struct {
	Seq int
}

type Option func(*MainModel)

// WithPage starts on the named page. Unknown names keep the Home page.
func WithPage(name string) Option {
	return func(m *MainModel) { m.startPage = name }
}

func WithScheduler(s Scheduler) Option {
	return func(m *MainModel) { m.schedule = s }
}

func WithLogger(l *zap.Logger) Option {
	return func(m *MainModel) { m.logger = l }
}

// WithUpload simulates picking path as soon as the program starts.
func WithUpload(path string) Option {
	return func(m *MainModel) { m.initialUpload = path }
}

func InitialModel(provider ratios.Provider, cfg config.Config, opts ...Option) MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	// Increased frequency (12.0) for faster response and damping (0.9) to prevent overshoot
	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	m := MainModel{
		provider:  provider,
		config:    cfg,
		session:   state.NewSession(),
		logger:    zap.NewNop(),
		schedule:  tea.Tick,
		spinner:   s,
		picker:    newPicker(),
		spring:    spring,
		barWidget: components.NewBarWidget(chart.Chart{}, 40, 10),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.logger = m.logger.With(zap.String("session", m.session.ID))
	if m.startPage != "" {
		if err := m.session.SetPage(m.startPage); err != nil {
			m.logger.Warn("start page ignored", zap.Error(err))
		}
		m.navCursor = int(m.session.Page())
	}
	m.faqView = renderFAQ(cfg.WordWrap)
	m.rebuild()
	return m
}

func newPicker() filepicker.Model {
	fp := filepicker.New()
	// AllowedTypes is matched case-sensitively.
	for _, ext := range content.SupportedExtensions {
		fp.AllowedTypes = append(fp.AllowedTypes, ext, strings.ToUpper(ext))
	}
	if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}
	fp.AutoHeight = false
	fp.Height = 10
	return fp
}

func renderFAQ(wrap int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return content.FAQ
	}
	out, err := r.Render(content.FAQ)
	if err != nil {
		return content.FAQ
	}
	return out
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	m.logger.Info("session started", zap.String("page", m.session.PageName()))

	cmds := []tea.Cmd{m.spinner.Tick, animateCmd()}
	if m.initialUpload != "" {
		path := m.initialUpload
		cmds = append(cmds, func() tea.Msg { return FileSelectedMsg{Path: path} })
	}
	return tea.Batch(cmds...)
}

// Commands
func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case FileSelectedMsg:
		return m.handleFileSelectedMsg(msg)

	case AnalysisDoneMsg:
		return m.handleAnalysisDoneMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	// Directory listings and other picker internals.
	if m.picking {
		return m.updatePicker(msg)
	}
	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.picking {
		if msg.String() == "esc" {
			m.picking = false
			return m, nil
		}
		return m.updatePicker(msg)
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "1", "2", "3":
		m.navigate(state.Pages()[msg.String()[0]-'1'])
		return m, nil
	case "up", "k":
		if m.navCursor > 0 {
			m.navCursor--
		}
		return m, nil
	case "down", "j":
		if m.navCursor < len(state.Pages())-1 {
			m.navCursor++
		}
		return m, nil
	case "enter":
		m.navigate(state.Pages()[m.navCursor])
		return m, nil
	}

	switch m.session.Page() {
	case state.PageHome:
		if msg.String() == "u" {
			m.picking = true
			return m, m.picker.Init()
		}
	case state.PageAnalysis:
		switch msg.String() {
		case "left", "h":
			m.setMode(m.session.ContextMode.Prev())
		case "right", "l", "m":
			m.setMode(m.session.ContextMode.Next())
		}
	}
	return m, nil
}

func (m *MainModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("session ended", zap.String("page", m.session.PageName()))
	return m, tea.Quit
}

func (m *MainModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		return m, tea.Batch(cmd, func() tea.Msg { return FileSelectedMsg{Path: path} })
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.logger.Warn("unsupported file type", zap.String("file", filepath.Base(path)))
	}
	return m, cmd
}

func (m *MainModel) navigate(p state.Page) {
	if p == m.session.Page() {
		return
	}
	from := m.session.PageName()
	// The picker only lives on Home.
	if p != state.PageHome {
		m.picking = false
	}
	m.session.Navigate(p)
	m.navCursor = int(p)
	m.logger.Info("page changed", zap.String("from", from), zap.String("to", p.String()))
}

func (m *MainModel) setMode(mode content.ContextMode) {
	m.session.ContextMode = mode
	m.rebuild()
	m.logger.Debug("context mode changed", zap.String("mode", mode.String()))
}

// rebuild refreshes the Analysis payload from the provider.
func (m *MainModel) rebuild() {
	p, err := output.BuildAnalysis(m.provider, m.session.ContextMode, m.session.UploadedFile, m.config.ChartThreshold)
	m.payload, m.err = p, err
	if err != nil {
		m.logger.Error("build analysis", zap.Error(err))
		return
	}
	m.barWidget.SetChart(p.Chart)
}

func (m *MainModel) handleFileSelectedMsg(msg FileSelectedMsg) (tea.Model, tea.Cmd) {
	name := filepath.Base(msg.Path)
	if !content.IsSupported(name) {
		m.logger.Warn("unsupported file type", zap.String("file", name))
		return m, nil
	}

	m.uploadSeq++
	m.session.UploadedFile = name
	m.session.Analyzing = true
	m.session.AnalysisReady = false
	m.rebuild()
	m.logger.Info("file selected", zap.String("file", name), zap.Int("upload", m.uploadSeq))

	seq := m.uploadSeq
	return m, m.schedule(m.config.AnalysisDelay, func(time.Time) tea.Msg {
		return AnalysisDoneMsg{Seq: seq}
	})
}

func (m *MainModel) handleAnalysisDoneMsg(msg AnalysisDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.uploadSeq {
		m.logger.Debug("stale analysis ignored", zap.Int("upload", msg.Seq), zap.Int("current", m.uploadSeq))
		return m, nil
	}

	m.session.Analyzing = false
	m.session.AnalysisReady = true
	m.logger.Info("analysis done", zap.String("file", m.session.UploadedFile))

	// Only pull the viewer along if they are still waiting on Home and not picking another file.
	if m.session.Page() == state.PageHome && !m.picking {
		m.navigate(state.PageAnalysis)
	}
	return m, nil
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	var v float64 = m.velocity
	m.animCursor, v = m.spring.Update(m.animCursor, float64(m.navCursor), v)
	m.velocity = v
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	newW := msg.Width/2 - 6
	if newW > 10 {
		m.barWidget.Resize(newW, 10)
	}
	if h := msg.Height / 3; h > 4 {
		m.picker.Height = h
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for _, p := range state.Pages() {
		if zone.Get(views.NavZoneID(p)).InBounds(msg) {
			m.navigate(p)
			return m, nil
		}
	}

	if m.session.Page() == state.PageAnalysis {
		for _, mode := range content.ContextModes() {
			if zone.Get(views.ModeZoneID(mode)).InBounds(msg) {
				m.setMode(mode)
				return m, nil
			}
		}
	}
	return m, nil
}

// Session returns a copy of the navigation state.
func (m *MainModel) Session() state.Session {
	return *m.session
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	return views.RenderLayout(*m.session, views.ViewProps{
		Width:       m.width,
		Height:      m.height,
		NavCursor:   m.navCursor,
		AnimCursor:  m.animCursor,
		SpinnerView: m.spinner.View(),
		ChartView:   m.barWidget.View(),
		FAQView:     m.faqView,
		PickerView:  m.picker.View(),
		Picking:     m.picking,
		Payload:     m.payload,
		Err:         m.err,
	})
}

func Start(provider ratios.Provider, cfg config.Config, opts ...Option) error {
	m := InitialModel(provider, cfg, opts...)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
