package tui

import (
	"context"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/limbcalc/internal/cli"
	"github.com/agbru/limbcalc/internal/config"
	apperrors "github.com/agbru/limbcalc/internal/errors"
	"github.com/agbru/limbcalc/internal/sysmon"
	"github.com/agbru/limbcalc/internal/verify"
)

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
	done       bool
	exitCode   int
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// bodyHeight returns the available height for the main body panels.
func (l LayoutManager) bodyHeight() int {
	h := l.height - headerHeight - footerHeight
	if h < minBodyHeight {
		h = minBodyHeight
	}
	return h
}

// leftWidth returns the width allocated to the workers and log column.
func (l LayoutManager) leftWidth() int {
	return l.width * LeftPanelWidthPercent / 100
}

// rightWidth returns the width allocated to the right column (metrics + chart).
func (l LayoutManager) rightWidth() int {
	return l.width - l.leftWidth()
}

// workersHeight returns the height allocated to the worker table.
func (l LayoutManager) workersHeight(numWorkers int) int {
	h := numWorkers + 7
	if limit := l.bodyHeight() * 2 / 3; h > limit {
		h = limit
	}
	if h < minWorkersHeight {
		h = minWorkersHeight
	}
	return h
}

// metricsHeight returns the height allocated to the metrics panel.
func (l LayoutManager) metricsHeight() int {
	body := l.bodyHeight()
	h := MetricsPanelHeight
	if h > body/2 {
		h = body / 2
	}
	return h
}

// chartHeight returns the height allocated to the chart panel.
func (l LayoutManager) chartHeight() int {
	return l.bodyHeight() - l.metricsHeight()
}

// Model is the root bubbletea model for the TUI dashboard.
type Model struct {
	header  HeaderModel
	workers WorkersModel
	logs    LogsModel
	metrics MetricsModel
	chart   ChartModel
	footer  FooterModel

	keymap KeyMap

	ExecutionState
	LayoutManager

	parentCtx context.Context
	config    config.AppConfig
	ref       *programRef
	paused    bool
	showHelp  bool
}

// NewModel creates a new TUI model for a verification session.
func NewModel(parentCtx context.Context, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	logs := NewLogsModel()
	logs.AddExecutionConfig(cfg)

	metrics := NewMetricsModel()
	metrics.SetTotalCases(cfg.Iterations)

	return Model{
		header:  NewHeaderModel(version, "verify"),
		workers: NewWorkersModel(cfg.Workers),
		logs:    logs,
		metrics: metrics,
		chart:   NewChartModel(),
		footer:  NewFooterModel(),
		keymap:  DefaultKeyMap(),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		config:    cfg,
		ref:       &programRef{},
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startVerificationCmd(m.ref, m.ctx, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case ProgressMsg:
		if !m.paused {
			m.logs.AddProgressEntry(msg)
			m.workers.UpdateProgress(msg.WorkerIndex, msg.Value)
			m.chart.AddDataPoint(msg.Value, msg.AverageProgress, msg.ETA)
			m.metrics.UpdateProgress(msg.AverageProgress)
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			return m, tea.Batch(sampleMemStatsCmd(), tickCmd())
		}
		return m, tickCmd()

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		if !m.paused {
			m.chart.UpdateSysStats(msg.CPUPercent, msg.MemPercent)
		}
		return m, nil

	case VerifyDoneMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous run
		}
		m.done = true
		m.exitCode = msg.ExitCode
		if msg.Err != nil {
			m.logs.AddError(msg.Err)
			m.workers.SetAllDone(false)
			m.footer.SetError(true)
		} else {
			m.logs.AddReport(msg.Report)
			m.workers.SetAllDone(true)
		}
		m.header.SetDone()
		m.chart.SetDone(msg.Report.Duration)
		m.footer.SetDone(true)
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.header.SetDone()
		m.footer.SetDone(true)
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		m.footer.SetPaused(m.paused)
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		// Cancel the current run before starting a fresh one.
		if m.cancel != nil {
			m.cancel()
		}

		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel

		m.header.Reset()
		m.logs.Reset()
		m.logs.AddExecutionConfig(m.config)
		m.workers.Reset()
		m.chart.Reset()
		m.metrics = NewMetricsModel()
		m.metrics.SetTotalCases(m.config.Iterations)
		m.footer.SetDone(false)
		m.footer.SetError(false)
		m.footer.SetPaused(false)
		m.done = false
		m.paused = false
		m.exitCode = apperrors.ExitSuccess
		m.layoutPanels()

		return m, tea.Batch(
			tickCmd(),
			startVerificationCmd(m.ref, m.ctx, m.config, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)

	case key.Matches(msg, m.keymap.Up):
		m.logs.ScrollUp(1)
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		m.logs.ScrollDown(1)
		return m, nil

	case key.Matches(msg, m.keymap.PageUp):
		m.logs.ScrollUp(10)
		return m, nil

	case key.Matches(msg, m.keymap.PageDown):
		m.logs.ScrollDown(10)
		return m, nil
	}

	return m, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	header := m.header.View()
	footer := m.footer.View()

	// Right column: metrics on top, chart on bottom
	rightCol := lipgloss.JoinVertical(lipgloss.Left, m.metrics.View(), m.chart.View())

	// Left column: worker table on top, logs below, matched to the
	// right column's actual height.
	workers := m.workers.View()
	logsHeight := lipgloss.Height(rightCol) - lipgloss.Height(workers)
	leftCol := lipgloss.JoinVertical(lipgloss.Left, workers, m.logs.renderToHeight(logsHeight))

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, rightCol)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderHelpOverlay renders the full-screen key binding help.
func (m Model) renderHelpOverlay() string {
	rows := []struct{ key, desc string }{
		{"q / ctrl+c", "quit"},
		{"p / space", "pause display updates"},
		{"r", "restart the verification run"},
		{"↑/k ↓/j", "scroll the log"},
		{"pgup / pgdn", "page the log"},
		{"?", "close this help"},
	}

	content := titleStyle.Render("Key Bindings") + "\n\n"
	for _, r := range rows {
		content += footerKeyStyle.Render(padRight(r.key, 14)) + footerDescStyle.Render(r.desc) + "\n"
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpOverlayStyle.Render(content))
}

// padRight pads s with spaces to the given width.
func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

// Layout constants for the TUI dashboard.
const (
	headerHeight          = 1
	footerHeight          = 1
	minBodyHeight         = 4
	minWorkersHeight      = 8
	LeftPanelWidthPercent = 60
	MetricsPanelHeight    = 7
)

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.workers.SetSize(m.leftWidth(), m.workersHeight(m.config.Workers))
	m.logs.SetSize(m.leftWidth(), m.bodyHeight()-m.workersHeight(m.config.Workers))
	m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
	m.chart.SetSize(m.rightWidth(), m.chartHeight())
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	// System stats flow through a watch channel for the lifetime of the
	// program, independent of the run generation.
	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	go forwardSysStats(model.ref, sysmon.Watch(watchCtx, time.Second))

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startVerificationCmd returns a tea.Cmd that launches the verification
// run with a progress bridge attached.
func startVerificationCmd(ref *programRef, ctx context.Context, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		progressChan := make(chan verify.ProgressUpdate, 64)

		var wg sync.WaitGroup
		wg.Add(1)
		go forwardProgress(ref, &wg, progressChan, cfg.Workers)

		runner := verify.NewRunner(verify.Config{
			Iterations: cfg.Iterations,
			MaxLimbs:   cfg.MaxLimbs,
			Seed:       cfg.Seed,
			Workers:    cfg.Workers,
		}, nil)

		report, err := runner.Run(ctx, progressChan)
		wg.Wait()

		exitCode := apperrors.ExitSuccess
		if err != nil {
			exitCode = cli.HandleVerifyError(err, report.Duration, io.Discard)
		}

		return VerifyDoneMsg{Report: report, Err: err, ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapInuse:    ms.HeapInuse,
			NumGC:        ms.NumGC,
			PauseTotalNs: ms.PauseTotalNs,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
