package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/limbcalc/internal/format"
)

// WorkerStatus is the lifecycle state of one verification worker.
type WorkerStatus int

const (
	StatusIdle WorkerStatus = iota
	StatusRunning
	StatusComplete
	StatusError
)

// Column widths for the worker table (shared between header and rows).
const (
	colWidthRank     = 3
	colWidthWorker   = 10
	colWidthProgress = 24
	colWidthPct      = 8
	colWidthStatus   = 8
)

// WorkersModel renders the per-worker progress table.
type WorkersModel struct {
	progresses []float64
	statuses   []WorkerStatus
	width      int
	height     int
}

// NewWorkersModel creates a table for numWorkers workers.
func NewWorkersModel(numWorkers int) WorkersModel {
	if numWorkers < 0 {
		numWorkers = 0
	}
	return WorkersModel{
		progresses: make([]float64, numWorkers),
		statuses:   make([]WorkerStatus, numWorkers),
	}
}

// SetSize updates dimensions.
func (w *WorkersModel) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// UpdateProgress records the progress of worker idx. A worker reaching
// 1.0 is marked complete.
func (w *WorkersModel) UpdateProgress(idx int, value float64) {
	if idx < 0 || idx >= len(w.progresses) {
		return
	}
	w.progresses[idx] = value
	if value >= 1.0 {
		w.statuses[idx] = StatusComplete
	} else {
		w.statuses[idx] = StatusRunning
	}
}

// SetAllDone marks every worker finished. On failure the workers that
// had not completed are flagged as errored.
func (w *WorkersModel) SetAllDone(success bool) {
	for i := range w.statuses {
		if success {
			w.statuses[i] = StatusComplete
			w.progresses[i] = 1.0
		} else if w.statuses[i] != StatusComplete {
			w.statuses[i] = StatusError
		}
	}
}

// Reset returns every worker to the idle state.
func (w *WorkersModel) Reset() {
	for i := range w.statuses {
		w.statuses[i] = StatusIdle
		w.progresses[i] = 0
	}
}

// View renders the worker table.
func (w WorkersModel) View() string {
	var b strings.Builder

	b.WriteString(" ")
	b.WriteString(titleStyle.Render("Workers"))
	b.WriteString("\n\n")

	colRank := lipgloss.NewStyle().Width(colWidthRank)
	colWorker := lipgloss.NewStyle().Width(colWidthWorker)
	colPct := lipgloss.NewStyle().Width(colWidthPct).Align(lipgloss.Right)
	colStatus := lipgloss.NewStyle().Width(colWidthStatus).Align(lipgloss.Center)

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		"  ",
		colRank.Render("#"),
		" ",
		colWorker.Render("Worker"),
		" ",
		lipgloss.NewStyle().Width(colWidthProgress).Render("Progress"),
		" ",
		colPct.Render("%"),
		" ",
		colStatus.Render("Status"),
	)
	b.WriteString(tableHeaderStyle.Render(header))
	b.WriteString("\n")

	sep := 2 + colWidthRank + 1 + colWidthWorker + 1 + colWidthProgress + 1 + colWidthPct + 1 + colWidthStatus
	b.WriteString(chartEmptyStyle.Render(strings.Repeat("─", sep)))
	b.WriteString("\n")

	// Rows beyond the panel height are summarized in one overflow line.
	maxRows := w.height - 7
	if maxRows < 1 {
		maxRows = 1
	}
	shown := len(w.progresses)
	if shown > maxRows {
		shown = maxRows
	}

	for i := 0; i < shown; i++ {
		b.WriteString(w.renderRow(i, colRank, colWorker, colPct, colStatus))
		b.WriteString("\n")
	}
	if hidden := len(w.progresses) - shown; hidden > 0 {
		b.WriteString(metricLabelStyle.Render(fmt.Sprintf("  ... %d more workers", hidden)))
		b.WriteString("\n")
	}

	return panelStyle.
		Width(w.width - 2).
		Height(w.height - 2).
		Render(b.String())
}

// renderRow renders a single worker row.
func (w WorkersModel) renderRow(idx int, colRank, colWorker, colPct, colStatus lipgloss.Style) string {
	progress := w.progresses[idx]

	bar := chartBarStyle.Render(format.ProgressBar(progress, colWidthProgress))
	pct := fmt.Sprintf("%.1f%%", progress*100)

	var statusText string
	var statusStyle lipgloss.Style
	switch w.statuses[idx] {
	case StatusRunning:
		statusText = "RUN"
		statusStyle = colStatus.Foreground(logWorkerStyle.GetForeground())
	case StatusComplete:
		statusText = "OK"
		statusStyle = colStatus.Foreground(logSuccessStyle.GetForeground())
	case StatusError:
		statusText = "ERR"
		statusStyle = colStatus.Foreground(logErrorStyle.GetForeground())
	default:
		statusText = "IDLE"
		statusStyle = colStatus.Foreground(metricLabelStyle.GetForeground())
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		"  ",
		colRank.Render(fmt.Sprintf("%d", idx+1)),
		" ",
		colWorker.Render(fmt.Sprintf("worker-%d", idx)),
		" ",
		lipgloss.NewStyle().Width(colWidthProgress).Render(bar),
		" ",
		colPct.Render(pct),
		" ",
		statusStyle.Render(statusText),
	)
}
