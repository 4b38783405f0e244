package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/limbcalc/internal/config"
	"github.com/agbru/limbcalc/internal/format"
	"github.com/agbru/limbcalc/internal/verify"
)

// maxLogEntries bounds the in-memory log history.
const maxLogEntries = 500

// LogsModel renders the scrollable event log on the left of the
// dashboard.
type LogsModel struct {
	entries    []string
	offset     int // lines scrolled up from the bottom
	lastDecile int
	width      int
	height     int
}

// NewLogsModel creates an empty log panel.
func NewLogsModel() LogsModel {
	return LogsModel{lastDecile: -1}
}

// SetSize updates dimensions.
func (l *LogsModel) SetSize(w, h int) {
	l.width = w
	l.height = h
}

// Reset clears the log history.
func (l *LogsModel) Reset() {
	l.entries = nil
	l.offset = 0
	l.lastDecile = -1
}

// add appends a styled entry, trimming the oldest when full.
func (l *LogsModel) add(entry string) {
	stamp := logTimeStyle.Render(time.Now().Format("15:04:05"))
	l.entries = append(l.entries, fmt.Sprintf("%s %s", stamp, entry))
	if len(l.entries) > maxLogEntries {
		l.entries = l.entries[len(l.entries)-maxLogEntries:]
	}
}

// AddExecutionConfig logs the parameters of the run.
func (l *LogsModel) AddExecutionConfig(cfg config.AppConfig) {
	l.add(logWorkerStyle.Render("verification session"))
	l.add(fmt.Sprintf("cases=%s workers=%d max-limbs=%d",
		format.FormatNumberString(strconv.Itoa(cfg.Iterations)), cfg.Workers, cfg.MaxLimbs))
	l.add(fmt.Sprintf("seed=%d strategy=%s", cfg.Seed, strategyName(cfg.Branchless)))
}

// AddProgressEntry logs aggregated progress at ten percent milestones.
func (l *LogsModel) AddProgressEntry(msg ProgressMsg) {
	decile := int(msg.AverageProgress * 10)
	if decile <= l.lastDecile {
		return
	}
	l.lastDecile = decile
	l.add(logProgressStyle.Render(fmt.Sprintf("progress %d%% (ETA %s)",
		decile*10, format.FormatETA(msg.ETA))))
}

// AddReport logs the outcome of a completed run.
func (l *LogsModel) AddReport(report verify.Report) {
	l.add(logSuccessStyle.Render(fmt.Sprintf("verified %s cases in %s, no divergence",
		format.FormatNumberString(strconv.Itoa(report.Cases)),
		format.FormatExecutionDuration(report.Duration))))
}

// AddError logs a failure.
func (l *LogsModel) AddError(err error) {
	l.add(logErrorStyle.Render(fmt.Sprintf("error: %v", err)))
}

// ScrollUp moves the view one line towards older entries.
func (l *LogsModel) ScrollUp(lines int) {
	l.offset += lines
	if max := len(l.entries) - 1; l.offset > max {
		l.offset = max
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// ScrollDown moves the view towards the newest entries.
func (l *LogsModel) ScrollDown(lines int) {
	l.offset -= lines
	if l.offset < 0 {
		l.offset = 0
	}
}

// renderToHeight renders the panel at exactly the given outer height.
func (l LogsModel) renderToHeight(height int) string {
	inner := height - 2
	if inner < 1 {
		inner = 1
	}

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(titleStyle.Render("Log"))
	b.WriteString("\n")

	visible := inner - 1
	if visible < 1 {
		visible = 1
	}

	end := len(l.entries) - l.offset
	if end < 0 {
		end = 0
	}
	start := end - visible
	if start < 0 {
		start = 0
	}

	for _, e := range l.entries[start:end] {
		b.WriteString(" ")
		b.WriteString(e)
		b.WriteString("\n")
	}

	return panelStyle.
		Width(l.width - 2).
		Height(inner).
		Render(strings.TrimSuffix(b.String(), "\n"))
}

// strategyName names the dispatch strategy for the log.
func strategyName(branchless bool) string {
	if branchless {
		return "branchless"
	}
	return "branchy"
}
