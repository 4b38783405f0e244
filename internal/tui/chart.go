package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/limbcalc/internal/format"
)

// sparklineMargin is the horizontal space reserved for the sparkline
// label, the current and peak values and the panel borders.
const sparklineMargin = 25

// minSparklineHeight is the panel height below which the CPU and memory
// sparklines are hidden to make room for the progress bar.
const minSparklineHeight = 10

// ChartModel displays the aggregated verification progress together
// with system-wide CPU and memory sparklines.
type ChartModel struct {
	averageProgress float64
	eta             time.Duration
	cpuHistory      *History
	memHistory      *History
	done            bool
	totalDuration   time.Duration
	width           int
	height          int
}

// NewChartModel creates a new chart panel.
func NewChartModel() ChartModel {
	return ChartModel{
		cpuHistory: NewHistory(60),
		memHistory: NewHistory(60),
	}
}

// SetSize updates dimensions and resizes the sample buffers so the
// sparklines always fill the available width.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	c.cpuHistory.Resize(w - sparklineMargin)
	c.memHistory.Resize(w - sparklineMargin)
}

// AddDataPoint records a progress update.
func (c *ChartModel) AddDataPoint(value, average float64, eta time.Duration) {
	_ = value
	c.averageProgress = average
	c.eta = eta
}

// UpdateSysStats records a system-wide CPU and memory sample.
func (c *ChartModel) UpdateSysStats(cpuPercent, memPercent float64) {
	c.cpuHistory.Record(cpuPercent)
	c.memHistory.Record(memPercent)
}

// SetDone freezes the chart with the total run duration.
func (c *ChartModel) SetDone(total time.Duration) {
	c.done = true
	c.totalDuration = total
}

// Reset clears all recorded samples.
func (c *ChartModel) Reset() {
	c.averageProgress = 0
	c.eta = 0
	c.done = false
	c.totalDuration = 0
	c.cpuHistory.Reset()
	c.memHistory.Reset()
}

// renderProgressBar renders the aggregated progress bar, or an empty
// string when the panel is too narrow to fit one.
func (c ChartModel) renderProgressBar() string {
	barWidth := c.width - 14
	if barWidth < 10 {
		return ""
	}
	return fmt.Sprintf(" [%s] %.1f%%", format.ProgressBar(c.averageProgress, barWidth), c.averageProgress*100)
}

// View renders the chart panel.
func (c ChartModel) View() string {
	var b strings.Builder

	b.WriteString(" ")
	b.WriteString(titleStyle.Render("Progress Chart"))
	b.WriteString("\n\n")

	if bar := c.renderProgressBar(); bar != "" {
		b.WriteString(chartBarStyle.Render(bar))
		b.WriteString("\n")
	}

	if c.done {
		b.WriteString(" ")
		b.WriteString(statusDoneStyle.Render(fmt.Sprintf("Completed in %s", format.FormatExecutionDuration(c.totalDuration))))
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf(" %s %s\n",
			metricLabelStyle.Render("ETA:"),
			metricValueStyle.Render(format.FormatETA(c.eta))))
	}

	if c.height >= minSparklineHeight {
		b.WriteString("\n")
		b.WriteString(c.renderSparkline("CPU", c.cpuHistory, cpuSparklineStyle))
		b.WriteString("\n")
		b.WriteString(c.renderSparkline("MEM", c.memHistory, memSparklineStyle))
		b.WriteString("\n")
	}

	return panelStyle.
		Width(c.width - 2).
		Height(c.height - 2).
		Render(b.String())
}

// renderSparkline renders one labelled sparkline row with the current
// and peak values.
func (c ChartModel) renderSparkline(label string, hist *History, style lipgloss.Style) string {
	return fmt.Sprintf(" %s %s %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-4s", label)),
		style.Render(hist.Spark()),
		metricValueStyle.Render(fmt.Sprintf("%5.1f%%", hist.Last())),
		metricLabelStyle.Render(fmt.Sprintf("pk %.0f%%", hist.Peak())))
}
