package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/limbcalc/internal/format"
)

// HeaderModel renders the top bar: title, version, active mode, elapsed
// time, and a right-aligned run state tag.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	mode      string
	width     int
}

// NewHeaderModel creates a new header for the given execution mode.
func NewHeaderModel(version, mode string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		mode:      mode,
	}
}

// SetDone freezes the elapsed timer at the current time.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "Limb Monitor"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)

	pipe := versionStyle.Render(" | ")

	leftPart := title
	if h.mode != "" {
		leftPart += pipe + elapsedStyle.Render(h.mode)
	}

	var duration time.Duration
	if !h.endTime.IsZero() {
		duration = h.endTime.Sub(h.startTime)
	} else {
		duration = time.Since(h.startTime)
	}
	leftPart += pipe + elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(duration)))
	leftLen := lipgloss.Width(leftPart)

	state := statusRunningStyle.Render("RUNNING")
	if !h.endTime.IsZero() {
		state = statusDoneStyle.Render("DONE")
	}
	stateLen := lipgloss.Width(state)

	innerWidth := h.width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}

	gap := innerWidth - leftLen - stateLen
	if gap < 0 {
		gap = 0
	}

	row := leftPart + spaces(gap) + state

	return headerStyle.Width(h.width).Render(row)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
