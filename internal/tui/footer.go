package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterModel renders the bottom bar: status and key hints.
type FooterModel struct {
	width  int
	paused bool
	done   bool
	failed bool
}

// NewFooterModel creates a new footer.
func NewFooterModel() FooterModel {
	return FooterModel{}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
}

// SetPaused toggles the paused indicator.
func (f *FooterModel) SetPaused(paused bool) {
	f.paused = paused
}

// SetDone toggles the finished indicator.
func (f *FooterModel) SetDone(done bool) {
	f.done = done
}

// SetError marks the run as failed.
func (f *FooterModel) SetError(failed bool) {
	f.failed = failed
}

// View renders the footer.
func (f FooterModel) View() string {
	var status string
	switch {
	case f.failed:
		status = statusErrorStyle.Render("● FAILED")
	case f.done:
		status = statusDoneStyle.Render("● DONE")
	case f.paused:
		status = statusPausedStyle.Render("● PAUSED")
	default:
		status = statusRunningStyle.Render("● RUNNING")
	}

	hints := []string{
		footerKeyStyle.Render("q") + footerDescStyle.Render(" quit"),
		footerKeyStyle.Render("p") + footerDescStyle.Render(" pause"),
		footerKeyStyle.Render("r") + footerDescStyle.Render(" restart"),
		footerKeyStyle.Render("?") + footerDescStyle.Render(" help"),
	}
	right := strings.Join(hints, footerDescStyle.Render("  "))

	gap := f.width - lipgloss.Width(status) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return " " + status + spaces(gap) + right
}
