package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/limbcalc/internal/config"
	"github.com/agbru/limbcalc/internal/verify"
)

func TestLogsModel_AddExecutionConfig(t *testing.T) {
	l := NewLogsModel()
	l.SetSize(60, 20)
	l.AddExecutionConfig(config.AppConfig{
		Iterations: 100000,
		Workers:    8,
		MaxLimbs:   64,
		Seed:       42,
		Branchless: true,
	})

	view := l.renderToHeight(20)
	for _, want := range []string{"100,000", "workers=8", "seed=42", "branchless"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected log to contain %q", want)
		}
	}
}

func TestLogsModel_ProgressMilestones(t *testing.T) {
	l := NewLogsModel()
	l.SetSize(60, 20)

	l.AddProgressEntry(ProgressMsg{AverageProgress: 0.11, ETA: time.Minute})
	l.AddProgressEntry(ProgressMsg{AverageProgress: 0.12, ETA: time.Minute})
	l.AddProgressEntry(ProgressMsg{AverageProgress: 0.31, ETA: time.Minute})

	view := l.renderToHeight(20)
	if !strings.Contains(view, "progress 10%") {
		t.Error("expected 10% milestone entry")
	}
	if !strings.Contains(view, "progress 30%") {
		t.Error("expected 30% milestone entry")
	}
	if strings.Count(view, "progress 10%") != 1 {
		t.Error("expected repeated updates within a decile to be suppressed")
	}
}

func TestLogsModel_AddReport(t *testing.T) {
	l := NewLogsModel()
	l.SetSize(60, 20)
	l.AddReport(verify.Report{Cases: 5000, Duration: 2 * time.Second})

	view := l.renderToHeight(20)
	if !strings.Contains(view, "5,000") || !strings.Contains(view, "no divergence") {
		t.Errorf("expected report entry, got:\n%s", view)
	}
}

func TestLogsModel_AddError(t *testing.T) {
	l := NewLogsModel()
	l.SetSize(60, 20)
	l.AddError(errors.New("boom"))

	if !strings.Contains(l.renderToHeight(20), "boom") {
		t.Error("expected error entry")
	}
}

func TestLogsModel_Scroll(t *testing.T) {
	l := NewLogsModel()
	l.SetSize(60, 6)
	for i := 0; i < 50; i++ {
		l.AddError(errors.New("entry"))
	}

	l.ScrollUp(10)
	if l.offset != 10 {
		t.Errorf("expected offset 10, got %d", l.offset)
	}

	l.ScrollUp(1000)
	if l.offset != 49 {
		t.Errorf("expected offset clamped to 49, got %d", l.offset)
	}

	l.ScrollDown(1000)
	if l.offset != 0 {
		t.Errorf("expected offset clamped to 0, got %d", l.offset)
	}
}

func TestLogsModel_Reset(t *testing.T) {
	l := NewLogsModel()
	l.AddError(errors.New("old"))
	l.ScrollUp(1)

	l.Reset()

	if len(l.entries) != 0 || l.offset != 0 {
		t.Error("expected reset to clear entries and scroll state")
	}
}

func TestLogsModel_HistoryBound(t *testing.T) {
	l := NewLogsModel()
	for i := 0; i < maxLogEntries+100; i++ {
		l.AddError(errors.New("entry"))
	}
	if len(l.entries) != maxLogEntries {
		t.Errorf("expected history capped at %d, got %d", maxLogEntries, len(l.entries))
	}
}
