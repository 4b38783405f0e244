package tui

import (
	"strings"
	"testing"
)

func TestWorkersModel_UpdateProgress(t *testing.T) {
	w := NewWorkersModel(4)

	w.UpdateProgress(0, 0.5)
	w.UpdateProgress(3, 1.0)

	if w.statuses[0] != StatusRunning {
		t.Error("expected worker 0 to be running")
	}
	if w.statuses[3] != StatusComplete {
		t.Error("expected worker 3 to be complete at 100%")
	}
	if w.statuses[1] != StatusIdle {
		t.Error("expected untouched worker to stay idle")
	}
}

func TestWorkersModel_UpdateProgress_OutOfRange(t *testing.T) {
	w := NewWorkersModel(2)

	// Must not panic.
	w.UpdateProgress(-1, 0.5)
	w.UpdateProgress(2, 0.5)
}

func TestWorkersModel_SetAllDone(t *testing.T) {
	w := NewWorkersModel(3)
	w.UpdateProgress(0, 1.0)
	w.UpdateProgress(1, 0.4)

	w.SetAllDone(false)

	if w.statuses[0] != StatusComplete {
		t.Error("completed worker must stay complete on failure")
	}
	if w.statuses[1] != StatusError || w.statuses[2] != StatusError {
		t.Error("unfinished workers must be flagged as errored on failure")
	}

	w.SetAllDone(true)
	for i, s := range w.statuses {
		if s != StatusComplete {
			t.Errorf("expected worker %d complete after success, got %v", i, s)
		}
	}
}

func TestWorkersModel_Reset(t *testing.T) {
	w := NewWorkersModel(2)
	w.UpdateProgress(0, 0.7)

	w.Reset()

	if w.statuses[0] != StatusIdle || w.progresses[0] != 0 {
		t.Error("expected reset to return workers to idle")
	}
}

func TestWorkersModel_View(t *testing.T) {
	w := NewWorkersModel(2)
	w.SetSize(70, 12)
	w.UpdateProgress(0, 0.5)

	view := w.View()
	for _, want := range []string{"Workers", "worker-0", "worker-1", "50.0%", "RUN", "IDLE"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestWorkersModel_View_Overflow(t *testing.T) {
	w := NewWorkersModel(32)
	w.SetSize(70, 10)

	if !strings.Contains(w.View(), "more workers") {
		t.Error("expected overflow line when workers exceed panel height")
	}
}
