package tui

import (
	"time"

	"github.com/agbru/limbcalc/internal/verify"
)

// TickMsg drives the periodic refresh of the dashboard.
type TickMsg time.Time

// ProgressMsg carries one worker progress update together with the
// aggregated view computed by the bridge.
type ProgressMsg struct {
	WorkerIndex     int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// ProgressDoneMsg signals that the progress channel has been drained.
type ProgressDoneMsg struct{}

// VerifyDoneMsg signals that the verification run finished, with or
// without a divergence. Generation guards against stale messages after
// a restart.
type VerifyDoneMsg struct {
	Report     verify.Report
	Err        error
	ExitCode   int
	Generation uint64
}

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapInuse    uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// ContextCancelledMsg signals that the parent context was canceled.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
