package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/limbcalc/internal/format"
	"github.com/agbru/limbcalc/internal/sysmon"
	"github.com/agbru/limbcalc/internal/verify"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// forwardProgress drains the verification progress channel, aggregates
// per-worker updates into an overall average with an ETA, and forwards
// each update as a bubbletea message.
func forwardProgress(ref *programRef, wg *sync.WaitGroup, progressChan <-chan verify.ProgressUpdate, numWorkers int) {
	defer wg.Done()

	if numWorkers <= 0 {
		for range progressChan {
		}
		ref.Send(ProgressDoneMsg{})
		return
	}

	tracker := format.NewProgressWithETA(numWorkers)
	for update := range progressChan {
		avg, eta := tracker.UpdateWithETA(update.WorkerIndex, update.Value)
		ref.Send(ProgressMsg{
			WorkerIndex:     update.WorkerIndex,
			Value:           update.Value,
			AverageProgress: avg,
			ETA:             eta,
		})
	}
	ref.Send(ProgressDoneMsg{})
}

// forwardSysStats drains a sysmon.Watch channel and forwards each
// sample as a bubbletea message. It returns when the channel closes.
func forwardSysStats(ref *programRef, ch <-chan sysmon.Stats) {
	for s := range ch {
		ref.Send(SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
		})
	}
}
