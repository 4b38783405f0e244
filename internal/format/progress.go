package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// maxETA caps the reported estimate so a stalled run never shows an
// absurd figure.
const maxETA = 24 * time.Hour

// ProgressState tracks the fractional progress of a set of concurrent
// workers. All methods are safe for concurrent use.
type ProgressState struct {
	mu         sync.Mutex
	progresses []float64
	numWorkers int
}

// NewProgressState creates a ProgressState for n workers.
func NewProgressState(n int) *ProgressState {
	return &ProgressState{
		progresses: make([]float64, n),
		numWorkers: n,
	}
}

// Update records the progress of worker i, clamped to [0, 1]. Indexes
// outside the worker range are ignored.
func (ps *ProgressState) Update(i int, progress float64) {
	if i < 0 || i >= ps.numWorkers {
		return
	}
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	ps.mu.Lock()
	ps.progresses[i] = progress
	ps.mu.Unlock()
}

// CalculateAverage returns the mean progress across all workers.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numWorkers == 0 {
		return 0
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	var sum float64
	for _, p := range ps.progresses {
		sum += p
	}
	return sum / float64(ps.numWorkers)
}

// ProgressWithETA extends ProgressState with a completion estimate
// derived from the observed progress rate.
type ProgressWithETA struct {
	*ProgressState
	startTime    time.Time
	lastUpdate   time.Time
	lastAverage  float64
	progressRate float64 // fraction per second, exponentially smoothed
}

// NewProgressWithETA creates a tracker for n workers.
func NewProgressWithETA(n int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(n),
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records the progress of worker i and returns the new
// average progress together with the current completion estimate.
func (p *ProgressWithETA) UpdateWithETA(i int, progress float64) (float64, time.Duration) {
	p.Update(i, progress)
	avg := p.CalculateAverage()

	now := time.Now()
	elapsed := now.Sub(p.lastUpdate).Seconds()
	if elapsed > 0.1 && avg > p.lastAverage {
		instant := (avg - p.lastAverage) / elapsed
		if p.progressRate == 0 {
			p.progressRate = instant
		} else {
			p.progressRate = 0.7*p.progressRate + 0.3*instant
		}
		p.lastUpdate = now
		p.lastAverage = avg
	}

	return avg, p.GetETA()
}

// GetETA returns the estimated time to completion, or 0 when there is
// not yet enough data. The estimate is capped at 24 hours.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	eta := time.Duration(remaining / p.progressRate * float64(time.Second))
	if eta > maxETA {
		return maxETA
	}
	return eta
}

// FormatETA renders a completion estimate in compact h/m/s form.
// Non-positive estimates render as "calculating...".
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}

	eta = eta.Round(time.Second)
	h := int(eta.Hours())
	m := int(eta.Minutes()) % 60
	s := int(eta.Seconds()) % 60

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// ProgressBar renders a fixed-width bar of filled and empty blocks.
// Progress is clamped to [0, 1].
func ProgressBar(progress float64, length int) string {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA combines a progress bar, a percentage and a
// completion estimate into a single status line.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %.1f%% ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}
