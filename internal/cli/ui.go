//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/limbcalc/internal/format"
	"github.com/agbru/limbcalc/internal/verify"
)

const (
	// TruncationLimit is the limb-count threshold from which a result is
	// truncated in standard output to avoid cluttering the terminal.
	TruncationLimit = 32
	// DisplayEdges specifies the number of limbs to display at the
	// beginning and end of a truncated result.
	DisplayEdges = 4
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// It decouples DisplayProgress from a specific spinner implementation so
// tests can substitute their own.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as ProgressRefreshRate to keep redraws in step.
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress renders a spinner with an aggregated progress bar and
// ETA while verification workers report through progressChan. It runs
// until the channel is closed and signals wg when done.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan verify.ProgressUpdate, numWorkers int, out io.Writer) {
	defer wg.Done()

	if numWorkers <= 0 {
		for range progressChan {
		}
		return
	}

	tracker := format.NewProgressWithETA(numWorkers)
	sp := newSpinner(spinner.WithWriter(out))
	sp.Start()
	defer sp.Stop()

	lastRefresh := time.Now()
	for update := range progressChan {
		avg, eta := tracker.UpdateWithETA(update.WorkerIndex, update.Value)
		if time.Since(lastRefresh) < ProgressRefreshRate {
			continue
		}
		lastRefresh = time.Now()
		sp.UpdateSuffix(fmt.Sprintf(" %s", format.FormatProgressBarWithETA(avg, eta, ProgressBarWidth)))
	}
}
