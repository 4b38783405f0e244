package tui

import (
	"sync"
	"testing"

	"github.com/agbru/limbcalc/internal/verify"
)

func TestForwardProgress_DrainsChannel(t *testing.T) {
	ref := &programRef{}
	progressChan := make(chan verify.ProgressUpdate, 8)

	var wg sync.WaitGroup
	wg.Add(1)
	go forwardProgress(ref, &wg, progressChan, 2)

	progressChan <- verify.ProgressUpdate{WorkerIndex: 0, Value: 0.5}
	progressChan <- verify.ProgressUpdate{WorkerIndex: 1, Value: 0.25}
	close(progressChan)

	// Must return even with no program attached to the ref.
	wg.Wait()
}

func TestForwardProgress_ZeroWorkers(t *testing.T) {
	ref := &programRef{}
	progressChan := make(chan verify.ProgressUpdate, 4)

	var wg sync.WaitGroup
	wg.Add(1)
	go forwardProgress(ref, &wg, progressChan, 0)

	progressChan <- verify.ProgressUpdate{WorkerIndex: 0, Value: 1.0}
	close(progressChan)

	wg.Wait()
}

func TestForwardProgress_EmptyChannel(t *testing.T) {
	ref := &programRef{}
	progressChan := make(chan verify.ProgressUpdate)
	close(progressChan)

	var wg sync.WaitGroup
	wg.Add(1)
	forwardProgress(ref, &wg, progressChan, 4)
	wg.Wait()
}

func TestProgramRef_Send_NilProgram(t *testing.T) {
	ref := &programRef{}
	// Must not panic when no program has been attached.
	ref.Send(ProgressDoneMsg{})
}

func TestProgramRef_Send_Concurrent(t *testing.T) {
	ref := &programRef{}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ref.Send(ProgressDoneMsg{})
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		ref.SetProgram(nil)
	}()
	wg.Wait()
}
