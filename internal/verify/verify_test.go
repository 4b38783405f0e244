package verify

import (
	"context"
	"math/rand"
	"testing"
	"time"

	apperrors "github.com/agbru/limbcalc/internal/errors"
)

func TestChecksPassOnRandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 5000; i++ {
		if err := checkPrimitives(rng, 1); err != nil {
			t.Fatalf("checkPrimitives failed: %v", err)
		}
		if err := checkBitwise(rng, 1, 8); err != nil {
			t.Fatalf("checkBitwise failed: %v", err)
		}
		if err := checkCompare(rng, 1, 8); err != nil {
			t.Fatalf("checkCompare failed: %v", err)
		}
	}
}

func TestRunCompletes(t *testing.T) {
	r := NewRunner(Config{
		Iterations: 2000,
		MaxLimbs:   6,
		Seed:       7,
		Workers:    3,
	}, nil)

	progressChan := make(chan ProgressUpdate, 64)
	done := make(chan struct{})
	var updates []ProgressUpdate
	go func() {
		defer close(done)
		for u := range progressChan {
			updates = append(updates, u)
		}
	}()

	report, err := r.Run(context.Background(), progressChan)
	<-done

	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if report.Cases != 2000 {
		t.Errorf("report.Cases = %d, want 2000", report.Cases)
	}
	if report.Seed != 7 {
		t.Errorf("report.Seed = %d, want 7", report.Seed)
	}
	if report.Duration <= 0 {
		t.Error("report.Duration should be positive")
	}

	for _, u := range updates {
		if u.Value < 0 || u.Value > 1 {
			t.Errorf("progress value %f out of range", u.Value)
		}
		if u.WorkerIndex < 0 || u.WorkerIndex >= 3 {
			t.Errorf("worker index %d out of range", u.WorkerIndex)
		}
	}
}

func TestRunWithoutProgressChannel(t *testing.T) {
	r := NewRunner(Config{Iterations: 500, MaxLimbs: 4, Seed: 11, Workers: 2}, nil)

	if _, err := r.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	r := NewRunner(Config{
		Iterations: 100_000_000,
		MaxLimbs:   16,
		Seed:       3,
		Workers:    2,
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := r.Run(ctx, nil)
	if err == nil {
		t.Fatal("Run should return an error when the context expires")
	}
	if !apperrors.IsContextError(err) {
		t.Errorf("expected a context error, got %v", err)
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(Config{Iterations: 1, MaxLimbs: 1}, nil)
	if r.cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1 after defaulting", r.cfg.Workers)
	}
	if r.logger == nil {
		t.Error("logger should default to a no-op implementation")
	}
}

func TestWorkerSeedsAreDeterministic(t *testing.T) {
	// Two runs with the same seed must execute the same cases, so a
	// reported failure can be replayed. The check functions only consume
	// the generator, so identical consumption is observable through the
	// generator state.
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		if err := checkBitwise(a, 42, 8); err != nil {
			t.Fatalf("checkBitwise failed: %v", err)
		}
		if err := checkBitwise(b, 42, 8); err != nil {
			t.Fatalf("checkBitwise failed: %v", err)
		}
		if a.Uint64() != b.Uint64() {
			t.Fatal("generator state diverged between identical runs")
		}
	}
}
