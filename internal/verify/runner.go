package verify

import (
	"context"
	"math/rand"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	apperrors "github.com/agbru/limbcalc/internal/errors"
	"github.com/agbru/limbcalc/internal/logging"
)

const tracerName = "limbcalc/verify"

// batchSize is the number of cases a worker runs between progress
// updates and cancellation checks.
const batchSize = 1024

// ProgressUpdate reports the fractional completion of one worker.
type ProgressUpdate struct {
	WorkerIndex int
	Value       float64
}

// Config controls a verification run.
type Config struct {
	Iterations int
	MaxLimbs   int
	Seed       int64
	Workers    int
}

// Report summarizes a completed run.
type Report struct {
	Cases    int
	Seed     int64
	Duration time.Duration
}

// Runner executes randomized differential checks across a worker pool.
type Runner struct {
	cfg    Config
	logger logging.Logger
	tracer trace.Tracer
}

// NewRunner creates a Runner. A nil logger disables logging.
func NewRunner(cfg Config, logger logging.Logger) *Runner {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Runner{
		cfg:    cfg,
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// Run executes the configured number of cases, spreading them across
// the worker pool. Progress updates are sent to progressChan if it is
// non-nil; the channel is closed when the run ends. The first divergence
// aborts the run and is returned as a MismatchError.
func (r *Runner) Run(ctx context.Context, progressChan chan<- ProgressUpdate) (Report, error) {
	start := time.Now()
	ctx, span := r.tracer.Start(ctx, "verify.run", trace.WithAttributes(
		attribute.Int("iterations", r.cfg.Iterations),
		attribute.Int("max_limbs", r.cfg.MaxLimbs),
		attribute.Int64("seed", r.cfg.Seed),
		attribute.Int("workers", r.cfg.Workers),
	))
	defer span.End()
	if progressChan != nil {
		defer close(progressChan)
	}

	r.logger.Info("verification started",
		logging.Int("iterations", r.cfg.Iterations),
		logging.Int("workers", r.cfg.Workers),
		logging.Uint64("seed", uint64(r.cfg.Seed)))

	g, ctx := errgroup.WithContext(ctx)

	// Workers may exceed the core count; the semaphore keeps at most one
	// running batch per core while letting every worker report progress.
	cpus := runtime.NumCPU()
	if cpus > r.cfg.Workers {
		cpus = r.cfg.Workers
	}
	sem := semaphore.NewWeighted(int64(cpus))

	perWorker := r.cfg.Iterations / r.cfg.Workers
	remainder := r.cfg.Iterations % r.cfg.Workers

	for i := 0; i < r.cfg.Workers; i++ {
		worker := i
		cases := perWorker
		if worker < remainder {
			cases++
		}
		if cases == 0 {
			continue
		}

		g.Go(func() error {
			return r.runWorker(ctx, sem, worker, cases, progressChan)
		})
	}

	err := g.Wait()
	report := Report{Cases: r.cfg.Iterations, Seed: r.cfg.Seed, Duration: time.Since(start)}

	switch {
	case err == nil:
		r.logger.Info("verification passed",
			logging.Int("cases", report.Cases),
			logging.String("duration", report.Duration.String()))
		return report, nil
	case apperrors.IsContextError(err):
		r.logger.Error("verification interrupted", err)
		return report, err
	default:
		span.RecordError(err)
		r.logger.Error("verification failed", err,
			logging.Uint64("seed", uint64(r.cfg.Seed)))
		return report, apperrors.CalculationError{Cause: err}
	}
}

// runWorker runs one worker's share of the cases. Each worker derives
// its generator from the run seed and its own index, so any failure is
// reproducible from the pair reported in the error.
func (r *Runner) runWorker(ctx context.Context, sem *semaphore.Weighted, worker, cases int, progressChan chan<- ProgressUpdate) error {
	ctx, span := r.tracer.Start(ctx, "verify.worker", trace.WithAttributes(
		attribute.Int("worker", worker),
		attribute.Int("cases", cases),
	))
	defer span.End()

	workerSeed := r.cfg.Seed + int64(worker)
	rng := rand.New(rand.NewSource(workerSeed))

	for done := 0; done < cases; {
		// Acquire succeeds without consulting the context when a permit
		// is free, so cancellation is checked explicitly each batch.
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			return err
		}

		n := batchSize
		if cases-done < n {
			n = cases - done
		}
		var caseErr error
		for i := 0; i < n; i++ {
			if caseErr = r.runCase(rng, workerSeed); caseErr != nil {
				break
			}
		}
		sem.Release(1)
		if caseErr != nil {
			return caseErr
		}
		done += n

		if progressChan != nil {
			select {
			case progressChan <- ProgressUpdate{WorkerIndex: worker, Value: float64(done) / float64(cases)}:
			default:
				// A slow consumer must not stall verification.
			}
		}
	}
	return nil
}

// runCase executes one randomized case, rotating across the check
// families so a run exercises primitives, bitwise dispatch and the
// comparison engine in roughly equal measure.
func (r *Runner) runCase(rng *rand.Rand, seed int64) error {
	switch rng.Intn(3) {
	case 0:
		return checkPrimitives(rng, seed)
	case 1:
		return checkBitwise(rng, seed, r.cfg.MaxLimbs)
	default:
		return checkCompare(rng, seed, r.cfg.MaxLimbs)
	}
}
