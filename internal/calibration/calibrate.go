// Package calibration measures which branch strategy of the bitwise
// dispatch engine runs fastest on the local machine and persists the
// result as a JSON profile keyed to the hardware.
package calibration

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/agbru/limbcalc/internal/config"
	"github.com/agbru/limbcalc/internal/limb"
	"github.com/agbru/limbcalc/internal/limbspan"
	"github.com/agbru/limbcalc/internal/logging"
)

// probeSeed makes both strategies see identical operand bits.
const probeSeed = 0x5eed1ab5

// maxProfileAge is how long an auto-calibration profile is trusted
// before it is remeasured.
const maxProfileAge = 30 * 24 * time.Hour

// GenerateProbeLengths returns the span lengths exercised during a full
// calibration run. The set crosses the dispatch fast paths: scalar
// tails below the 4-limb unroll, the 4-limb and 16-limb unroll tiers,
// and lengths large enough that memory traffic dominates.
func GenerateProbeLengths() []int {
	return []int{1, 2, 3, 4, 8, 15, 16, 17, 32, 64, 256, 1024, 4096}
}

// GenerateQuickProbeLengths returns a reduced length set for the quick
// auto-calibration pass at startup.
func GenerateQuickProbeLengths() []int {
	return []int{4, 16, 64, 1024}
}

// calibrationResult holds the measurement for one branch strategy.
type calibrationResult struct {
	Strategy string
	Duration time.Duration
	Cases    int
	Err      error
}

// NanosPerOp returns the mean cost per dispatched operation.
func (r calibrationResult) NanosPerOp() float64 {
	if r.Cases == 0 {
		return 0
	}
	return float64(r.Duration.Nanoseconds()) / float64(r.Cases)
}

// probeOps are the exported dispatch entry points cycled during
// measurement. Comparison-producing ops are included because their
// combine functions are where the two strategies actually differ.
var probeOps = []func(d, l, r []limb.Limb, opt limbspan.Option){
	limbspan.BitAnd,
	limbspan.BitOr,
	limbspan.BitXor,
	limbspan.BitLess,
	limbspan.BitGreater,
	limbspan.BitLeq,
}

// measureStrategy times the dispatch engine over the given lengths with
// the given option set. Operands are regenerated from a fixed seed so
// every strategy measures identical inputs. The right operand is kept
// shorter than the left so the sign-extension paths are exercised.
func measureStrategy(ctx context.Context, lengths []int, reps int, opt limbspan.Option) (calibrationResult, error) {
	rng := rand.New(rand.NewSource(probeSeed))
	var result calibrationResult
	result.Strategy = "branchy"
	if opt.Has(limbspan.Branchless) {
		result.Strategy = "branchless"
	}

	for _, n := range lengths {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		l := make([]limb.Limb, n)
		r := make([]limb.Limb, n/2+1)
		d := make([]limb.Limb, n)
		for i := range l {
			l[i] = limb.Limb(rng.Uint64())
		}
		for i := range r {
			r[i] = limb.Limb(rng.Uint64())
		}

		start := time.Now()
		for rep := 0; rep < reps; rep++ {
			op := probeOps[rep%len(probeOps)]
			op(d, l, r, opt|limbspan.RightSigned)
			result.Cases++
		}
		result.Duration += time.Since(start)
	}
	return result, nil
}

// Calibrate measures both branch strategies and returns a profile
// recording the winner. When quick is true a reduced workload is used.
// Progress output is written to out; pass io.Discard to silence it.
func Calibrate(ctx context.Context, out io.Writer, quick bool, logger logging.Logger) (*CalibrationProfile, error) {
	if logger == nil {
		logger = logging.NopLogger{}
	}

	lengths := GenerateProbeLengths()
	reps := 400
	if quick {
		lengths = GenerateQuickProbeLengths()
		reps = 100
	}

	logger.Debug("calibration started",
		logging.Int("lengths", len(lengths)),
		logging.Int("reps", reps))

	start := time.Now()

	branchy, err := measureStrategy(ctx, lengths, reps, 0)
	if err != nil {
		return nil, err
	}
	branchless, err := measureStrategy(ctx, lengths, reps, limbspan.Branchless)
	if err != nil {
		return nil, err
	}

	total := time.Since(start)

	profile := NewProfile()
	profile.PreferBranchless = branchless.Duration < branchy.Duration
	profile.BranchyNanos = branchy.NanosPerOp()
	profile.BranchlessNanos = branchless.NanosPerOp()
	profile.CalibrationCases = branchy.Cases + branchless.Cases
	profile.CalibrationTime = total.Round(time.Millisecond).String()
	profile.CalibratedAt = time.Now()

	best := "branchy"
	if profile.PreferBranchless {
		best = "branchless"
	}
	printCalibrationResults(out, []calibrationResult{branchy, branchless}, best)

	logger.Info("calibration complete",
		logging.String("winner", best),
		logging.Float64("branchy_ns", profile.BranchyNanos),
		logging.Float64("branchless_ns", profile.BranchlessNanos))

	return profile, nil
}

// RunCalibration performs a full calibration, saves the profile, and
// prints a summary. The profile path comes from cfg.CalibrationProfile,
// falling back to the default location.
func RunCalibration(ctx context.Context, cfg config.AppConfig, out io.Writer, logger logging.Logger) (*CalibrationProfile, error) {
	profile, err := Calibrate(ctx, out, false, logger)
	if err != nil {
		return nil, err
	}

	path := cfg.CalibrationProfile
	if path == "" {
		path = GetDefaultProfilePath()
	}
	if err := profile.SaveProfile(path); err != nil {
		return nil, err
	}

	printCalibrationOutput(profile, path, out)
	return profile, nil
}

// MaybeAutoCalibrate applies a stored profile to the configuration, or
// runs a quick calibration when no trustworthy profile exists. The
// resulting preference only upgrades cfg.Branchless; an explicit
// --branchless flag is never overridden.
func MaybeAutoCalibrate(ctx context.Context, cfg *config.AppConfig, out io.Writer, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NopLogger{}
	}

	path := cfg.CalibrationProfile
	if path == "" {
		path = GetDefaultProfilePath()
	}

	profile, loaded := LoadOrCreateProfile(path)
	if !loaded || profile.IsStale(maxProfileAge) {
		var err error
		profile, err = Calibrate(ctx, io.Discard, true, logger)
		if err != nil {
			return err
		}
		if err := profile.SaveProfile(path); err != nil {
			// The measurement still applies to this run.
			logger.Debug("calibration profile not saved",
				logging.String("path", path),
				logging.Err(err))
		}
	} else {
		logger.Debug("calibration profile loaded", logging.String("path", path))
	}

	if profile.PreferBranchless {
		cfg.Branchless = true
	}
	printAutoCalibrationOutput(profile, out)
	return nil
}
