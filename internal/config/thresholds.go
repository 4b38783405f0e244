package config

import "runtime"

// Adaptive default resolution chain (highest priority first):
//   1. CLI flags (--workers, --iterations, --max-limbs)
//   2. Environment variables (LIMBCALC_WORKERS, etc.)
//   3. Cached calibration profile (~/.limbcalc_calibration.json)
//   4. Hardware estimation (this file)
//   5. Static defaults in config.go

// ApplyAdaptiveDefaults fills in configuration values that are still at
// their zero default using hardware characteristics (CPU cores, word
// size). User-specified values are never modified.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateVerifyWorkers()
	}
	if cfg.MaxLimbs == 0 {
		cfg.MaxLimbs = DefaultMaxLimbs
	}
	if cfg.Iterations == 0 {
		cfg.Iterations = EstimateVerifyIterations()
	}
	return cfg
}

// EstimateVerifyWorkers provides a heuristic worker count for the
// differential verifier without running benchmarks. Verification cases
// are CPU bound and independent, so one worker per core is the ceiling;
// a single spare core is left for the progress reporter on larger
// machines.
func EstimateVerifyWorkers() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 2:
		return numCPU
	default:
		return numCPU - 1
	}
}

// EstimateVerifyIterations scales the default verification case count
// with the core count so a run finishes in roughly constant wall time.
func EstimateVerifyIterations() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 2:
		return 50000
	case numCPU <= 8:
		return DefaultIterations
	default:
		return 250000
	}
}
