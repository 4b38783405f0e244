package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sys/cpu"
)

// CurrentProfileVersion is the schema version of the profile file.
// Profiles written by an older schema are discarded and recalibrated.
const CurrentProfileVersion = 1

// DefaultProfileFileName is the name of the profile file stored in the
// user's home directory.
const DefaultProfileFileName = ".limbcalc_calibration.json"

// CalibrationProfile stores the measured branch-strategy preference for
// the bitwise dispatch engine, together with the hardware fingerprint
// it was measured on. A profile is only trusted when the fingerprint
// still matches the running machine.
type CalibrationProfile struct {
	// ProfileVersion is the schema version used to write this profile.
	ProfileVersion int `json:"profile_version"`

	// Hardware fingerprint. A mismatch on any field invalidates the
	// profile: the measured preference does not transfer across
	// machines or word sizes.
	NumCPU    int    `json:"num_cpu"`
	GOARCH    string `json:"goarch"`
	GOOS      string `json:"goos"`
	GoVersion string `json:"go_version"`
	WordSize  int    `json:"word_size"`
	HasAVX2   bool   `json:"has_avx2"`
	HasBMI2   bool   `json:"has_bmi2"`

	// PreferBranchless records whether the branchless combine loops
	// beat the branchy ones on this machine.
	PreferBranchless bool `json:"prefer_branchless"`

	// BranchyNanos and BranchlessNanos are the measured mean cost per
	// dispatched operation for each strategy, in nanoseconds.
	BranchyNanos    float64 `json:"branchy_nanos"`
	BranchlessNanos float64 `json:"branchless_nanos"`

	// CalibrationCases is the number of dispatch calls timed per strategy.
	CalibrationCases int `json:"calibration_cases"`

	// CalibrationTime is the human-readable total calibration duration.
	CalibrationTime string `json:"calibration_time"`

	// CalibratedAt is when the calibration was performed.
	CalibratedAt time.Time `json:"calibrated_at"`
}

// NewProfile creates a profile describing the current hardware with no
// measurement results yet.
func NewProfile() *CalibrationProfile {
	return &CalibrationProfile{
		ProfileVersion: CurrentProfileVersion,
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63),
		HasAVX2:        cpu.X86.HasAVX2,
		HasBMI2:        cpu.X86.HasBMI2,
		CalibratedAt:   time.Now(),
	}
}

// SaveProfile writes the profile to the given path as indented JSON.
func (p *CalibrationProfile) SaveProfile(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling calibration profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing calibration profile: %w", err)
	}
	return nil
}

// loadProfile reads and parses a profile file.
func loadProfile(path string) (*CalibrationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading calibration profile: %w", err)
	}
	var p CalibrationProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing calibration profile: %w", err)
	}
	return &p, nil
}

// LoadOrCreateProfile loads the profile at path if it exists and still
// matches the current hardware. Otherwise it returns a fresh profile.
// The second return value reports whether an existing valid profile was
// loaded.
func LoadOrCreateProfile(path string) (*CalibrationProfile, bool) {
	p, err := loadProfile(path)
	if err != nil || !p.IsValid() {
		return NewProfile(), false
	}
	return p, true
}

// IsValid reports whether the profile was produced by the current
// schema on hardware matching the running machine. A nil profile is
// invalid.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil {
		return false
	}
	return p.ProfileVersion == CurrentProfileVersion &&
		p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.GOOS == runtime.GOOS &&
		p.WordSize == 32<<(^uint(0)>>63)
}

// IsStale reports whether the profile is older than maxAge. A nil
// profile is always stale.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

// String returns a human-readable summary of the profile.
func (p *CalibrationProfile) String() string {
	strategy := "branchy"
	if p.PreferBranchless {
		strategy = "branchless"
	}
	return fmt.Sprintf(
		"calibration profile v%d: %s (%s/%s, %d cores, %d-bit) "+
			"strategy=%s branchy=%.1fns branchless=%.1fns cases=%d calibrated=%s",
		p.ProfileVersion, p.GoVersion, p.GOOS, p.GOARCH, p.NumCPU, p.WordSize,
		strategy, p.BranchyNanos, p.BranchlessNanos, p.CalibrationCases,
		p.CalibratedAt.Format(time.RFC3339))
}

// GetDefaultProfilePath returns the default location for the profile
// file: the user's home directory, falling back to the current
// directory when the home directory cannot be resolved.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}
