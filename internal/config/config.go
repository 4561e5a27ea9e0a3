// Package config provides configuration loading and validation for the
// interview service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Timing defaults shared with the realtime interviewer agent. The JSON file
// overrides them so both processes read the same numbers.
const (
	DefaultHardCutoffSeconds  = 30 * 60
	DefaultSoftWarningSeconds = 25 * 60
	DefaultMinimumSeconds     = 15 * 60
)

// Timing holds the session time limits that shape problem difficulty and
// the interviewer agent's pacing.
type Timing struct {
	HardCutoffSeconds  int `json:"TIME_LIMIT_HARD_CUTOFF_SECONDS,omitempty"`
	SoftWarningSeconds int `json:"TIME_LIMIT_SOFT_WARNING_SECONDS,omitempty"`
	MinimumSeconds     int `json:"TIME_LIMIT_MINIMUM_SECONDS,omitempty"`
}

// DefaultTiming returns the built-in session time limits.
func DefaultTiming() Timing {
	return Timing{
		HardCutoffSeconds:  DefaultHardCutoffSeconds,
		SoftWarningSeconds: DefaultSoftWarningSeconds,
		MinimumSeconds:     DefaultMinimumSeconds,
	}
}

// LoadTiming loads session time limits from a shared JSON config file,
// filling missing values from defaults. A missing file is not an error; the
// defaults apply.
func LoadTiming(path string) (Timing, error) {
	timing := DefaultTiming()

	if path == "" {
		return timing, nil
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return timing, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return timing, nil
		}
		return timing, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var overrides Timing
	if err := json.Unmarshal(data, &overrides); err != nil {
		return timing, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if overrides.HardCutoffSeconds > 0 {
		timing.HardCutoffSeconds = overrides.HardCutoffSeconds
	}
	if overrides.SoftWarningSeconds > 0 {
		timing.SoftWarningSeconds = overrides.SoftWarningSeconds
	}
	if overrides.MinimumSeconds > 0 {
		timing.MinimumSeconds = overrides.MinimumSeconds
	}

	if err := timing.Validate(); err != nil {
		return DefaultTiming(), err
	}
	return timing, nil
}

// Validate checks the time limits are coherent.
func (t Timing) Validate() error {
	if t.MinimumSeconds <= 0 {
		return fmt.Errorf("config error: minimum time limit must be positive, got %d", t.MinimumSeconds)
	}
	if t.SoftWarningSeconds < t.MinimumSeconds {
		return fmt.Errorf("config error: soft warning (%d) below minimum (%d)", t.SoftWarningSeconds, t.MinimumSeconds)
	}
	if t.HardCutoffSeconds < t.SoftWarningSeconds {
		return fmt.Errorf("config error: hard cutoff (%d) below soft warning (%d)", t.HardCutoffSeconds, t.SoftWarningSeconds)
	}
	return nil
}

// HardCutoffMinutes returns the hard cutoff rounded down to whole minutes,
// the number the question designer targets for problem difficulty.
func (t Timing) HardCutoffMinutes() int {
	return t.HardCutoffSeconds / 60
}
