// Package hostinfo exposes the host CPU topology used for run-time sanity
// checks and run metadata.
package hostinfo

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/cpu"
)

// LogicalCores returns the number of logical CPUs on the host.
func LogicalCores() (int, error) {
	n, err := cpu.Counts(true)
	if err != nil {
		return 0, fmt.Errorf("failed to count logical CPUs: %w", err)
	}
	return n, nil
}

// LogTopology logs the host CPU layout at the start of a run so the run
// output records the hardware it was captured on.
func LogTopology(logger zerolog.Logger) {
	logical, err := cpu.Counts(true)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to detect logical CPU count")
		return
	}
	physical, err := cpu.Counts(false)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to detect physical CPU count")
		physical = 0
	}

	logger.Info().
		Int("logical_cpus", logical).
		Int("physical_cpus", physical).
		Msg("Host CPU topology")
}
