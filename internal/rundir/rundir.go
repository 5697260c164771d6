// Package rundir manages the on-disk artifact directory for one profiling run.
package rundir

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/perfrun/perfrun/internal/config"
)

// timestampLayout yields directory names like perf_run_20240102_030405.
const timestampLayout = "20060102_150405"

// SnapshotFileName is the effective-configuration artifact written at the
// end of a run.
const SnapshotFileName = "config_used.yaml"

// Prepare creates the run directory under baseDir, named from now, creating
// missing parents. It is idempotent: an already-existing directory from the
// same second is reused.
func Prepare(baseDir string, now time.Time) (string, error) {
	dir := filepath.Join(baseDir, "perf_run_"+now.Format(timestampLayout))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create run directory %s: %w", dir, err)
	}
	return dir, nil
}

// Snapshot is the serialized record of a completed run: the run identity
// plus the effective (defaulted) configuration it executed with.
type Snapshot struct {
	RunID     string        `yaml:"run_id"`
	CreatedAt time.Time     `yaml:"created_at"`
	Config    config.Config `yaml:",inline"`
}

// PersistConfigSnapshot writes the snapshot into dir as config_used.yaml.
// Callers treat a failure here as non-fatal; the profiling artifacts are
// already on disk at that point.
func PersistConfigSnapshot(dir string, snap Snapshot) error {
	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("failed to serialize config snapshot: %w", err)
	}
	path := filepath.Join(dir, SnapshotFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config snapshot %s: %w", path, err)
	}
	return nil
}

// WriteStageLog writes captured stage output into dir under name. The stdout
// and stderr texts are concatenated in that order.
func WriteStageLog(dir, name, stdout, stderr string) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(stdout+stderr), 0o644); err != nil {
		return fmt.Errorf("failed to write stage log %s: %w", path, err)
	}
	return nil
}
