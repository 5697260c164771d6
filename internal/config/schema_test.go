package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWorkload_UnmarshalString(t *testing.T) {
	var w Workload
	require.NoError(t, yaml.Unmarshal([]byte(`"bench futex hash"`), &w))
	assert.Equal(t, Workload{"bench", "futex", "hash"}, w)
}

func TestWorkload_UnmarshalSequence(t *testing.T) {
	var w Workload
	require.NoError(t, yaml.Unmarshal([]byte(`["my-bench", "--arg", "a b"]`), &w))
	// Sequence entries are taken verbatim, even with embedded spaces.
	assert.Equal(t, Workload{"my-bench", "--arg", "a b"}, w)
}

func TestWorkload_UnmarshalMappingFails(t *testing.T) {
	var w Workload
	err := yaml.Unmarshal([]byte(`{cmd: bench}`), &w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workload must be a string or a list of strings")
}

func TestWorkload_String(t *testing.T) {
	assert.Equal(t, "bench futex hash", Workload{"bench", "futex", "hash"}.String())
}

func TestConfig_SnapshotRoundTrip(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	var restored Config
	require.NoError(t, yaml.Unmarshal(data, &restored))
	assert.Equal(t, cfg.OutputDirectory, restored.OutputDirectory)
	assert.Equal(t, cfg.RecordWorkload, restored.RecordWorkload)
	assert.Equal(t, cfg.StatEvents, restored.StatEvents)
}
