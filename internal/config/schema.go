// Package config provides loading, defaulting and validation of the perfrun
// run configuration.
package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the declarative description of one profiling run. Field names
// mirror the configuration file keys.
//
// The three required keys (perf_record_frequency, perf_record_duration,
// perf_stat_duration) are pointer-typed so that an absent key can be told
// apart from an explicit zero. All other keys are optional and filled by
// ApplyDefaults.
type Config struct {
	OutputDirectory string `yaml:"output_directory"`

	RecordFrequency *int     `yaml:"perf_record_frequency"`
	RecordDuration  *int     `yaml:"perf_record_duration"`
	RecordEvents    []string `yaml:"perf_record_events"`
	RecordWorkload  Workload `yaml:"perf_record_workload"`

	UseAnnotation bool `yaml:"use_perf_annotation"`

	StatDuration    *int     `yaml:"perf_stat_duration"`
	StatCountDeltas *int     `yaml:"perf_stat_count_deltas"`
	StatEvents      []string `yaml:"perf_stat_events"`
	StatCPURange    string   `yaml:"perf_stat_cpu_range"`
	StatAllThreads  *bool    `yaml:"perf_stat_all_threads"`
	StatWorkload    Workload `yaml:"perf_stat_workload"`
}

// Workload is a pre-tokenized child-process command line. It accepts either
// a YAML string, which is split on whitespace, or a YAML sequence of tokens.
// Tokenizing at load time means a multi-word workload such as
// "bench futex hash" reaches the executor as separate argv entries.
type Workload []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *Workload) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*w = Workload(strings.Fields(s))
		return nil
	case yaml.SequenceNode:
		var tokens []string
		if err := value.Decode(&tokens); err != nil {
			return err
		}
		*w = Workload(tokens)
		return nil
	default:
		return fmt.Errorf("workload must be a string or a list of strings")
	}
}

// String returns the workload as a single space-joined command line.
func (w Workload) String() string {
	return strings.Join(w, " ")
}
