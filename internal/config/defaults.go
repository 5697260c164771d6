package config

import "strings"

// Defaults for every optional configuration key.
const (
	DefaultOutputDirectory = "tmp/perf_results"
	DefaultStatCountDeltas = 1000
	DefaultStatCPURange    = "all"
	DefaultWorkload        = "bench futex hash"
)

// DefaultRecordEvents is the default event group for the record stage.
var DefaultRecordEvents = []string{"cycles"}

// DefaultStatEvents is the default event list for the stat stage.
var DefaultStatEvents = []string{
	"cycles",
	"instructions",
	"branch-misses",
	"L1-dcache-load-misses",
	"L1-icache-load-misses",
}

// ApplyDefaults fills every absent optional key in place. Required keys are
// left untouched; run Validate first so their absence is reported rather
// than silently defaulted.
func (c *Config) ApplyDefaults() {
	if c.OutputDirectory == "" {
		c.OutputDirectory = DefaultOutputDirectory
	}
	if c.RecordEvents == nil {
		c.RecordEvents = append([]string(nil), DefaultRecordEvents...)
	}
	if c.RecordWorkload == nil {
		c.RecordWorkload = defaultWorkload()
	}
	if c.StatCountDeltas == nil {
		deltas := DefaultStatCountDeltas
		c.StatCountDeltas = &deltas
	}
	if c.StatEvents == nil {
		c.StatEvents = append([]string(nil), DefaultStatEvents...)
	}
	if c.StatCPURange == "" {
		c.StatCPURange = DefaultStatCPURange
	}
	if c.StatAllThreads == nil {
		allThreads := true
		c.StatAllThreads = &allThreads
	}
	if c.StatWorkload == nil {
		c.StatWorkload = defaultWorkload()
	}
}

func defaultWorkload() Workload {
	return Workload(strings.Fields(DefaultWorkload))
}
