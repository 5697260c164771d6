package perf

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/perfrun/perfrun/internal/config"
)

// Stage names.
const (
	StageRecord   = "record"
	StageAnnotate = "annotate"
	StageStat     = "stat"
)

// Artifact file names within a run directory.
const (
	DataFileName     = "perf.data"
	RecordLogName    = "perf_record_output.log"
	AnnotateFileName = "perf_annotate.txt"
	StatFileName     = "perf_stat.txt"
)

// BuildRecord constructs the perf record invocation. cfg must be validated
// and defaulted.
//
// Shape: perf record -F <freq> -a [-e {e1,e2,...}:S] -g -o <dir>/perf.data
// followed by either "sleep <duration>" or the workload tokens. The -a flag
// is emitted exactly once; system-wide capture is a mode, not a repeatable
// option. The {…}:S wrapping puts the events into a single sampled group
// and must stay verbatim.
func BuildRecord(cfg *config.Config, dir string) Stage {
	artifact := filepath.Join(dir, DataFileName)

	spec := CommandSpec{"perf", "record", "-F", strconv.Itoa(*cfg.RecordFrequency), "-a"}
	if len(cfg.RecordEvents) > 0 {
		spec = append(spec, "-e", "{"+strings.Join(cfg.RecordEvents, ",")+"}:S")
	}
	spec = append(spec, "-g", "-o", artifact)
	spec = appendWorkload(spec, *cfg.RecordDuration, cfg.RecordWorkload)

	return Stage{
		Name:         StageRecord,
		Spec:         spec,
		ArtifactPath: artifact,
	}
}

// BuildAnnotate constructs the perf annotate invocation over the sample
// data produced by the record stage. Its stdout is the annotation report
// and is redirected into the run directory.
func BuildAnnotate(dir, dataFile string) Stage {
	return Stage{
		Name:       StageAnnotate,
		Spec:       CommandSpec{"perf", "annotate", "-i", dataFile},
		StdoutPath: filepath.Join(dir, AnnotateFileName),
	}
}

// BuildStat constructs the perf stat invocation. A malformed cpu range is
// reported as an error and fails only this stage.
//
// Shape: perf stat -a [-I <ms>] [-e e1,e2,...] [-C 0,1,2,3] [-A] plus the
// sleep/workload trailer. Unlike record, the event list is plain
// comma-joined; stat has no group sampling syntax.
func BuildStat(cfg *config.Config, dir string) (Stage, error) {
	spec := CommandSpec{"perf", "stat", "-a"}

	if *cfg.StatCountDeltas > 0 {
		spec = append(spec, "-I", strconv.Itoa(*cfg.StatCountDeltas))
	}
	if len(cfg.StatEvents) > 0 {
		spec = append(spec, "-e", strings.Join(cfg.StatEvents, ","))
	}
	if cfg.StatCPURange != config.DefaultStatCPURange {
		cpus, err := config.ParseCPURange(cfg.StatCPURange)
		if err != nil {
			return Stage{}, err
		}
		spec = append(spec, "-C", config.FormatCPUList(cpus))
	}
	if *cfg.StatAllThreads {
		spec = append(spec, "-A")
	}
	spec = appendWorkload(spec, *cfg.StatDuration, cfg.StatWorkload)

	return Stage{
		Name:        StageStat,
		Spec:        spec,
		StdoutPath:  filepath.Join(dir, StatFileName),
		MergeStderr: true,
	}, nil
}

// appendWorkload appends the trailing workload command: a timed sleep when a
// duration is configured, otherwise the configured workload tokens.
func appendWorkload(spec CommandSpec, duration int, workload config.Workload) CommandSpec {
	if duration > 0 {
		return append(spec, "sleep", strconv.Itoa(duration))
	}
	return append(spec, workload...)
}
