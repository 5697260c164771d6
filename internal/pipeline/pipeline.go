// Package pipeline sequences the record, annotate and stat stages of one
// profiling run and applies the partial-failure policy between them.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/perfrun/perfrun/internal/config"
	"github.com/perfrun/perfrun/internal/hostinfo"
	"github.com/perfrun/perfrun/internal/perf"
	"github.com/perfrun/perfrun/internal/rundir"
)

// State tracks pipeline progress. A run is successful iff it reaches
// StateDone; StateAborted is terminal and reachable up to and including the
// record stage. Annotate and stat failures do not abort a run.
type State int

const (
	StateInit State = iota
	StateConfigLoaded
	StateConfigValidated
	StateRecorded
	StateAnnotated
	StateStated
	StateDone
	StateAborted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateConfigLoaded:
		return "config_loaded"
	case StateConfigValidated:
		return "config_validated"
	case StateRecorded:
		return "recorded"
	case StateAnnotated:
		return "annotated"
	case StateStated:
		return "stated"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// StageRunner executes one stage to completion. Satisfied by *perf.Runner;
// tests substitute a fake.
type StageRunner interface {
	Run(ctx context.Context, stage perf.Stage) perf.StageResult
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithClock overrides the time source used for run directory naming and the
// snapshot timestamp.
func WithClock(clock func() time.Time) Option {
	return func(p *Pipeline) {
		p.clock = clock
	}
}

// Pipeline owns one run end to end: configuration, run directory, the three
// stages and the final config snapshot. Stages run strictly sequentially;
// perf stages contend for the same hardware counters and cannot overlap
// meaningfully within one invocation.
type Pipeline struct {
	configPath string
	runner     StageRunner
	logger     zerolog.Logger
	clock      func() time.Time

	runID string
	state State
	dir   string
}

// New creates a pipeline for the configuration file at configPath.
func New(configPath string, runner StageRunner, logger zerolog.Logger, opts ...Option) *Pipeline {
	runID := uuid.New().String()
	p := &Pipeline{
		configPath: configPath,
		runner:     runner,
		logger: logger.With().
			Str("component", "pipeline").
			Str("run_id", runID).
			Logger(),
		clock: time.Now,
		runID: runID,
		state: StateInit,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the pipeline's current state.
func (p *Pipeline) State() State {
	return p.state
}

// RunDir returns the run's artifact directory, empty until prepared.
func (p *Pipeline) RunDir() string {
	return p.dir
}

// Run drives the pipeline to Done or Aborted. The returned error is non-nil
// iff the run aborted; annotate and stat failures are logged and do not
// surface here. Cancelling ctx kills whichever child process is running.
func (p *Pipeline) Run(ctx context.Context) error {
	cfg, err := config.Load(p.configPath)
	if err != nil {
		return p.abort(err)
	}
	p.state = StateConfigLoaded
	p.logger.Info().Str("path", p.configPath).Msg("Configuration loaded")

	if err := cfg.Validate(); err != nil {
		return p.abort(fmt.Errorf("invalid configuration: %w", err))
	}
	cfg.ApplyDefaults()
	p.state = StateConfigValidated

	dir, err := rundir.Prepare(cfg.OutputDirectory, p.clock())
	if err != nil {
		return p.abort(err)
	}
	p.dir = dir
	p.logger.Info().Str("dir", dir).Msg("Created run directory")

	hostinfo.LogTopology(p.logger)
	p.warnCPURangeBounds(cfg)

	record := p.runner.Run(ctx, perf.BuildRecord(cfg, dir))
	if !record.Succeeded {
		p.logger.Error().
			Err(record.Err).
			Str("stderr", record.Stderr).
			Msg("perf record failed")
		return p.abort(record.Err)
	}
	p.logger.Info().Msg("perf record completed")
	if err := rundir.WriteStageLog(dir, perf.RecordLogName, record.Stdout, record.Stderr); err != nil {
		p.logger.Warn().Err(err).Msg("Failed to write record output log")
	}
	p.state = StateRecorded

	if cfg.UseAnnotation {
		annotate := p.runner.Run(ctx, perf.BuildAnnotate(dir, record.ArtifactPath))
		if !annotate.Succeeded {
			p.logger.Warn().
				Err(annotate.Err).
				Str("stderr", annotate.Stderr).
				Msg("perf annotate failed, continuing")
		} else {
			p.logger.Info().Msg("perf annotate completed")
		}
	} else {
		p.logger.Info().Msg("Annotation disabled, skipping")
	}
	p.state = StateAnnotated

	if stat, err := perf.BuildStat(cfg, dir); err != nil {
		p.logger.Warn().Err(err).Msg("Skipping perf stat: invalid cpu range")
	} else if result := p.runner.Run(ctx, stat); !result.Succeeded {
		p.logger.Warn().
			Err(result.Err).
			Str("stderr", result.Stderr).
			Msg("perf stat failed, continuing")
	} else {
		p.logger.Info().Msg("perf stat completed")
	}
	p.state = StateStated

	snapshot := rundir.Snapshot{
		RunID:     p.runID,
		CreatedAt: p.clock(),
		Config:    *cfg,
	}
	if err := rundir.PersistConfigSnapshot(dir, snapshot); err != nil {
		p.logger.Warn().Err(err).Msg("Failed to persist config snapshot")
	}
	p.state = StateDone
	p.logger.Info().Str("dir", dir).Msg("Performance analysis completed")
	return nil
}

func (p *Pipeline) abort(err error) error {
	p.state = StateAborted
	return err
}

// warnCPURangeBounds flags a cpu range that reaches past the host's logical
// CPUs. perf reports the missing counters itself, so this stays a warning.
func (p *Pipeline) warnCPURangeBounds(cfg *config.Config) {
	if cfg.StatCPURange == config.DefaultStatCPURange {
		return
	}
	cpus, err := config.ParseCPURange(cfg.StatCPURange)
	if err != nil {
		// Reported when the stat stage is built.
		return
	}
	cores, err := hostinfo.LogicalCores()
	if err != nil {
		return
	}
	if highest := cpus[len(cpus)-1]; highest >= cores {
		p.logger.Warn().
			Int("cpu", highest).
			Int("logical_cpus", cores).
			Msg("cpu range extends past the host's logical CPUs")
	}
}
