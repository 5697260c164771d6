package perf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// Runner executes stages as child processes. It blocks until the child
// exits; cancelling the context kills the child so no capture outlives the
// tool itself. Stages are never retried.
type Runner struct {
	logger zerolog.Logger
}

// NewRunner creates a stage runner.
func NewRunner(logger zerolog.Logger) *Runner {
	return &Runner{
		logger: logger.With().Str("component", "stage_runner").Logger(),
	}
}

// Run executes the stage's argument vector directly, with no shell in
// between. A spawn failure and a non-zero exit status classify identically
// as stage failure; the captured stderr is carried in the result for
// diagnostics.
func (r *Runner) Run(ctx context.Context, stage Stage) StageResult {
	result := StageResult{Stage: stage.Name}

	if len(stage.Spec) == 0 {
		result.Err = fmt.Errorf("stage %s has an empty command", stage.Name)
		return result
	}

	cmd := exec.CommandContext(ctx, stage.Spec[0], stage.Spec[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if stage.StdoutPath != "" {
		f, err := os.Create(stage.StdoutPath)
		if err != nil {
			result.Err = fmt.Errorf("failed to create output file %s: %w", stage.StdoutPath, err)
			return result
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				r.logger.Warn().Err(cerr).Str("path", stage.StdoutPath).Msg("Failed to close stage output file")
			}
		}()
		cmd.Stdout = f
		if stage.MergeStderr {
			cmd.Stderr = f
		}
	}

	r.logger.Info().
		Str("stage", stage.Name).
		Strs("argv", stage.Spec).
		Msg("Executing stage")

	err := cmd.Run()

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		result.Err = fmt.Errorf("stage %s failed: %w", stage.Name, err)
		return result
	}

	result.Succeeded = true
	result.ArtifactPath = stage.ArtifactPath
	return result
}
