// Package perf builds and executes the external perf tool invocations that
// make up a profiling run: record, annotate and stat.
package perf

// CommandSpec is one external-process argument vector: program name followed
// by its arguments. It is built once and consumed once; it is never handed
// to a shell.
type CommandSpec []string

// Stage describes one external-tool invocation and how its output is routed.
type Stage struct {
	// Name identifies the stage (record, annotate, stat).
	Name string
	// Spec is the argument vector to execute.
	Spec CommandSpec
	// StdoutPath, when set, redirects the child's stdout into this file
	// instead of capturing it in memory.
	StdoutPath string
	// MergeStderr interleaves stderr with stdout into the same destination.
	MergeStderr bool
	// ArtifactPath is the binary sample file the stage produces, if any.
	ArtifactPath string
}

// StageResult is the outcome of executing one Stage.
type StageResult struct {
	Stage     string
	Succeeded bool
	// Stdout and Stderr hold the captured output. A stream redirected to a
	// file is empty here.
	Stdout string
	Stderr string
	// ArtifactPath is carried over from the Stage on success.
	ArtifactPath string
	// Err is the spawn or exit error on failure.
	Err error
}
