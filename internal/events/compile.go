// Package events defines the events published while compiling a schema.
//
// Events of one run share the run id stored in the context by reqid.
package events

import "time"

// CompileStart is emitted before schema sources are loaded.
type CompileStart struct {
	Command string
	Root    string
	Files   []string
}

// SourcesLoaded is emitted once the schema sources have been parsed.
type SourcesLoaded struct {
	Sources  []string
	Duration time.Duration
}

// CompileFinish is emitted after lowering, whether or not it succeeded.
// Causes counts the diagnostics of a failed lowering; Err is set for any
// failure, including load and parse errors.
type CompileFinish struct {
	Command  string
	Types    int
	Unions   int
	Causes   int
	Err      error
	Duration time.Duration
}
