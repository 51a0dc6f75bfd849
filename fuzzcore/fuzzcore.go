// Package fuzzcore defines the seams between this module's core
// (instruction templates, parser, assembler, generator, mutator,
// ProgramInput) and the out-of-scope broker/corpus/scheduler machinery
// that drives a fuzzing campaign (spec.md §4.7, §1 non-goals).
//
// Nothing in this package runs a campaign; it only names the interfaces
// a concrete broker would implement against the core types. The one
// exception is fuzzcore/observer, which gives CoverageObserver a real,
// minimal body.
package fuzzcore

import (
	"context"

	"github.com/vusec-labs/riscv-inst-mutator/inst"
	"github.com/vusec-labs/riscv-inst-mutator/proginput"
)

// HasProgramInput is implemented by any corpus entry wrapping a
// ProgramInput, mirroring the original source's trait of the same name:
// mutators operate against the mutable view, never reparsing bytes.
type HasProgramInput interface {
	Instructions() inst.Program
	InstructionsMut() *inst.Program
}

// ExitKind is the result of one executor run.
type ExitKind int

const (
	ExitOK ExitKind = iota
	ExitCrash
	ExitTimeout
)

func (k ExitKind) String() string {
	switch k {
	case ExitOK:
		return "Ok"
	case ExitCrash:
		return "Crash"
	case ExitTimeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}

// Executor runs a target once against a program's assembled bytes and
// reports how it exited. Concrete executors (process-spawn, in-process
// harness, ...) are out of scope for the core; this is the seam a broker
// wires a real one into.
type Executor interface {
	Execute(ctx context.Context, targetBytes []byte) (ExitKind, error)
}

// CoverageObserver produces a per-execution coverage bitmap exported via
// a named shared-memory region, whose identifier is passed to the child
// through an environment variable. The core depends only on this
// observer's existence, never its contents.
type CoverageObserver interface {
	// Name is the shared-memory region identifier to hand the child
	// through the environment.
	Name() string
	// Snapshot returns the bitmap observed by the most recent execution.
	Snapshot() []byte
	// Reset clears the bitmap before the next execution.
	Reset()
	Close() error
}

// Corpus persists ProgramInput values, relying on the Serialize/
// Deserialize contract proginput.ProgramInput implements.
type Corpus interface {
	Add(p *proginput.ProgramInput) error
	Get(name string) (*proginput.ProgramInput, error)
	Len() int
}

// Cause is one parsed crash-artifact entry (see the causes package).
type Cause struct {
	Tag    string
	Suffix string
	Path   string
}

// CauseTracker summarizes crashing programs the core emits; the core
// itself never classifies a crash, it only produces the byte stream that
// leads to one.
type CauseTracker interface {
	Scan(dir string) ([]Cause, error)
}

// EngineConfig bundles the knobs an out-of-scope broker would thread
// through when wiring the core's pieces into a running campaign.
type EngineConfig struct {
	// Workers is the number of independent worker processes, one per
	// target CPU core (spec.md §5): purely descriptive here, since the
	// core has no internal parallelism of its own.
	Workers int
	// CorpusDir is where the (out-of-scope) corpus persists
	// ProgramInput values.
	CorpusDir string
	// CausesDir is the crash-artifact directory a CauseTracker scans.
	CausesDir string
}
