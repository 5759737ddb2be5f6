package snapshotter

import (
	"context"

	"github.com/OpenByteDev/build-target/pkg/buildtarget"
	"github.com/OpenByteDev/build-target/pkg/header"
)

// Snapshotter is the interface that wraps the Measure method.
// Measure captures the build target with the provided context.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// Snapshot is a recorded view of the build target at one point in time.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	// Target holds every field the orchestrator reported.
	Target buildtarget.Target `json:"target" yaml:"target"`

	// Profile is the build profile. Nil when PROFILE was not set.
	Profile *buildtarget.Profile `json:"profile,omitempty" yaml:"profile,omitempty"`

	// Hints lists reported values that are not among the named variants.
	Hints []Hint `json:"hints,omitempty" yaml:"hints,omitempty"`
}

// Hint describes one unrecognized value.
type Hint struct {
	// Field is the target field the value came from, such as "arch".
	Field string `json:"field" yaml:"field"`
	// Value is the reported value after normalization.
	Value string `json:"value" yaml:"value"`
	// Suggestion is the closest named variant, if any is close enough.
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// NewSnapshot returns an empty Snapshot with its header initialized.
func NewSnapshot() *Snapshot {
	s := &Snapshot{}
	s.Set(Kind)
	return s
}
