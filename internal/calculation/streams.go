package calculation

import (
	"fmt"
	"hash/fnv"
)

// SimulationKey identifies a reproducible simulation run.
// Two runs with the same key and configuration produce identical paths.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// StreamPath returns the stream name for simulation path i.
func StreamPath(i int) string {
	return fmt.Sprintf("path_%d", i)
}

// PathStreams derives an independent generator per simulation path.
//
// Derivation formula: masterSeed XOR fnv1a64("path_<index>").
// A path's stream depends only on the key and its index, never on the order
// in which paths are scheduled, so paths may run on any goroutine.
type PathStreams struct {
	key SimulationKey
}

// NewPathStreams creates a PathStreams for a SimulationKey.
func NewPathStreams(key SimulationKey) *PathStreams {
	return &PathStreams{key: key}
}

// ForPath returns a fresh generator for simulation path i. Calling it twice
// with the same index restarts the same stream.
func (p *PathStreams) ForPath(i int) *SeededGenerator {
	return NewSeededGenerator(p.DeriveSeed(i))
}

// DeriveSeed returns the seed used for simulation path i.
func (p *PathStreams) DeriveSeed(i int) int64 {
	return int64(p.key) ^ fnv1a64(StreamPath(i))
}

// Key returns the SimulationKey used to create this PathStreams.
func (p *PathStreams) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
