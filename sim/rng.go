package sim

import (
	"hash/fnv"
	"math/rand"
)

// Named random streams drawn by the workload generator.
const (
	SubsystemArrivals  = "arrivals"   // seeded with the workload seed itself
	SubsystemCookTimes = "cook_times" // seed ^ fnv1a64("cook_times")
)

// PartitionedRNG hands out one seeded *rand.Rand per named stream, so the
// number of draws taken from one stream never shifts another.
// Not safe for concurrent use.
type PartitionedRNG struct {
	seed    int64
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates the stream set for a workload seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{seed: seed, streams: make(map[string]*rand.Rand)}
}

// ForSubsystem returns the stream for name, creating it on first use.
// Repeated calls with the same name return the same instance.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	r, ok := p.streams[name]
	if !ok {
		r = rand.New(rand.NewSource(p.streamSeed(name)))
		p.streams[name] = r
	}
	return r
}

func (p *PartitionedRNG) streamSeed(name string) int64 {
	if name == SubsystemArrivals {
		return p.seed
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	return p.seed ^ int64(h.Sum64())
}
