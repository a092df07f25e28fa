package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/stovesim/stovesim/sim"
)

// GenerateJobs creates a job sequence from a WorkloadSpec.
// Deterministic given the same spec and seed.
// Returns jobs sorted by ArrivalTime with sequential IDs starting at 1.
func GenerateJobs(spec *WorkloadSpec) ([]*sim.Job, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}

	rng := sim.NewPartitionedRNG(spec.Seed)
	arrivals := NewArrivalGenerator(spec.ArrivalPattern).Arrivals(rng.ForSubsystem(sim.SubsystemArrivals), spec.NumJobs)
	cookTimes := NewCookTimeDistribution(spec.CookTimeDist).CookTimes(rng.ForSubsystem(sim.SubsystemCookTimes), spec.NumJobs)
	if len(arrivals) != spec.NumJobs || len(cookTimes) != spec.NumJobs {
		panic(fmt.Sprintf("generator produced %d arrivals and %d cook times for %d jobs",
			len(arrivals), len(cookTimes), spec.NumJobs))
	}

	jobs := make([]*sim.Job, spec.NumJobs)
	for i := range jobs {
		jobs[i] = sim.NewJob(i+1, arrivals[i], cookTimes[i], spec.PrepTime)
	}
	logrus.Debugf("Generated %d jobs (arrival=%s, cook=%s, seed=%d)",
		len(jobs), spec.ArrivalPattern, spec.CookTimeDist, spec.Seed)
	return jobs, nil
}
