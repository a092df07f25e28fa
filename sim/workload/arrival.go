package workload

import (
	"math/rand"
	"sort"
)

// ArrivalGenerator produces n non-decreasing arrival times starting near t=0.
type ArrivalGenerator interface {
	Arrivals(rng *rand.Rand, n int) []float64
}

// BurstyArrivals releases jobs in groups that share an arrival instant,
// separated by uniform gaps. Groups hold n / max(1, n/5) jobs; when that
// does not divide n, one extra shorter group carries the remainder.
type BurstyArrivals struct {
	MinGap, MaxGap float64
}

func (b *BurstyArrivals) Arrivals(rng *rand.Rand, n int) []float64 {
	if n <= 0 {
		return nil
	}
	bursts := max(1, n/5)
	size := max(1, n/bursts)
	times := make([]float64, 0, n)
	current := 0.0
	for len(times) < n {
		for k := 0; k < size && len(times) < n; k++ {
			times = append(times, current)
		}
		current += b.MinGap + rng.Float64()*(b.MaxGap-b.MinGap)
	}
	return times
}

// PoissonArrivals has exponentially distributed gaps with the given rate
// (jobs per unit time); the first job arrives after one gap.
type PoissonArrivals struct {
	Rate float64
}

func (p *PoissonArrivals) Arrivals(rng *rand.Rand, n int) []float64 {
	if n <= 0 {
		return nil
	}
	times := make([]float64, n)
	t := 0.0
	for i := range times {
		t += rng.ExpFloat64() / p.Rate
		times[i] = t
	}
	return times
}

// MixedArrivals draws n/2 bursty arrivals and the rest from a Poisson
// process, then merges them in time order.
type MixedArrivals struct {
	Bursty  BurstyArrivals
	Poisson PoissonArrivals
}

func (m *MixedArrivals) Arrivals(rng *rand.Rand, n int) []float64 {
	if n <= 0 {
		return nil
	}
	half := n / 2
	times := append(m.Bursty.Arrivals(rng, half), m.Poisson.Arrivals(rng, n-half)...)
	sort.Float64s(times)
	return times
}

// NewArrivalGenerator maps an arrival pattern name to its generator.
// Patterns are validated before reaching here; unknown names panic.
func NewArrivalGenerator(pattern string) ArrivalGenerator {
	switch pattern {
	case "bursty":
		return &BurstyArrivals{MinGap: 2.0, MaxGap: 5.0}
	case "poisson":
		return &PoissonArrivals{Rate: 1.0}
	case "mix":
		return &MixedArrivals{
			Bursty:  BurstyArrivals{MinGap: 2.0, MaxGap: 5.0},
			Poisson: PoissonArrivals{Rate: 0.7},
		}
	case "stress":
		return &PoissonArrivals{Rate: 2.0}
	default:
		panic("unhandled arrival pattern " + pattern)
	}
}
