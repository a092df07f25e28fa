package workload

import (
	"math"
	"math/rand"
)

// CookTimeDistribution produces n strictly positive cook times.
type CookTimeDistribution interface {
	CookTimes(rng *rand.Rand, n int) []float64
}

// UniformCookTimes draws from U[Min, Max).
type UniformCookTimes struct {
	Min, Max float64
}

func (u *UniformCookTimes) CookTimes(rng *rand.Rand, n int) []float64 {
	out := make([]float64, max(n, 0))
	for i := range out {
		out[i] = u.Min + rng.Float64()*(u.Max-u.Min)
	}
	return out
}

// ExponentialTailCookTimes draws Exp(Mean) clamped to [Min, Max]:
// mostly short jobs with a long tail.
type ExponentialTailCookTimes struct {
	Mean     float64
	Min, Max float64
}

func (e *ExponentialTailCookTimes) CookTimes(rng *rand.Rand, n int) []float64 {
	out := make([]float64, max(n, 0))
	for i := range out {
		out[i] = math.Min(e.Max, math.Max(e.Min, rng.ExpFloat64()*e.Mean))
	}
	return out
}

// MixedCookTimes concatenates n/2 uniform draws with n-n/2 exponential-tail
// draws and shuffles the result.
type MixedCookTimes struct {
	Uniform UniformCookTimes
	Tail    ExponentialTailCookTimes
}

func (m *MixedCookTimes) CookTimes(rng *rand.Rand, n int) []float64 {
	if n <= 0 {
		return nil
	}
	half := n / 2
	out := append(m.Uniform.CookTimes(rng, half), m.Tail.CookTimes(rng, n-half)...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// NewCookTimeDistribution maps a distribution name to its sampler.
// Names are validated before reaching here; unknown names panic.
func NewCookTimeDistribution(name string) CookTimeDistribution {
	switch name {
	case "uniform":
		return &UniformCookTimes{Min: 0.5, Max: 4.0}
	case "expon_tail":
		return &ExponentialTailCookTimes{Mean: 1.5, Min: 0.2, Max: 12.0}
	case "mix":
		return &MixedCookTimes{
			Uniform: UniformCookTimes{Min: 0.5, Max: 3.0},
			Tail:    ExponentialTailCookTimes{Mean: 2.0, Min: 0.2, Max: 15.0},
		}
	default:
		panic("unhandled cook time distribution " + name)
	}
}
