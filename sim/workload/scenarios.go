package workload

import (
	"github.com/stovesim/stovesim/sim"
)

// Scenario is a named workload preset.
type Scenario struct {
	Name string       `yaml:"name"`
	Spec WorkloadSpec `yaml:"spec"`
}

// Variant is a named scheduler/semaphore combination.
type Variant struct {
	Name         string `yaml:"name"`
	Scheduler    string `yaml:"scheduler"`
	UseSemaphore bool   `yaml:"use_semaphore"`
}

// RunConfig builds the simulator configuration for this variant.
func (v Variant) RunConfig(numWorkers int) sim.RunConfig {
	return sim.NewRunConfig(numWorkers, v.Scheduler, v.UseSemaphore)
}

// BuiltinScenarios returns the four stock workloads, in reporting order.
func BuiltinScenarios() []Scenario {
	return []Scenario{
		{Name: "bursty", Spec: WorkloadSpec{NumJobs: 40, ArrivalPattern: "bursty", CookTimeDist: "mix", Seed: 123}},
		{Name: "poisson", Spec: WorkloadSpec{NumJobs: 60, ArrivalPattern: "poisson", CookTimeDist: "expon_tail", Seed: 123}},
		{Name: "mix", Spec: WorkloadSpec{NumJobs: 50, ArrivalPattern: "mix", CookTimeDist: "mix", Seed: 123}},
		{Name: "stress", Spec: WorkloadSpec{NumJobs: 120, ArrivalPattern: "stress", CookTimeDist: "expon_tail", Seed: 123}},
	}
}

// BuiltinVariants returns variants A-D: every scheduler with and without the semaphore.
func BuiltinVariants() []Variant {
	return []Variant{
		{Name: "A_FCFS_no_sem", Scheduler: "fcfs", UseSemaphore: false},
		{Name: "B_FCFS_sem", Scheduler: "fcfs", UseSemaphore: true},
		{Name: "C_SJF_no_sem", Scheduler: "sjf", UseSemaphore: false},
		{Name: "D_SJF_sem", Scheduler: "sjf", UseSemaphore: true},
	}
}

// FindScenario returns the scenario with the given name, if present.
func FindScenario(scenarios []Scenario, name string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// FindVariant returns the variant with the given name, if present.
func FindVariant(variants []Variant, name string) (Variant, bool) {
	for _, v := range variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}
