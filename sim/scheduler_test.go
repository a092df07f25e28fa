package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drainIDs(s Scheduler) []int {
	var ids []int
	for s.Len() > 0 {
		ids = append(ids, s.Pop().ID)
	}
	return ids
}

func TestSJFScheduler_SortsByCookTimeAscending(t *testing.T) {
	// GIVEN jobs admitted longest first
	s := &SJFScheduler{}
	s.Push(NewJob(1, 0, 5, 0))
	s.Push(NewJob(2, 0, 2, 0))
	s.Push(NewJob(3, 0, 3.5, 0))

	// THEN shortest cook time comes out first
	assert.Equal(t, []int{2, 3, 1}, drainIDs(s))
}

func TestSJFScheduler_TieBreakByID(t *testing.T) {
	// GIVEN equal cook times admitted in descending id order
	s := &SJFScheduler{}
	s.Push(NewJob(9, 0, 2, 0))
	s.Push(NewJob(4, 0, 2, 0))
	s.Push(NewJob(6, 0, 2, 0))

	// THEN lowest id wins
	assert.Equal(t, []int{4, 6, 9}, drainIDs(s))
}

func TestSJFScheduler_AdmissionOrderIrrelevant(t *testing.T) {
	orders := [][]int{{1, 2, 3, 4}, {4, 3, 2, 1}, {2, 4, 1, 3}}
	cook := map[int]float64{1: 3, 2: 1, 3: 3, 4: 2}
	for _, order := range orders {
		s := &SJFScheduler{}
		for _, id := range order {
			s.Push(NewJob(id, 0, cook[id], 0))
		}
		assert.Equal(t, []int{2, 4, 1, 3}, drainIDs(s), "admission order %v", order)
	}
}

func TestSJFScheduler_Requeue_RestoresPriority(t *testing.T) {
	s := &SJFScheduler{}
	s.Push(NewJob(1, 0, 1, 0))
	s.Push(NewJob(2, 0, 2, 0))

	j := s.Pop()
	s.Requeue(j)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{1, 2}, drainIDs(s))
}

func TestSJFScheduler_EmptyPop_ReturnsNil(t *testing.T) {
	s := &SJFScheduler{}
	assert.Nil(t, s.Pop())
}

func TestScheduler_AnyPolicy_PreservesAllJobs(t *testing.T) {
	// Pop must not add, remove or duplicate jobs
	for _, name := range []string{"fcfs", "sjf"} {
		t.Run(name, func(t *testing.T) {
			s := NewScheduler(name)
			for id := 1; id <= 5; id++ {
				s.Push(NewJob(id, 0, float64(6-id), 0))
			}
			ids := drainIDs(s)
			assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, ids)
		})
	}
}

func TestNewScheduler_ValidNames_ReturnsCorrectType(t *testing.T) {
	assert.IsType(t, &FCFSScheduler{}, NewScheduler(""))
	assert.IsType(t, &FCFSScheduler{}, NewScheduler("fcfs"))
	assert.IsType(t, &SJFScheduler{}, NewScheduler("sjf"))
}

func TestNewScheduler_UnknownName_Panics(t *testing.T) {
	assert.Panics(t, func() { NewScheduler("round-robin") })
	assert.False(t, IsValidScheduler("round-robin"))
	assert.True(t, IsValidScheduler("sjf"))
}
