// Implements the FIFO wait queue backing the FCFS scheduler.
// Jobs are enqueued on admission, in ready-time order.

package sim

// FCFSScheduler is a First-Come-First-Served queue of admitted jobs.
// Ties are broken by admission order: first pushed, first popped.
type FCFSScheduler struct {
	queue []*Job // FIFO queue of jobs
}

// Push adds a job to the back of the queue.
func (q *FCFSScheduler) Push(j *Job) {
	if j == nil {
		panic("FCFSScheduler.Push: job must not be nil")
	}
	q.queue = append(q.queue, j)
}

// Pop removes the job at the front of the queue, or returns nil if empty.
func (q *FCFSScheduler) Pop() *Job {
	if len(q.queue) == 0 {
		return nil
	}
	next := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	return next
}

// Requeue inserts a job at the front of the queue.
// Used when a popped job loses the race for the stove and must keep its place.
func (q *FCFSScheduler) Requeue(j *Job) {
	if j == nil {
		panic("FCFSScheduler.Requeue: job must not be nil")
	}
	q.queue = append([]*Job{j}, q.queue...)
}

// Len returns the number of admitted jobs waiting.
func (q *FCFSScheduler) Len() int {
	return len(q.queue)
}
