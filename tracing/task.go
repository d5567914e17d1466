package tracing

import "github.com/sarchlab/cpusched/sim"

// A Task is a unit of work reported by a domain. For schedulers, a task is one
// execution segment of one process.
type Task struct {
	ID        string      `json:"id"`
	Kind      string      `json:"kind"`
	What      string      `json:"what"`
	Where     string      `json:"where"`
	StartTime sim.VTime   `json:"start_time"`
	EndTime   sim.VTime   `json:"end_time"`
	Detail    interface{} `json:"-"`
}

// TaskFilter is a function that can filter interesting tasks. If this function
// returns true, the task is considered useful.
type TaskFilter func(t Task) bool
