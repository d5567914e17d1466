package scheduling

import (
	"github.com/sarchlab/cpusched/process"
	"github.com/sarchlab/cpusched/sim"
)

// Result is the outcome of one run.
type Result struct {
	RunID     string    `json:"run_id,omitempty"`
	Algorithm Algorithm `json:"algorithm"`
	Quantum   sim.VTime `json:"quantum,omitempty"`

	// Completed lists the processes in the order they completed.
	Completed []process.Snapshot `json:"completed"`

	// Processes lists the same processes in input order.
	Processes []process.Snapshot `json:"processes"`

	AverageWaiting float64   `json:"average_waiting"`
	Makespan       sim.VTime `json:"makespan"`
	BusyTime       sim.VTime `json:"busy_time"`
}

// Aggregate builds the result of a run from the final state of the processes
// in input order and the snapshots in completion order. The average waiting
// time of an empty run is 0.
func Aggregate(
	algorithm Algorithm,
	quantum sim.VTime,
	procs []*process.Process,
	completed []process.Snapshot,
	busyTime sim.VTime,
) *Result {
	r := &Result{
		Algorithm: algorithm,
		Completed: completed,
		Processes: make([]process.Snapshot, len(procs)),
		BusyTime:  busyTime,
	}

	if algorithm.NeedsQuantum() {
		r.Quantum = quantum
	}

	var totalWaiting sim.VTime
	for i, p := range procs {
		s := p.Snapshot()
		r.Processes[i] = s
		totalWaiting += s.Waiting

		if s.Completion() > r.Makespan {
			r.Makespan = s.Completion()
		}
	}

	if len(procs) > 0 {
		r.AverageWaiting = float64(totalWaiting) / float64(len(procs))
	}

	return r
}

// AverageTurnaround returns the mean time from arrival to completion.
func (r *Result) AverageTurnaround() float64 {
	if len(r.Processes) == 0 {
		return 0
	}

	var total sim.VTime
	for _, p := range r.Processes {
		total += p.Turnaround()
	}

	return float64(total) / float64(len(r.Processes))
}

// IdleTime returns the time the CPU had nothing to run before the last
// completion.
func (r *Result) IdleTime() sim.VTime {
	return r.Makespan - r.BusyTime
}

// CPUUtilization returns the busy fraction of the makespan.
func (r *Result) CPUUtilization() float64 {
	if r.Makespan == 0 {
		return 0
	}

	return float64(r.BusyTime) / float64(r.Makespan)
}

// Process returns the snapshot of the process with the given ID.
func (r *Result) Process(id int) (process.Snapshot, bool) {
	for _, p := range r.Processes {
		if p.ID == id {
			return p, true
		}
	}

	return process.Snapshot{}, false
}
