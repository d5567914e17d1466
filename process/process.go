// Package process defines the simulated process and the record of its
// execution.
package process

import (
	"errors"
	"fmt"
	"log"

	"github.com/sarchlab/cpusched/sim"
)

// ErrInvalidProcess is returned when a process cannot be simulated.
var ErrInvalidProcess = errors.New("invalid process")

// State is the scheduling state of a process at a simulated instant.
type State int

// The states a process goes through. Every process starts Pending and ends
// Completed.
const (
	Pending State = iota
	Ready
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Ready:
		return "Ready"
	case Running:
		return "Running"
	case Completed:
		return "Completed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// An Interval is a contiguous span [Start, End) during which a process
// occupies the CPU.
type Interval struct {
	Start sim.VTime `json:"start"`
	End   sim.VTime `json:"end"`
}

// Duration returns the length of the interval.
func (i Interval) Duration() sim.VTime {
	return i.End - i.Start
}

// A Process is the mutable run state of one simulated process. It is owned by
// exactly one scheduler during a run.
type Process struct {
	ID      int
	Arrival sim.VTime
	Burst   sim.VTime

	// Remaining is the CPU time still required. It never goes below 0.
	Remaining sim.VTime

	// ReadyAt is the time from which the process may be selected. It equals
	// Arrival until a preemptive scheduler stops the process part way, after
	// which it holds the end of the last segment.
	ReadyAt sim.VTime

	Waiting   sim.VTime
	Intervals []Interval
}

// New creates a process that has not run yet.
func New(id int, arrival, burst sim.VTime) (*Process, error) {
	p := &Process{
		ID:        id,
		Arrival:   arrival,
		Burst:     burst,
		Remaining: burst,
		ReadyAt:   arrival,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(id int, arrival, burst sim.VTime) *Process {
	p, err := New(id, arrival, burst)
	if err != nil {
		panic(err)
	}

	return p
}

// Validate checks the fields set from the input.
func (p *Process) Validate() error {
	if p.Arrival < 0 {
		return fmt.Errorf("%w: P%d has negative arrival time %d",
			ErrInvalidProcess, p.ID, p.Arrival)
	}

	if p.Burst <= 0 {
		return fmt.Errorf("%w: P%d has non-positive burst time %d",
			ErrInvalidProcess, p.ID, p.Burst)
	}

	return nil
}

// Finished tells if the process needs no more CPU time.
func (p *Process) Finished() bool {
	return p.Remaining <= 0
}

// EligibleAt tells if the process can be selected at the given time.
func (p *Process) EligibleAt(now sim.VTime) bool {
	return p.ReadyAt <= now && !p.Finished()
}

// State returns the state of the process at the given time. The running flag
// tells whether the process is the one occupying the CPU.
func (p *Process) State(now sim.VTime, running bool) State {
	switch {
	case p.Finished():
		return Completed
	case running:
		return Running
	case p.ReadyAt <= now:
		return Ready
	default:
		return Pending
	}
}

// Dispatch puts the process on the CPU at the given time. It charges the
// waiting time accumulated since ReadyAt and opens a new empty interval.
func (p *Process) Dispatch(now sim.VTime) {
	if state := p.State(now, false); state != Ready {
		log.Panicf("P%d dispatched at %d while %s", p.ID, now, state)
	}

	p.Waiting += now - p.ReadyAt
	p.Intervals = append(p.Intervals, Interval{Start: now, End: now})
}

// Execute runs the dispatched process for at most duration ticks, extending
// its open interval. It returns the time actually consumed.
func (p *Process) Execute(duration sim.VTime) sim.VTime {
	if len(p.Intervals) == 0 {
		log.Panicf("P%d executed without being dispatched", p.ID)
	}

	if duration > p.Remaining {
		duration = p.Remaining
	}

	p.Remaining -= duration
	p.Intervals[len(p.Intervals)-1].End += duration

	return duration
}

// Yield takes the process off the CPU. It becomes eligible again at the end
// of the segment it just ran.
func (p *Process) Yield() {
	p.ReadyAt = p.Intervals[len(p.Intervals)-1].End
}

// Run dispatches the process at start, executes it for at most duration
// ticks and yields. It returns the time the segment ends.
func (p *Process) Run(start, duration sim.VTime) sim.VTime {
	p.Dispatch(start)
	used := p.Execute(duration)
	p.Yield()

	return start + used
}

// Snapshot returns an immutable copy of the process.
func (p *Process) Snapshot() Snapshot {
	intervals := make([]Interval, len(p.Intervals))
	copy(intervals, p.Intervals)

	return Snapshot{
		ID:        p.ID,
		Arrival:   p.Arrival,
		Burst:     p.Burst,
		Remaining: p.Remaining,
		Waiting:   p.Waiting,
		Intervals: intervals,
	}
}

// Clone returns fresh copies of the given processes with their run state
// reset, so that a run never mutates its caller's input.
func Clone(procs []*Process) []*Process {
	out := make([]*Process, len(procs))
	for i, p := range procs {
		out[i] = &Process{
			ID:        p.ID,
			Arrival:   p.Arrival,
			Burst:     p.Burst,
			Remaining: p.Burst,
			ReadyAt:   p.Arrival,
		}
	}

	return out
}
