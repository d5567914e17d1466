package scheduling

import (
	"github.com/sarchlab/cpusched/process"
	"github.com/sarchlab/cpusched/sim"
)

// NonPreemptive runs the process chosen by its policy to completion before
// choosing again. FCFS and SJF are both NonPreemptive schedulers.
type NonPreemptive struct {
	schedulerBase

	policy SelectionPolicy
}

// NewFCFS creates a First-Come-First-Served scheduler.
func NewFCFS(clock *sim.Clock) *NonPreemptive {
	return &NonPreemptive{
		schedulerBase: newSchedulerBase("FCFS", clock),
		policy:        ArrivalOrder{},
	}
}

// NewSJF creates a non-preemptive Shortest-Job-First scheduler.
func NewSJF(clock *sim.Clock) *NonPreemptive {
	return &NonPreemptive{
		schedulerBase: newSchedulerBase("SJF", clock),
		policy:        ShortestRemaining{},
	}
}

// Schedule runs all the processes.
func (s *NonPreemptive) Schedule(
	procs []*process.Process,
) ([]process.Snapshot, error) {
	if err := s.start(procs); err != nil {
		return nil, err
	}

	for !s.done(procs) {
		i, ok := selectNext(procs, s.clock.CurrentTime(), s.policy)
		if !ok {
			s.clock.AdvanceIdle()
			continue
		}

		s.runSegment(procs[i], procs[i].Remaining)
	}

	return s.completed, nil
}
