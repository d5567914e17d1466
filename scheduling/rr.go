package scheduling

import (
	"github.com/sarchlab/cpusched/process"
	"github.com/sarchlab/cpusched/sim"
)

// RoundRobin gives each process at most one quantum per turn. Turns follow a
// fixed rotation over the input order rather than a ready queue: the
// rotation moves on after every visit, and the clock only idles when no
// process at all is eligible.
type RoundRobin struct {
	schedulerBase

	quantum sim.VTime
}

// NewRoundRobin creates a Round-Robin scheduler. The quantum must be
// positive; use the Builder to get the validation as an error.
func NewRoundRobin(clock *sim.Clock, quantum sim.VTime) *RoundRobin {
	if quantum <= 0 {
		panic("quantum must be positive")
	}

	return &RoundRobin{
		schedulerBase: newSchedulerBase("RR", clock),
		quantum:       quantum,
	}
}

// Quantum returns the time slice of the scheduler.
func (s *RoundRobin) Quantum() sim.VTime {
	return s.quantum
}

// Schedule runs all the processes.
func (s *RoundRobin) Schedule(
	procs []*process.Process,
) ([]process.Snapshot, error) {
	if err := s.start(procs); err != nil {
		return nil, err
	}

	curr := 0
	for !s.done(procs) {
		p := procs[curr]
		now := s.clock.CurrentTime()

		switch {
		case p.EligibleAt(now):
			s.runSegment(p, s.quantum)
		case p.Finished(), anyEligible(procs, now):
			// Give the next process in the rotation a chance.
		default:
			s.clock.AdvanceIdle()
			continue
		}

		curr = (curr + 1) % len(procs)
	}

	return s.completed, nil
}
