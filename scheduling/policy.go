package scheduling

import (
	"github.com/sarchlab/cpusched/process"
	"github.com/sarchlab/cpusched/sim"
)

// A SelectionPolicy orders the processes that compete for the CPU.
type SelectionPolicy interface {
	// Prefer tells if candidate should run before current.
	Prefer(candidate, current *process.Process) bool
}

// ArrivalOrder prefers the process that arrived first.
type ArrivalOrder struct{}

// Prefer returns true if the candidate arrived strictly earlier.
func (ArrivalOrder) Prefer(candidate, current *process.Process) bool {
	return candidate.Arrival < current.Arrival
}

// ShortestRemaining prefers the process with the least remaining CPU time,
// then the one that has been ready the longest.
type ShortestRemaining struct{}

// Prefer returns true if the candidate needs strictly less time, or the same
// time but became ready strictly earlier.
func (ShortestRemaining) Prefer(candidate, current *process.Process) bool {
	if candidate.Remaining != current.Remaining {
		return candidate.Remaining < current.Remaining
	}

	return candidate.ReadyAt < current.ReadyAt
}

// selectNext scans the processes in input order and returns the index of the
// eligible process the policy prefers. A candidate only replaces the current
// choice when it is strictly better, so ties go to the process found first.
func selectNext(
	procs []*process.Process,
	now sim.VTime,
	policy SelectionPolicy,
) (int, bool) {
	chosen := -1

	for i, p := range procs {
		if !p.EligibleAt(now) {
			continue
		}

		if chosen < 0 || policy.Prefer(p, procs[chosen]) {
			chosen = i
		}
	}

	return chosen, chosen >= 0
}

func anyEligible(procs []*process.Process, now sim.VTime) bool {
	for _, p := range procs {
		if p.EligibleAt(now) {
			return true
		}
	}

	return false
}
