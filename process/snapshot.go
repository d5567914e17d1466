package process

import "github.com/sarchlab/cpusched/sim"

// A Snapshot is the state of a process copied at one instant, usually the
// instant it completes.
type Snapshot struct {
	ID        int        `json:"id"`
	Arrival   sim.VTime  `json:"arrival"`
	Burst     sim.VTime  `json:"burst"`
	Remaining sim.VTime  `json:"remaining"`
	Waiting   sim.VTime  `json:"waiting"`
	Intervals []Interval `json:"intervals"`
}

// ServiceTime returns the CPU time the process received.
func (s Snapshot) ServiceTime() sim.VTime {
	var total sim.VTime
	for _, i := range s.Intervals {
		total += i.Duration()
	}

	return total
}

// Completion returns the end of the last interval, or the arrival time if the
// process never ran.
func (s Snapshot) Completion() sim.VTime {
	if len(s.Intervals) == 0 {
		return s.Arrival
	}

	return s.Intervals[len(s.Intervals)-1].End
}

// Turnaround returns the time from arrival to completion.
func (s Snapshot) Turnaround() sim.VTime {
	return s.Completion() - s.Arrival
}
