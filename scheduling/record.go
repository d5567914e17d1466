package scheduling

import (
	"github.com/sarchlab/cpusched/datarecording"
	"github.com/sarchlab/cpusched/sim"
)

type runTableEntry struct {
	RunID          string
	Algorithm      string
	Quantum        sim.VTime
	NumProcesses   int
	AverageWaiting float64
	Makespan       sim.VTime
	BusyTime       sim.VTime
}

type processTableEntry struct {
	RunID      string
	ProcessID  int
	Arrival    sim.VTime
	Burst      sim.VTime
	Waiting    sim.VTime
	Completion sim.VTime
	Segments   int
}

// RecordResult writes the summary of a run into the "runs" table and one row
// per process into the "processes" table. It does not flush the recorder.
func RecordResult(recorder datarecording.DataRecorder, r *Result) {
	recorder.CreateTable("runs", runTableEntry{})
	recorder.CreateTable("processes", processTableEntry{})

	recorder.InsertData("runs", runTableEntry{
		RunID:          r.RunID,
		Algorithm:      r.Algorithm.String(),
		Quantum:        r.Quantum,
		NumProcesses:   len(r.Processes),
		AverageWaiting: r.AverageWaiting,
		Makespan:       r.Makespan,
		BusyTime:       r.BusyTime,
	})

	for _, p := range r.Processes {
		recorder.InsertData("processes", processTableEntry{
			RunID:      r.RunID,
			ProcessID:  p.ID,
			Arrival:    p.Arrival,
			Burst:      p.Burst,
			Waiting:    p.Waiting,
			Completion: p.Completion(),
			Segments:   len(p.Intervals),
		})
	}
}
