package scheduling

import (
	"github.com/sarchlab/cpusched/process"
	"github.com/sarchlab/cpusched/sim"
)

// procs builds processes from (id, arrival, burst) triples.
func procs(triples ...[3]int) []*process.Process {
	out := make([]*process.Process, len(triples))
	for i, t := range triples {
		out[i] = process.MustNew(t[0], sim.VTime(t[1]), sim.VTime(t[2]))
	}

	return out
}

func iv(start, end int) process.Interval {
	return process.Interval{Start: sim.VTime(start), End: sim.VTime(end)}
}

func ids(snapshots []process.Snapshot) []int {
	out := make([]int, len(snapshots))
	for i, s := range snapshots {
		out[i] = s.ID
	}

	return out
}

func byID(snapshots []process.Snapshot) map[int]process.Snapshot {
	out := make(map[int]process.Snapshot, len(snapshots))
	for _, s := range snapshots {
		out[s.ID] = s
	}

	return out
}

// hookRecorder keeps every hook context it sees.
type hookRecorder struct {
	ctxs []sim.HookCtx
}

func (h *hookRecorder) Func(ctx sim.HookCtx) {
	h.ctxs = append(h.ctxs, ctx)
}

func (h *hookRecorder) count(pos *sim.HookPos) int {
	n := 0
	for _, ctx := range h.ctxs {
		if ctx.Pos == pos {
			n++
		}
	}

	return n
}

func (h *hookRecorder) events(pos *sim.HookPos) []Event {
	var out []Event
	for _, ctx := range h.ctxs {
		if ctx.Pos == pos {
			out = append(out, ctx.Item.(Event))
		}
	}

	return out
}
