package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sarchlab/cpusched/scheduling"
	"github.com/sarchlab/cpusched/sim"
)

const ganttCellWidth = 6

type ganttSlice struct {
	label      string
	start, end sim.VTime
}

// timeline returns the execution segments of all processes in chronological
// order, with the gaps between them marked idle.
func timeline(r *scheduling.Result) []ganttSlice {
	var segments []ganttSlice
	for _, p := range r.Processes {
		for _, i := range p.Intervals {
			segments = append(segments, ganttSlice{
				label: fmt.Sprintf("P%d", p.ID),
				start: i.Start,
				end:   i.End,
			})
		}
	}

	sort.Slice(segments, func(a, b int) bool {
		return segments[a].start < segments[b].start
	})

	var out []ganttSlice
	now := sim.VTime(0)
	for _, s := range segments {
		if s.start > now {
			out = append(out, ganttSlice{label: "idle", start: now, end: s.start})
		}

		out = append(out, s)
		now = s.end
	}

	return out
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}

	left := (width - len(s)) / 2
	right := width - len(s) - left

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// WriteGantt prints the CPU timeline, one cell per segment, with the segment
// boundaries below.
func WriteGantt(w io.Writer, r *scheduling.Result, opts Options) error {
	if err := heading(w, opts, "Gantt schedule"); err != nil {
		return err
	}

	slices := timeline(r)
	if len(slices) == 0 {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}

	var cells, times strings.Builder

	cells.WriteString("|")
	for _, s := range slices {
		label := center(s.label, ganttCellWidth)
		cells.WriteString(label + "|")
		fmt.Fprintf(&times, "%-*d", len(label)+1, s.start)
	}
	fmt.Fprintf(&times, "%d", slices[len(slices)-1].end)

	_, err := fmt.Fprintf(w, "%s\n%s\n", cells.String(), times.String())

	return err
}
