package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/sarchlab/cpusched/scheduling"
)

// WriteTable prints the processes in input order as a table, with the
// averages in the footer.
func WriteTable(w io.Writer, r *scheduling.Result, opts Options) error {
	title := fmt.Sprintf("%s schedule", r.Algorithm)
	if r.Algorithm.NeedsQuantum() {
		title = fmt.Sprintf("%s schedule (quantum %d)", r.Algorithm, r.Quantum)
	}

	if err := heading(w, opts, title); err != nil {
		return err
	}

	rows := make([][]string, 0, len(r.Processes))
	for _, p := range r.Processes {
		rows = append(rows, []string{
			fmt.Sprintf("P%d", p.ID),
			fmt.Sprint(p.Arrival),
			fmt.Sprint(p.Burst),
			fmt.Sprint(p.Waiting),
			fmt.Sprint(p.Turnaround()),
			fmt.Sprint(p.Completion()),
			fmt.Sprint(len(p.Intervals)),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"ID", "Arrival", "Burst", "Wait", "Turnaround", "Exit", "Segments",
	})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Average\n%.*f", opts.Precision, r.AverageWaiting),
		fmt.Sprintf("Average\n%.*f", opts.Precision, r.AverageTurnaround()),
		fmt.Sprintf("Makespan\n%d", r.Makespan),
		fmt.Sprintf("CPU\n%.*f%%", opts.Precision, 100*r.CPUUtilization()),
	})
	table.Render()

	return nil
}
