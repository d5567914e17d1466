package cmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/sarchlab/cpusched/scheduling"
	"github.com/spf13/cobra"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the supported scheduling algorithms.",
	Long: "List the supported scheduling algorithms with the codes used in " +
		"the first line of workload files.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		listAlgorithms(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
}

func listAlgorithms(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Code", "Name", "Quantum", "Description"})

	for _, a := range scheduling.Algorithms() {
		quantum := "no"
		if a.NeedsQuantum() {
			quantum = "yes"
		}

		table.Append([]string{
			fmt.Sprint(int(a)), a.String(), quantum, a.Description(),
		})
	}

	table.Render()
}
