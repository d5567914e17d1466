// Package cmd provides the command-line interface of cpusched.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cpusched",
	Short: "cpusched simulates CPU scheduling algorithms.",
	Long: `cpusched simulates how FCFS, SJF, SRTF and Round-Robin ` +
		`schedule a set of processes on a single CPU and reports the ` +
		`execution intervals and waiting time of every process.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Errors exit through atexit so that recordings are flushed.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
}
