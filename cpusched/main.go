// Package main is the entry of the cpusched command line tool.
package main

import (
	"github.com/sarchlab/cpusched/cpusched/cmd"
	"github.com/tebeka/atexit"
)

func main() {
	cmd.Execute()
	atexit.Exit(0)
}
