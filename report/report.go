// Package report renders the result of a scheduling run.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sarchlab/cpusched/scheduling"
)

// ErrUnknownFormat is returned for an unknown output format.
var ErrUnknownFormat = errors.New("unknown report format")

// Format selects how a result is rendered.
type Format string

// The supported formats.
const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatGantt Format = "gantt"
	FormatJSON  Format = "json"
)

// Formats returns all the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatGantt, FormatJSON}
}

// ParseFormat converts a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Options control the rendering.
type Options struct {
	// Precision is the number of digits after the decimal point for
	// averages.
	Precision int

	// Color enables colored headings.
	Color bool
}

// DefaultOptions prints averages with one decimal digit.
func DefaultOptions() Options {
	return Options{Precision: 1, Color: true}
}

// Write renders the result in the given format.
func Write(
	w io.Writer,
	r *scheduling.Result,
	format Format,
	opts Options,
) error {
	switch format {
	case FormatText:
		return WriteText(w, r, opts.Precision)
	case FormatTable:
		return WriteTable(w, r, opts)
	case FormatGantt:
		return WriteGantt(w, r, opts)
	case FormatJSON:
		return WriteJSON(w, r)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteText prints one line per process in completion order with all its
// execution intervals and its waiting time, then the average waiting time.
func WriteText(w io.Writer, r *scheduling.Result, precision int) error {
	var b strings.Builder

	for _, p := range r.Completed {
		fmt.Fprintf(&b, "P[%d] ", p.ID)

		for _, i := range p.Intervals {
			fmt.Fprintf(&b, "Start Time: %d End Time: %d | ", i.Start, i.End)
		}

		fmt.Fprintf(&b, "Waiting time: %d\n", p.Waiting)
	}

	fmt.Fprintf(&b, "Average waiting time: %.*f\n", precision, r.AverageWaiting)

	_, err := io.WriteString(w, b.String())

	return err
}

// WriteJSON prints the result as indented JSON.
func WriteJSON(w io.Writer, r *scheduling.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

func heading(w io.Writer, opts Options, title string) error {
	c := color.New(color.Bold, color.FgCyan)
	if !opts.Color {
		c.DisableColor()
	}

	_, err := c.Fprintln(w, title)

	return err
}
