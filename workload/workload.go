// Package workload reads the process sets that the schedulers run.
package workload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sarchlab/cpusched/process"
	"github.com/sarchlab/cpusched/scheduling"
	"github.com/sarchlab/cpusched/sim"
)

var (
	// ErrMalformed is returned when the input cannot be parsed.
	ErrMalformed = errors.New("malformed workload")

	// ErrDuplicateID is returned when two processes share an ID.
	ErrDuplicateID = errors.New("duplicate process id")

	// ErrUnsupportedFormat is returned for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported workload format")
)

// Format is the encoding of a workload.
type Format string

// The supported formats.
const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// A Workload is a set of processes together with the algorithm the input asks
// for.
type Workload struct {
	Algorithm scheduling.Algorithm
	Quantum   sim.VTime

	// Processes are in input order.
	Processes []*process.Process
}

// FormatFromPath picks the format by the file extension. Files without an
// extension, and .txt and .in files, are in the text format.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case "", ".txt", ".in":
		return FormatText, nil
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Load reads the workload file at path.
func Load(path string) (*Workload, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, format)
}

// Parse reads a workload in the given format.
func Parse(r io.Reader, format Format) (*Workload, error) {
	switch format {
	case FormatText:
		return parseText(r)
	case FormatCSV:
		return parseCSV(r)
	case FormatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		return parseJSON(data)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// builder collects processes while checking them.
type builder struct {
	w    *Workload
	seen map[int]bool
}

// maxSizeHint bounds the capacity reserved from a declared process count,
// which comes from the input and cannot be trusted before the rows are read.
const maxSizeHint = 1024

func newBuilder(a scheduling.Algorithm, quantum sim.VTime, n int) *builder {
	n = min(max(n, 0), maxSizeHint)

	return &builder{
		w: &Workload{
			Algorithm: a,
			Quantum:   quantum,
			Processes: make([]*process.Process, 0, n),
		},
		seen: make(map[int]bool, n),
	}
}

func (b *builder) add(id, arrival, burst int) error {
	if b.seen[id] {
		return fmt.Errorf("%w: P%d", ErrDuplicateID, id)
	}

	p, err := process.New(id, sim.VTime(arrival), sim.VTime(burst))
	if err != nil {
		return err
	}

	b.seen[id] = true
	b.w.Processes = append(b.w.Processes, p)

	return nil
}
