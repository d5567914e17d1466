package scheduling

import (
	"fmt"
	"strconv"
	"strings"
)

// Algorithm selects a scheduling policy. The numeric values are the codes
// used in workload files.
type Algorithm int

// The supported algorithms.
const (
	FCFS Algorithm = iota
	SJF
	SRTF
	RR
)

var algorithmNames = map[Algorithm]string{
	FCFS: "FCFS",
	SJF:  "SJF",
	SRTF: "SRTF",
	RR:   "RR",
}

var algorithmDescriptions = map[Algorithm]string{
	FCFS: "First-Come-First-Served, non-preemptive",
	SJF:  "Shortest-Job-First, non-preemptive",
	SRTF: "Shortest-Remaining-Time-First, preemptive",
	RR:   "Round-Robin with a fixed time quantum",
}

// Algorithms returns all the supported algorithms in code order.
func Algorithms() []Algorithm {
	return []Algorithm{FCFS, SJF, SRTF, RR}
}

// Valid tells if the algorithm is one of the supported ones.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Description returns a one-line description of the algorithm.
func (a Algorithm) Description() string {
	return algorithmDescriptions[a]
}

// NeedsQuantum tells if the algorithm uses a time quantum.
func (a Algorithm) NeedsQuantum() bool {
	return a == RR
}

// MarshalText encodes the algorithm by its name.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText accepts what ParseAlgorithm accepts.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

// AlgorithmFromCode converts a numeric selector into an Algorithm.
func AlgorithmFromCode(code int) (Algorithm, error) {
	a := Algorithm(code)
	if !a.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, code)
	}

	return a, nil
}

// ParseAlgorithm accepts an algorithm name (case-insensitive, "round-robin"
// and "rr" both name RR) or its numeric code.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.TrimSpace(s)

	if code, err := strconv.Atoi(s); err == nil {
		return AlgorithmFromCode(code)
	}

	switch strings.ToLower(s) {
	case "fcfs", "fifo":
		return FCFS, nil
	case "sjf":
		return SJF, nil
	case "srtf", "srt":
		return SRTF, nil
	case "rr", "round-robin", "roundrobin":
		return RR, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, s)
}
