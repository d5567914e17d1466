package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/sarchlab/cpusched/scheduling"
	"github.com/sarchlab/cpusched/sim"
)

// tokenReader reads whitespace separated integers, ignoring line breaks.
type tokenReader struct {
	scanner *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)

	return &tokenReader{scanner: s}
}

func (t *tokenReader) next(what string) (int, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return 0, err
		}

		return 0, fmt.Errorf("%w: missing %s", ErrMalformed, what)
	}

	v, err := strconv.Atoi(t.scanner.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer",
			ErrMalformed, what, t.scanner.Text())
	}

	return v, nil
}

// parseText reads the "X Y Z" header (algorithm code, process count and
// quantum) followed by Y "id arrival burst" rows. Anything after the last
// row is ignored.
func parseText(r io.Reader) (*Workload, error) {
	t := newTokenReader(r)

	header := [3]int{}
	for i, what := range []string{"algorithm", "process count", "quantum"} {
		v, err := t.next(what)
		if err != nil {
			return nil, err
		}
		header[i] = v
	}

	algorithm, err := scheduling.AlgorithmFromCode(header[0])
	if err != nil {
		return nil, err
	}

	n := header[1]
	if n < 0 {
		return nil, fmt.Errorf("%w: negative process count %d", ErrMalformed, n)
	}

	b := newBuilder(algorithm, sim.VTime(header[2]), n)

	for i := 0; i < n; i++ {
		row := [3]int{}
		for j, what := range []string{"id", "arrival", "burst"} {
			v, err := t.next(fmt.Sprintf("%s of process %d", what, i+1))
			if err != nil {
				return nil, err
			}
			row[j] = v
		}

		if err := b.add(row[0], row[1], row[2]); err != nil {
			return nil, err
		}
	}

	return b.w, nil
}
