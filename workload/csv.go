package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/cpusched/scheduling"
)

// parseCSV reads "id,arrival,burst" rows. A CSV workload does not name an
// algorithm, so FCFS is assumed until the caller overrides it.
func parseCSV(r io.Reader) (*Workload, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	b := newBuilder(scheduling.FCFS, 0, 0)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		row := [3]int{}
		for i, field := range record {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer",
					ErrMalformed, len(b.w.Processes)+1, field)
			}
			row[i] = v
		}

		if err := b.add(row[0], row[1], row[2]); err != nil {
			return nil, err
		}
	}

	return b.w, nil
}
