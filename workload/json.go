package workload

import (
	"fmt"
	"math"

	"github.com/sarchlab/cpusched/scheduling"
	"github.com/sarchlab/cpusched/sim"
	"github.com/tidwall/gjson"
)

// parseJSON reads a document such as
//
//	{"algorithm": "rr", "quantum": 2,
//	 "processes": [{"id": 1, "arrival": 0, "burst": 5}]}
//
// The algorithm may be a name or a numeric code and defaults to FCFS.
func parseJSON(data []byte) (*Workload, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}

	doc := gjson.ParseBytes(data)

	algorithm, err := jsonAlgorithm(doc.Get("algorithm"))
	if err != nil {
		return nil, err
	}

	var (
		quantum int
		ok      bool
	)
	if q := doc.Get("quantum"); q.Exists() {
		quantum, ok = jsonInt(q)
		if !ok {
			return nil, fmt.Errorf("%w: quantum must be an integer", ErrMalformed)
		}
	}

	procs := doc.Get("processes")
	if procs.Exists() && !procs.IsArray() {
		return nil, fmt.Errorf("%w: processes must be an array", ErrMalformed)
	}

	items := procs.Array()
	b := newBuilder(algorithm, sim.VTime(quantum), len(items))

	for i, item := range items {
		row := [3]int{}
		for j, key := range []string{"id", "arrival", "burst"} {
			row[j], ok = jsonInt(item.Get(key))
			if !ok {
				return nil, fmt.Errorf("%w: process %d: %s must be an integer",
					ErrMalformed, i+1, key)
			}
		}

		if err := b.add(row[0], row[1], row[2]); err != nil {
			return nil, err
		}
	}

	return b.w, nil
}

// jsonInt accepts whole numbers that fit in an int.
func jsonInt(v gjson.Result) (int, bool) {
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
		return 0, false
	}

	if v.Num < float64(math.MinInt) || v.Num >= -float64(math.MinInt) {
		return 0, false
	}

	return int(v.Num), true
}

func jsonAlgorithm(v gjson.Result) (scheduling.Algorithm, error) {
	switch v.Type {
	case gjson.Null:
		return scheduling.FCFS, nil
	case gjson.Number:
		code, ok := jsonInt(v)
		if !ok {
			return 0, fmt.Errorf("%w: %s", scheduling.ErrInvalidAlgorithm, v.Raw)
		}

		return scheduling.AlgorithmFromCode(code)
	case gjson.String:
		return scheduling.ParseAlgorithm(v.String())
	}

	return 0, fmt.Errorf("%w: algorithm must be a name or a code",
		scheduling.ErrInvalidAlgorithm)
}
