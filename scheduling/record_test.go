package scheduling

import (
	"context"
	"path/filepath"

	"github.com/sarchlab/cpusched/datarecording"
	"github.com/sarchlab/cpusched/tracing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Recording", func() {
	It("should store the run, its processes and its segments", func() {
		path := filepath.Join(GinkgoT().TempDir(), "run")
		recorder, err := datarecording.New(path)
		Expect(err).NotTo(HaveOccurred())

		s, err := MakeBuilder().WithAlgorithm(RR).WithQuantum(2).Build()
		Expect(err).NotTo(HaveOccurred())
		tracer := tracing.NewDBTracer(s.Clock(), recorder, "run-1")
		tracing.CollectTrace(s, tracer)

		completed, err := s.Schedule(
			procs([3]int{1, 0, 5}, [3]int{2, 1, 3}, [3]int{3, 2, 1}))
		Expect(err).NotTo(HaveOccurred())

		r := &Result{RunID: "run-1", Algorithm: RR, Quantum: 2}
		r.Completed = completed
		r.Processes = completed
		RecordResult(recorder, r)
		tracer.Terminate()

		reader, err := datarecording.NewReader(recorder.Filename)
		Expect(err).NotTo(HaveOccurred())
		defer reader.Close()

		ctx := context.Background()
		tables, err := reader.ListTables(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(tables).To(ConsistOf("processes", "runs", "trace"))

		Expect(reader.Count(ctx, "runs")).To(Equal(1))
		Expect(reader.Count(ctx, "processes")).To(Equal(3))
		Expect(reader.Count(ctx, "trace")).To(Equal(6))
	})
})
