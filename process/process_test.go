package process_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cpusched/process"
	"github.com/sarchlab/cpusched/sim"
)

var _ = Describe("Process", func() {
	It("should start with the full burst and no history", func() {
		p := process.MustNew(1, 3, 5)

		Expect(p.Remaining).To(Equal(sim.VTime(5)))
		Expect(p.ReadyAt).To(Equal(sim.VTime(3)))
		Expect(p.Waiting).To(Equal(sim.VTime(0)))
		Expect(p.Intervals).To(BeEmpty())
	})

	It("should reject a negative arrival", func() {
		_, err := process.New(1, -1, 5)
		Expect(errors.Is(err, process.ErrInvalidProcess)).To(BeTrue())
	})

	It("should reject a non-positive burst", func() {
		_, err := process.New(1, 0, 0)
		Expect(errors.Is(err, process.ErrInvalidProcess)).To(BeTrue())
	})

	It("should go through its states", func() {
		p := process.MustNew(1, 2, 3)

		Expect(p.State(1, false)).To(Equal(process.Pending))
		Expect(p.State(2, false)).To(Equal(process.Ready))
		Expect(p.State(2, true)).To(Equal(process.Running))

		p.Run(2, 3)
		Expect(p.State(5, false)).To(Equal(process.Completed))
		Expect(process.Completed.String()).To(Equal("Completed"))
	})

	It("should charge waiting time per segment", func() {
		p := process.MustNew(1, 0, 5)

		end := p.Run(2, 2)
		Expect(end).To(Equal(sim.VTime(4)))
		Expect(p.ReadyAt).To(Equal(sim.VTime(4)))

		end = p.Run(7, 2)
		Expect(end).To(Equal(sim.VTime(9)))

		Expect(p.Waiting).To(Equal(sim.VTime(2 + 3)))
		Expect(p.Remaining).To(Equal(sim.VTime(1)))
		Expect(p.Intervals).To(Equal([]process.Interval{
			{Start: 2, End: 4},
			{Start: 7, End: 9},
		}))
	})

	It("should give a short final slice", func() {
		p := process.MustNew(1, 0, 3)

		end := p.Run(0, 5)

		Expect(end).To(Equal(sim.VTime(3)))
		Expect(p.Remaining).To(Equal(sim.VTime(0)))
		Expect(p.Finished()).To(BeTrue())
	})

	It("should extend the open interval tick by tick", func() {
		p := process.MustNew(1, 0, 3)

		p.Dispatch(0)
		p.Execute(1)
		p.Execute(1)
		p.Yield()

		Expect(p.Intervals).To(Equal([]process.Interval{{Start: 0, End: 2}}))
		Expect(p.ReadyAt).To(Equal(sim.VTime(2)))
	})

	It("should refuse to dispatch before it is ready", func() {
		p := process.MustNew(1, 4, 3)
		Expect(func() { p.Dispatch(3) }).To(Panic())
	})

	It("should refuse to dispatch once completed", func() {
		p := process.MustNew(1, 0, 2)
		p.Run(0, 2)

		Expect(p.State(2, false)).To(Equal(process.Completed))
		Expect(func() { p.Dispatch(2) }).To(PanicWith(
			ContainSubstring("while Completed")))
	})

	It("should take snapshots that do not alias", func() {
		p := process.MustNew(1, 0, 4)
		p.Run(0, 2)

		s := p.Snapshot()
		p.Run(2, 2)

		Expect(s.Intervals).To(HaveLen(1))
		Expect(s.ServiceTime()).To(Equal(sim.VTime(2)))
		Expect(s.Completion()).To(Equal(sim.VTime(2)))
		Expect(s.Turnaround()).To(Equal(sim.VTime(2)))
	})

	It("should clone without run state", func() {
		p := process.MustNew(1, 1, 4)
		p.Run(1, 2)

		c := process.Clone([]*process.Process{p})

		Expect(c[0]).NotTo(BeIdenticalTo(p))
		Expect(c[0].Remaining).To(Equal(sim.VTime(4)))
		Expect(c[0].ReadyAt).To(Equal(sim.VTime(1)))
		Expect(c[0].Intervals).To(BeEmpty())
	})
})
