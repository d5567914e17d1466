package tracing

import (
	"github.com/sarchlab/cpusched/sim"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("DBTracer", func() {
	var (
		mockCtrl   *gomock.Controller
		timeTeller *MockTimeTeller
		backend    *MockDataRecorder
		t          *DBTracer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		timeTeller = NewMockTimeTeller(mockCtrl)
		backend = NewMockDataRecorder(mockCtrl)

		backend.EXPECT().CreateTable("trace", gomock.Any())
		t = NewDBTracer(timeTeller, backend, "run1")
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should record a finished task", func() {
		timeTeller.EXPECT().CurrentTime().Return(sim.VTime(2))
		t.StartTask(Task{ID: "1", Kind: "cpu", What: "P1", Where: "SRTF"})

		timeTeller.EXPECT().CurrentTime().Return(sim.VTime(5))
		backend.EXPECT().InsertData("trace", taskTableEntry{
			ID:        "1",
			RunID:     "run1",
			Kind:      "cpu",
			What:      "P1",
			Location:  "SRTF",
			StartTime: 2,
			EndTime:   5,
		})
		t.EndTask(Task{ID: "1"})
	})

	It("should ignore the end of unknown tasks", func() {
		t.EndTask(Task{ID: "2"})
	})

	It("should reject tasks without location", func() {
		Expect(func() {
			t.StartTask(Task{ID: "1", Kind: "cpu", What: "P1"})
		}).To(Panic())
	})

	It("should close open tasks when terminated", func() {
		timeTeller.EXPECT().CurrentTime().Return(sim.VTime(1))
		t.StartTask(Task{ID: "1", Kind: "cpu", What: "P1", Where: "RR"})

		timeTeller.EXPECT().CurrentTime().Return(sim.VTime(4))
		backend.EXPECT().InsertData("trace", gomock.Any()).
			Do(func(_ string, entry any) {
				Expect(entry.(taskTableEntry).EndTime).To(Equal(sim.VTime(4)))
			})
		backend.EXPECT().Flush()

		t.Terminate()
	})
})
