package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("SerialEngine", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *SerialEngine
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewSerialEngine()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should run events in time order", func() {
		handler := NewMockHandler(mockCtrl)

		evt1 := NewMockEvent(mockCtrl)
		evt2 := NewMockEvent(mockCtrl)
		evt3 := NewMockEvent(mockCtrl)

		evt1.EXPECT().Time().Return(VTimeInSec(4.0)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler).AnyTimes()
		evt2.EXPECT().Time().Return(VTimeInSec(2.0)).AnyTimes()
		evt2.EXPECT().Handler().Return(handler).AnyTimes()
		evt3.EXPECT().Time().Return(VTimeInSec(3.0)).AnyTimes()
		evt3.EXPECT().Handler().Return(handler).AnyTimes()

		var order []Event
		handler.EXPECT().Handle(gomock.Any()).
			Do(func(e Event) { order = append(order, e) }).
			Return(nil).
			Times(3)

		engine.Schedule(evt1)
		engine.Schedule(evt2)
		engine.Schedule(evt3)

		err := engine.Run()

		Expect(err).To(BeNil())
		Expect(order).To(Equal([]Event{evt2, evt3, evt1}))
		Expect(engine.CurrentTime()).To(BeNumerically("~", 4.0, 1e-12))
	})

	It("should allow a handler to schedule follow-up events", func() {
		handler := NewMockHandler(mockCtrl)

		evt1 := NewMockEvent(mockCtrl)
		evt2 := NewMockEvent(mockCtrl)

		evt1.EXPECT().Time().Return(VTimeInSec(1.0)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler).AnyTimes()
		evt2.EXPECT().Time().Return(VTimeInSec(2.0)).AnyTimes()
		evt2.EXPECT().Handler().Return(handler).AnyTimes()

		handler.EXPECT().Handle(evt1).
			Do(func(e Event) { engine.Schedule(evt2) }).
			Return(nil)
		handler.EXPECT().Handle(evt2).Return(nil)

		engine.Schedule(evt1)

		err := engine.Run()

		Expect(err).To(BeNil())
	})

	It("should call simulation end handlers on Finished", func() {
		called := false
		engine.RegisterSimulationEndHandler(endHandlerFunc(func(now VTimeInSec) {
			called = true
		}))

		engine.Finished()

		Expect(called).To(BeTrue())
	})
})

type endHandlerFunc func(now VTimeInSec)

func (f endHandlerFunc) Handle(now VTimeInSec) {
	f(now)
}
