package pipelining

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/moaz-kh/MEM-lib/mem"
	"github.com/moaz-kh/MEM-lib/sim"
)

func word(v uint64) mem.Word {
	return mem.WordFromUint64(8, v)
}

func flowCtrl() Ctrl {
	return Ctrl{Enable: true, Load: true, Gate: true}
}

var _ = Describe("Pipeline", func() {
	var pipeline Pipeline

	build := func(depth int) Pipeline {
		return MakeBuilder().
			WithWordWidth(8).
			WithDepth(depth).
			Build("Pipeline")
	}

	Context("with depth 0", func() {
		BeforeEach(func() {
			pipeline = build(0)
		})

		It("should be combinational", func() {
			pipeline.PosEdge(flowCtrl(), word(0x5a))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0x5a)))
		})

		It("should output the reset value when not enabled", func() {
			pipeline.PosEdge(flowCtrl(), word(0x5a))
			pipeline.PosEdge(Ctrl{}, word(0xff))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0)))
		})
	})

	Context("with depth 1", func() {
		BeforeEach(func() {
			pipeline = build(1)
		})

		It("should register the value for one edge", func() {
			pipeline.PosEdge(flowCtrl(), word(0x11))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0x11)))
		})

		It("should hold when the load strobe is low", func() {
			pipeline.PosEdge(flowCtrl(), word(0x11))
			pipeline.PosEdge(Ctrl{Enable: true, Gate: true}, word(0x22))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0x11)))
		})

		It("should not apply the gate", func() {
			pipeline.PosEdge(flowCtrl(), word(0x11))
			pipeline.PosEdge(Ctrl{Enable: true, Load: true}, word(0x22))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0x22)))
		})
	})

	Context("with depth 3", func() {
		BeforeEach(func() {
			pipeline = build(3)
		})

		It("should expose a value after depth edges", func() {
			pipeline.PosEdge(flowCtrl(), word(0x11))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0)))

			pipeline.PosEdge(flowCtrl(), word(0x22))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0)))

			pipeline.PosEdge(flowCtrl(), word(0x33))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0x11)))

			pipeline.PosEdge(flowCtrl(), word(0x44))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0x22)))
		})

		It("should stall only the terminal stage when the gate is low", func() {
			pipeline.PosEdge(flowCtrl(), word(0x11))
			pipeline.PosEdge(flowCtrl(), word(0x22))
			pipeline.PosEdge(flowCtrl(), word(0x33))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0x11)))

			ctrl := flowCtrl()
			ctrl.Gate = false
			pipeline.PosEdge(ctrl, word(0x44))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0x11)))

			// The interior stages kept moving, so the value behind the
			// stalled terminal stage is now 0x33, not 0x22.
			pipeline.PosEdge(flowCtrl(), word(0x55))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0x33)))
		})

		It("should keep interior stages moving while stage 0 holds", func() {
			pipeline.PosEdge(flowCtrl(), word(0x11))

			hold := Ctrl{Enable: true, Gate: true}
			pipeline.PosEdge(hold, word(0x99))
			pipeline.PosEdge(hold, word(0x99))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0x11)))
		})

		It("should reset every stage on one edge", func() {
			pipeline.PosEdge(flowCtrl(), word(0x11))
			pipeline.PosEdge(flowCtrl(), word(0x22))

			pipeline.PosEdge(Ctrl{Enable: true, Gate: true, Reset: true}, word(0x33))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0)))

			// No stale value may surface on the edges that follow.
			pipeline.PosEdge(flowCtrl(), word(0x44))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0)))
			pipeline.PosEdge(flowCtrl(), word(0x55))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0)))
			pipeline.PosEdge(flowCtrl(), word(0x66))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0x44)))
		})

		It("should force reset immediately", func() {
			pipeline.PosEdge(flowCtrl(), word(0x11))
			pipeline.PosEdge(flowCtrl(), word(0x22))
			pipeline.PosEdge(flowCtrl(), word(0x33))

			pipeline.ForceReset()
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0)))
		})
	})

	Context("with an all-ones reset value", func() {
		BeforeEach(func() {
			pipeline = MakeBuilder().
				WithWordWidth(8).
				WithDepth(2).
				WithResetValue(mem.ResetToOnes).
				Build("Pipeline")
		})

		It("should start at the reset value", func() {
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0xff)))
		})

		It("should reset to all ones", func() {
			pipeline.PosEdge(flowCtrl(), word(0x11))
			pipeline.PosEdge(flowCtrl(), word(0x22))

			pipeline.PosEdge(Ctrl{Reset: true}, word(0x33))
			Expect(pipeline.Output().Uint64()).To(Equal(uint64(0xff)))
		})
	})

	It("should invoke the output hook on changes", func() {
		pipeline := build(1)

		hook := &outputRecordHook{}
		pipeline.(*chainImpl).AcceptHook(hook)

		pipeline.PosEdge(flowCtrl(), word(0x11))
		pipeline.PosEdge(flowCtrl(), word(0x11))
		pipeline.PosEdge(flowCtrl(), word(0x22))

		Expect(hook.seen).To(Equal([]uint64{0x11, 0x22}))
	})
})

type outputRecordHook struct {
	seen []uint64
}

func (h *outputRecordHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != HookPosOutputUpdate {
		return
	}
	h.seen = append(h.seen, ctx.Item.(mem.Word).Uint64())
}
