// Package pipelining provides the read-latency register chain of a memory
// macro port.
package pipelining

import (
	"github.com/moaz-kh/MEM-lib/mem"
	"github.com/moaz-kh/MEM-lib/sim"
)

// Ctrl carries the per-edge control strobes that steer the chain.
type Ctrl struct {
	// Enable is the port enable. With a depth of 0 it selects between the
	// incoming value and the reset value combinationally.
	Enable bool

	// Load is the stage-0 load strobe: the port enable qualified by the
	// write-forwarding policy. When it is low, stage 0 holds.
	Load bool

	// Gate is the output-register clock-enable. Only the terminal stage
	// honors it; every other stage advances regardless.
	Gate bool

	// Reset requests a synchronous reset on this edge.
	Reset bool
}

// Pipeline models the configurable read latency of one port. Stage 0 is
// nearest the memory read and the terminal stage is the externally visible
// output.
type Pipeline interface {
	Name() string

	// Depth returns the number of register stages. A depth of 0 means the
	// output is combinational.
	Depth() int

	// PosEdge advances the chain by one clock edge.
	PosEdge(ctrl Ctrl, in mem.Word)

	// ForceReset immediately forces every stage and the output to the
	// reset value, independent of the clock. It models an asynchronous
	// reset.
	ForceReset()

	// Output returns the current contents of the terminal stage, or the
	// combinational value for a depth of 0.
	Output() mem.Word
}

// HookPosOutputUpdate is triggered after the terminal stage takes a new
// value. Item is the new output word.
var HookPosOutputUpdate = &sim.HookPos{Name: "PipelineOutputUpdate"}

type chainImpl struct {
	sim.HookableBase
	name       string
	depth      int
	width      int
	resetValue mem.Word
	stages     []mem.Word
	out        mem.Word
}

func (p *chainImpl) Name() string {
	return p.name
}

func (p *chainImpl) Depth() int {
	return p.depth
}

// PosEdge advances the chain by one clock edge.
//
// The advance order matters: the terminal stage samples its predecessor
// before the predecessor moves, exactly like a bank of registers clocked by
// the same edge. Only the terminal stage is conditioned on the gate; every
// interior stage advances on every non-reset edge, so a stalled output never
// desynchronizes the stages behind it.
func (p *chainImpl) PosEdge(ctrl Ctrl, in mem.Word) {
	if p.depth == 0 {
		p.posEdgeCombinational(ctrl, in)
		return
	}

	if ctrl.Reset {
		p.forceAll()
		return
	}

	if p.depth == 1 {
		// The single stage is fed directly by the enable-gated read. The
		// gate is not applied.
		if ctrl.Load {
			p.stages[0] = in.Clone()
		}
	} else {
		if ctrl.Gate {
			p.stages[p.depth-1] = p.stages[p.depth-2].Clone()
		}
		for i := p.depth - 2; i >= 1; i-- {
			p.stages[i] = p.stages[i-1].Clone()
		}
		if ctrl.Load {
			p.stages[0] = in.Clone()
		}
	}

	p.setOutput(p.stages[p.depth-1])
}

func (p *chainImpl) posEdgeCombinational(ctrl Ctrl, in mem.Word) {
	switch {
	case !ctrl.Enable:
		p.setOutput(p.resetValue)
	case ctrl.Load:
		p.setOutput(in.Clone())
	default:
		// Hold: the forwarding policy suppressed the load.
	}
}

func (p *chainImpl) ForceReset() {
	if p.depth == 0 {
		p.setOutput(p.resetValue)
		return
	}
	p.forceAll()
}

func (p *chainImpl) forceAll() {
	for i := range p.stages {
		p.stages[i] = p.resetValue.Clone()
	}
	p.setOutput(p.resetValue)
}

func (p *chainImpl) setOutput(w mem.Word) {
	if p.out.Equal(w) {
		p.out = w
		return
	}

	p.out = w
	p.InvokeHook(sim.HookCtx{
		Domain: p,
		Pos:    HookPosOutputUpdate,
		Item:   w,
	})
}

func (p *chainImpl) Output() mem.Word {
	return p.out
}
