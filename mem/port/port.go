// Package port binds one clock domain, one signal set, one write-forwarding
// policy, and one latency pipeline into a complete memory-macro port.
package port

import (
	"log"

	"github.com/moaz-kh/MEM-lib/mem"
	"github.com/moaz-kh/MEM-lib/pipelining"
	"github.com/moaz-kh/MEM-lib/sim"
)

// Signals are the port inputs sampled at one positive clock edge.
type Signals struct {
	Enable bool
	Gate   bool
	Reset  bool
	Addr   uint64

	// Din and Mask apply to write-capable ports only. Mask holds one
	// write-enable per byte lane.
	Din  mem.Word
	Mask []bool

	// Sleep and the error-injection strobes are accepted for interface
	// compatibility and have no observable effect.
	Sleep         bool
	InjectSBitErr bool
	InjectDBitErr bool
}

// HookPosEdge is triggered after the port has processed one positive clock
// edge. Item is the sampled Signals and Detail is the output word after the
// edge.
var HookPosEdge = &sim.HookPos{Name: "PortEdge"}

// HookPosAddressFault is triggered, in diagnostic mode only, when an access
// addresses beyond the configured depth. Item is the offending address.
var HookPosAddressFault = &sim.HookPos{Name: "PortAddressFault"}

// A Controller is one complete port of a memory macro. Two controllers may
// share one storage; each owns its pipeline exclusively.
type Controller struct {
	sim.HookableBase

	name     string
	cfg      mem.Config
	storage  *mem.Storage
	chain    pipelining.Pipeline
	writable bool

	addressFaults uint64
}

// NewController creates a port over the given storage. The pipeline is
// derived from the configuration.
func NewController(
	name string,
	cfg mem.Config,
	storage *mem.Storage,
	writable bool,
) *Controller {
	c := &Controller{
		name:     name,
		cfg:      cfg,
		storage:  storage,
		writable: writable,
	}

	c.chain = pipelining.MakeBuilder().
		WithWordWidth(cfg.DataWidth).
		WithDepth(cfg.ReadLatency).
		WithResetValue(cfg.ResetValue).
		Build(name + ".Pipeline")

	return c
}

// Name returns the name of the port.
func (c *Controller) Name() string {
	return c.name
}

// Config returns the configuration the port was built with.
func (c *Controller) Config() mem.Config {
	return c.cfg
}

// PosEdge processes one positive clock edge of the port's clock domain.
//
// A write commits directly into the storage and is never delayed by the
// read latency. The store is sampled before the commit, so a same-edge read
// of the written address observes the pre-write contents; the forwarding
// policy decides what actually enters the pipeline head.
func (c *Controller) PosEdge(s Signals) {
	addr := c.boundedAddr(s.Addr)

	storeValue, err := c.storage.Read(addr)
	if err != nil {
		log.Panic(err)
	}

	var next mem.Word
	var load bool
	if c.writable {
		next, load = c.cfg.WriteMode.Forward(
			s.Enable, storeValue, s.Din, c.cfg.ByteWriteWidth, s.Mask)
	} else {
		next, load = storeValue, s.Enable
	}

	if c.writable && s.Enable && anyLane(s.Mask) {
		err := c.storage.WriteMasked(
			addr, s.Din, c.cfg.ByteWriteWidth, s.Mask)
		if err != nil {
			log.Panic(err)
		}
	}

	c.chain.PosEdge(pipelining.Ctrl{
		Enable: s.Enable,
		Load:   load,
		Gate:   s.Gate,
		Reset:  s.Reset,
	}, next)

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosEdge,
		Item:   s,
		Detail: c.chain.Output(),
	})
}

// AsyncReset applies an asynchronous reset, independent of the clock. The
// port must be configured with the async reset discipline.
func (c *Controller) AsyncReset() {
	if c.cfg.ResetMode != mem.ResetAsync {
		log.Panicf("port %s is configured with synchronous reset", c.name)
	}
	c.chain.ForceReset()
}

// Dout returns the externally observable output of the port.
func (c *Controller) Dout() mem.Word {
	return c.chain.Output()
}

// SingleBitErr mirrors the ECC status output. It is permanently false.
func (c *Controller) SingleBitErr() bool {
	return false
}

// DoubleBitErr mirrors the ECC status output. It is permanently false.
func (c *Controller) DoubleBitErr() bool {
	return false
}

// AddressFaults returns the number of out-of-range accesses observed in
// diagnostic mode.
func (c *Controller) AddressFaults() uint64 {
	return c.addressFaults
}

// boundedAddr keeps the access inside the storage. Out-of-range behavior is
// unspecified in the hardware contract; the model wraps so it never faults,
// and flags the access when diagnostics are on.
func (c *Controller) boundedAddr(addr uint64) uint64 {
	depth := c.cfg.Depth()
	if addr < depth {
		return addr
	}

	if c.cfg.Diagnostics {
		c.addressFaults++
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosAddressFault,
			Item:   addr,
		})
	}

	return addr % depth
}

func anyLane(mask []bool) bool {
	for _, b := range mask {
		if b {
			return true
		}
	}
	return false
}
