// Package sprom models the single-port read-only memory macro.
package sprom

import (
	"log"

	"github.com/moaz-kh/MEM-lib/mem"
	"github.com/moaz-kh/MEM-lib/mem/port"
	"github.com/moaz-kh/MEM-lib/sim"
)

// A Driver supplies the port inputs for each positive clock edge when the
// macro is clocked by an engine.
type Driver interface {
	Sample(now sim.VTimeInSec) (s port.Signals, more bool)
}

// A Comp is a single-port read-only memory macro. The contents are fixed at
// build time; the port ignores the write inputs entirely.
type Comp struct {
	sim.HookableBase

	name    string
	cfg     mem.Config
	storage *mem.Storage
	port    *port.Controller

	driver Driver
	clock  *sim.ClockSource
}

// Name returns the name of the macro.
func (c *Comp) Name() string {
	return c.name
}

// Config returns the macro configuration.
func (c *Comp) Config() mem.Config {
	return c.cfg
}

// Port returns the one read port of the macro.
func (c *Comp) Port() *port.Controller {
	return c.port
}

// PosEdge applies one positive clock edge with the given port inputs. Din
// and Mask have no effect.
func (c *Comp) PosEdge(s port.Signals) {
	c.port.PosEdge(s)
}

// AsyncReset asserts the asynchronous reset of the port.
func (c *Comp) AsyncReset() {
	c.port.AsyncReset()
}

// Dout returns the externally observable output word.
func (c *Comp) Dout() mem.Word {
	return c.port.Dout()
}

// SingleBitErr mirrors the ECC status output. It is permanently false.
func (c *Comp) SingleBitErr() bool {
	return c.port.SingleBitErr()
}

// DoubleBitErr mirrors the ECC status output. It is permanently false.
func (c *Comp) DoubleBitErr() bool {
	return c.port.DoubleBitErr()
}

// OnPosEdge lets a clock source drive the macro through its driver.
func (c *Comp) OnPosEdge(now sim.VTimeInSec, clock *sim.ClockSource) {
	if c.driver == nil {
		log.Panicf("macro %s is clocked but has no driver", c.name)
	}

	s, more := c.driver.Sample(now)
	c.PosEdge(s)
	if !more {
		clock.Stop()
	}
}
