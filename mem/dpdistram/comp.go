// Package dpdistram models the asymmetric dual-port distributed RAM macro.
// Port A reads and writes; port B only reads. The two ports share the
// storage but run in independent clock domains with independent latencies
// and reset disciplines.
package dpdistram

import (
	"log"

	"github.com/moaz-kh/MEM-lib/mem"
	"github.com/moaz-kh/MEM-lib/mem/port"
	"github.com/moaz-kh/MEM-lib/sim"
)

// A Driver supplies the inputs of one port for each positive edge of that
// port's clock.
type Driver interface {
	Sample(now sim.VTimeInSec) (s port.Signals, more bool)
}

// A Comp is a dual-port distributed RAM macro.
type Comp struct {
	sim.HookableBase

	name    string
	storage *mem.Storage

	portA *port.Controller
	portB *port.Controller

	driverA Driver
	driverB Driver
	clockA  *sim.ClockSource
	clockB  *sim.ClockSource
}

// Name returns the name of the macro.
func (c *Comp) Name() string {
	return c.name
}

// ConfigA returns the configuration of the read/write port.
func (c *Comp) ConfigA() mem.Config {
	return c.portA.Config()
}

// ConfigB returns the configuration of the read-only port.
func (c *Comp) ConfigB() mem.Config {
	return c.portB.Config()
}

// PortA returns the read/write port.
func (c *Comp) PortA() *port.Controller {
	return c.portA
}

// PortB returns the read-only port.
func (c *Comp) PortB() *port.Controller {
	return c.portB
}

// PosEdgeA applies one positive edge of clock A. A write committed here is
// visible to any edge of either port that samples the storage afterwards.
func (c *Comp) PosEdgeA(s port.Signals) {
	c.portA.PosEdge(s)
}

// PosEdgeB applies one positive edge of clock B. Din and Mask have no
// effect on this port.
func (c *Comp) PosEdgeB(s port.Signals) {
	c.portB.PosEdge(s)
}

// AsyncResetA asserts the asynchronous reset of port A.
func (c *Comp) AsyncResetA() {
	c.portA.AsyncReset()
}

// AsyncResetB asserts the asynchronous reset of port B.
func (c *Comp) AsyncResetB() {
	c.portB.AsyncReset()
}

// DoutA returns the output of the read/write port.
func (c *Comp) DoutA() mem.Word {
	return c.portA.Dout()
}

// DoutB returns the output of the read-only port.
func (c *Comp) DoutB() mem.Word {
	return c.portB.Dout()
}

// OnPosEdge dispatches a clock edge to the port owning that clock.
func (c *Comp) OnPosEdge(now sim.VTimeInSec, clock *sim.ClockSource) {
	switch clock {
	case c.clockA:
		c.driveEdge(now, clock, c.driverA, c.portA, "A")
	case c.clockB:
		c.driveEdge(now, clock, c.driverB, c.portB, "B")
	default:
		log.Panicf("macro %s does not own clock %s", c.name, clock.Name())
	}
}

func (c *Comp) driveEdge(
	now sim.VTimeInSec,
	clock *sim.ClockSource,
	driver Driver,
	p *port.Controller,
	portName string,
) {
	if driver == nil {
		log.Panicf("port %s of macro %s is clocked but has no driver",
			portName, c.name)
	}

	s, more := driver.Sample(now)
	p.PosEdge(s)
	if !more {
		clock.Stop()
	}
}
