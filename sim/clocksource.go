package sim

import (
	"log"
	"reflect"
)

// PosEdgeEvent marks one positive edge of a clock source.
type PosEdgeEvent struct {
	*EventBase
	Clock *ClockSource
}

// An EdgeListener consumes the positive clock edges of a ClockSource.
type EdgeListener interface {
	// OnPosEdge is called once per positive edge, in simulated-time order.
	OnPosEdge(now VTimeInSec, clock *ClockSource)
}

// A ClockSource generates positive clock edges at a fixed frequency and
// delivers them to one listener. A component with several clock domains owns
// one ClockSource per domain; the engine orders the edges of all domains by
// time, first-come for edges that land on the same instant.
type ClockSource struct {
	name     string
	engine   Engine
	freq     Freq
	listener EdgeListener
	stopped  bool
}

// NewClockSource creates a clock source that delivers edges to listener.
func NewClockSource(
	name string,
	engine Engine,
	freq Freq,
	listener EdgeListener,
) *ClockSource {
	c := new(ClockSource)

	c.name = name
	c.engine = engine
	c.freq = freq
	c.listener = listener

	return c
}

// Name returns the name of the clock source.
func (c *ClockSource) Name() string {
	return c.name
}

// Freq returns the frequency of the clock source.
func (c *ClockSource) Freq() Freq {
	return c.freq
}

// Start schedules the first positive edge at or after the given time. Edges
// keep coming once per period until Stop is called.
func (c *ClockSource) Start(at VTimeInSec) {
	c.stopped = false
	c.engine.Schedule(&PosEdgeEvent{
		EventBase: NewEventBase(c.freq.NoEarlierThan(at), c),
		Clock:     c,
	})
}

// Stop prevents the clock source from scheduling further edges. The edge
// currently being handled still completes.
func (c *ClockSource) Stop() {
	c.stopped = true
}

// Handle delivers a positive edge to the listener and schedules the next
// one.
func (c *ClockSource) Handle(e Event) error {
	evt, ok := e.(*PosEdgeEvent)
	if !ok {
		log.Panicf("cannot handle event of %s", reflect.TypeOf(e))
	}

	c.listener.OnPosEdge(evt.Time(), c)

	if !c.stopped {
		c.engine.Schedule(&PosEdgeEvent{
			EventBase: NewEventBase(c.freq.NextTick(evt.Time()), c),
			Clock:     c,
		})
	}

	return nil
}
