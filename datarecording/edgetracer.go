package datarecording

import (
	"github.com/moaz-kh/MEM-lib/mem"
	"github.com/moaz-kh/MEM-lib/mem/port"
	"github.com/moaz-kh/MEM-lib/sim"
)

// A PortEdgeEntry is one recorded clock edge of one memory-macro port.
type PortEdgeEntry struct {
	Port   string
	Edge   uint64
	Enable bool
	Gate   bool
	Reset  bool
	Addr   uint64
	Write  bool
	Dout   string
}

// An EdgeTracer is a hook that records every processed port edge into a
// DataRecorder table. Attach it to a port with AcceptHook.
type EdgeTracer struct {
	recorder DataRecorder
	table    string
	edges    map[string]uint64
}

// NewEdgeTracer creates a tracer writing into the given table.
func NewEdgeTracer(recorder DataRecorder, table string) *EdgeTracer {
	t := &EdgeTracer{
		recorder: recorder,
		table:    table,
		edges:    make(map[string]uint64),
	}

	recorder.CreateTable(table, PortEdgeEntry{})

	return t
}

// Func records one port edge. Hook invocations from other positions are
// ignored.
func (t *EdgeTracer) Func(ctx sim.HookCtx) {
	if ctx.Pos != port.HookPosEdge {
		return
	}

	ctrl := ctx.Domain.(*port.Controller)
	s := ctx.Item.(port.Signals)
	out := ctx.Detail.(mem.Word)

	name := ctrl.Name()
	edge := t.edges[name]
	t.edges[name] = edge + 1

	writing := false
	for _, lane := range s.Mask {
		if lane {
			writing = true
			break
		}
	}

	t.recorder.InsertData(t.table, PortEdgeEntry{
		Port:   name,
		Edge:   edge,
		Enable: s.Enable,
		Gate:   s.Gate,
		Reset:  s.Reset,
		Addr:   s.Addr,
		Write:  s.Enable && writing,
		Dout:   out.Hex(),
	})
}
