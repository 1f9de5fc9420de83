package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/moaz-kh/MEM-lib/datarecording"
	"github.com/moaz-kh/MEM-lib/mem"
	"github.com/moaz-kh/MEM-lib/mem/dpdistram"
	"github.com/moaz-kh/MEM-lib/mem/port"
	"github.com/moaz-kh/MEM-lib/mem/spram"
	"github.com/moaz-kh/MEM-lib/mem/sprom"
	"github.com/moaz-kh/MEM-lib/sim"
)

var runFlags struct {
	macro          string
	addressWidth   int
	dataWidth      int
	byteWriteWidth int
	memorySize     uint64
	readLatency    int
	readLatencyB   int
	writeMode      string
	resetMode      string
	resetOnes      bool
	image          string
	stimulus       string
	traceDB        string
	freqGHz        float64
	freqBGHz       float64
	logEvents      bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build a memory macro and clock it with a stimulus script.",
	Long: `run builds a macro from the configuration flags, optionally ` +
		`preloads it from a hex image, and applies the stimulus script one ` +
		`edge per line, printing the output after every edge.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMacro(); err != nil {
			log.Fatalf("Error: %v", err)
		}

		// Flushes the trace recorder, if any.
		atexit.Exit(0)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	f := runCmd.Flags()
	f.StringVar(&runFlags.macro, "macro", "spram",
		"macro variant: spram, sprom, or dpdistram")
	f.IntVar(&runFlags.addressWidth, "address-width", 6,
		"address width in bits")
	f.IntVar(&runFlags.dataWidth, "data-width", 32,
		"data width in bits")
	f.IntVar(&runFlags.byteWriteWidth, "byte-write-width", 0,
		"byte-lane width of the write mask (default: the data width)")
	f.Uint64Var(&runFlags.memorySize, "memory-size", 2048,
		"total capacity in bits")
	f.IntVar(&runFlags.readLatency, "read-latency", 2,
		"read latency of the macro, port A for dpdistram")
	f.IntVar(&runFlags.readLatencyB, "read-latency-b", 1,
		"read latency of port B, dpdistram only")
	f.StringVar(&runFlags.writeMode, "write-mode", "read_first",
		"write mode: read_first, write_first, or no_change")
	f.StringVar(&runFlags.resetMode, "reset-mode", "sync",
		"reset discipline: sync or async")
	f.BoolVar(&runFlags.resetOnes, "reset-ones", false,
		"reset the output to all ones instead of zeros")
	f.StringVar(&runFlags.image, "image", "",
		"hex image file to preload the contents from")
	f.StringVar(&runFlags.stimulus, "stimulus", "",
		"stimulus script file, one clock edge per line")
	f.StringVar(&runFlags.traceDB, "trace-db",
		os.Getenv("MEMMACRO_TRACE_DB"),
		"record an edge trace into this SQLite database")
	f.Float64Var(&runFlags.freqGHz, "freq", 1,
		"clock frequency in GHz, port A for dpdistram")
	f.Float64Var(&runFlags.freqBGHz, "freq-b", 1,
		"clock frequency of port B in GHz, dpdistram only")
	f.BoolVar(&runFlags.logEvents, "log-events", false,
		"log every engine event to stderr")

	runCmd.MarkFlagRequired("stimulus")
}

func runMacro() error {
	if runFlags.byteWriteWidth == 0 {
		runFlags.byteWriteWidth = runFlags.dataWidth
	}

	writeMode, err := mem.ParseWriteMode(runFlags.writeMode)
	if err != nil {
		return err
	}
	resetMode, err := mem.ParseResetMode(runFlags.resetMode)
	if err != nil {
		return err
	}
	resetValue := mem.ResetToZeros
	if runFlags.resetOnes {
		resetValue = mem.ResetToOnes
	}

	f, err := os.Open(runFlags.stimulus)
	if err != nil {
		return err
	}
	defer f.Close()

	laneCount := runFlags.dataWidth / runFlags.byteWriteWidth
	edges, err := parseStimulus(f, runFlags.dataWidth, laneCount)
	if err != nil {
		return fmt.Errorf("%s: %w", runFlags.stimulus, err)
	}

	var recorder datarecording.DataRecorder
	var tracer *datarecording.EdgeTracer
	if runFlags.traceDB != "" {
		recorder = datarecording.New(runFlags.traceDB)
		tracer = datarecording.NewEdgeTracer(recorder, "port_edges")
	}

	switch runFlags.macro {
	case "spram":
		return runSPRAM(edges, writeMode, resetMode, resetValue, tracer)
	case "sprom":
		return runSPROM(edges, resetMode, resetValue, tracer)
	case "dpdistram":
		return runDPDistRAM(edges, writeMode, resetMode, resetValue, tracer)
	default:
		return fmt.Errorf("unknown macro %q", runFlags.macro)
	}
}

func newEngine() *sim.SerialEngine {
	engine := sim.NewSerialEngine()
	if runFlags.logEvents {
		engine.AcceptHook(sim.NewEventLogger(log.Default()))
	}
	return engine
}

// edgeReporter prints the macro output after every clock edge.
type edgeReporter struct{}

func (edgeReporter) Func(ctx sim.HookCtx) {
	if ctx.Pos != port.HookPosEdge {
		return
	}

	ctrl := ctx.Domain.(*port.Controller)
	out := ctx.Detail.(mem.Word)
	fmt.Printf("%-16s dout=%s\n", ctrl.Name(), out.Hex())
}

func attachHooks(ctrl *port.Controller, tracer *datarecording.EdgeTracer) {
	ctrl.AcceptHook(edgeReporter{})
	if tracer != nil {
		ctrl.AcceptHook(tracer)
	}
}

// scriptDriver feeds the parsed edges of one port to its clock source.
type scriptDriver struct {
	edges []port.Signals
	next  int
}

func (d *scriptDriver) Sample(now sim.VTimeInSec) (port.Signals, bool) {
	s := d.edges[d.next]
	d.next++
	return s, d.next < len(d.edges)
}

func splitPorts(edges []stimulusEdge) (a, b []port.Signals) {
	for _, e := range edges {
		if e.portB {
			b = append(b, e.signals)
		} else {
			a = append(a, e.signals)
		}
	}
	return a, b
}

func runSPRAM(
	edges []stimulusEdge,
	writeMode mem.WriteMode,
	resetMode mem.ResetMode,
	resetValue mem.ResetValue,
	tracer *datarecording.EdgeTracer,
) error {
	a, b := splitPorts(edges)
	if len(b) > 0 {
		return fmt.Errorf("spram has a single port; b: lines are invalid")
	}

	engine := newEngine()
	driver := &scriptDriver{edges: a}

	builder := spram.MakeBuilder().
		WithEngine(engine).
		WithFreq(sim.Freq(runFlags.freqGHz) * sim.GHz).
		WithDriver(driver).
		WithAddressWidth(runFlags.addressWidth).
		WithDataWidth(runFlags.dataWidth).
		WithByteWriteWidth(runFlags.byteWriteWidth).
		WithMemorySize(runFlags.memorySize).
		WithReadLatency(runFlags.readLatency).
		WithWriteMode(writeMode).
		WithResetMode(resetMode).
		WithResetValue(resetValue)
	if runFlags.image != "" {
		builder = builder.WithImageFile(runFlags.image)
	}

	c, err := builder.Build("SPRAM")
	if err != nil {
		return err
	}
	attachHooks(c.Port(), tracer)

	if err := engine.Run(); err != nil {
		return err
	}

	fmt.Printf("final dout=%s\n", c.Dout().Hex())
	return nil
}

func runSPROM(
	edges []stimulusEdge,
	resetMode mem.ResetMode,
	resetValue mem.ResetValue,
	tracer *datarecording.EdgeTracer,
) error {
	a, b := splitPorts(edges)
	if len(b) > 0 {
		return fmt.Errorf("sprom has a single port; b: lines are invalid")
	}

	engine := newEngine()
	driver := &scriptDriver{edges: a}

	builder := sprom.MakeBuilder().
		WithEngine(engine).
		WithFreq(sim.Freq(runFlags.freqGHz) * sim.GHz).
		WithDriver(driver).
		WithAddressWidth(runFlags.addressWidth).
		WithDataWidth(runFlags.dataWidth).
		WithMemorySize(runFlags.memorySize).
		WithReadLatency(runFlags.readLatency).
		WithResetMode(resetMode).
		WithResetValue(resetValue)
	if runFlags.image != "" {
		builder = builder.WithImageFile(runFlags.image)
	}

	c, err := builder.Build("SPROM")
	if err != nil {
		return err
	}
	attachHooks(c.Port(), tracer)

	if err := engine.Run(); err != nil {
		return err
	}

	fmt.Printf("final dout=%s\n", c.Dout().Hex())
	return nil
}

func runDPDistRAM(
	edges []stimulusEdge,
	writeMode mem.WriteMode,
	resetMode mem.ResetMode,
	resetValue mem.ResetValue,
	tracer *datarecording.EdgeTracer,
) error {
	a, b := splitPorts(edges)
	if len(a) == 0 || len(b) == 0 {
		return fmt.Errorf("dpdistram needs stimulus on both ports")
	}

	engine := newEngine()
	driverA := &scriptDriver{edges: a}
	driverB := &scriptDriver{edges: b}

	builder := dpdistram.MakeBuilder().
		WithEngine(engine).
		WithFreqA(sim.Freq(runFlags.freqGHz) * sim.GHz).
		WithFreqB(sim.Freq(runFlags.freqBGHz) * sim.GHz).
		WithDriverA(driverA).
		WithDriverB(driverB).
		WithAddressWidth(runFlags.addressWidth).
		WithDataWidth(runFlags.dataWidth).
		WithByteWriteWidth(runFlags.byteWriteWidth).
		WithMemorySize(runFlags.memorySize).
		WithWriteMode(writeMode).
		WithReadLatencyA(runFlags.readLatency).
		WithReadLatencyB(runFlags.readLatencyB).
		WithResetModeA(resetMode).
		WithResetModeB(resetMode).
		WithResetValueA(resetValue).
		WithResetValueB(resetValue)
	if runFlags.image != "" {
		builder = builder.WithImageFile(runFlags.image)
	}

	c, err := builder.Build("DPDistRAM")
	if err != nil {
		return err
	}
	attachHooks(c.PortA(), tracer)
	attachHooks(c.PortB(), tracer)

	if err := engine.Run(); err != nil {
		return err
	}

	fmt.Printf("final doutA=%s doutB=%s\n", c.DoutA().Hex(), c.DoutB().Hex())
	return nil
}
