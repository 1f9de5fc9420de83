package dpdistram

import (
	"github.com/moaz-kh/MEM-lib/mem"
	"github.com/moaz-kh/MEM-lib/mem/port"
	"github.com/moaz-kh/MEM-lib/sim"
)

// Builder can build dual-port distributed RAM macros.
type Builder struct {
	engine  sim.Engine
	freqA   sim.Freq
	freqB   sim.Freq
	driverA Driver
	driverB Driver

	addressWidth   int
	dataWidth      int
	byteWriteWidth int
	memorySizeBits uint64
	writeMode      mem.WriteMode
	diagnostics    bool

	readLatencyA int
	readLatencyB int
	resetModeA   mem.ResetMode
	resetModeB   mem.ResetMode
	resetValueA  mem.ResetValue
	resetValueB  mem.ResetValue

	contents  []mem.Word
	imagePath string
}

// MakeBuilder returns a Builder with default configuration.
func MakeBuilder() Builder {
	return Builder{
		freqA:          1 * sim.GHz,
		freqB:          1 * sim.GHz,
		addressWidth:   6,
		dataWidth:      32,
		byteWriteWidth: 32,
		memorySizeBits: 2048,
		writeMode:      mem.ReadFirst,
		readLatencyA:   1,
		readLatencyB:   1,
		resetModeA:     mem.ResetSync,
		resetModeB:     mem.ResetSync,
		resetValueA:    mem.ResetToZeros,
		resetValueB:    mem.ResetToZeros,
	}
}

// WithEngine sets the engine that schedules the clock edges of both ports.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreqA sets the clock frequency of port A.
func (b Builder) WithFreqA(freq sim.Freq) Builder {
	b.freqA = freq
	return b
}

// WithFreqB sets the clock frequency of port B.
func (b Builder) WithFreqB(freq sim.Freq) Builder {
	b.freqB = freq
	return b
}

// WithDriverA sets the stimulus source of port A.
func (b Builder) WithDriverA(driver Driver) Builder {
	b.driverA = driver
	return b
}

// WithDriverB sets the stimulus source of port B.
func (b Builder) WithDriverB(driver Driver) Builder {
	b.driverB = driver
	return b
}

// WithAddressWidth sets the width of both address inputs in bits.
func (b Builder) WithAddressWidth(width int) Builder {
	b.addressWidth = width
	return b
}

// WithDataWidth sets the width of both data ports in bits.
func (b Builder) WithDataWidth(width int) Builder {
	b.dataWidth = width
	return b
}

// WithByteWriteWidth sets the byte-lane width of the port A write mask.
func (b Builder) WithByteWriteWidth(width int) Builder {
	b.byteWriteWidth = width
	return b
}

// WithMemorySize sets the total capacity of the macro in bits.
func (b Builder) WithMemorySize(bits uint64) Builder {
	b.memorySizeBits = bits
	return b
}

// WithWriteMode sets the write-forwarding policy of port A.
func (b Builder) WithWriteMode(mode mem.WriteMode) Builder {
	b.writeMode = mode
	return b
}

// WithReadLatencyA sets the read latency of port A.
func (b Builder) WithReadLatencyA(latency int) Builder {
	b.readLatencyA = latency
	return b
}

// WithReadLatencyB sets the read latency of port B.
func (b Builder) WithReadLatencyB(latency int) Builder {
	b.readLatencyB = latency
	return b
}

// WithResetModeA sets the reset discipline of port A.
func (b Builder) WithResetModeA(mode mem.ResetMode) Builder {
	b.resetModeA = mode
	return b
}

// WithResetModeB sets the reset discipline of port B.
func (b Builder) WithResetModeB(mode mem.ResetMode) Builder {
	b.resetModeB = mode
	return b
}

// WithResetValueA sets the pattern that reset forces onto the port A output.
func (b Builder) WithResetValueA(v mem.ResetValue) Builder {
	b.resetValueA = v
	return b
}

// WithResetValueB sets the pattern that reset forces onto the port B output.
func (b Builder) WithResetValueB(v mem.ResetValue) Builder {
	b.resetValueB = v
	return b
}

// WithDiagnostics enables address-bounds reporting on both ports.
func (b Builder) WithDiagnostics() Builder {
	b.diagnostics = true
	return b
}

// WithContents sets the initial memory contents, loaded in address order.
func (b Builder) WithContents(words []mem.Word) Builder {
	b.contents = words
	return b
}

// WithImageFile sets a hex image file to load the initial contents from.
func (b Builder) WithImageFile(path string) Builder {
	b.imagePath = path
	return b
}

// Build validates both port configurations and creates the macro.
func (b Builder) Build(name string) (*Comp, error) {
	cfgA := mem.Config{
		AddressWidth:   b.addressWidth,
		DataWidth:      b.dataWidth,
		ByteWriteWidth: b.byteWriteWidth,
		MemorySizeBits: b.memorySizeBits,
		ReadLatency:    b.readLatencyA,
		WriteMode:      b.writeMode,
		ResetMode:      b.resetModeA,
		ResetValue:     b.resetValueA,
		Diagnostics:    b.diagnostics,
	}

	cfgB := cfgA
	cfgB.ByteWriteWidth = b.dataWidth
	cfgB.ReadLatency = b.readLatencyB
	cfgB.ResetMode = b.resetModeB
	cfgB.ResetValue = b.resetValueB

	if err := cfgA.Validate(mem.MaxDistReadLatency); err != nil {
		return nil, err
	}
	if err := cfgB.Validate(mem.MaxDistReadLatency); err != nil {
		return nil, err
	}

	c := &Comp{
		name:    name,
		storage: mem.NewStorage(cfgA.Depth(), cfgA.DataWidth),
		driverA: b.driverA,
		driverB: b.driverB,
	}

	if b.contents != nil {
		if err := mem.LoadWords(c.storage, b.contents); err != nil {
			return nil, err
		}
	}
	if b.imagePath != "" {
		if err := mem.LoadHexImageFile(c.storage, b.imagePath); err != nil {
			return nil, err
		}
	}

	c.portA = port.NewController(name+".PortA", cfgA, c.storage, true)
	c.portB = port.NewController(name+".PortB", cfgB, c.storage, false)

	if b.engine != nil {
		c.clockA = sim.NewClockSource(name+".ClkA", b.engine, b.freqA, c)
		c.clockB = sim.NewClockSource(name+".ClkB", b.engine, b.freqB, c)
		c.clockA.Start(0)
		c.clockB.Start(0)
	}

	return c, nil
}
