package sprom

import (
	"github.com/moaz-kh/MEM-lib/mem"
	"github.com/moaz-kh/MEM-lib/mem/port"
	"github.com/moaz-kh/MEM-lib/sim"
)

// Builder can build single-port ROM macros.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	driver Driver

	addressWidth   int
	dataWidth      int
	memorySizeBits uint64
	readLatency    int
	resetMode      mem.ResetMode
	resetValue     mem.ResetValue
	diagnostics    bool

	contents  []mem.Word
	imagePath string
}

// MakeBuilder returns a Builder with default configuration.
func MakeBuilder() Builder {
	return Builder{
		freq:           1 * sim.GHz,
		addressWidth:   6,
		dataWidth:      32,
		memorySizeBits: 2048,
		readLatency:    2,
		resetMode:      mem.ResetSync,
		resetValue:     mem.ResetToZeros,
	}
}

// WithEngine sets the engine that schedules the clock edges of the macro.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the clock frequency of the port.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithDriver sets the stimulus source used when the macro is clocked by an
// engine.
func (b Builder) WithDriver(driver Driver) Builder {
	b.driver = driver
	return b
}

// WithAddressWidth sets the width of the address input in bits.
func (b Builder) WithAddressWidth(width int) Builder {
	b.addressWidth = width
	return b
}

// WithDataWidth sets the width of the data output in bits.
func (b Builder) WithDataWidth(width int) Builder {
	b.dataWidth = width
	return b
}

// WithMemorySize sets the total capacity of the macro in bits.
func (b Builder) WithMemorySize(bits uint64) Builder {
	b.memorySizeBits = bits
	return b
}

// WithReadLatency sets the number of clock edges between a read request and
// the output becoming visible.
func (b Builder) WithReadLatency(latency int) Builder {
	b.readLatency = latency
	return b
}

// WithResetMode sets the reset discipline of the port.
func (b Builder) WithResetMode(mode mem.ResetMode) Builder {
	b.resetMode = mode
	return b
}

// WithResetValue sets the pattern that reset forces onto the output.
func (b Builder) WithResetValue(v mem.ResetValue) Builder {
	b.resetValue = v
	return b
}

// WithDiagnostics enables address-bounds reporting.
func (b Builder) WithDiagnostics() Builder {
	b.diagnostics = true
	return b
}

// WithContents sets the ROM contents, loaded in address order.
func (b Builder) WithContents(words []mem.Word) Builder {
	b.contents = words
	return b
}

// WithImageFile sets a hex image file to load the ROM contents from.
func (b Builder) WithImageFile(path string) Builder {
	b.imagePath = path
	return b
}

// Build validates the configuration and creates the macro.
func (b Builder) Build(name string) (*Comp, error) {
	cfg := mem.Config{
		AddressWidth: b.addressWidth,
		DataWidth:    b.dataWidth,

		// The ROM has no write path. The write parameters are pinned to
		// the values that always validate.
		ByteWriteWidth: b.dataWidth,
		WriteMode:      mem.ReadFirst,

		MemorySizeBits: b.memorySizeBits,
		ReadLatency:    b.readLatency,
		ResetMode:      b.resetMode,
		ResetValue:     b.resetValue,
		Diagnostics:    b.diagnostics,
	}

	if err := cfg.Validate(mem.MaxReadLatency); err != nil {
		return nil, err
	}

	c := &Comp{
		name:    name,
		cfg:     cfg,
		storage: mem.NewStorage(cfg.Depth(), cfg.DataWidth),
		driver:  b.driver,
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

	c.port = port.NewController(name+".Port", cfg, c.storage, false)

	if b.engine != nil {
		c.clock = sim.NewClockSource(name+".Clk", b.engine, b.freq, c)
		c.clock.Start(0)
	}

	return c, nil
}
