package mem

import "fmt"

// ResetMode selects how a port samples its reset input.
type ResetMode int

// The two reset disciplines.
const (
	// ResetSync samples reset synchronously on the clock edge.
	ResetSync ResetMode = iota

	// ResetAsync applies reset immediately, independent of the clock.
	ResetAsync
)

func (m ResetMode) String() string {
	switch m {
	case ResetSync:
		return "sync"
	case ResetAsync:
		return "async"
	}
	return fmt.Sprintf("ResetMode(%d)", int(m))
}

// ParseResetMode converts a reset mode name to a ResetMode.
func ParseResetMode(s string) (ResetMode, error) {
	switch s {
	case "sync":
		return ResetSync, nil
	case "async":
		return ResetAsync, nil
	}
	return 0, fmt.Errorf("unknown reset mode %q", s)
}

// ResetValue selects the fixed pattern that reset forces into the output
// pipeline.
type ResetValue int

// The two supported reset patterns.
const (
	ResetToZeros ResetValue = iota
	ResetToOnes
)

// Word returns the reset pattern as a word of the given width.
func (v ResetValue) Word(width int) Word {
	return FilledWord(width, v == ResetToOnes)
}

// Limits shared by all macro variants.
const (
	MaxAddressWidth = 20
	MaxDataWidth    = 4608

	// MaxReadLatency applies to the block RAM and ROM macros.
	MaxReadLatency = 100

	// MaxDistReadLatency applies to the dual-port distributed RAM macro.
	MaxDistReadLatency = 6
)

// A ConfigError describes a rejected macro configuration. Construction of a
// macro with an invalid configuration fails with a ConfigError before any
// state exists.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// A Config is the validated, immutable parameter set shared by all ports of
// one macro instance.
type Config struct {
	AddressWidth   int
	DataWidth      int
	ByteWriteWidth int
	MemorySizeBits uint64
	ReadLatency    int
	WriteMode      WriteMode
	ResetMode      ResetMode
	ResetValue     ResetValue

	// Diagnostics enables address-bounds reporting. It never alters the
	// observable outputs.
	Diagnostics bool
}

// Depth returns the number of addressable words.
func (c Config) Depth() uint64 {
	return c.MemorySizeBits / uint64(c.DataWidth)
}

// ByteCount returns the number of byte lanes per word.
func (c Config) ByteCount() int {
	return c.DataWidth / c.ByteWriteWidth
}

// Validate checks every constraint of the configuration. The maximum read
// latency differs per macro variant, so the caller passes it in.
func (c Config) Validate(maxReadLatency int) error {
	if c.AddressWidth < 1 || c.AddressWidth > MaxAddressWidth {
		return &ConfigError{
			Param: "addressWidth",
			Reason: fmt.Sprintf("must be between 1 and %d, got %d",
				MaxAddressWidth, c.AddressWidth),
		}
	}

	if c.DataWidth < 1 || c.DataWidth > MaxDataWidth {
		return &ConfigError{
			Param: "dataWidth",
			Reason: fmt.Sprintf("must be between 1 and %d, got %d",
				MaxDataWidth, c.DataWidth),
		}
	}

	if c.ByteWriteWidth < 1 || c.DataWidth%c.ByteWriteWidth != 0 {
		return &ConfigError{
			Param: "byteWriteWidth",
			Reason: fmt.Sprintf("%d must divide the data width %d exactly",
				c.ByteWriteWidth, c.DataWidth),
		}
	}

	if c.MemorySizeBits < uint64(c.DataWidth) {
		return &ConfigError{
			Param: "memorySizeBits",
			Reason: fmt.Sprintf("%d must hold at least one %d-bit word",
				c.MemorySizeBits, c.DataWidth),
		}
	}

	if c.MemorySizeBits%uint64(c.DataWidth) != 0 {
		return &ConfigError{
			Param: "memorySizeBits",
			Reason: fmt.Sprintf("%d must be a multiple of the data width %d",
				c.MemorySizeBits, c.DataWidth),
		}
	}

	if c.Depth() > 1<<uint(c.AddressWidth) {
		return &ConfigError{
			Param: "addressWidth",
			Reason: fmt.Sprintf("%d bits cannot address %d words",
				c.AddressWidth, c.Depth()),
		}
	}

	if c.ReadLatency < 0 || c.ReadLatency > maxReadLatency {
		return &ConfigError{
			Param: "readLatency",
			Reason: fmt.Sprintf("must be between 0 and %d, got %d",
				maxReadLatency, c.ReadLatency),
		}
	}

	if c.WriteMode != ReadFirst && c.WriteMode != WriteFirst &&
		c.WriteMode != NoChange {
		return &ConfigError{
			Param:  "writeMode",
			Reason: fmt.Sprintf("unknown mode %d", int(c.WriteMode)),
		}
	}

	if c.ResetMode != ResetSync && c.ResetMode != ResetAsync {
		return &ConfigError{
			Param:  "resetMode",
			Reason: fmt.Sprintf("unknown mode %d", int(c.ResetMode)),
		}
	}

	return nil
}
