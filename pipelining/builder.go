package pipelining

import (
	"log"

	"github.com/moaz-kh/MEM-lib/mem"
)

// Builder can build pipelines.
type Builder struct {
	width      int
	depth      int
	resetValue mem.ResetValue
}

// MakeBuilder returns a Builder with default configuration.
func MakeBuilder() Builder {
	return Builder{
		width:      32,
		depth:      1,
		resetValue: mem.ResetToZeros,
	}
}

// WithWordWidth sets the width of the words that flow through the pipeline.
func (b Builder) WithWordWidth(width int) Builder {
	b.width = width
	return b
}

// WithDepth sets the number of register stages, which equals the read
// latency of the port.
func (b Builder) WithDepth(depth int) Builder {
	b.depth = depth
	return b
}

// WithResetValue sets the pattern that reset forces into every stage.
func (b Builder) WithResetValue(v mem.ResetValue) Builder {
	b.resetValue = v
	return b
}

// Build creates a pipeline. Every stage starts at the reset value.
func (b Builder) Build(name string) Pipeline {
	if b.width < 1 {
		log.Panicf("pipeline word width must be positive, got %d", b.width)
	}
	if b.depth < 0 {
		log.Panicf("pipeline depth cannot be negative, got %d", b.depth)
	}

	p := &chainImpl{
		name:       name,
		depth:      b.depth,
		width:      b.width,
		resetValue: b.resetValue.Word(b.width),
	}

	p.stages = make([]mem.Word, b.depth)
	for i := range p.stages {
		p.stages[i] = p.resetValue.Clone()
	}
	p.out = p.resetValue

	return p
}
