package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/moaz-kh/MEM-lib/mem"
	"github.com/moaz-kh/MEM-lib/mem/port"
)

// A stimulusEdge is one parsed line of a stimulus script: the inputs to
// apply at one clock edge, and which port they target.
type stimulusEdge struct {
	portB   bool
	signals port.Signals
}

// parseStimulus reads a stimulus script: one clock edge per line.
//
//	r <addr>               read
//	w <addr> <hexdata>     write, full mask
//	w <addr> <hexdata> <mask>  write, one 0/1 per byte lane
//	n                      idle edge, port disabled
//	s                      stall edge, output gate deasserted
//	x                      synchronous reset edge
//
// A line may be prefixed with "a:" or "b:" to target one port of a
// dual-port macro; unprefixed lines target port A. Blank lines and lines
// starting with "#" are ignored.
func parseStimulus(
	r io.Reader,
	dataWidth int,
	laneCount int,
) ([]stimulusEdge, error) {
	var edges []stimulusEdge

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		edge, err := parseStimulusLine(line, dataWidth, laneCount)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		edges = append(edges, edge)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(edges) == 0 {
		return nil, fmt.Errorf("stimulus script has no edges")
	}

	return edges, nil
}

func parseStimulusLine(
	line string,
	dataWidth int,
	laneCount int,
) (stimulusEdge, error) {
	edge := stimulusEdge{}

	if rest, ok := strings.CutPrefix(line, "b:"); ok {
		edge.portB = true
		line = strings.TrimSpace(rest)
	} else if rest, ok := strings.CutPrefix(line, "a:"); ok {
		line = strings.TrimSpace(rest)
	}

	fields := strings.Fields(line)
	op, args := fields[0], fields[1:]

	switch op {
	case "n":
		return edge, nil

	case "s":
		edge.signals = port.Signals{Enable: true}
		return edge, nil

	case "x":
		edge.signals = port.Signals{Enable: true, Gate: true, Reset: true}
		return edge, nil

	case "r":
		if len(args) != 1 {
			return edge, fmt.Errorf("r takes an address")
		}
		addr, err := strconv.ParseUint(args[0], 0, 64)
		if err != nil {
			return edge, fmt.Errorf("bad address %q: %w", args[0], err)
		}
		edge.signals = port.Signals{Enable: true, Gate: true, Addr: addr}
		return edge, nil

	case "w":
		if len(args) != 2 && len(args) != 3 {
			return edge, fmt.Errorf("w takes an address, data, and " +
				"an optional lane mask")
		}
		addr, err := strconv.ParseUint(args[0], 0, 64)
		if err != nil {
			return edge, fmt.Errorf("bad address %q: %w", args[0], err)
		}
		din, err := mem.WordFromHex(dataWidth, args[1])
		if err != nil {
			return edge, fmt.Errorf("bad data %q: %w", args[1], err)
		}

		mask := make([]bool, laneCount)
		if len(args) == 3 {
			if err := parseLaneMask(args[2], mask); err != nil {
				return edge, err
			}
		} else {
			for i := range mask {
				mask[i] = true
			}
		}

		edge.signals = port.Signals{
			Enable: true,
			Gate:   true,
			Addr:   addr,
			Din:    din,
			Mask:   mask,
		}
		return edge, nil
	}

	return edge, fmt.Errorf("unknown operation %q", op)
}

// parseLaneMask fills mask from a bit string, most significant lane first,
// matching the way the data is written in hex.
func parseLaneMask(s string, mask []bool) error {
	if len(s) != len(mask) {
		return fmt.Errorf("mask %q must have %d lanes", s, len(mask))
	}

	for i, c := range s {
		switch c {
		case '0':
			mask[len(mask)-1-i] = false
		case '1':
			mask[len(mask)-1-i] = true
		default:
			return fmt.Errorf("mask %q must contain only 0 and 1", s)
		}
	}

	return nil
}
