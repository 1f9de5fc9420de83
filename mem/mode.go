package mem

import "fmt"

// WriteMode selects what a read of a write-capable port observes when a
// write lands at the same address on the same edge.
type WriteMode int

// The three write-forwarding policies.
const (
	// ReadFirst reads observe the pre-write contents.
	ReadFirst WriteMode = iota

	// WriteFirst reads preview the post-write contents of the enabled byte
	// lanes on the same edge.
	WriteFirst

	// NoChange freezes the read output while any byte lane is being
	// written.
	NoChange
)

func (m WriteMode) String() string {
	switch m {
	case ReadFirst:
		return "read_first"
	case WriteFirst:
		return "write_first"
	case NoChange:
		return "no_change"
	}
	return fmt.Sprintf("WriteMode(%d)", int(m))
}

// ParseWriteMode converts a mode name to a WriteMode.
func ParseWriteMode(s string) (WriteMode, error) {
	switch s {
	case "read_first":
		return ReadFirst, nil
	case "write_first":
		return WriteFirst, nil
	case "no_change":
		return NoChange, nil
	}
	return 0, fmt.Errorf("unknown write mode %q", s)
}

// Forward computes the value presented to the head of the read pipeline of
// a write-capable port, given the pre-write store contents and the pending
// write. The returned load flag tells whether the pipeline head loads the
// value; when it is false the head holds its previous value.
func (m WriteMode) Forward(
	enable bool,
	store Word,
	writeValue Word,
	laneWidth int,
	mask []bool,
) (next Word, load bool) {
	if !enable {
		return Word{}, false
	}

	writing := anyLane(mask)

	switch m {
	case ReadFirst:
		return store, true
	case WriteFirst:
		if !writing {
			return store, true
		}
		next = store.Clone()
		for lane, enabled := range mask {
			if enabled {
				next.CopyLane(writeValue, lane, laneWidth)
			}
		}
		return next, true
	case NoChange:
		if writing {
			return Word{}, false
		}
		return store, true
	}

	panic(fmt.Sprintf("unknown write mode %d", int(m)))
}

func anyLane(mask []bool) bool {
	for _, b := range mask {
		if b {
			return true
		}
	}
	return false
}
