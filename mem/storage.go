package mem

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is reported when an address at or beyond the storage depth
// is accessed through a diagnostic query.
var ErrOutOfRange = errors.New("address beyond the storage depth")

// A Storage keeps the words of one memory macro.
//
// The storage manages its words in fixed-size pages. Pages that are never
// touched by Read or Write are not allocated. The storage itself has no
// latency and is never reset. All read latency lives in the pipeline of the
// accessing port, and reset affects only that pipeline.
type Storage struct {
	width        int
	depth        uint64
	wordsPerPage uint64
	pages        map[uint64][]Word
}

// NewStorage creates a storage with the given number of words of the given
// width.
func NewStorage(depth uint64, width int) *Storage {
	storage := new(Storage)

	storage.width = width
	storage.depth = depth
	storage.wordsPerPage = 512
	storage.pages = make(map[uint64][]Word)

	return storage
}

// Depth returns the number of addressable words.
func (s *Storage) Depth() uint64 {
	return s.depth
}

// Width returns the word width in bits.
func (s *Storage) Width() int {
	return s.width
}

func (s *Storage) page(addr uint64) []Word {
	base := addr - addr%s.wordsPerPage
	page, ok := s.pages[base]
	if !ok {
		page = make([]Word, s.wordsPerPage)
		s.pages[base] = page
	}
	return page
}

// Read returns a copy of the word at addr. Reading beyond the depth returns
// ErrOutOfRange.
func (s *Storage) Read(addr uint64) (Word, error) {
	if addr >= s.depth {
		return Word{}, fmt.Errorf("read 0x%x: %w", addr, ErrOutOfRange)
	}

	w := s.page(addr)[addr%s.wordsPerPage]
	if w.IsZeroWidth() {
		return NewWord(s.width), nil
	}

	return w.Clone(), nil
}

// Write replaces the whole word at addr.
func (s *Storage) Write(addr uint64, w Word) error {
	if addr >= s.depth {
		return fmt.Errorf("write 0x%x: %w", addr, ErrOutOfRange)
	}
	if w.Width() != s.width {
		return fmt.Errorf("write 0x%x: word width %d does not match storage width %d",
			addr, w.Width(), s.width)
	}

	s.page(addr)[addr%s.wordsPerPage] = w.Clone()

	return nil
}

// WriteMasked applies each enabled byte lane of w to the word at addr,
// leaving disabled lanes untouched. A byte lane is laneWidth bits.
func (s *Storage) WriteMasked(
	addr uint64,
	w Word,
	laneWidth int,
	mask []bool,
) error {
	if addr >= s.depth {
		return fmt.Errorf("write 0x%x: %w", addr, ErrOutOfRange)
	}
	if w.Width() != s.width {
		return fmt.Errorf("write 0x%x: word width %d does not match storage width %d",
			addr, w.Width(), s.width)
	}

	page := s.page(addr)
	cur := page[addr%s.wordsPerPage]
	if cur.IsZeroWidth() {
		cur = NewWord(s.width)
	} else {
		cur = cur.Clone()
	}

	for lane, enabled := range mask {
		if enabled {
			cur.CopyLane(w, lane, laneWidth)
		}
	}

	page[addr%s.wordsPerPage] = cur

	return nil
}
