package mem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadWords fills the storage with the given words in address order,
// starting at address 0. Trailing addresses keep their pre-existing value.
// This is meant to run exactly once, before the macro accepts any clock
// edge.
func LoadWords(s *Storage, words []Word) error {
	if uint64(len(words)) > s.Depth() {
		return fmt.Errorf(
			"content has %d words but the storage holds only %d",
			len(words), s.Depth())
	}

	for i, w := range words {
		if err := s.Write(uint64(i), w); err != nil {
			return fmt.Errorf("content word %d: %w", i, err)
		}
	}

	return nil
}

// ReadHexImage parses a memory image: one hex word per line, most
// significant nibble first. Blank lines and lines starting with "//" are
// ignored. The format matches the plain form of Verilog $readmemh images.
func ReadHexImage(r io.Reader, width int) ([]Word, error) {
	var words []Word

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		w, err := WordFromHex(width, line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// LoadHexImageFile reads a hex image file and fills the storage with it.
func LoadHexImageFile(s *Storage, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	words, err := ReadHexImage(f, s.Width())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return LoadWords(s, words)
}
