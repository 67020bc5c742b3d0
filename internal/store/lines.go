package store

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"xorcrack/internal/domain"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ReadLines reads the file at path, one buffer per line.
func ReadLines(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines, err := ScanLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// ScanLines splits r into lines with "\n" or "\r\n" stripped and surrounding
// blanks trimmed. Entry i is always line i+1 of the input: a blank line is
// kept as an empty buffer. Blank lines at the end of the input are dropped.
func ScanLines(r io.Reader) ([][]byte, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out [][]byte
	for sc.Scan() {
		out = append(out, append([]byte{}, bytes.TrimSpace(sc.Bytes())...))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

// FileSource is a domain.LineSource over a file; "-" reads Stdin.
type FileSource struct {
	Path  string
	Stdin io.Reader
}

// Lines implements domain.LineSource.
func (s FileSource) Lines() ([][]byte, error) {
	if s.Path == "-" {
		in := s.Stdin
		if in == nil {
			in = os.Stdin
		}
		return ScanLines(in)
	}
	return ReadLines(s.Path)
}

var _ domain.LineSource = FileSource{}
