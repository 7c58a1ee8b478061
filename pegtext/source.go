// Package pegtext adapts the peg engine to text: Source[rune]/Source[byte]
// implementations, a Strategy[rune] constructor, a catalogue of common
// rune-set grammar elements, and two worked grammars (a left-recursive
// arithmetic calculator and a dotted hex-byte IPv4 address) exercising the
// core engine end to end.
package pegtext

import (
	"io"
	"os"
)

// RuneSource is a peg.Source[rune] over a decoded string, indexing one rune
// at a time rather than one byte at a time — the distinction matters for
// any input containing multi-byte UTF-8 sequences, since peg.Position's
// Offset is an element count, not a byte count.
type RuneSource struct {
	runes []rune
}

// NewRuneSource decodes text into a RuneSource.
func NewRuneSource(text string) *RuneSource {
	return &RuneSource{runes: []rune(text)}
}

// ReadRuneSource decodes the entirety of r into a RuneSource.
func ReadRuneSource(r io.Reader) (*RuneSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewRuneSource(string(data)), nil
}

// LoadRuneSource reads and decodes the named file into a RuneSource.
func LoadRuneSource(path string) (*RuneSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewRuneSource(string(data)), nil
}

func (s *RuneSource) Len() int { return len(s.runes) }

func (s *RuneSource) At(i int) rune { return s.runes[i] }

func (s *RuneSource) Slice(begin, end int) []rune {
	return s.runes[begin:end]
}

// String reassembles the runes spanned by [begin, end) back into a string,
// the common case for turning a peg.Match.Content() back into host text.
func (s *RuneSource) String(begin, end int) string {
	return string(s.runes[begin:end])
}

// ByteSource is a peg.Source[byte] over a raw buffer, for byte-oriented
// protocols where each element is a single octet rather than a decoded
// rune.
type ByteSource struct {
	bytes []byte
}

// NewByteSource wraps data as a ByteSource. data is not copied.
func NewByteSource(data []byte) *ByteSource {
	return &ByteSource{bytes: data}
}

// ReadByteSource reads the entirety of r into a ByteSource.
func ReadByteSource(r io.Reader) (*ByteSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewByteSource(data), nil
}

func (s *ByteSource) Len() int { return len(s.bytes) }

func (s *ByteSource) At(i int) byte { return s.bytes[i] }

func (s *ByteSource) Slice(begin, end int) []byte {
	return s.bytes[begin:end]
}
