package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Scanner reads bytes from an underlying reader with line continuations
// (a backslash immediately followed by a newline) removed.
type Scanner struct {
	src     *bufio.Reader
	pending byte
	hasPend bool
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		src: bufio.NewReader(r),
	}
}

// Next returns the next byte that is not part of a line continuation, or
// io.EOF once the input is exhausted.
func (s *Scanner) Next() (byte, error) {
	for {
		c, err := s.raw()
		if err != nil {
			return 0, err
		}

		if c != '\\' {
			return c, nil
		}

		c2, err := s.raw()
		if err != nil {
			return 0, err // EOF right after the backslash
		}

		if c2 == '\n' {
			continue
		}

		// NOTE(daniel): the backslash came either from the pending slot or
		// from src, so the follow-up byte was always read from src and can be
		// handed back to it.
		if err := s.src.UnreadByte(); err != nil {
			return 0, fmt.Errorf("scanner: unread: %w", err)
		}

		return '\\', nil
	}
}

// Unread pushes c back so the next call to Next sees it first. Only one byte
// can be pending at a time; a second Unread replaces the first.
func (s *Scanner) Unread(c byte) {
	s.pending = c
	s.hasPend = true
}

func (s *Scanner) raw() (byte, error) {
	if s.hasPend {
		s.hasPend = false
		return s.pending, nil
	}

	c, err := s.src.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}

		return 0, fmt.Errorf("scanner: read: %w", err)
	}

	return c, nil
}
