package lexer

import (
	"errors"
	"fmt"
	"io"
)

// Counter counts statement terminators (';') and block openers ('{' and the
// digraph "<%") that appear in code, outside comments, literals and
// parentheses.
type Counter struct {
	Scan  *Scanner
	mode  Mode
	depth int
	count int
}

func NewCounter(scan *Scanner) *Counter {
	return &Counter{
		Scan:  scan,
		mode:  ModeCode,
		depth: 0,
		count: 0,
	}
}

// Count consumes the scanner until end of input and returns the number of
// terminators and openers seen. The only error it returns is a read failure
// of the underlying input.
func (c *Counter) Count() (int, error) {
	for {
		ch, err := c.Scan.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return c.count, nil
			}

			return c.count, err
		}

		if err := c.step(ch); err != nil {
			return c.count, err
		}
	}
}

func (c *Counter) Mode() Mode { return c.mode }
func (c *Counter) Depth() int { return c.depth }

func (c *Counter) step(ch byte) error {
	switch c.mode {
	case ModeCode:
		return c.code(ch)
	case ModeBlockComment:
		if ch != '*' {
			return nil
		}

		ok, err := c.matchSecond('/')
		if ok {
			c.mode = ModeCode
		}

		return err
	case ModeLineComment:
		if ch == '\n' {
			c.mode = ModeCode
		}

		return nil
	case ModeCharLiteral, ModeStringLiteral:
		switch ch {
		case c.mode.closer():
			c.mode = ModeCode
		case '\\':
			// Escape: drop whatever follows, EOF included.
			if _, err := c.Scan.Next(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
		}

		return nil
	default:
		panic(fmt.Sprintf("lexer: unknown mode %q", c.mode))
	}
}

func (c *Counter) code(ch byte) error {
	switch ch {
	case ';', '{':
		if c.depth == 0 {
			c.count++
		}
	case '<':
		ok, err := c.matchSecond('%')
		if err != nil {
			return err
		}

		if ok && c.depth == 0 {
			c.count++
		}
	case '/':
		ok, err := c.matchSecond('*')
		if err != nil {
			return err
		}

		if ok {
			c.mode = ModeBlockComment
			return nil
		}

		if ok, err = c.matchSecond('/'); ok {
			c.mode = ModeLineComment
		}

		return err
	case '\'':
		c.mode = ModeCharLiteral
	case '"':
		c.mode = ModeStringLiteral
	case '(':
		c.depth++
	case ')':
		// NOTE(daniel): not clamped at zero. A stray ')' makes the depth
		// negative and suppresses counting until a matching '(' shows up.
		c.depth--
	}

	return nil
}

// matchSecond reads one byte and reports whether it equals expected. A
// matching byte is consumed, anything else is pushed back. At end of input
// there is nothing to push back and it reports false.
func (c *Counter) matchSecond(expected byte) (bool, error) {
	ch, err := c.Scan.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}

		return false, err
	}

	if ch != expected {
		c.Scan.Unread(ch)
		return false, nil
	}

	return true, nil
}
