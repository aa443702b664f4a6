package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/corani/stmtcount/internal/lexer"
)

// Stdin is the file name that selects the loader's standard input.
const Stdin = "-"

type Loader struct {
	stdin io.Reader
}

func NewLoader(stdin io.Reader) *Loader {
	return &Loader{
		stdin: stdin,
	}
}

// Load scans the given file, or standard input when filename is empty or
// Stdin, to the end. The returned counter holds the final scanner state.
func (l *Loader) Load(filename string) (*lexer.Counter, int, error) {
	r := l.stdin

	if filename != "" && filename != Stdin {
		f, err := os.Open(filename)
		if err != nil {
			return nil, 0, err
		}
		defer f.Close()

		r = f
	}

	counter := lexer.NewCounter(lexer.NewScanner(r))

	count, err := counter.Count()
	if err != nil {
		return counter, count, fmt.Errorf("load %s: %w", displayName(filename), err)
	}

	return counter, count, nil
}

func displayName(filename string) string {
	if filename == "" || filename == Stdin {
		return "<stdin>"
	}

	return filename
}
