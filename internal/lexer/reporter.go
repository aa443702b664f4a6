package lexer

import (
	"fmt"
	"io"
)

// Reporter prints prefixed diagnostics for one input. Name is usually the
// input file name, or the program name when reading standard input.
type Reporter struct {
	Name string
	Out  io.Writer
}

func (r Reporter) Errorf(format string, args ...any) error {
	fmt.Fprintf(r.Out, "%s: [ERRO] "+format+"\n", append([]any{r.Name}, args...)...)

	return fmt.Errorf("%s: "+format, append([]any{r.Name}, args...)...)
}

func (r Reporter) Warnf(format string, args ...any) {
	fmt.Fprintf(r.Out, "%s: [WARN] "+format+"\n", append([]any{r.Name}, args...)...)
}

func (r Reporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.Out, "%s: [INFO] "+format+"\n", append([]any{r.Name}, args...)...)
}
