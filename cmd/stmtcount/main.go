package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/corani/stmtcount/internal/lexer"
	"github.com/corani/stmtcount/internal/loader"
)

const progName = "stmtcount"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var warn, verbose, help bool

	flags := flag.NewFlagSet(progName, flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.BoolVar(&warn, "warn", false, "warn about unterminated comments, literals and parentheses")
	flags.BoolVar(&verbose, "v", false, "print scanner state at end of input")
	flags.BoolVar(&help, "help", false, "show help message")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if help {
		fmt.Fprintf(stdout, "Usage: %s [options] [source_file]\n", progName)
		fmt.Fprintf(stdout, "Counts ';', '{' and '%s' outside comments, literals and parentheses.\n", "<%")
		fmt.Fprintln(stdout, "Reads standard input when no source file (or '-') is given.")
		fmt.Fprintln(stdout, "Options:")
		flags.SetOutput(stdout)
		flags.PrintDefaults()

		return 0
	}

	rep := lexer.Reporter{Name: progName, Out: stderr}

	if flags.NArg() > 1 {
		_ = rep.Errorf("expected at most one source file, got %d", flags.NArg())
		return 2
	}

	srcFile := flags.Arg(0)
	if srcFile != "" && srcFile != loader.Stdin {
		rep.Name = srcFile
	}

	counter, count, err := loader.NewLoader(stdin).Load(srcFile)
	if err != nil {
		_ = rep.Errorf("%v", err)
		return 1
	}

	if verbose {
		rep.Infof("final mode %s, depth %d", counter.Mode(), counter.Depth())
	}

	if warn {
		counter.Check(rep)
	}

	fmt.Fprintln(stdout, count)

	return 0
}
