package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	srclang "go.srclang.dev/pkg"
)

func main() {
	output := flag.String("o", "", "output file (defaults to stdout)")
	flag.Parse()

	if err := run(flag.Args(), *output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, output string) error {
	if len(args) != 1 {
		return errors.New("usage: srclangc [-o out] <file.src>")
	}

	c := srclang.NewCompiler()

	var (
		out string
		err error
	)

	if args[0] == "-" {
		out, err = c.CompileFromReader(os.Stdin)
	} else {
		out, err = c.Compile(args[0])
	}

	if err != nil {
		return err
	}

	return writeOutput(out, output)
}

func writeOutput(out, path string) error {
	var w io.Writer = os.Stdout

	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "create %s", path)
		}
		defer f.Close()

		w = f
	}

	_, err := fmt.Fprintln(w, out)
	return err
}
