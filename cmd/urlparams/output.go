package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type outputFile string

type closeWriter interface {
	io.Writer
	io.Closer
	// Terminal tells whether the output is an interactive terminal,
	// so callers can decide on a trailing newline.
	Terminal() bool
}

func (output outputFile) Create() (closeWriter, error) {
	if output == "" {
		return stdoutWriter{os.Stdout}, nil
	}
	outfile, err := os.Create(string(output))
	if err != nil {
		return nil, err
	}
	fmt.Printf("writing output to file %s\n", output)
	return fileWriter{outfile}, nil
}

type stdoutWriter struct {
	*os.File
}

// stdout is shared, do not close it
func (stdoutWriter) Close() error {
	return nil
}

func (w stdoutWriter) Terminal() bool {
	return term.IsTerminal(int(w.Fd()))
}

type fileWriter struct {
	*os.File
}

func (fileWriter) Terminal() bool {
	return false
}
