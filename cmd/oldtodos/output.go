package main

import (
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

type output struct {
	writer     io.Writer
	width      func() (int, error)
	hyperlinks bool
}

func newTerminalOutput() *output {
	return &output{
		writer:     os.Stdout,
		width:      terminalWidth,
		hyperlinks: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// terminalWidth asks stdout and then stderr for their size, so the width is
// still known when only stdout is redirected. COLUMNS is the last resort.
func terminalWidth() (int, error) {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width, nil
		}
	}

	if width, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && width > 0 {
		return width, nil
	}

	return 0, errors.New("couldn't determine the terminal width")
}
