package consoles

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type writerConsole struct {
	mutex sync.Mutex
	out   io.Writer
}

func NewStdErrConsole() Console {
	return NewWriterConsole(os.Stderr)
}

func NewWriterConsole(out io.Writer) Console {
	return &writerConsole{out: out}
}

func (o *writerConsole) Printf(format string, a ...any) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	_, _ = fmt.Fprintf(o.out, format, a...)
}
