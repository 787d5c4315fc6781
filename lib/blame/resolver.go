package blame

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/pescuma/oldtodos/lib/model"
	"github.com/pescuma/oldtodos/lib/utils"
)

// Runner executes git with args inside dir and returns its stdout and stderr.
// A non-nil error means the process could not run or exited with a non-zero status.
type Runner func(ctx context.Context, dir string, args ...string) (stdout []byte, stderr []byte, err error)

type Options struct {
	Git string
	// Timeout limits each git call. Zero means no limit.
	Timeout time.Duration
}

type Resolver struct {
	run     Runner
	now     func() time.Time
	timeout time.Duration
}

func NewResolver(opts *Options) *Resolver {
	git := opts.Git
	if git == "" {
		git = "git"
	}

	return &Resolver{
		run:     NewExecRunner(git),
		now:     time.Now,
		timeout: opts.Timeout,
	}
}

func NewExecRunner(git string) Runner {
	return func(ctx context.Context, dir string, args ...string) ([]byte, []byte, error) {
		var stdout, stderr bytes.Buffer

		cmd := exec.CommandContext(ctx, git, args...)
		cmd.Dir = dir
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		err := cmd.Run()
		if err != nil && ctx.Err() != nil {
			err = errors.Wrapf(ctx.Err(), "%v", err)
		}

		return stdout.Bytes(), stderr.Bytes(), err
	}
}

// Resolve finds the author and date of the commit that last changed the
// location's line.
func (r *Resolver) Resolve(ctx context.Context, location *model.Location) (*model.Todo, error) {
	path, err := utils.PathCanonical(location.Path)
	if err != nil {
		return nil, newError(ErrPathResolution, location.Path, err)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	lines := fmt.Sprintf("%v,%v", location.Line, location.Line)

	stdout, stderr, err := r.run(ctx, filepath.Dir(path), "blame", "-L", lines, path)
	if err != nil {
		msg := strings.TrimSpace(string(stderr))
		if msg == "" {
			return nil, newError(ErrSubprocess, location.Path, err)
		}
		return nil, newError(ErrSubprocess, location.Path, errors.Errorf("%v: %v", err, msg))
	}

	line, _, _ := strings.Cut(string(stdout), "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return nil, newError(ErrEmptyOutput, location.Path, nil)
	}

	attribution, err := ParseLine(line)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Path = location.Path
			return nil, e
		}
		return nil, err
	}

	return model.NewTodo(location, attribution.Author, attribution.Timestamp, r.now()), nil
}
