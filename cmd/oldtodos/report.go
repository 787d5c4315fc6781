package main

import (
	"context"
	"time"

	"github.com/pescuma/oldtodos/lib/report"
	"github.com/pescuma/oldtodos/lib/workspace"
)

type ReportCmd struct {
	Path     string        `short:"p" default:"." env:"OLDTODOS_PATH" help:"File or directory to search."`
	Limit    int           `short:"l" default:"-1" env:"OLDTODOS_LIMIT" help:"Show only the N oldest TODOs. Negative shows all."`
	NoStats  bool          `env:"OLDTODOS_NO_STATS" help:"Don't compute the age statistics."`
	JSON     bool          `name:"json" env:"OLDTODOS_JSON" help:"Write the report as JSON."`
	Marker   []string      `short:"m" env:"OLDTODOS_MARKER" help:"Extra text that marks a TODO line. Can be repeated."`
	Exclude  []string      `short:"x" env:"OLDTODOS_EXCLUDE" help:"Glob of paths to skip, relative to the path. Can be repeated."`
	Hidden   bool          `env:"OLDTODOS_HIDDEN" help:"Also search hidden files and directories."`
	Jobs     int           `short:"j" env:"OLDTODOS_JOBS" help:"Number of files to process in parallel. Default is the number of CPUs."`
	Timeout  time.Duration `default:"0" env:"OLDTODOS_TIMEOUT" help:"Maximum time for each git blame call. 0 means no limit."`
	Progress bool          `env:"OLDTODOS_PROGRESS" help:"Show a progress bar while running git blame."`
	Verbose  bool          `short:"v" env:"OLDTODOS_VERBOSE" help:"Also report skipped binary files."`
	Git      string        `default:"git" env:"OLDTODOS_GIT" help:"Git executable to use."`
}

func (c *ReportCmd) Run(out *output) error {
	ws, err := workspace.NewWorkspace(c.Path)
	if err != nil {
		return err
	}

	r, err := ws.FindTodos(context.Background(), c.options())
	if err != nil {
		return err
	}

	if c.JSON {
		return report.WriteJSON(out.writer, r)
	}

	width, err := out.width()
	if err != nil {
		return err
	}

	layout := report.NewLayout(r.All, width)
	layout.Hyperlinks = out.hyperlinks

	return report.WriteText(out.writer, r, layout)
}

func (c *ReportCmd) options() *workspace.Options {
	var limit *int
	if c.Limit >= 0 {
		limit = &c.Limit
	}

	return &workspace.Options{
		Markers:  c.Marker,
		Exclude:  c.Exclude,
		Hidden:   c.Hidden,
		Limit:    limit,
		NoStats:  c.NoStats,
		Jobs:     c.Jobs,
		Timeout:  c.Timeout,
		Git:      c.Git,
		Progress: c.Progress,
		Verbose:  c.Verbose,
	}
}
