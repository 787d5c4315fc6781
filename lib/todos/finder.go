package todos

import (
	"context"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/pescuma/oldtodos/lib/consoles"
	"github.com/pescuma/oldtodos/lib/model"
	"github.com/pescuma/oldtodos/lib/scanner"
	"github.com/pescuma/oldtodos/lib/stats"
	"github.com/pescuma/oldtodos/lib/utils"
)

type Resolver interface {
	Resolve(ctx context.Context, location *model.Location) (*model.Todo, error)
}

type Options struct {
	Markers []string
	// Limit keeps only the oldest todos. Nil means no limit.
	Limit    *int
	NoStats  bool
	Workers  int
	Progress bool
	Verbose  bool
}

type Report struct {
	Stats *stats.Stats  `json:"stats"`
	Todos []*model.Todo `json:"todos"`
	Count int           `json:"count"`
	Total int           `json:"total"`

	// All holds every attributed todo, before the limit.
	All []*model.Todo `json:"-"`
}

type Finder struct {
	console  consoles.Console
	resolver Resolver
	scanner  *scanner.Scanner
	options  *Options

	progressOut io.Writer
}

func NewFinder(console consoles.Console, resolver Resolver, options *Options) *Finder {
	return &Finder{
		console:     console,
		resolver:    resolver,
		scanner:     scanner.New(options.Markers...),
		options:     options,
		progressOut: os.Stderr,
	}
}

// Find scans the files, attributes every marker found and builds the report.
func (f *Finder) Find(ctx context.Context, files []string) *Report {
	locations := f.Discover(files)

	todos := f.Attribute(ctx, locations)
	SortByTimestamp(todos)

	result := &Report{
		Todos: Limit(todos, f.options.Limit),
		Total: len(todos),
		All:   todos,
	}
	result.Count = len(result.Todos)

	if !f.options.NoStats {
		result.Stats = stats.Compute(result.Todos)
	}

	return result
}

type scanned struct {
	locations []*model.Location
	err       error
}

// Discover scans the files in parallel and returns the locations in file order.
// Files that can't be scanned are reported to the console, in file order.
func (f *Finder) Discover(files []string) []*model.Location {
	results := utils.ParallelMap(files, func(path string) scanned {
		var result scanned

		result.err = f.scanner.ScanFile(path, func(line int, text string) {
			result.locations = append(result.locations, model.NewLocation(path, line, text))
		})

		return result
	}, f.parallelOptions())

	locations := make([]*model.Location, 0, len(results))
	for i, r := range results {
		switch {
		case r.err == nil:
		case errors.Is(r.err, scanner.ErrNotText):
			if f.options.Verbose {
				f.console.Printf("skipping %v: %v\n", files[i], r.err)
			}
		default:
			f.console.Printf("warning: couldn't read %v: %v\n", files[i], r.err)
		}

		locations = append(locations, r.locations...)
	}

	return locations
}

type outcome struct {
	todo *model.Todo
	err  error
}

// Attribute resolves every location in parallel. Locations that fail are
// reported to the console and dropped. The result keeps the input order.
func (f *Finder) Attribute(ctx context.Context, locations []*model.Location) []*model.Todo {
	var bar *progressbar.ProgressBar
	if f.options.Progress && len(locations) > 0 {
		bar = utils.NewProgressBar(len(locations), f.progressOut)
	}

	outcomes := utils.ParallelMap(locations, func(location *model.Location) outcome {
		todo, err := f.resolver.Resolve(ctx, location)

		if bar != nil {
			_ = bar.Add(1)
		}

		return outcome{todo, err}
	}, f.parallelOptions())

	if bar != nil {
		_ = bar.Finish()
	}

	result := make([]*model.Todo, 0, len(outcomes))
	for i, o := range outcomes {
		if o.err != nil {
			f.console.Printf("warning: couldn't get git blame for %v: %v\n", locations[i].Path, o.err)
			continue
		}

		result = append(result, o.todo)
	}

	return result
}

func (f *Finder) parallelOptions() utils.ParallelOptions {
	return utils.ParallelOptions{Routines: f.options.Workers}
}

// SortByTimestamp sorts the todos oldest first. Todos with the same timestamp
// keep their relative order.
func SortByTimestamp(todos []*model.Todo) {
	sort.SliceStable(todos, func(i, j int) bool {
		return todos[i].Timestamp.Before(todos[j].Timestamp)
	})
}

// Limit returns the first limit todos. A nil limit keeps all of them.
func Limit(todos []*model.Todo, limit *int) []*model.Todo {
	if limit == nil || *limit >= len(todos) {
		return todos
	}

	return todos[:utils.Max(*limit, 0)]
}
