package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"

	"github.com/pescuma/oldtodos/lib/blame"
	"github.com/pescuma/oldtodos/lib/consoles"
	"github.com/pescuma/oldtodos/lib/todos"
	"github.com/pescuma/oldtodos/lib/utils"
	"github.com/pescuma/oldtodos/lib/walker"
)

type Options struct {
	Markers []string
	Exclude []string
	Hidden  bool

	// Limit keeps only the oldest todos. Nil means no limit.
	Limit   *int
	NoStats bool

	Jobs     int
	Timeout  time.Duration
	Git      string
	Progress bool
	Verbose  bool
}

type Workspace struct {
	console consoles.Console
	root    string
	gitRoot string
}

func NewWorkspace(root string) (*Workspace, error) {
	absRoot, err := utils.PathAbs(root)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(absRoot)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid path %v", root)
	}

	// root keeps the path as given, except that ~ is expanded
	if strings.HasPrefix(filepath.ToSlash(root), "~/") {
		root = absRoot
	}

	console := consoles.NewStdErrConsole()

	dir := absRoot
	if !stat.IsDir() {
		dir = filepath.Dir(absRoot)
	}

	return &Workspace{
		console: console,
		root:    root,
		gitRoot: findGitRoot(console, dir),
	}, nil
}

// findGitRoot returns the worktree containing dir, or "" when dir is not
// inside a git repository.
func findGitRoot(console consoles.Console, dir string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return ""
	} else if err != nil {
		console.Printf("warning: couldn't open git repository for %v: %v\n", dir, err)
		return ""
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have nothing to scan against
		return ""
	}

	return filepath.Clean(wt.Filesystem.Root())
}

// FindTodos lists the files under the root, finds the markers in them and
// attributes each one to its last author.
func (w *Workspace) FindTodos(ctx context.Context, opts *Options) (*todos.Report, error) {
	lister, err := walker.New(w.console, &walker.Options{
		GitRoot: w.gitRoot,
		Hidden:  opts.Hidden,
		Exclude: opts.Exclude,
	})
	if err != nil {
		return nil, err
	}

	files, err := lister.ListFiles(w.root)
	if err != nil {
		return nil, err
	}

	resolver := blame.NewResolver(&blame.Options{
		Git:     opts.Git,
		Timeout: opts.Timeout,
	})

	finder := todos.NewFinder(w.console, resolver, &todos.Options{
		Markers:  opts.Markers,
		Limit:    opts.Limit,
		NoStats:  opts.NoStats,
		Workers:  opts.Jobs,
		Progress: opts.Progress,
		Verbose:  opts.Verbose,
	})

	return finder.Find(ctx, files), nil
}
