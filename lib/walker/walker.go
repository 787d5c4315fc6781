package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/pescuma/oldtodos/lib/consoles"
	"github.com/pescuma/oldtodos/lib/utils"
)

var vcsDirs = set.From([]string{".git", ".hg", ".svn"})

type Options struct {
	// GitRoot is the absolute path of the worktree containing the scanned root.
	// When empty .gitignore files are not used.
	GitRoot string
	Hidden  bool
	Exclude []string
}

type Walker struct {
	console consoles.Console
	options *Options

	ignores map[string]*ignore.GitIgnore
}

func New(console consoles.Console, options *Options) (*Walker, error) {
	for _, p := range options.Exclude {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Errorf("invalid exclude pattern: %v", p)
		}
	}

	return &Walker{
		console: console,
		options: options,
		ignores: map[string]*ignore.GitIgnore{},
	}, nil
}

// ListFiles returns the regular files under root, in lexical order. Returned
// paths are built from root, so they are relative when root is relative.
func (w *Walker) ListFiles(root string) ([]string, error) {
	stat, err := os.Stat(root)
	if err != nil {
		return nil, err
	}

	if !stat.IsDir() {
		return []string{root}, nil
	}

	absRoot, err := utils.PathAbs(root)
	if err != nil {
		return nil, err
	}

	var result []string

	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			w.console.Printf("error: %v\n", err)
			if entry != nil && entry.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if w.skip(absRoot, rel, entry) {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type().IsRegular() {
			result = append(result, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (w *Walker) skip(absRoot string, rel string, entry fs.DirEntry) bool {
	name := entry.Name()

	if entry.IsDir() && vcsDirs.Contains(name) {
		return true
	}

	if !w.options.Hidden && strings.HasPrefix(name, ".") {
		return true
	}

	if w.excluded(filepath.ToSlash(rel)) {
		return true
	}

	return w.ignored(absRoot, filepath.Join(absRoot, rel), entry.IsDir())
}

func (w *Walker) excluded(rel string) bool {
	for _, p := range w.options.Exclude {
		if m, _ := doublestar.Match(p, rel); m {
			return true
		}
	}

	return false
}

func (w *Walker) ignored(absRoot string, path string, isDir bool) bool {
	for _, dir := range w.ignoreDirs(absRoot, path) {
		matcher := w.loadIgnores(dir)
		if matcher == nil {
			continue
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			continue
		}

		rel = filepath.ToSlash(rel)
		if isDir {
			rel += "/"
		}

		if matcher.MatchesPath(rel) {
			return true
		}
	}

	return false
}

// ignoreDirs returns the directories whose ignore files apply to path: from
// its parent up to the git root, or up to the scanned root outside git.
func (w *Walker) ignoreDirs(absRoot string, path string) []string {
	top := absRoot
	if w.options.GitRoot != "" {
		top = w.options.GitRoot
	}

	var result []string

	dir := filepath.Dir(path)
	for {
		result = append(result, dir)

		parent := filepath.Dir(dir)
		if dir == top || parent == dir {
			break
		}

		dir = parent
	}

	return result
}

func (w *Walker) loadIgnores(dir string) *ignore.GitIgnore {
	if m, ok := w.ignores[dir]; ok {
		return m
	}

	files := []string{".ignore"}
	if w.options.GitRoot != "" {
		files = append(files, ".gitignore")
		if dir == w.options.GitRoot {
			files = append(files, filepath.Join(".git", "info", "exclude"))
		}
	}

	var lines []string
	for _, f := range files {
		contents, err := os.ReadFile(filepath.Join(dir, f))
		if err != nil {
			continue
		}

		lines = append(lines, strings.Split(string(contents), "\n")...)
	}

	var matcher *ignore.GitIgnore
	if len(lines) > 0 {
		matcher = ignore.CompileIgnoreLines(lines...)
	}

	w.ignores[dir] = matcher
	return matcher
}
