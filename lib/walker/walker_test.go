package walker

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/oldtodos/lib/consoles"
)

func createTree(t *testing.T, files map[string]string) string {
	root := t.TempDir()

	for name, contents := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}

	return root
}

func listRelative(t *testing.T, root string, opts *Options) []string {
	w, err := New(consoles.NewWriterConsole(&bytes.Buffer{}), opts)
	require.NoError(t, err)

	files, err := w.ListFiles(root)
	require.NoError(t, err)

	result := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		result = append(result, filepath.ToSlash(rel))
	}
	return result
}

func TestListFilesSortedAndSkipsHidden(t *testing.T) {
	t.Parallel()

	root := createTree(t, map[string]string{
		"b.go":          "",
		"a/z.go":        "",
		"a/b.go":        "",
		".hidden/x.go":  "",
		".env":          "",
		".git/config":   "",
		"c/.secret.txt": "",
	})

	assert.Equal(t, []string{"a/b.go", "a/z.go", "b.go"}, listRelative(t, root, &Options{}))
}

func TestListFilesHidden(t *testing.T) {
	t.Parallel()

	root := createTree(t, map[string]string{
		"b.go":         "",
		".hidden/x.go": "",
		".git/config":  "",
	})

	assert.Equal(t, []string{".hidden/x.go", "b.go"}, listRelative(t, root, &Options{Hidden: true}))
}

func TestListFilesGitIgnoreOnlyInsideGit(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		".gitignore":     "*.log\nbuild/\n",
		"a.log":          "",
		"a.go":           "",
		"build/out.go":   "",
		"sub/.gitignore": "gen.go\n",
		"sub/gen.go":     "",
		"sub/main.go":    "",
	}

	root := createTree(t, files)
	assert.Equal(t, []string{"a.go", "a.log", "build/out.go", "sub/gen.go", "sub/main.go"},
		listRelative(t, root, &Options{}))

	files[".git/HEAD"] = "ref: refs/heads/main\n"
	root = createTree(t, files)
	assert.Equal(t, []string{"a.go", "sub/main.go"},
		listRelative(t, root, &Options{GitRoot: root}))
}

func TestListFilesGitIgnoreAboveRoot(t *testing.T) {
	t.Parallel()

	root := createTree(t, map[string]string{
		".gitignore":  "*.tmp\n",
		"sub/a.go":    "",
		"sub/a.tmp":   "",
		"other/b.tmp": "",
	})

	assert.Equal(t, []string{"a.go"}, listRelative(t, filepath.Join(root, "sub"), &Options{GitRoot: root}))
}

func TestListFilesDotIgnore(t *testing.T) {
	t.Parallel()

	root := createTree(t, map[string]string{
		".ignore":     "vendor/\n",
		"vendor/x.go": "",
		"main.go":     "",
	})

	assert.Equal(t, []string{"main.go"}, listRelative(t, root, &Options{}))
}

func TestListFilesExclude(t *testing.T) {
	t.Parallel()

	root := createTree(t, map[string]string{
		"main.go":          "",
		"main_test.go":     "",
		"lib/x/x_test.go":  "",
		"lib/x/x.go":       "",
		"third_party/y.go": "",
	})

	assert.Equal(t, []string{"lib/x/x.go", "main.go"},
		listRelative(t, root, &Options{Exclude: []string{"**/*_test.go", "third_party"}}))
}

func TestInvalidExclude(t *testing.T) {
	t.Parallel()

	_, err := New(consoles.NewWriterConsole(&bytes.Buffer{}), &Options{Exclude: []string{"a/[b"}})

	assert.Error(t, err)
}

func TestListFilesSingleFile(t *testing.T) {
	t.Parallel()

	root := createTree(t, map[string]string{"a.go": ""})
	w, err := New(consoles.NewWriterConsole(&bytes.Buffer{}), &Options{})
	require.NoError(t, err)

	files, err := w.ListFiles(filepath.Join(root, "a.go"))
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "a.go")}, files)
}

func TestListFilesMissingRoot(t *testing.T) {
	t.Parallel()

	w, err := New(consoles.NewWriterConsole(&bytes.Buffer{}), &Options{})
	require.NoError(t, err)

	_, err = w.ListFiles(filepath.Join(t.TempDir(), "missing"))

	assert.Error(t, err)
}
