package testutils

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

type Commit struct {
	Author string
	When   time.Time
	Files  map[string]string
}

// RequireGit skips the test when the git executable is not available.
func RequireGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}
}

// NewGitRepo creates a repository in a temp dir with one commit per entry and
// returns its root.
func NewGitRepo(t *testing.T, commits ...Commit) string {
	root := t.TempDir()

	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	for i, c := range commits {
		for name, contents := range c.Files {
			path := filepath.Join(root, filepath.FromSlash(name))
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

			_, err = wt.Add(name)
			require.NoError(t, err)
		}

		_, err = wt.Commit("commit "+string(rune('a'+i)), &git.CommitOptions{
			Author: &object.Signature{
				Name:  c.Author,
				Email: strings.ReplaceAll(strings.ToLower(c.Author), " ", ".") + "@example.com",
				When:  c.When,
			},
		})
		require.NoError(t, err)
	}

	return root
}
