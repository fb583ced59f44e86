// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Isolated source/destination trees for engine tests

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEnvironment holds an isolated source and destination directory
// pair for one test.
type TestEnvironment struct {
	SrcDir string
	DstDir string

	t *testing.T
}

// NewTestEnvironment creates fresh src/dst directories under t.TempDir.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		SrcDir: filepath.Join(root, "dotfiles"),
		DstDir: filepath.Join(root, "home"),
		t:      t,
	}
	require.NoError(t, os.MkdirAll(env.SrcDir, 0755))
	require.NoError(t, os.MkdirAll(env.DstDir, 0755))
	return env
}

// WriteSource creates a file under SrcDir with the given content and
// returns its absolute path.
func (e *TestEnvironment) WriteSource(rel, content string) string {
	e.t.Helper()
	return e.writeFile(filepath.Join(e.SrcDir, rel), content)
}

// WriteDest creates a file under DstDir with the given content and
// returns its absolute path.
func (e *TestEnvironment) WriteDest(rel, content string) string {
	e.t.Helper()
	return e.writeFile(filepath.Join(e.DstDir, rel), content)
}

// MkdirSource creates a directory under SrcDir and returns its path.
func (e *TestEnvironment) MkdirSource(rel string) string {
	e.t.Helper()
	path := filepath.Join(e.SrcDir, rel)
	require.NoError(e.t, os.MkdirAll(path, 0755))
	return path
}

// SymlinkDest creates a symlink at DstDir/rel pointing at target and
// returns the link path. The target does not have to exist.
func (e *TestEnvironment) SymlinkDest(rel, target string) string {
	e.t.Helper()
	path := filepath.Join(e.DstDir, rel)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.Symlink(target, path))
	return path
}

// Dest returns the absolute destination path for rel.
func (e *TestEnvironment) Dest(rel string) string {
	return filepath.Join(e.DstDir, rel)
}

// Source returns the absolute source path for rel.
func (e *TestEnvironment) Source(rel string) string {
	return filepath.Join(e.SrcDir, rel)
}

func (e *TestEnvironment) writeFile(path, content string) string {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// ReadFile returns the content of path, following symlinks.
func (e *TestEnvironment) ReadFile(path string) string {
	e.t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(e.t, err)
	return string(data)
}

// Entries lists the names in dir, for asserting that a run produced no
// stray files or backups.
func (e *TestEnvironment) Entries(dir string) []string {
	e.t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(e.t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
