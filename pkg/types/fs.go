package types

import "io/fs"

// FS abstracts the filesystem operations softlink performs. It exists
// so the engine and config loader can be exercised against test
// filesystems as well as the real OS.
type FS interface {
	// Stat follows symlinks.
	Stat(name string) (fs.FileInfo, error)
	// Lstat does not follow the final symlink, so it sees dangling
	// symlinks as existing entries.
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm fs.FileMode) error
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
	Rename(oldpath, newpath string) error
}
