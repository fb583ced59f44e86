package linker

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/softlink/pkg/errors"
	"github.com/arthur-debert/softlink/pkg/logging"
	"github.com/arthur-debert/softlink/pkg/types"
	"github.com/arthur-debert/softlink/pkg/ui"
)

// Linker applies resolved link specs against a filesystem.
type Linker struct {
	fs     types.FS
	notify *ui.Notifier
	logger zerolog.Logger
}

// New creates a Linker operating on fsys, reporting through notify.
func New(fsys types.FS, notify *ui.Notifier) *Linker {
	return &Linker{
		fs:     fsys,
		notify: notify,
		logger: logging.GetLogger("linker"),
	}
}

// Link ensures dest is a symlink pointing at source. Both paths must
// be absolute and source must exist (following symlinks).
//
// If dest is already a symlink whose literal target equals source the
// call is a no-op; this is what makes re-runs safe. Anything else at
// dest is backed up before the link is created. Between the backup and
// the symlink creation there is a window where dest does not exist; a
// crash there leaves the backup intact and dest absent.
func (l *Linker) Link(source, dest string) error {
	if !filepath.IsAbs(dest) {
		return errors.Newf(errors.ErrInvalidInput, "%s is not absolute", dest)
	}
	if !filepath.IsAbs(source) {
		return errors.Newf(errors.ErrInvalidInput, "%s is not absolute", source)
	}

	srcInfo, err := l.fs.Stat(source)
	if err != nil {
		// TODO: maybe move dest -> source here instead of failing?
		return errors.Wrapf(err, errors.ErrSourceMissing, "src %s not found", source)
	}
	isDir := srcInfo.IsDir()

	if target, err := l.fs.Readlink(dest); err == nil && target == source {
		l.notify.LinkOK(dest, source, isDir)
		return nil
	}

	if l.exists(dest) {
		if _, err := l.Backup(dest); err != nil {
			return err
		}
	}

	l.notify.Linking(dest, source, isDir)
	if err := l.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent of %s", dest)
	}
	if err := l.fs.Symlink(source, dest); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s -> %s", dest, source)
	}

	l.logger.Debug().Str("dest", dest).Str("source", source).Msg("link created")
	return nil
}

// RemoveEntry backs dest up if it exists; absent destinations are a
// silent no-op.
func (l *Linker) RemoveEntry(dest string) error {
	if !l.exists(dest) {
		return nil
	}
	_, err := l.Backup(dest)
	return err
}

// InstallAll applies every entry of the resolved spec, in slice order.
// Entries are independent, but the batch is fail-fast: the first error
// aborts the remaining entries and nothing already applied is rolled
// back. Because every displaced entry was backed up, a partial run is
// recoverable from the .bkp_N trail.
func (l *Linker) InstallAll(resolved types.ResolvedLinkSpec) error {
	for _, entry := range resolved {
		var err error
		if entry.IsRemove() {
			err = l.RemoveEntry(entry.Dest)
		} else {
			err = l.Link(entry.Source, entry.Dest)
		}
		if err != nil {
			return err
		}
	}
	l.logger.Info().Int("entries", len(resolved)).Msg("install complete")
	return nil
}

// exists checks for any entry at path without following the final
// symlink, so dangling symlinks count as existing.
func (l *Linker) exists(path string) bool {
	_, err := l.fs.Lstat(path)
	return err == nil
}
