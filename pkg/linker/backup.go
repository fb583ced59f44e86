package linker

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/softlink/pkg/errors"
)

// Backup relocates the entry at path to an unused backup name and
// returns that name. Backup names are path suffixed with ".bkp_N" for
// the smallest N with no entry at that name; dangling symlinks count
// as occupied. The search is recomputed on every call, with no
// persistent counter.
//
// path must be absolute and must exist (checked without following the
// final symlink). After the rename the original location is verified
// to be gone; the rename is atomic on the host filesystem, so a
// survivor means something external raced us.
func (l *Linker) Backup(path string) (string, error) {
	if !filepath.IsAbs(path) {
		return "", errors.Newf(errors.ErrInvalidInput, "%s is not absolute", path)
	}
	if !l.exists(path) {
		return "", errors.Newf(errors.ErrBackupPrecondition, "%s does not exist", path)
	}

	var backupPath string
	for i := 0; ; i++ {
		candidate := fmt.Sprintf("%s.bkp_%d", path, i)
		if !l.exists(candidate) {
			backupPath = candidate
			break
		}
	}

	l.notify.Rename(path, backupPath)
	if err := l.fs.Rename(path, backupPath); err != nil {
		return "", errors.Wrapf(err, errors.ErrRenameFailed, "cannot rename %s -> %s", path, backupPath)
	}
	if l.exists(path) {
		return "", errors.Newf(errors.ErrBackupIntegrity, "failed to move file: %s", path)
	}

	l.logger.Debug().Str("from", path).Str("to", backupPath).Msg("backed up")
	return backupPath, nil
}
