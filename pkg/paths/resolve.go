package paths

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/softlink/pkg/errors"
	"github.com/arthur-debert/softlink/pkg/logging"
	"github.com/arthur-debert/softlink/pkg/types"
)

// ExpandHome expands a leading "~" or "~/" in path to the current
// user's home directory. Other paths are returned unchanged. "~user"
// forms are not supported and pass through untouched.
func ExpandHome(path string) string {
	if path == "~" {
		return xdg.Home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(xdg.Home, path[2:])
	}
	return path
}

// Resolve turns a LinkSpec into a ResolvedLinkSpec anchored at srcDir
// and dstDir. It validates every entry before returning: resolution
// either succeeds completely or fails with no partial result, so the
// engine never sees a half-validated spec.
//
// Entries are ordered by destination path. The original config is an
// unordered table; sorting keeps runs deterministic.
func Resolve(spec types.LinkSpec, srcDir, dstDir string) (types.ResolvedLinkSpec, error) {
	logger := logging.GetLogger("paths")

	srcDir, err := filepath.Abs(srcDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot absolutize source dir %s", srcDir)
	}
	dstDir, err = filepath.Abs(dstDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot absolutize destination dir %s", dstDir)
	}

	dests := make([]string, 0, len(spec))
	for dest := range spec {
		dests = append(dests, dest)
	}
	sort.Strings(dests)

	resolved := make(types.ResolvedLinkSpec, 0, len(spec))
	for _, dest := range dests {
		source := spec[dest]

		absDest := ExpandHome(dest)
		if !filepath.IsAbs(absDest) {
			absDest = filepath.Join(dstDir, absDest)
		} else {
			absDest = filepath.Clean(absDest)
		}
		if !isDescendant(dstDir, absDest) {
			return nil, errors.Newf(errors.ErrScopeViolation,
				"destination %s resolves outside %s", dest, dstDir).
				WithDetail("resolved", absDest)
		}

		absSource := ""
		if source != "" {
			if filepath.IsAbs(source) {
				return nil, errors.Newf(errors.ErrScopeViolation,
					"source %s must be relative to %s", source, srcDir)
			}
			absSource = filepath.Join(srcDir, source)
			if !isDescendant(srcDir, absSource) {
				return nil, errors.Newf(errors.ErrScopeViolation,
					"source %s resolves outside %s", source, srcDir).
					WithDetail("resolved", absSource)
			}
		}

		resolved = append(resolved, types.ResolvedEntry{Dest: absDest, Source: absSource})
	}

	logger.Debug().
		Int("entries", len(resolved)).
		Str("srcDir", srcDir).
		Str("dstDir", dstDir).
		Msg("resolved link spec")
	return resolved, nil
}

// isDescendant reports whether path is a strict descendant of root.
// Both must be absolute and cleaned.
func isDescendant(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
