package types

// LinkSpec maps a relative destination path (as authored in
// locations.toml) to a relative source path. An empty source string is
// the removal marker: the destination should be backed up and removed,
// not linked. A LinkSpec is produced once by the config parser and is
// immutable afterwards.
type LinkSpec map[string]string

// ResolvedEntry is one fully resolved installation entry. Dest is an
// absolute path under the destination root; Source is an absolute path
// under the source root, or empty for a removal entry.
type ResolvedEntry struct {
	Dest   string
	Source string
}

// IsRemove reports whether this entry removes the destination instead
// of linking it.
func (e ResolvedEntry) IsRemove() bool {
	return e.Source == ""
}

// ResolvedLinkSpec is the validated, absolute form of a LinkSpec. The
// slice order is the order entries are applied in.
type ResolvedLinkSpec []ResolvedEntry
