package types

// VerboseLevel controls how much operation feedback is printed.
// Each level includes everything below it.
type VerboseLevel int

const (
	// VerboseNothing prints no notices at all.
	VerboseNothing VerboseLevel = iota
	// VerboseRenameFile prints backup rename operations.
	VerboseRenameFile
	// VerboseCreateLink additionally prints link creation operations.
	VerboseCreateLink
	// VerboseLinkOK additionally prints links that already exist.
	VerboseLinkOK
)

// MaxVerbose is the chattiest supported level.
const MaxVerbose = VerboseLinkOK

// ClampVerbose clamps a level into the supported [VerboseNothing,
// MaxVerbose] range. Used by the CLI when translating a repeatable
// --quiet flag into a level.
func ClampVerbose(level VerboseLevel) VerboseLevel {
	if level < VerboseNothing {
		return VerboseNothing
	}
	if level > MaxVerbose {
		return MaxVerbose
	}
	return level
}
