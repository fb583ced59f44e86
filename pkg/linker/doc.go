// Package linker is the core link-installation engine.
//
// The engine applies a resolved destination -> source mapping: it
// creates symlinks, verifies already-correct links, and removes
// entries marked for removal. Anything it would displace is first
// relocated to an unused ".bkp_N" sibling by the backup primitive, so
// no run is ever silently destructive. Re-running the same spec is a
// no-op.
//
// The engine is single-threaded and performs no locking: the backup
// name search is an existence check followed by a rename, so two
// processes installing into overlapping destinations concurrently can
// pick the same backup name. Callers must serialize runs externally.
package linker
