// Package types defines the core types shared across softlink.
//
// It holds the link specification types consumed by the engine, the
// verbosity levels for user notices, and the FS interface that
// abstracts the filesystem operations the engine performs.
package types
