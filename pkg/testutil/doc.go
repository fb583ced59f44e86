// Package testutil provides helpers for tests that exercise the link
// engine against a real, isolated temp-directory filesystem. Symlink
// behavior is the whole point of this tool, so engine tests run on the
// real OS filesystem rather than an in-memory one.
package testutil
