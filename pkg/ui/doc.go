// Package ui prints the user-facing operation notices.
//
// Notices are a separate channel from diagnostic logging: they are the
// "renaming", "linking" and "exists" lines the original tool prints to
// stdout, gated by a verbosity level. Styling degrades to plain text
// when the writer is not a terminal.
package ui
