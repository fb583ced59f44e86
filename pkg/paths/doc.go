// Package paths resolves relative link specifications into absolute,
// validated ones.
//
// Resolution joins every destination with the install root and every
// source with the source root, then verifies containment: a resolved
// destination must live under the install root and a resolved source
// under the source root. The check exists so a malformed or malicious
// locations.toml cannot place links outside the intended sandbox.
package paths
