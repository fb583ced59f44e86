// Package config reads locations.toml files into a types.LinkSpec.
//
// The file is a flat table of destination = source pairs:
//
//	".bashrc" = "rcfiles/bashrc"
//	".config/app" = "config_folder_for_app"
//	".oldfile" = ""
//
// Destinations are relative to the install directory, sources relative
// to the directory containing the file. An empty source means "remove
// the destination (with backup)".
package config
