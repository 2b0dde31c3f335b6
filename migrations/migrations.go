// Package migrations embeds the versioned schema files for each storage backend.
package migrations

import "embed"

// FS holds one sub-directory per backend ("sqlite", "postgres") of
// NNN_name.sql files.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
