// Package migrations embeds the goose migration scripts for each supported
// store dialect. The schema is identical; only column types and generated-key
// conventions differ.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
