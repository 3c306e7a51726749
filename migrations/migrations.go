// Package migrations embeds the SQL migrations so binaries carry their own schema.
package migrations

import "embed"

const PostgresDir = "postgres"

//go:embed postgres/*.sql
var Postgres embed.FS
