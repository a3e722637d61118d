package migrations

import "embed"

// FS holds the schema migrations of every supported database, one directory per driver.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

const (
	SQLiteDir   = "sqlite"
	PostgresDir = "postgres"
)
