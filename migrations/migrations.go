// Package migrations embeds the SQL migration files applied at init time.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
