// Package migrations embeds the SQL schema migrations for the SQLite
// conversation store.
package migrations

import "embed"

// FS contains the embedded migration files.
//
//go:embed *.sql
var FS embed.FS
