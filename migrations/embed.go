// Package migrations holds the SQL schema files applied at startup.
package migrations

import "embed"

// FS contains every *.sql file in this directory.
//
//go:embed *.sql
var FS embed.FS
