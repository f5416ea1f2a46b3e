// Package migrations holds the goose SQL migrations for the post service schema.
package migrations

import "embed"

// FS contains every migration file; it is handed to goose.SetBaseFS at startup.
//
//go:embed *.sql
var FS embed.FS
