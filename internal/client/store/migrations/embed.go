// Package migrations embeds the goose migrations for the local fallback
// store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
