// Package migrations embeds the SQL migration files so server bootstrap and
// tests can apply them through the goose programmatic API without relying on
// a filesystem path at runtime.
package migrations

import "embed"

// FS holds all *.sql migration files, embedded at compile time. Hand it to
// goose.NewProvider.
//
//go:embed *.sql
var FS embed.FS
