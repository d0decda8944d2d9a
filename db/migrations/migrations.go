// Package migrations embeds the campaign schema migrations so the
// binary can apply them without shipping loose SQL files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version the application expects.
const Version = 1
