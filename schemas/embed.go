// Package schemas embeds the SQL files that create the lookup cache tables.
package schemas

import "embed"

// Migrations holds the SQL migration files, named so that lexical order
// is apply order.
//
//go:embed migrations/*.sql
var Migrations embed.FS
