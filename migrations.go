// Package phishguard embeds the SQL migrations applied by the migrate command.
package phishguard

import "embed"

// Migrations holds the goose migrations of the registration cache.
//
//go:embed migrations/*.sql
var Migrations embed.FS
