// Package meetbuddy holds assets shared by the binaries, such as the embedded
// database migrations.
package meetbuddy

import "embed"

// Migrations contains the goose migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
