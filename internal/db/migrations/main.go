// Package migrations holds the ordered schema changes for the employee
// store. File names carry the version; bun/migrate derives each
// migration's name from the file that registers it.
package migrations

import "github.com/uptrace/bun/migrate"

var Migrations = migrate.NewMigrations()
