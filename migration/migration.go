package migration

import "context"

// Migrators maps a version selectable from the command line to its
// migrator. The "auto" version recreates the full schema and subsumes
// every numbered one.
var Migrators = map[string]func(context.Context) error{
	"auto": AutoMigrate,
	"0000": migrate0000,
	"0001": migrate0001,
	"0002": migrate0002,
}
