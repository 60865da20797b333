// Package themeconf embeds the built-in base palette catalog and the database
// migrations shipped with the resolver.
package themeconf

import "embed"

// Catalog holds the built-in palette files under catalog/.
//
//go:embed catalog/*.json
var Catalog embed.FS

// CatalogDir is the directory of Catalog holding the palette files.
const CatalogDir = "catalog"

// Migrations holds the goose migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations holding the migration files.
const MigrationsDir = "migrations"
