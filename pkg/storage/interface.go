// Package storage defines the persistence interfaces of the palette registry,
// a database of named base palettes shared by every resolver instance.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"themeconf/pkg/palette"
)

// PaletteStorage stores named palettes. Role order is preserved.
type PaletteStorage interface {
	// UpsertPalettes inserts palettes, replacing the colors of existing names.
	UpsertPalettes(ctx context.Context, palettes ...palette.Named) error
	// Palettes returns every stored palette ordered by name.
	Palettes(ctx context.Context) ([]palette.Named, error)
	// PaletteByName returns the named palette, or nil when it is not stored.
	PaletteByName(ctx context.Context, name string) (*palette.Named, error)
	// DeletePalette removes the named palette and reports whether it existed.
	DeletePalette(ctx context.Context, name string) (bool, error)
}

// AllStorage groups every domain storage capability.
type AllStorage interface {
	PaletteStorage
}

// TxStorage is a storage handle bound to a transaction. It is unusable after
// Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is a non-transactional storage handle that can start transactions.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error
	// Begin starts a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
