package storage

import (
	"context"
	"fmt"
	"themeconf/pkg/palette"
)

// LoadCatalog snapshots every stored palette into a catalog ordered by name.
func LoadCatalog(ctx context.Context, s PaletteStorage) (*palette.Catalog, error) {
	named, err := s.Palettes(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load stored palettes: %w", err)
	}

	return palette.New(named...), nil
}

// ImportResult counts the palettes touched by Import.
type ImportResult struct {
	Stored int
	Pruned int
}

// Import stores every palette of c in a single transaction. With prune set,
// stored palettes that c does not define are deleted in the same transaction.
func Import(ctx context.Context, s Storage, c *palette.Catalog, prune bool) (ImportResult, error) {
	names := c.Names()
	named := make([]palette.Named, 0, len(names))
	keep := make(map[string]struct{}, len(names))
	for _, name := range names {
		p, err := c.Palette(name)
		if err != nil {
			return ImportResult{}, err //nolint: wrapcheck
		}
		named = append(named, palette.Named{Name: name, Palette: p})
		keep[name] = struct{}{}
	}

	var res ImportResult
	err := s.WithTx(ctx, func(tx AllStorage) error {
		if err := tx.UpsertPalettes(ctx, named...); err != nil {
			return err //nolint: wrapcheck
		}
		res.Stored = len(named)
		if !prune {
			return nil
		}

		stored, err := tx.Palettes(ctx)
		if err != nil {
			return err //nolint: wrapcheck
		}
		for _, p := range stored {
			if _, ok := keep[p.Name]; ok {
				continue
			}
			deleted, err := tx.DeletePalette(ctx, p.Name)
			if err != nil {
				return err //nolint: wrapcheck
			}
			if deleted {
				res.Pruned++
			}
		}

		return nil
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("could not import palettes: %w", err)
	}

	return res, nil
}
