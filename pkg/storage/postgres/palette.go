package postgres

import (
	"context"
	"errors"
	"fmt"
	"themeconf/pkg/palette"

	"github.com/doug-martin/goqu/v9"
)

// UpsertPalettes inserts palettes in one statement. Existing names get the
// new colors and an updated_at timestamp.
func (p *PgSQL) UpsertPalettes(ctx context.Context, palettes ...palette.Named) error {
	if len(palettes) == 0 {
		return nil
	}

	rows := make([]PgPalette, 0, len(palettes))
	seen := make(map[string]int, len(palettes))
	for _, named := range palettes {
		if named.Name == "" {
			return errors.New("could not store palette: name must not be empty")
		}
		var row PgPalette
		if err := row.FromDomain(named); err != nil {
			return err
		}
		// ON CONFLICT cannot touch the same row twice in one statement.
		if i, ok := seen[named.Name]; ok {
			rows[i] = row

			continue
		}
		seen[named.Name] = len(rows)
		rows = append(rows, row)
	}

	_, err := p.Builder.Insert(palettesTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("name", goqu.Record{
			"colors":     goqu.I("excluded.colors"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not upsert palettes: %w", err)
	}

	return nil
}

// Palettes returns every stored palette ordered by name.
func (p *PgSQL) Palettes(ctx context.Context) ([]palette.Named, error) {
	var rows []PgPalette
	err := p.Builder.From(palettesTable).
		Order(goqu.I("name").Asc()).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not list palettes: %w", err)
	}

	return pgPalettesToDomain(rows)
}

// PaletteByName returns the named palette, or nil when it is not stored.
func (p *PgSQL) PaletteByName(ctx context.Context, name string) (*palette.Named, error) {
	var row PgPalette
	found, err := p.Builder.From(palettesTable).
		Where(goqu.C("name").Eq(name)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get palette %q: %w", name, err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain()
}

// DeletePalette removes the named palette and reports whether it existed.
func (p *PgSQL) DeletePalette(ctx context.Context, name string) (bool, error) {
	res, err := p.Builder.Delete(palettesTable).
		Where(goqu.C("name").Eq(name)).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete palette %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not count deleted palettes: %w", err)
	}

	return n > 0, nil
}
