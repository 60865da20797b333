package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"themeconf/pkg/domain"
	"themeconf/pkg/palette"
	"time"
)

const palettesTable = "palettes"

// PgColor is one element of the colors array. An array keeps role order,
// which a jsonb object would not.
type PgColor struct {
	Role  string `json:"role"`
	Value string `json:"value"`
}

// PgPalette is a row of the palettes table.
type PgPalette struct {
	Name string `db:"name"`
	// Colors is the jsonb array of PgColor.
	Colors string `db:"colors"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPalette) ToDomain() (*palette.Named, error) {
	var colors []PgColor
	if err := json.Unmarshal([]byte(p.Colors), &colors); err != nil {
		return nil, fmt.Errorf("could not unmarshal colors of palette %q: %w", p.Name, err)
	}

	entries := make([]domain.Color, len(colors))
	for i, c := range colors {
		entries[i] = domain.Color{Role: c.Role, Value: c.Value}
	}

	return &palette.Named{Name: p.Name, Palette: domain.NewPalette(entries...)}, nil
}

func (p *PgPalette) FromDomain(named palette.Named) error {
	entries := named.Palette.Entries()
	colors := make([]PgColor, len(entries))
	for i, e := range entries {
		colors[i] = PgColor{Role: e.Role, Value: e.Value}
	}

	raw, err := json.Marshal(colors)
	if err != nil {
		return fmt.Errorf("could not marshal colors of palette %q: %w", named.Name, err)
	}
	*p = PgPalette{Name: named.Name, Colors: string(raw)}

	return nil
}

func pgPalettesToDomain(rows []PgPalette) ([]palette.Named, error) {
	out := make([]palette.Named, 0, len(rows))
	for _, row := range rows {
		named, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *named)
	}

	return out, nil
}
