package postgres_test

import (
	"context"
	"testing"
	"themeconf/pkg/domain"
	"themeconf/pkg/palette"
	"themeconf/pkg/storage"

	"github.com/stretchr/testify/require"
)

func brand() palette.Named {
	return palette.Named{Name: "brand", Palette: domain.NewPalette(
		domain.Color{Role: "primary", Value: "#65c3c8"},
		domain.Color{Role: "secondary", Value: "#ef9fbc"},
		domain.Color{Role: "--rounded-btn", Value: "1.9rem"},
	)}
}

func TestUpsertPalettesKeepsRoleOrder(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, pg.UpsertPalettes(ctx, brand()))

	got, err := pg.PaletteByName(ctx, "brand")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, []string{"primary", "secondary", "--rounded-btn"}, got.Palette.Roles())
	require.True(t, got.Palette.Equal(brand().Palette))
}

func TestUpsertPalettesReplaces(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, pg.UpsertPalettes(ctx, brand()))

	updated := palette.Named{Name: "brand", Palette: domain.NewPalette(
		domain.Color{Role: "accent", Value: "#B387FA"},
	)}
	night := palette.Named{Name: "night", Palette: domain.NewPalette(
		domain.Color{Role: "primary", Value: "#000000"},
	)}
	// a name repeated in one call keeps the last palette
	require.NoError(t, pg.UpsertPalettes(ctx, night, brand(), updated))

	all, err := pg.Palettes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "brand", all[0].Name)
	require.Equal(t, "night", all[1].Name)
	require.True(t, all[0].Palette.Equal(updated.Palette))
}

func TestUpsertPalettesRejectsEmptyName(t *testing.T) {
	pg := setupTestDB(t)

	err := pg.UpsertPalettes(context.Background(), palette.Named{})
	require.ErrorContains(t, err, "name must not be empty")
	require.NoError(t, pg.UpsertPalettes(context.Background()))
}

func TestDeletePalette(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, pg.UpsertPalettes(ctx, brand()))

	deleted, err := pg.DeletePalette(ctx, "brand")
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = pg.DeletePalette(ctx, "brand")
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestImportAndLoadCatalog(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, pg.UpsertPalettes(ctx, palette.Named{Name: "legacy", Palette: domain.NewPalette()}))

	catalog := palette.New(brand())
	res, err := storage.Import(ctx, pg, catalog, true)
	require.NoError(t, err)
	require.Equal(t, storage.ImportResult{Stored: 1, Pruned: 1}, res)

	loaded, err := storage.LoadCatalog(ctx, pg)
	require.NoError(t, err)
	require.Equal(t, []string{"brand"}, loaded.Names())
}
