package main

import (
	"fmt"
	"themeconf/pkg/document"
	"themeconf/pkg/logger"
	"themeconf/pkg/palette"
	"themeconf/pkg/serrors"
	"themeconf/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// palettesCommand constructs the 'palettes' subcommand that lists the
// catalog, or prints one palette as JSON. Its subcommands edit the registry.
func palettesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palettes [name]",
		Short: "Lists base palettes or prints one of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) == 0 {
				for _, name := range catalog.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}

				return nil
			}

			p, err := catalog.Palette(args[0])
			if err != nil {
				return err //nolint: wrapcheck
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(document.EncodePalette(p, 2)))

			return nil
		},
	}

	cmd.AddCommand(paletteImportCommand(a), paletteDeleteCommand(a))

	return cmd
}

// paletteImportCommand stores the palettes of a catalog file in the registry.
func paletteImportCommand(a *app) *cobra.Command {
	var prune bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Stores the palettes of a catalog file in the registry database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			catalog, err := palette.LoadFile(args[0])
			if err != nil {
				return err //nolint: wrapcheck
			}

			pg, err := a.openStorage(ctx)
			if err != nil {
				return err
			}
			defer pg.Close() //nolint: errcheck

			res, err := storage.Import(ctx, pg, catalog, prune)
			if err != nil {
				return err //nolint: wrapcheck
			}
			logger.Info(ctx, "palettes imported",
				zap.String("file", args[0]), zap.Int("stored", res.Stored), zap.Int("pruned", res.Pruned))
			fmt.Fprintf(cmd.OutOrStdout(), "%d stored, %d pruned\n", res.Stored, res.Pruned)

			return nil
		},
	}
	cmd.Flags().BoolVar(&prune, "prune", false, "Delete stored palettes the file does not define")

	return cmd
}

// paletteDeleteCommand removes one palette from the registry.
func paletteDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Removes a palette from the registry database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pg, err := a.openStorage(ctx)
			if err != nil {
				return err
			}
			defer pg.Close() //nolint: errcheck

			deleted, err := pg.DeletePalette(ctx, args[0])
			if err != nil {
				return err //nolint: wrapcheck
			}
			if !deleted {
				return serrors.With(serrors.ErrNotFound, "palette %q is not stored in the registry", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: deleted\n", args[0])

			return nil
		},
	}
}
