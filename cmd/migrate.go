package main

import (
	"themeconf"
	"themeconf/pkg/logger"

	"github.com/spf13/cobra"
)

// migrateCommand constructs the 'migrate' subcommand that brings the palette
// registry schema to the latest version using goose.
func migrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the palette registry database to the latest version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			pg, err := a.openStorage(ctx)
			if err != nil {
				return err
			}
			defer pg.Close() //nolint: errcheck

			if err := pg.Migrate(ctx, themeconf.Migrations, themeconf.MigrationsDir); err != nil {
				return err //nolint: wrapcheck
			}
			logger.Info(ctx, "palette registry migrated")

			return nil
		},
	}

	return cmd
}
