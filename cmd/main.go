// Package main provides the CLI entrypoint for the theme resolver.
// It wires subcommands (resolve, validate, palettes, serve, token, migrate), loads
// configuration and initializes logging.
package main

import (
	"context"
	"fmt"
	"os"
	"themeconf"
	"themeconf/internal/config"
	"themeconf/internal/resolver"
	"themeconf/pkg/logger"
	"themeconf/pkg/metrics"
	"themeconf/pkg/palette"
	"themeconf/pkg/storage"
	"themeconf/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by subcommands. cfg is loaded by the root
// command's persistent pre-run.
type app struct {
	configPath string
	cfg        *config.Config
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err //nolint: wrapcheck
	}
	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		return fmt.Errorf("could not set up logger: %w", err)
	}
	a.cfg = cfg

	return nil
}

// openStorage connects to the palette registry database.
func (a *app) openStorage(ctx context.Context) (*postgres.PgSQL, error) {
	pg, err := postgres.New(ctx, postgres.NewOptions(a.cfg))
	if err != nil {
		return nil, fmt.Errorf("could not create postgres storage: %w", err)
	}

	return pg, nil
}

// catalog returns the built-in palettes, overlaid by the registry palettes
// when the database is enabled, overlaid by the configured catalog file.
func (a *app) catalog(ctx context.Context) (*palette.Catalog, error) {
	catalog, err := palette.Load(themeconf.Catalog, themeconf.CatalogDir)
	if err != nil {
		return nil, fmt.Errorf("could not load built-in palettes: %w", err)
	}

	if a.cfg.Database.Enabled {
		pg, err := a.openStorage(ctx)
		if err != nil {
			return nil, err
		}
		defer pg.Close() //nolint: errcheck

		stored, err := storage.LoadCatalog(ctx, pg)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		logger.Debug(ctx, "registry palettes loaded", zap.Int("palettes", stored.Len()))
		catalog = catalog.Merge(stored)
	}

	if a.cfg.Resolver.CatalogPath != "" {
		custom, err := palette.LoadFile(a.cfg.Resolver.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("could not load palette catalog: %w", err)
		}
		catalog = catalog.Merge(custom)
	}

	return catalog, nil
}

// newResolver builds a resolver over the catalog. strict forces the reject
// policy for unknown override roles.
func (a *app) newResolver(
	ctx context.Context, strict bool, m *metrics.Resolver,
) (resolver.Resolver, *palette.Catalog, error) {
	catalog, err := a.catalog(ctx)
	if err != nil {
		return nil, nil, err
	}

	opts := resolver.NewOptions(a.cfg, m)
	if strict {
		opts.UnknownRoles = resolver.PolicyReject
	}

	return resolver.New(catalog, opts), catalog, nil
}

func newRootCommand() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:               "themeconf",
		Short:             "Resolves declarative theme configurations",
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		resolveCommand(a),
		validateCommand(a),
		palettesCommand(a),
		serveCommand(a),
		tokenCommand(a),
		migrateCommand(a),
	)

	return rootCmd
}

// main builds the root command and executes the CLI.
func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	err := newRootCommand().Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
