package bootstrap

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"dmstrings/internal/application"
	"dmstrings/internal/config"
	"dmstrings/internal/infrastructure/database"
	"dmstrings/internal/infrastructure/locales"
	"dmstrings/internal/ports/output"
)

// Catalog is a built catalog plus the resources it holds on to.
type Catalog struct {
	*application.Catalog
	// Repo is set when the catalog reads from PostgreSQL.
	Repo  *database.StringRepository
	close func()
}

// Close releases the database pool, if any.
func (c *Catalog) Close() {
	if c.close != nil {
		c.close()
	}
}

// FileSource returns the resource files selected by cfg: the embedded ones,
// or a directory when LOCALE_SOURCE=dir.
func FileSource(cfg *config.Config) *locales.Source {
	if cfg.LocaleSource == config.SourceDir {
		return locales.NewSource(os.DirFS(cfg.LocalesDir))
	}
	return locales.Embedded()
}

// OpenRepository connects to DATABASE_URL and applies pending migrations.
func OpenRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*database.StringRepository, func(), error) {
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.LoadTimeout, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("database: %w", err)
	}
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return database.NewStringRepository(pool, logger), pool.Close, nil
}

// BuildCatalog assembles the catalog described by cfg. Root always comes from
// the bundle file; other locales come from their files or, with
// LOCALE_SOURCE=postgres, from the locale_strings table. In strict mode every
// locale is loaded up front so a broken resource stops startup.
func BuildCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Catalog, error) {
	out := &Catalog{}
	builder := application.NewBuilder(logger).WithLoadTimeout(cfg.LoadTimeout)

	var loader output.Loader
	if cfg.LocaleSource == config.SourcePostgres {
		repo, closeFn, err := OpenRepository(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		out.Repo, out.close, loader = repo, closeFn, repo
	}

	if err := FileSource(cfg).Register(builder, loader); err != nil {
		out.Close()
		return nil, err
	}

	if out.Repo != nil {
		ids, err := out.Repo.ListLocales(ctx)
		if err != nil {
			out.Close()
			return nil, err
		}
		for _, id := range ids {
			if err := builder.Declare(id, out.Repo); err != nil {
				out.Close()
				return nil, err
			}
		}
	}

	catalog, err := builder.Build()
	if err != nil {
		out.Close()
		return nil, err
	}
	out.Catalog = catalog

	if cfg.Strict() {
		if err := catalog.Preload(ctx); err != nil {
			out.Close()
			return nil, fmt.Errorf("preload locales: %w", err)
		}
	}
	logger.Info("catalog ready",
		zap.Strings("locales", catalog.AvailableLocales()), zap.String("source", cfg.LocaleSource))
	return out, nil
}
