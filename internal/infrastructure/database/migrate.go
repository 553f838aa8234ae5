package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// RunMigrations applies all pending migrations from migrationsPath.
func RunMigrations(dsn string, migrationsPath string, logger *zap.Logger) error {
	count, err := checkMigrations(migrationsPath)
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		dsn,
	)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Info("migrations applied",
		zap.Uint("version", version), zap.Bool("dirty", dirty), zap.Int("available", count))
	return nil
}

// checkMigrations verifies that dir holds at least one migration and that
// every up file has its down file. It returns the number of migrations.
func checkMigrations(dir string) (int, error) {
	ups, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return 0, err
	}
	if len(ups) == 0 {
		return 0, fmt.Errorf("no migrations in %q", dir)
	}
	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		if _, err := os.Stat(down); err != nil {
			return 0, fmt.Errorf("%s has no down migration: %w", filepath.Base(up), err)
		}
	}
	return len(ups), nil
}
