package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"dmstrings/internal/domain/entities"
	"dmstrings/internal/ports/output"
)

var (
	_ output.StringRepository = (*StringRepository)(nil)
	_ output.Loader           = (*StringRepository)(nil)
)

// DBTX is the subset of pgxpool.Pool the repository needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

const (
	listLocalesSQL = `SELECT DISTINCT locale FROM locale_strings ORDER BY locale`

	findByLocaleSQL = `SELECT locale, key, value, updated_at
FROM locale_strings
WHERE locale = $1
ORDER BY key`

	upsertSQL = `INSERT INTO locale_strings (locale, key, value, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (locale, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	deleteLocaleSQL = `DELETE FROM locale_strings WHERE locale = $1`
)

// StringRepository stores locale tables in the locale_strings table. It also
// serves as the Loader of locales declared without inline content.
type StringRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewStringRepository(db DBTX, logger *zap.Logger) *StringRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StringRepository{db: db, logger: logger}
}

func (r *StringRepository) ListLocales(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, listLocalesSQL)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	locales, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	return locales, nil
}

func (r *StringRepository) FindByLocale(ctx context.Context, locale string) ([]entities.Entry, error) {
	rows, err := r.db.Query(ctx, findByLocaleSQL, locale)
	if err != nil {
		return nil, fmt.Errorf("find strings by locale: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[localeStringRow])
	if err != nil {
		return nil, fmt.Errorf("find strings by locale: %w", err)
	}
	r.logger.Debug("locale strings read",
		zap.String("locale", locale), zap.Int("count", len(found)), zap.Time("last_update", lastUpdate(found)))
	return rowsToEntries(found), nil
}

// Load implements output.Loader.
func (r *StringRepository) Load(ctx context.Context, locale string) ([]entities.Entry, error) {
	return r.FindByLocale(ctx, locale)
}

// Upsert inserts or updates entries of locale, leaving other keys untouched.
func (r *StringRepository) Upsert(ctx context.Context, locale string, entries []entities.Entry) error {
	return r.write(ctx, locale, entries, false)
}

// Replace makes entries the whole content of locale.
func (r *StringRepository) Replace(ctx context.Context, locale string, entries []entities.Entry) error {
	return r.write(ctx, locale, entries, true)
}

func (r *StringRepository) write(ctx context.Context, locale string, entries []entities.Entry, replace bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	batch := &pgx.Batch{}
	if replace {
		batch.Queue(deleteLocaleSQL, locale)
	}
	for _, e := range entries {
		batch.Queue(upsertSQL, locale, e.Key, e.Value)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("write locale %q: %w", locale, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit locale %q: %w", locale, err)
	}
	r.logger.Info("locale strings written",
		zap.String("locale", locale), zap.Int("count", len(entries)), zap.Bool("replace", replace))
	return nil
}

func (r *StringRepository) DeleteLocale(ctx context.Context, locale string) error {
	if _, err := r.db.Exec(ctx, deleteLocaleSQL, locale); err != nil {
		return fmt.Errorf("delete locale %q: %w", locale, err)
	}
	return nil
}
