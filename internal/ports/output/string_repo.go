package output

import (
	"context"

	"dmstrings/internal/domain/entities"
)

type StringRepository interface {
	ListLocales(ctx context.Context) ([]string, error)
	FindByLocale(ctx context.Context, locale string) ([]entities.Entry, error)
	Upsert(ctx context.Context, locale string, entries []entities.Entry) error
	Replace(ctx context.Context, locale string, entries []entities.Entry) error
	DeleteLocale(ctx context.Context, locale string) error
}
