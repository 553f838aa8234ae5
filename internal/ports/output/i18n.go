package output

import (
	"context"

	"dmstrings/internal/domain/entities"
)

// T is the contract the rendering layer uses for every piece of UI text.
// Implementations never fail: a key with no text renders as the key itself.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}

// Loader supplies the content of a locale declared without inline content.
type Loader interface {
	Load(ctx context.Context, locale string) ([]entities.Entry, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, locale string) ([]entities.Entry, error)

func (f LoaderFunc) Load(ctx context.Context, locale string) ([]entities.Entry, error) {
	return f(ctx, locale)
}
