package input

import (
	"time"

	"dmstrings/internal/domain/entities"
)

type StringUseCase interface {
	Lookup(locale, key string) (string, error)
	Resolve(locale, key string) (entities.Resolution, error)
	AvailableLocales() []string
	Coverage(locale string) (entities.Coverage, error)
	Validate(locale, key, value string) (bool, error)
	FormatDate(locale, key string, t time.Time) (string, error)
}
