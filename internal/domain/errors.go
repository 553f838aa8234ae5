package domain

import (
	"errors"
	"fmt"
)

// Catalog errors.
var (
	ErrMissingKey    = errors.New("no display text for key")
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrEmptyLocale   = errors.New("locale id is empty")
	ErrEmptyKey      = errors.New("key is empty")
	ErrUnknownLocale = errors.New("unknown locale")
	ErrRootRequired  = errors.New("root locale table is required")
	ErrNotPattern    = errors.New("key is not a validation pattern")
	ErrNotFormat     = errors.New("key is not a date format")
)

// MissingKeyError reports a key that neither the requested locale nor root
// defines. It is a resource defect, not a user error.
type MissingKeyError struct {
	Locale string
	Key    string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s: %q (locale %q)", ErrMissingKey, e.Key, e.Locale)
}

func (e *MissingKeyError) Is(target error) bool { return target == ErrMissingKey }

// DuplicateKeyError reports a key registered twice in the same table.
type DuplicateKeyError struct {
	Locale string
	Key    string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %q (locale %q)", ErrDuplicateKey, e.Key, e.Locale)
}

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

// Code returns a short stable code for catalog errors, "" otherwise.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingKey):
		return "missing_key"
	case errors.Is(err, ErrDuplicateKey):
		return "duplicate_key"
	case errors.Is(err, ErrEmptyLocale):
		return "empty_locale"
	case errors.Is(err, ErrEmptyKey):
		return "empty_key"
	case errors.Is(err, ErrUnknownLocale):
		return "unknown_locale"
	case errors.Is(err, ErrRootRequired):
		return "root_required"
	case errors.Is(err, ErrNotPattern):
		return "not_pattern"
	case errors.Is(err, ErrNotFormat):
		return "not_format"
	default:
		return ""
	}
}
