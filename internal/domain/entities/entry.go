package entities

import "strings"

// RootLocale names the default table every lookup falls back to.
const RootLocale = "root"

const (
	reservedPrefix = "_"
	patternPrefix  = "_VALIDATION_PATTERN_"
)

// Kind classifies a key by how its value is consumed.
type Kind int

const (
	// KindDisplay values are translatable prose shown to users.
	KindDisplay Kind = iota
	// KindFormat values are date format masks.
	KindFormat
	// KindPattern values are regular expressions used for input validation.
	KindPattern
)

func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindPattern:
		return "pattern"
	default:
		return "display"
	}
}

// KindOf returns the kind of key. Keys with a leading underscore are never
// display text.
func KindOf(key string) Kind {
	switch {
	case strings.HasPrefix(key, patternPrefix):
		return KindPattern
	case strings.HasPrefix(key, reservedPrefix):
		return KindFormat
	default:
		return KindDisplay
	}
}

// Entry is one key/value pair of a locale table.
type Entry struct {
	Key   string
	Value string
}

// Kind returns the kind of the entry's key.
func (e Entry) Kind() Kind {
	return KindOf(e.Key)
}
