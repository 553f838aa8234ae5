package entities

import (
	"sort"
	"strings"

	"dmstrings/internal/domain"
)

// Table is the immutable key/value mapping of one locale.
type Table struct {
	locale  string
	entries map[string]string
}

// NewTable builds a table from entries, rejecting empty ids and repeated keys.
func NewTable(locale string, entries []Entry) (*Table, error) {
	if strings.TrimSpace(locale) == "" {
		return nil, domain.ErrEmptyLocale
	}
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Key == "" {
			return nil, domain.ErrEmptyKey
		}
		if _, dup := m[e.Key]; dup {
			return nil, &domain.DuplicateKeyError{Locale: locale, Key: e.Key}
		}
		m[e.Key] = e.Value
	}
	return &Table{locale: locale, entries: m}, nil
}

// NewTableFromMap builds a table from a mapping. A Go map cannot hold the
// same key twice, so only id checks apply.
func NewTableFromMap(locale string, mapping map[string]string) (*Table, error) {
	if strings.TrimSpace(locale) == "" {
		return nil, domain.ErrEmptyLocale
	}
	m := make(map[string]string, len(mapping))
	for k, v := range mapping {
		if k == "" {
			return nil, domain.ErrEmptyKey
		}
		m[k] = v
	}
	return &Table{locale: locale, entries: m}, nil
}

func (t *Table) Locale() string { return t.locale }

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Get returns the value for key. A nil table has no entries.
func (t *Table) Get(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.entries[key]
	return v, ok
}

// Keys returns the table's keys in sorted order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns a copy of the table as entries sorted by key.
func (t *Table) Entries() []Entry {
	keys := t.Keys()
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Key: k, Value: t.entries[k]})
	}
	return out
}
