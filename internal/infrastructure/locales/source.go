package locales

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"dmstrings/internal/application"
	"dmstrings/internal/domain/entities"
	"dmstrings/internal/ports/output"
)

//go:embed *.toml
var localeFS embed.FS

// BundleFile is the resource holding the root table and the locale flags.
const BundleFile = "bundle.toml"

var _ output.Loader = (*Source)(nil)

// Bundle is the decoded bundle resource.
type Bundle struct {
	Root []entities.Entry
	// Locales are the sibling ids flagged true, sorted.
	Locales []string
}

// Source reads locale resources from a file system: BundleFile plus one
// <locale>.toml per declared locale.
type Source struct {
	fsys fs.FS
}

// Embedded returns a Source over the resources compiled into the binary.
func Embedded() *Source {
	return &Source{fsys: localeFS}
}

func NewSource(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// Bundle decodes BundleFile.
func (s *Source) Bundle() (*Bundle, error) {
	data, err := fs.ReadFile(s.fsys, BundleFile)
	if err != nil {
		return nil, fmt.Errorf("locales: read %s: %w", BundleFile, err)
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("locales: decode %s: %w", BundleFile, err)
	}

	b := &Bundle{}
	for id, v := range raw {
		switch val := v.(type) {
		case map[string]any:
			if id != entities.RootLocale {
				return nil, fmt.Errorf("locales: %s: inline table %q, only %q may hold content", BundleFile, id, entities.RootLocale)
			}
			b.Root, err = toEntries(val)
			if err != nil {
				return nil, fmt.Errorf("locales: %s: %w", BundleFile, err)
			}
		case bool:
			if val {
				b.Locales = append(b.Locales, id)
			}
		default:
			return nil, fmt.Errorf("locales: %s: %q must be a table or a boolean, got %T", BundleFile, id, v)
		}
	}
	if b.Root == nil {
		return nil, fmt.Errorf("locales: %s: missing [%s] table", BundleFile, entities.RootLocale)
	}
	sort.Strings(b.Locales)
	return b, nil
}

// Load reads <locale>.toml.
func (s *Source) Load(ctx context.Context, locale string) ([]entities.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := locale + ".toml"
	if strings.ContainsAny(locale, `/\`) || !fs.ValidPath(name) || name == BundleFile {
		return nil, fmt.Errorf("locales: invalid locale id %q", locale)
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("locales: read %s: %w", name, err)
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("locales: decode %s: %w", name, err)
	}
	entries, err := toEntries(raw)
	if err != nil {
		return nil, fmt.Errorf("locales: %s: %w", name, err)
	}
	return entries, nil
}

func toEntries(raw map[string]any) ([]entities.Entry, error) {
	entries := make([]entities.Entry, 0, len(raw))
	for k, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("value of %q must be a string, got %T", k, v)
		}
		entries = append(entries, entities.Entry{Key: k, Value: s})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

// Register adds the bundle's root table to b and declares every flagged
// locale, loaded from loader or, when loader is nil, from s.
func (s *Source) Register(b *application.Builder, loader output.Loader) error {
	bundle, err := s.Bundle()
	if err != nil {
		return err
	}
	if err := b.RegisterEntries(entities.RootLocale, bundle.Root); err != nil {
		return err
	}
	if loader == nil {
		loader = s
	}
	for _, id := range bundle.Locales {
		if err := b.Declare(id, loader); err != nil {
			return err
		}
	}
	return nil
}
