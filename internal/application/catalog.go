package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"dmstrings/internal/domain"
	"dmstrings/internal/domain/entities"
	"dmstrings/internal/ports/input"
	"dmstrings/internal/ports/output"
)

var _ input.StringUseCase = (*Catalog)(nil)

const defaultLoadTimeout = 5 * time.Second

// maxParents bounds the BCP 47 parent walk; real chains are at most three deep.
const maxParents = 8

// Builder collects locale tables before they are published as a Catalog.
// It is not safe for concurrent use.
type Builder struct {
	tables      map[string]*entities.Table
	loaders     map[string]output.Loader
	logger      *zap.Logger
	loadTimeout time.Duration
}

func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		tables:      make(map[string]*entities.Table),
		loaders:     make(map[string]output.Loader),
		logger:      logger,
		loadTimeout: defaultLoadTimeout,
	}
}

// WithLoadTimeout bounds each deferred load.
func (b *Builder) WithLoadTimeout(d time.Duration) *Builder {
	if d > 0 {
		b.loadTimeout = d
	}
	return b
}

// Register adds or replaces the table for locale.
func (b *Builder) Register(locale string, mapping map[string]string) error {
	t, err := entities.NewTableFromMap(locale, mapping)
	if err != nil {
		return fmt.Errorf("register %q: %w", locale, err)
	}
	b.put(t)
	return nil
}

// RegisterEntries is Register for ordered entries; a repeated key fails with
// domain.ErrDuplicateKey instead of overwriting.
func (b *Builder) RegisterEntries(locale string, entries []entities.Entry) error {
	t, err := entities.NewTable(locale, entries)
	if err != nil {
		return fmt.Errorf("register %q: %w", locale, err)
	}
	b.put(t)
	return nil
}

func (b *Builder) put(t *entities.Table) {
	b.tables[t.Locale()] = t
	delete(b.loaders, t.Locale())
}

// Declare marks locale as available. Its content comes from loader on first
// use; a nil loader declares the locale without content, so every lookup
// falls back to root. Declaring a registered locale is a no-op.
func (b *Builder) Declare(locale string, loader output.Loader) error {
	if strings.TrimSpace(locale) == "" {
		return fmt.Errorf("declare: %w", domain.ErrEmptyLocale)
	}
	if _, ok := b.tables[locale]; ok {
		return nil
	}
	b.loaders[locale] = loader
	return nil
}

// Build publishes the collected tables. The root table is mandatory.
func (b *Builder) Build() (*Catalog, error) {
	root, ok := b.tables[entities.RootLocale]
	if !ok {
		return nil, domain.ErrRootRequired
	}

	c := &Catalog{
		root:        root,
		slots:       make(map[string]*localeSlot, len(b.tables)+len(b.loaders)),
		logger:      b.logger,
		loadTimeout: b.loadTimeout,
	}
	for id, t := range b.tables {
		c.slots[id] = &localeSlot{id: id, table: t}
	}
	for id, l := range b.loaders {
		c.slots[id] = &localeSlot{id: id, loader: l}
	}
	for id := range c.slots {
		c.locales = append(c.locales, id)
	}
	sort.Strings(c.locales)
	return c, nil
}

type localeSlot struct {
	id     string
	loader output.Loader

	once  sync.Once
	table *entities.Table
	err   error
}

// Catalog is the published, read-only set of locale tables. It is safe for
// concurrent use.
type Catalog struct {
	root        *entities.Table
	slots       map[string]*localeSlot
	locales     []string
	logger      *zap.Logger
	loadTimeout time.Duration

	patterns sync.Map // expression -> *regexp.Regexp
}

func (c *Catalog) load(ctx context.Context, s *localeSlot) (*entities.Table, error) {
	if s.loader == nil {
		return s.table, nil
	}
	s.once.Do(func() {
		entries, err := s.loader.Load(ctx, s.id)
		if err == nil {
			s.table, err = entities.NewTable(s.id, entries)
		}
		if err != nil {
			s.err = fmt.Errorf("load locale %q: %w", s.id, err)
			c.logger.Warn("locale unavailable, falling back to root",
				zap.String("locale", s.id), zap.Error(err))
			return
		}
		c.logger.Debug("locale loaded", zap.String("locale", s.id), zap.Int("entries", s.table.Len()))
	})
	return s.table, s.err
}

func (c *Catalog) slotTable(s *localeSlot) *entities.Table {
	if s.loader == nil {
		return s.table
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.loadTimeout)
	defer cancel()
	t, _ := c.load(ctx, s)
	return t
}

// Preload runs every pending deferred load and returns their failures.
func (c *Catalog) Preload(ctx context.Context) error {
	var errs []error
	for _, id := range c.locales {
		if _, err := c.load(ctx, c.slots[id]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// chain lists the table ids consulted before root: the locale as given, its
// canonical BCP 47 form, then its parents (fr-CA, fr).
func chain(locale string) []string {
	ids := []string{locale}
	tag, err := language.Parse(locale)
	if err != nil {
		return ids
	}
	seen := map[string]bool{locale: true}
	add := func(t language.Tag) {
		if s := t.String(); !seen[s] {
			seen[s] = true
			ids = append(ids, s)
		}
	}
	add(tag)
	for i := 0; i < maxParents && !tag.IsRoot(); i++ {
		tag = tag.Parent()
		if tag.IsRoot() {
			break
		}
		add(tag)
	}
	return ids
}

// Resolve looks key up in locale, then in its parents, then in root.
func (c *Catalog) Resolve(locale, key string) (entities.Resolution, error) {
	res := entities.Resolution{Key: key, Requested: locale, Kind: entities.KindOf(key)}
	for _, id := range chain(locale) {
		if id == entities.RootLocale {
			break
		}
		s, ok := c.slots[id]
		if !ok {
			continue
		}
		if v, ok := c.slotTable(s).Get(key); ok {
			res.Value, res.Locale = v, id
			return res, nil
		}
	}
	if v, ok := c.root.Get(key); ok {
		res.Value, res.Locale = v, entities.RootLocale
		return res, nil
	}
	return entities.Resolution{}, &domain.MissingKeyError{Locale: locale, Key: key}
}

// Lookup returns the display string for key in locale, falling back to root.
// It fails with domain.ErrMissingKey when root does not define key either.
func (c *Catalog) Lookup(locale, key string) (string, error) {
	res, err := c.Resolve(locale, key)
	if err != nil {
		return "", err
	}
	return res.Value, nil
}

// AvailableLocales returns every registered or declared locale id, sorted.
func (c *Catalog) AvailableLocales() []string {
	out := make([]string, len(c.locales))
	copy(out, c.locales)
	return out
}

// Table returns the table of locale, loading it if it was deferred. A locale
// declared without content yields an empty table.
func (c *Catalog) Table(ctx context.Context, locale string) (*entities.Table, error) {
	s, ok := c.slots[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownLocale, locale)
	}
	t, err := c.load(ctx, s)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return entities.NewTable(locale, nil)
	}
	return t, nil
}

// Coverage reports which root keys locale lacks and which of its keys root
// does not know.
func (c *Catalog) Coverage(locale string) (entities.Coverage, error) {
	s, ok := c.slots[locale]
	if !ok {
		return entities.Coverage{}, fmt.Errorf("%w: %q", domain.ErrUnknownLocale, locale)
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.loadTimeout)
	defer cancel()
	t, err := c.load(ctx, s)

	cov := entities.Coverage{Locale: locale, Total: c.root.Len()}
	for _, k := range c.root.Keys() {
		if _, ok := t.Get(k); ok {
			cov.Translated++
		} else {
			cov.Missing = append(cov.Missing, k)
		}
	}
	for _, k := range t.Keys() {
		if _, ok := c.root.Get(k); !ok {
			cov.Unknown = append(cov.Unknown, k)
		}
	}
	return cov, err
}
