package i18n

import (
	"context"
	"errors"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"dmstrings/internal/application"
	"dmstrings/internal/domain"
	"dmstrings/internal/domain/entities"
	"dmstrings/internal/ports/output"
)

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer, filled from
// a Catalog. The root table is stored under the default language tag.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *zap.Logger
	strict          bool
}

// Option configures a Translator.
type Option func(*Translator)

// WithStrict makes T panic on a missing key instead of rendering the key.
// Meant for development builds.
func WithStrict(strict bool) Option {
	return func(t *Translator) { t.strict = strict }
}

func WithLogger(logger *zap.Logger) Option {
	return func(t *Translator) { t.logger = logger }
}

// NewTranslator builds a Translator from every table of catalog using the
// given default language (e.g. "en") for root. Locales that fail to load or
// whose id is not a BCP 47 tag are skipped and logged.
func NewTranslator(ctx context.Context, catalog *application.Catalog, defaultLanguage string, opts ...Option) *Translator {
	tag, err := language.Parse(defaultLanguage)
	if err != nil {
		tag = language.English
	}
	t := &Translator{
		bundle:          i18n.NewBundle(tag),
		defaultLanguage: tag,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	// Root first so a locale sharing the default tag overrides it.
	ids := []string{entities.RootLocale}
	for _, id := range catalog.AvailableLocales() {
		if id != entities.RootLocale {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		if err := t.add(ctx, catalog, id); err != nil {
			t.logger.Warn("i18n: locale skipped", zap.String("locale", id), zap.Error(err))
		}
	}
	return t
}

func (t *Translator) add(ctx context.Context, catalog *application.Catalog, locale string) error {
	tag := t.defaultLanguage
	if locale != entities.RootLocale {
		var err error
		if tag, err = language.Parse(locale); err != nil {
			return fmt.Errorf("parse locale: %w", err)
		}
	}
	table, err := catalog.Table(ctx, locale)
	if err != nil {
		return err
	}
	msgs := make([]*i18n.Message, 0, table.Len())
	for _, e := range table.Entries() {
		msgs = append(msgs, &i18n.Message{ID: e.Key, Other: e.Value})
	}
	return t.bundle.AddMessages(tag, msgs...)
}

func (t *Translator) languages(locale string) []string {
	languages := []string{}
	if locale != "" && locale != entities.RootLocale {
		languages = append(languages, locale)
	}
	return append(languages, t.defaultLanguage.String())
}

// Localize renders key for locale, falling back to the default language
// when the matched locale has no message for key. A key with no text anywhere
// fails with domain.ErrMissingKey.
func (t *Translator) Localize(locale, key string, data map[string]any) (string, error) {
	localizer := i18n.NewLocalizer(t.bundle, t.languages(locale)...)
	msg, tag, err := localizer.LocalizeWithTag(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err == nil {
		return msg, nil
	}
	var notFound *i18n.MessageNotFoundErr
	if !errors.As(err, &notFound) {
		return "", fmt.Errorf("i18n: localize %q: %w", key, err)
	}
	// go-i18n reports the default-language text alongside MessageNotFoundErr.
	if tag == language.Und {
		return "", &domain.MissingKeyError{Locale: locale, Key: key}
	}
	t.logger.Debug("i18n: fell back to default language",
		zap.String("key", key), zap.String("locale", locale), zap.Stringer("tag", tag))
	return msg, nil
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.Localize(locale, key, data)
	if err != nil {
		if t.strict {
			panic(err)
		}
		t.logger.Warn("i18n: localize failed",
			zap.String("key", key), zap.Strings("locales", t.languages(locale)), zap.Error(err))
		return key
	}
	return msg
}
