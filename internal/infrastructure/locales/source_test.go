package locales

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmstrings/internal/application"
	"dmstrings/internal/domain"
	"dmstrings/internal/domain/entities"
)

func buildEmbedded(t *testing.T) *application.Catalog {
	t.Helper()
	b := application.NewBuilder(nil)
	require.NoError(t, Embedded().Register(b, nil))
	c, err := b.Build()
	require.NoError(t, err)
	return c
}

func TestEmbedded_Bundle(t *testing.T) {
	bundle, err := Embedded().Bundle()
	require.NoError(t, err)

	assert.Equal(t, []string{"es", "fr"}, bundle.Locales)
	assert.Len(t, bundle.Root, 130)
}

func TestEmbedded_Lookups(t *testing.T) {
	c := buildEmbedded(t)

	assert.ElementsMatch(t, []string{"root", "fr", "es"}, c.AvailableLocales())

	tests := []struct {
		locale, key, want string
	}{
		{"root", "SAVE", "Save"},
		{"root", "_VALIDATION_PATTERN_NUMBER", `^\-?\d+(\.\d+)?$`},
		{"root", "_VALIDATION_PATTERN_DATE", `\d{4}-\d{2}-\d{2}`},
		{"root", "VALIDATION_FAILED_FOR", "Validation failed for "},
		{"root", "DELETE_FOLDER_?", "Delete the folder?"},
		{"fr", "SAVE", "Enregistrer"},
		{"fr", "OK", "OK"},
		{"fr", "NEW_VERSION_OF", "New version of"},
		{"es", "SAVE", "Guardar"},
		{"es", "WORKFLOW", "Workflow"},
		{"es-MX", "CANCEL", "Cancelar"},
	}
	for _, tt := range tests {
		got, err := c.Lookup(tt.locale, tt.key)
		require.NoError(t, err, "%s/%s", tt.locale, tt.key)
		assert.Equal(t, tt.want, got, "%s/%s", tt.locale, tt.key)
	}

	_, err := c.Lookup("root", "UNKNOWN_KEY_XYZ")
	assert.ErrorIs(t, err, domain.ErrMissingKey)
}

func TestEmbedded_LocalesAreSubsetsOfRoot(t *testing.T) {
	c := buildEmbedded(t)
	require.NoError(t, c.Preload(context.Background()))

	for _, id := range []string{"fr", "es"} {
		cov, err := c.Coverage(id)
		require.NoError(t, err)
		assert.Empty(t, cov.Unknown, id)
		assert.NotZero(t, cov.Translated, id)
	}
}

func TestEmbedded_PatternsCompile(t *testing.T) {
	c := buildEmbedded(t)
	for _, id := range c.AvailableLocales() {
		for _, key := range []string{"_VALIDATION_PATTERN_DATE", "_VALIDATION_PATTERN_NUMBER", "_VALIDATION_PATTERN_TIME"} {
			_, err := c.Pattern(id, key)
			assert.NoError(t, err, "%s/%s", id, key)
		}
	}
}

func TestBundle_FalseFlagDeclaresNothing(t *testing.T) {
	fsys := fstest.MapFS{
		BundleFile: {Data: []byte("fr = true\nde = false\n[root]\nOK = \"OK\"\n")},
	}
	bundle, err := NewSource(fsys).Bundle()
	require.NoError(t, err)
	assert.Equal(t, []string{"fr"}, bundle.Locales)
	assert.Equal(t, []entities.Entry{{Key: "OK", Value: "OK"}}, bundle.Root)
}

func TestBundle_Errors(t *testing.T) {
	tests := map[string]string{
		"missing root":   "fr = true\n",
		"inline locale":  "[root]\nOK = \"OK\"\n[fr]\nOK = \"D'accord\"\n",
		"bad flag":       "fr = 1\n[root]\nOK = \"OK\"\n",
		"non string":     "[root]\nOK = 1\n",
		"duplicate key":  "[root]\nOK = \"OK\"\nOK = \"Okay\"\n",
		"malformed toml": "[root\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewSource(fstest.MapFS{BundleFile: {Data: []byte(data)}}).Bundle()
			assert.Error(t, err)
		})
	}

	_, err := NewSource(fstest.MapFS{}).Bundle()
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"fr.toml": {Data: []byte("SAVE = \"Enregistrer\"\n\"_VALIDATION_PATTERN_TIME\" = '\\d{2}h\\d{2}'\n")},
	}
	src := NewSource(fsys)

	entries, err := src.Load(context.Background(), "fr")
	require.NoError(t, err)
	assert.Equal(t, []entities.Entry{
		{Key: "SAVE", Value: "Enregistrer"},
		{Key: "_VALIDATION_PATTERN_TIME", Value: `\d{2}h\d{2}`},
	}, entries)

	_, err = src.Load(context.Background(), "es")
	assert.Error(t, err)
	_, err = src.Load(context.Background(), "../fr")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Load(ctx, "fr")
	assert.ErrorIs(t, err, context.Canceled)
}
