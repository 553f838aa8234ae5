package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dmstrings/internal/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		Env:             config.EnvDevelopment,
		DefaultLanguage: "en",
		LocaleSource:    config.SourceEmbedded,
		LoadTimeout:     time.Second,
	}
}

func TestBuildCatalog_Embedded(t *testing.T) {
	c, err := BuildCatalog(context.Background(), baseConfig(), zap.NewNop())
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.Repo)
	assert.ElementsMatch(t, []string{"root", "fr", "es"}, c.AvailableLocales())
	got, err := c.Lookup("fr", "OK")
	require.NoError(t, err)
	assert.Equal(t, "OK", got)
}

func TestBuildCatalog_Dir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bundle.toml"),
		[]byte("it = true\n[root]\nSAVE = \"Save\"\nOK = \"OK\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "it.toml"),
		[]byte("SAVE = \"Salva\"\n"), 0o644))

	cfg := baseConfig()
	cfg.LocaleSource = config.SourceDir
	cfg.LocalesDir = dir

	c, err := BuildCatalog(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"it", "root"}, c.AvailableLocales())

	got, err := c.Lookup("it", "SAVE")
	require.NoError(t, err)
	assert.Equal(t, "Salva", got)
}

func TestBuildCatalog_StrictFailsOnBrokenLocale(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bundle.toml"),
		[]byte("it = true\n[root]\nSAVE = \"Save\"\n"), 0o644))

	cfg := baseConfig()
	cfg.LocaleSource = config.SourceDir
	cfg.LocalesDir = dir

	_, err := BuildCatalog(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)

	cfg.Env = config.EnvProduction
	c, err := BuildCatalog(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	got, err := c.Lookup("it", "SAVE")
	require.NoError(t, err)
	assert.Equal(t, "Save", got)
}
