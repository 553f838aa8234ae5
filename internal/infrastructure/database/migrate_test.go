package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckMigrations(t *testing.T) {
	n, err := checkMigrations(filepath.Join("..", "..", "..", "migrations"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = checkMigrations(t.TempDir())
	assert.ErrorContains(t, err, "no migrations")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_init.up.sql"), []byte("SELECT 1;"), 0o644))
	_, err = checkMigrations(dir)
	assert.ErrorContains(t, err, "000001_init.up.sql has no down migration")
}

func TestRunMigrations_RejectsEmptySource(t *testing.T) {
	err := RunMigrations("postgres://dm@127.0.0.1:1/dm?sslmode=disable", t.TempDir(), zap.NewNop())
	assert.ErrorContains(t, err, "migration source")
}
