package database

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"

	"dmstrings/internal/domain/entities"
)

func TestRowsToEntries(t *testing.T) {
	rows := []localeStringRow{
		{Locale: "fr", Key: "CANCEL", Value: "Annuler"},
		{Locale: "fr", Key: "_VALIDATION_PATTERN_NUMBER", Value: `^\-?\d+(,\d+)?$`},
	}
	assert.Equal(t, []entities.Entry{
		{Key: "CANCEL", Value: "Annuler"},
		{Key: "_VALIDATION_PATTERN_NUMBER", Value: `^\-?\d+(,\d+)?$`},
	}, rowsToEntries(rows))
	assert.Empty(t, rowsToEntries(nil))
}

func TestLastUpdate(t *testing.T) {
	older := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	rows := []localeStringRow{
		{UpdatedAt: pgtype.Timestamptz{Time: older, Valid: true}},
		{UpdatedAt: pgtype.Timestamptz{}},
		{UpdatedAt: pgtype.Timestamptz{Time: newer, Valid: true}},
	}
	assert.Equal(t, newer, lastUpdate(rows))
	assert.True(t, lastUpdate(nil).IsZero())
}
