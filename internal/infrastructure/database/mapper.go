package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"dmstrings/internal/domain/entities"
)

type localeStringRow struct {
	Locale    string             `db:"locale"`
	Key       string             `db:"key"`
	Value     string             `db:"value"`
	UpdatedAt pgtype.Timestamptz `db:"updated_at"`
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func rowsToEntries(rows []localeStringRow) []entities.Entry {
	out := make([]entities.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, entities.Entry{Key: r.Key, Value: r.Value})
	}
	return out
}

// lastUpdate returns the most recent updated_at among rows.
func lastUpdate(rows []localeStringRow) time.Time {
	var latest time.Time
	for _, r := range rows {
		if t := pgtypeTimestamptzToTime(r.UpdatedAt); t.After(latest) {
			latest = t
		}
	}
	return latest
}
