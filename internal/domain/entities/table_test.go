package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmstrings/internal/domain"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		key  string
		want Kind
	}{
		{"SAVE", KindDisplay},
		{"DELETE_FOLDER_?", KindDisplay},
		{"_DATE_FORMAT", KindFormat},
		{"_DATE_PICKER_DATE_FORMAT", KindFormat},
		{"_VALIDATION_PATTERN_NUMBER", KindPattern},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.key), tt.key)
	}
	assert.Equal(t, "pattern", Entry{Key: "_VALIDATION_PATTERN_TIME"}.Kind().String())
}

func TestNewTable_RejectsDuplicateKey(t *testing.T) {
	_, err := NewTable("fr", []Entry{{"SAVE", "Enregistrer"}, {"SAVE", "Sauver"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	var dup *domain.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "SAVE", dup.Key)
	assert.Equal(t, "fr", dup.Locale)
}

func TestNewTable_RejectsEmptyIDs(t *testing.T) {
	_, err := NewTable(" ", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyLocale)

	_, err = NewTable("root", []Entry{{"", "x"}})
	assert.ErrorIs(t, err, domain.ErrEmptyKey)

	_, err = NewTableFromMap("root", map[string]string{"": "x"})
	assert.ErrorIs(t, err, domain.ErrEmptyKey)
}

func TestTable_KeysSorted(t *testing.T) {
	tbl, err := NewTableFromMap("root", map[string]string{"TITLE": "Title", "APPEND": "Add", "OK": "OK"})
	require.NoError(t, err)

	assert.Equal(t, []string{"APPEND", "OK", "TITLE"}, tbl.Keys())
	assert.Equal(t, 3, tbl.Len())
	v, ok := tbl.Get("APPEND")
	assert.True(t, ok)
	assert.Equal(t, "Add", v)
}

func TestTable_NilIsEmpty(t *testing.T) {
	var tbl *Table
	_, ok := tbl.Get("SAVE")
	assert.False(t, ok)
	assert.Zero(t, tbl.Len())
	assert.Empty(t, tbl.Entries())
}
