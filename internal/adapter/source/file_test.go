package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentloop/smartvocab/internal/entity"
)

func writeVocab(t *testing.T, dir, lang, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, lang+".json"), []byte(content), 0o644))
}

func TestLoadPreservesFrequencyOrder(t *testing.T) {
	dir := t.TempDir()
	writeVocab(t, dir, "de", `[
		{"term": "der", "translation": "the"},
		{"term": "Haus", "example": "Das Haus ist groß.", "definition": "a building"},
		{"term": "gehen", "translation": "to go"}
	]`)

	words, err := NewFileVocabulary(dir).Load(context.Background(), entity.LanguageGerman)
	require.NoError(t, err)
	require.Len(t, words, 3)
	assert.Equal(t, "der", words[0].Term)
	assert.Equal(t, "haus", words[1].Term, "terms are normalized to lowercase keys")
	assert.Equal(t, "gehen", words[2].Term)
	assert.Equal(t, "Das Haus ist groß.", words[1].Example)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewFileVocabulary(t.TempDir()).Load(context.Background(), entity.LanguageFrench)
	assert.ErrorIs(t, err, entity.ErrVocabularyNotFound)
}

func TestLoadRejectsDuplicateTerms(t *testing.T) {
	dir := t.TempDir()
	writeVocab(t, dir, "de", `[{"term": "haus"}, {"term": " HAUS "}]`)

	_, err := NewFileVocabulary(dir).Load(context.Background(), entity.LanguageGerman)
	assert.ErrorIs(t, err, entity.ErrDuplicateWordTerm)
}

func TestLoadRejectsBlankTerm(t *testing.T) {
	dir := t.TempDir()
	writeVocab(t, dir, "de", `[{"term": "haus"}, {"term": "  "}]`)

	_, err := NewFileVocabulary(dir).Load(context.Background(), entity.LanguageGerman)
	assert.ErrorIs(t, err, entity.ErrInvalidWordTerm)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeVocab(t, dir, "de", `{"not": "an array"}`)

	_, err := NewFileVocabulary(dir).Load(context.Background(), entity.LanguageGerman)
	assert.Error(t, err)
}

func TestLoadDefaultsLanguage(t *testing.T) {
	dir := t.TempDir()
	writeVocab(t, dir, "en", `[{"term": "house"}]`)

	words, err := NewFileVocabulary(dir).Load(context.Background(), entity.LanguageUnspecified)
	require.NoError(t, err)
	assert.Len(t, words, 1)
}
