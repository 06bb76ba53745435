package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordKey(t *testing.T) {
	w := Word{Term: "haus", Definition: "a building for living in"}
	assert.Equal(t, "haus", w.Key())
}

func TestWordHint(t *testing.T) {
	w := Word{Term: "haus", Hints: map[Language]string{LanguageEnglish: "house"}}
	assert.Equal(t, "house", w.Hint(LanguageEnglish))
	assert.Empty(t, w.Hint(LanguageFrench))
}

func TestCloze(t *testing.T) {
	tests := []struct {
		name string
		word Word
		want string
	}{
		{
			"single occurrence",
			Word{Term: "haus", Example: "Das haus ist groß."},
			"Das ____ ist groß.",
		},
		{
			"case insensitive",
			Word{Term: "haus", Example: "Haus und Hof."},
			"____ und Hof.",
		},
		{
			"multiple occurrences",
			Word{Term: "casa", Example: "Mi casa es tu casa."},
			"Mi ____ es tu ____.",
		},
		{
			"term absent leaves sentence untouched",
			Word{Term: "perro", Example: "El gato duerme."},
			"El gato duerme.",
		},
		{
			"empty example",
			Word{Term: "haus"},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.word.Cloze())
		})
	}
}

func TestNormalizeWordToken(t *testing.T) {
	assert.Equal(t, "haus", NormalizeWordToken("  Haus "))
	assert.Equal(t, "", NormalizeWordToken("   "))
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LanguageGerman, ParseLanguage(" DE "))
	assert.Equal(t, LanguageUnspecified, ParseLanguage("tlh"))
	assert.Equal(t, "en", LanguageUnspecified.CodeOrDefault())
}
