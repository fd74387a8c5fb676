package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		locales []string
		tag     language.Tag
	}){
		{nil, language.AmericanEnglish},
		{[]string{"en-GB"}, language.AmericanEnglish},
		{[]string{"es-AR"}, language.Spanish},
		{[]string{"es"}, language.Spanish},
		{[]string{"fr-FR"}, language.AmericanEnglish},
		{[]string{"fr-FR", "es-ES"}, language.Spanish},
	}

	for _, entry := range table {
		assert.Equal(entry.tag, Match(entry.locales...), entry.locales)
	}
}

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	defer SetLanguage(Match())

	SetLanguage(language.AmericanEnglish)
	assert.Equal(`label "loop" is duplicated`, From("label \"%v\" is duplicated", "loop"))

	SetLanguage(language.Spanish)
	assert.Equal(`el label "loop" está duplicado`, From("label \"%v\" is duplicated", "loop"))
	assert.Equal(`label inexistente: "end"`, From("label \"%v\" does not exist", "end"))

	// Keys missing from the catalog fall back to the en-US format.
	assert.Equal("untranslated 7", From("untranslated %d", 7))
}
