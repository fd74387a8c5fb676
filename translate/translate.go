// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user-facing diagnostics in the user's language.
//
// Message keys are en-US Sprintf() formats. A Spanish catalog is provided,
// selected either by the LEGV8_LANG environment variable or by the system
// locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"
	"github.com/xyproto/env/v2"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported languages. The first entry is the fallback.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

var printer *message.Printer

func init() {
	for key, text := range spanish {
		if err := message.SetString(language.Spanish, key, text); err != nil {
			log.Printf("legv8: catalog: %v: %v", key, err)
		}
	}

	locales := []string{}
	if lang := env.Str("LEGV8_LANG"); lang != "" {
		locales = append(locales, lang)
	} else {
		var err error
		locales, err = locale.GetLocales()
		if err != nil {
			log.Printf("legv8: locale: %v", err)
		}
	}

	SetLanguage(Match(locales...))
}

// Match returns the supported language best matching the locale names.
func Match(locales ...string) language.Tag {
	if len(locales) == 0 {
		return supported[0]
	}

	tag, _ := language.MatchStrings(matcher, locales...)
	base, _ := tag.Base()
	for _, sup := range supported {
		supBase, _ := sup.Base()
		if supBase == base {
			return sup
		}
	}

	return supported[0]
}

// SetLanguage selects the language used by From.
func SetLanguage(tag language.Tag) {
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
