package locale

import (
	"golang.org/x/text/language"

	"github.com/gnames/gnkin/pkg/surname"
)

// traditions maps base languages to surname traditions that differ from
// the paternal one.
var traditions = map[string]string{
	"es": surname.Spanish,
	"pt": surname.Portuguese,
	"is": surname.Icelandic,
	"lt": surname.Lithuanian,
	"pl": surname.Polish,
}

func loc(tag, endonym, territory, dir string) Locale {
	t := language.MustParse(tag)
	base, _ := t.Base()
	trad, ok := traditions[base.String()]
	if !ok {
		trad = surname.Paternal
	}
	return Locale{
		Tag:       t.String(),
		Endonym:   endonym,
		Territory: territory,
		Direction: dir,
		Tradition: trad,
	}
}

var locales = []Locale{
	loc("en-US", "American English", "US", LTR),
	loc("ar", "العربية", "", RTL),
	loc("ca", "català", "ES", LTR),
	loc("cs", "čeština", "CZ", LTR),
	loc("da", "dansk", "DK", LTR),
	loc("de", "Deutsch", "DE", LTR),
	loc("el", "Ελληνικά", "GR", LTR),
	loc("en-AU", "Australian English", "AU", LTR),
	loc("en-GB", "British English", "GB", LTR),
	loc("en-VU", "English (Vanuatu)", "VU", LTR),
	loc("es", "español", "ES", LTR),
	loc("et", "eesti", "EE", LTR),
	loc("fa", "فارسی", "IR", RTL),
	loc("fi", "suomi", "FI", LTR),
	loc("fr", "français", "FR", LTR),
	loc("he", "עברית", "IL", RTL),
	loc("hu", "magyar", "HU", LTR),
	loc("is", "íslenska", "IS", LTR),
	loc("it", "italiano", "IT", LTR),
	loc("ja", "日本語", "JP", LTR),
	loc("lt", "lietuvių", "LT", LTR),
	loc("nb", "norsk bokmål", "NO", LTR),
	loc("nl", "Nederlands", "NL", LTR),
	loc("pl", "polski", "PL", LTR),
	loc("pt", "português", "PT", LTR),
	loc("pt-BR", "português do Brasil", "BR", LTR),
	loc("ru", "русский", "RU", LTR),
	loc("sk", "slovenčina", "SK", LTR),
	loc("sv", "svenska", "SE", LTR),
	loc("tr", "Türkçe", "TR", LTR),
	loc("uk", "українська", "UA", LTR),
	loc("zh-Hans", "简体中文", "", LTR),
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = language.MustParse(l.Tag)
	}
	return language.NewMatcher(tags)
}()
