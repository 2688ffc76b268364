// Package locale holds the languages the interface is offered in and
// negotiates one of them from an HTTP Accept-Language header.
package locale

import (
	"golang.org/x/text/language"

	"github.com/gnames/gnkin/pkg/surname"
)

// Direction of a script.
const (
	LTR = "ltr"
	RTL = "rtl"
)

// Locale describes a supported language.
type Locale struct {
	// Tag is a BCP 47 language tag, for example "en-GB".
	Tag string `json:"tag"`

	// Endonym is the name of the language in the language itself.
	Endonym string `json:"endonym"`

	// Territory is an ISO 3166 code, empty when the locale is not
	// bound to a territory.
	Territory string `json:"territory,omitempty"`

	// Direction is LTR or RTL.
	Direction string `json:"direction"`

	// Tradition is the surname tradition offered by default to new trees
	// created in this language.
	Tradition string `json:"tradition"`
}

// Default is used when nothing better can be negotiated.
const Default = "en-US"

// All returns every supported locale. The first one is the default.
func All() []Locale {
	res := make([]Locale, len(locales))
	copy(res, locales)
	return res
}

// Find returns the locale with the given tag. Tags are compared in their
// canonical form, so "en-gb" finds "en-GB".
func Find(tag string) (Locale, bool) {
	t, err := language.Parse(tag)
	if err != nil {
		return Locale{}, false
	}
	s := t.String()
	for _, l := range locales {
		if l.Tag == s {
			return l, true
		}
	}
	return Locale{}, false
}

// Match picks the best supported locale for an Accept-Language header
// value. Unparsable or unmatched headers give the default locale.
func Match(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return locales[0]
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return locales[0]
	}
	return locales[idx]
}

// DefaultTradition returns the surname tradition usually followed by
// speakers of the language. Unknown languages get the paternal tradition.
func DefaultTradition(tag string) string {
	if l, ok := Find(tag); ok {
		return l.Tradition
	}
	t, err := language.Parse(tag)
	if err != nil {
		return surname.Paternal
	}
	base, _ := t.Base()
	if trad, ok := traditions[base.String()]; ok {
		return trad
	}
	return surname.Paternal
}
