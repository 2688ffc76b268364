// Package census lists the national censuses that can be attached to an
// individual's record, with their official dates.
package census

import (
	"regexp"
	"strings"
)

// Census is a single enumeration.
type Census struct {
	// Date is a GEDCOM date, for example "06 JUN 1841" or
	// "BET JUN 1860 AND OCT 1860".
	Date string `json:"date"`

	// Place is a GEDCOM place, most specific component first, for example
	// "Mecklenburg-Schwerin, Deutschland".
	Place string `json:"place"`

	// Class identifies the census form, for example "CensusOfEngland1841".
	Class string `json:"class"`
}

var reYear = regexp.MustCompile(`\b\d{3,4}\b`)

// Year returns the earliest year mentioned in the census date.
func (c Census) Year() string {
	return reYear.FindString(c.Date)
}

// Label is shown in census selectors: the first component of the place
// and the year, for example "England 1841".
func (c Census) Label() string {
	first, _, _ := strings.Cut(c.Place, ", ")
	return first + " " + c.Year()
}

// Place is a country or region holding censuses.
type Place struct {
	Name     string   `json:"name"`
	Censuses []Census `json:"censuses"`
}

// Places returns all census places in display order.
func Places() []Place {
	res := make([]Place, len(places))
	for i, p := range places {
		res[i] = Place{Name: p.name, Censuses: p.censuses()}
	}
	return res
}

// FindPlace returns the census place with the given name (case-insensitive).
func FindPlace(name string) (Place, bool) {
	name = strings.TrimSpace(name)
	for _, p := range places {
		if strings.EqualFold(p.name, name) {
			return Place{Name: p.name, Censuses: p.censuses()}, true
		}
	}
	return Place{}, false
}

// AllDates returns every census of every place, in display order.
func AllDates() []Census {
	var res []Census
	for _, p := range places {
		res = append(res, p.censuses()...)
	}
	return res
}
