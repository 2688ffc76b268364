// Package surname derives the names of new relatives under a cultural
// surname tradition.
//
// Names are GEDCOM personal names where the surname is written between
// slashes, for example "John /White/" or "Mary /van Black/". A tradition
// receives the names of existing relatives and returns the fields that a
// new relative's name record should be pre-filled with (NAME, SPFX, SURN,
// GIVN, _MARNM).
//
// All functions are pure: they never fail and never touch I/O. Malformed
// input falls back to the tradition's empty template.
package surname

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownTradition is returned by New for names it does not know.
var ErrUnknownTradition = errors.New("unknown surname tradition")

// GEDCOM tags used as keys of Names.
const (
	TagName  = "NAME"
	TagSpfx  = "SPFX"
	TagSurn  = "SURN"
	TagGivn  = "GIVN"
	TagMarnm = "_MARNM"
)

// Sex of an individual as recorded in GEDCOM.
type Sex string

const (
	Male    Sex = "M"
	Female  Sex = "F"
	Unknown Sex = "U"
)

// ParseSex converts "m", "F", "male" etc. to a Sex. Anything it does not
// recognize is Unknown.
func ParseSex(s string) Sex {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M", "MALE":
		return Male
	case "F", "FEMALE":
		return Female
	default:
		return Unknown
	}
}

// Names maps GEDCOM name tags to values.
type Names map[string]string

// Tradition describes how surnames pass between relatives.
type Tradition interface {
	// HasMarriedNames is true when wives take their husband's surname.
	HasMarriedNames() bool

	// HasSurnames is true when the tradition uses surnames at all.
	HasSurnames() bool

	// NewChildNames returns name fields of a new child of the given
	// parents.
	NewChildNames(fatherName, motherName string, childSex Sex) Names

	// NewParentNames returns name fields of a new parent of the given
	// child.
	NewParentNames(childName string, parentSex Sex) Names

	// NewSpouseNames returns name fields of a new spouse of the given
	// individual.
	NewSpouseNames(spouseName string, spouseSex Sex) Names
}

// Tradition keys.
const (
	Paternal    = "paternal"
	Patrilineal = "patrilineal"
	Matrilineal = "matrilineal"
	Spanish     = "spanish"
	Portuguese  = "portuguese"
	Icelandic   = "icelandic"
	Polish      = "polish"
	Lithuanian  = "lithuanian"
	None        = "none"
)

var registry = map[string]struct {
	create      func() Tradition
	description string
}{
	Paternal: {
		func() Tradition { return paternal{} },
		"Paternal: children take their father’s surname. " +
			"Wives take their husband’s surname.",
	},
	Patrilineal: {
		func() Tradition { return patrilineal{} },
		"Patrilineal: children take their father’s surname.",
	},
	Matrilineal: {
		func() Tradition { return matrilineal{} },
		"Matrilineal: children take their mother’s surname.",
	},
	Spanish: {
		func() Tradition { return spanish{} },
		"Spanish: children take one surname from the father and " +
			"one surname from the mother.",
	},
	Portuguese: {
		func() Tradition { return portuguese{} },
		"Portuguese: children take one surname from the mother and " +
			"one surname from the father.",
	},
	Icelandic: {
		func() Tradition { return icelandic{} },
		"Icelandic: children take a patronym instead of a surname.",
	},
	Polish: {
		func() Tradition { return polish{} },
		"Polish: children take their father’s surname. Wives take " +
			"their husband’s surname. Surnames are inflected to " +
			"indicate an individual’s sex.",
	},
	Lithuanian: {
		func() Tradition { return lithuanian{} },
		"Lithuanian: children take their father’s surname. Wives " +
			"take their husband’s surname. Surnames are inflected to " +
			"indicate an individual’s sex and marital status.",
	},
	None: {
		func() Tradition { return defaultTradition{} },
		"No surname tradition",
	},
}

// New returns the tradition registered under name (case-insensitive).
func New(name string) (Tradition, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if v, ok := registry[key]; ok {
		return v.create(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTradition, name)
}

// Keys returns the names of all traditions, sorted.
func Keys() []string {
	res := make([]string, 0, len(registry))
	for k := range registry {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Descriptions returns a human-readable description of each tradition.
func Descriptions() map[string]string {
	res := make(map[string]string, len(registry))
	for k, v := range registry {
		res[k] = v.description
	}
	return res
}
