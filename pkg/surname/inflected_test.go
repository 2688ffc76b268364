package surname_test

import (
	"testing"

	"github.com/gnames/gnkin/pkg/surname"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolish(t *testing.T) {
	tr, err := surname.New(surname.Polish)
	require.NoError(t, err)

	assert.True(t, tr.HasMarriedNames())
	assert.True(t, tr.HasSurnames())

	empty := surname.Names{"NAME": "//"}

	tests := []struct {
		msg string
		res surname.Names
		exp surname.Names
	}{
		{
			"new son",
			tr.NewChildNames("Jan /Kowalski/", "Anna /Nowak/", surname.Male),
			surname.Names{"NAME": "/Kowalski/", "SURN": "Kowalski"},
		},
		{
			"new daughter",
			tr.NewChildNames("Jan /Kowalski/", "Anna /Nowak/", surname.Female),
			surname.Names{"NAME": "/Kowalska/", "SURN": "Kowalski"},
		},
		{
			"new daughter, -cki",
			tr.NewChildNames("Jan /Wiśnicki/", "", surname.Female),
			surname.Names{"NAME": "/Wiśnicka/", "SURN": "Wiśnicki"},
		},
		{
			"new daughter, not inflected",
			tr.NewChildNames("Jan /Nowak/", "", surname.Female),
			surname.Names{"NAME": "/Nowak/", "SURN": "Nowak"},
		},
		{"new child without parent names", tr.NewChildNames("", "", surname.Unknown), empty},
		{
			"new father of a daughter",
			tr.NewParentNames("Zofia /Kowalska/", surname.Male),
			surname.Names{"NAME": "/Kowalski/", "SURN": "Kowalski"},
		},
		{"new mother", tr.NewParentNames("Zofia /Kowalska/", surname.Female), empty},
		{
			"new wife",
			tr.NewSpouseNames("Jan /Zieliński/", surname.Female),
			surname.Names{"NAME": "//", "_MARNM": "/Zielińska/"},
		},
		{"new husband", tr.NewSpouseNames("Anna /Nowak/", surname.Male), empty},
		{
			"new wife of a man with an empty surname",
			tr.NewSpouseNames("Jan //", surname.Female),
			surname.Names{"NAME": "//", "_MARNM": "//"},
		},
		{"new son of a father with an empty surname", tr.NewChildNames("Jan //", "", surname.Male), empty},
	}

	for _, v := range tests {
		assert.Equal(t, v.exp, v.res, v.msg)
	}
}

func TestLithuanian(t *testing.T) {
	tr, err := surname.New(surname.Lithuanian)
	require.NoError(t, err)

	assert.True(t, tr.HasMarriedNames())
	assert.True(t, tr.HasSurnames())

	empty := surname.Names{"NAME": "//"}

	tests := []struct {
		msg string
		res surname.Names
		exp surname.Names
	}{
		{
			"new son",
			tr.NewChildNames("Jonas /Kavaliauskas/", "", surname.Male),
			surname.Names{"NAME": "/Kavaliauskas/", "SURN": "Kavaliauskas"},
		},
		{
			"new daughter, -as",
			tr.NewChildNames("Jonas /Kavaliauskas/", "", surname.Female),
			surname.Names{"NAME": "/Kavaliauskaitė/", "SURN": "Kavaliauskas"},
		},
		{
			"new daughter, -is",
			tr.NewChildNames("Jonas /Jonaitis/", "", surname.Female),
			surname.Names{"NAME": "/Jonaitytė/", "SURN": "Jonaitis"},
		},
		{
			"new daughter, -ius",
			tr.NewChildNames("Jonas /Brazdžius/", "", surname.Female),
			surname.Names{"NAME": "/Brazdžiūtė/", "SURN": "Brazdžius"},
		},
		{
			"new daughter, -us",
			tr.NewChildNames("Jonas /Petrus/", "", surname.Female),
			surname.Names{"NAME": "/Petrutė/", "SURN": "Petrus"},
		},
		{"new child without parent names", tr.NewChildNames("", "", surname.Unknown), empty},
		{
			"new father of a daughter",
			tr.NewParentNames("Ona /Kavaliauskaitė/", surname.Male),
			surname.Names{"NAME": "/Kavaliauskas/", "SURN": "Kavaliauskas"},
		},
		{
			"new father of a son",
			tr.NewParentNames("Petras /Jonaitis/", surname.Male),
			surname.Names{"NAME": "/Jonaitis/", "SURN": "Jonaitis"},
		},
		{"new mother", tr.NewParentNames("Ona /Kavaliauskaitė/", surname.Female), empty},
		{
			"new wife",
			tr.NewSpouseNames("Jonas /Kavaliauskas/", surname.Female),
			surname.Names{"NAME": "//", "_MARNM": "/Kavaliauskienė/"},
		},
		{"new husband", tr.NewSpouseNames("Ona /Kavaliauskaitė/", surname.Male), empty},
		{
			"new wife of a man with an empty surname",
			tr.NewSpouseNames("Jonas //", surname.Female),
			surname.Names{"NAME": "//", "_MARNM": "//"},
		},
		{"new daughter of a father with an empty surname", tr.NewChildNames("Jonas //", "", surname.Female), empty},
	}

	for _, v := range tests {
		assert.Equal(t, v.exp, v.res, v.msg)
	}
}

func TestIcelandic(t *testing.T) {
	tr, err := surname.New(surname.Icelandic)
	require.NoError(t, err)

	assert.False(t, tr.HasMarriedNames())
	assert.False(t, tr.HasSurnames())

	tests := []struct {
		msg string
		res surname.Names
		exp surname.Names
	}{
		{
			"new son",
			tr.NewChildNames("Jon Einarsson", "Eva Stefansdottir", surname.Male),
			surname.Names{"NAME": "Jonsson"},
		},
		{
			"new daughter",
			tr.NewChildNames("Jon Einarsson", "Eva Stefansdottir", surname.Female),
			surname.Names{"NAME": "Jonsdottir"},
		},
		{
			"new child of unknown sex",
			tr.NewChildNames("Jon Einarsson", "Eva Stefansdottir", surname.Unknown),
			surname.Names{},
		},
		{"new child without father", tr.NewChildNames("", "Eva Stefansdottir", surname.Male), surname.Names{}},
		{
			"new father",
			tr.NewParentNames("Jon Einarsson", surname.Male),
			surname.Names{"NAME": "Einar", "GIVN": "Einar"},
		},
		{
			"new father of a daughter",
			tr.NewParentNames("Eva Stefansdottir", surname.Male),
			surname.Names{"NAME": "Stefan", "GIVN": "Stefan"},
		},
		{"new mother", tr.NewParentNames("Jon Einarsson", surname.Female), surname.Names{}},
		{"new spouse", tr.NewSpouseNames("Jon Einarsson", surname.Female), surname.Names{}},
	}

	for _, v := range tests {
		assert.Equal(t, v.exp, v.res, v.msg)
	}
}
