package census_test

import (
	"testing"

	"github.com/gnames/gnkin/pkg/census"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaces(t *testing.T) {
	ps := census.Places()
	var names []string
	for _, p := range ps {
		names = append(names, p.Name)
		assert.NotEmpty(t, p.Censuses, p.Name)
	}
	assert.Equal(t, []string{
		"England", "Wales", "Scotland", "United States", "Canada", "France",
		"Deutschland", "Danmark",
	}, names)
}

func TestFindPlace(t *testing.T) {
	p, ok := census.FindPlace(" england ")
	require.True(t, ok)
	assert.Equal(t, "England", p.Name)
	require.Len(t, p.Censuses, 10)
	assert.Equal(t, census.Census{
		Date:  "06 JUN 1841",
		Place: "England",
		Class: "CensusOfEngland1841",
	}, p.Censuses[0])

	_, ok = census.FindPlace("Atlantis")
	assert.False(t, ok)
}

func TestLabel(t *testing.T) {
	tests := []struct {
		msg   string
		c     census.Census
		year  string
		label string
	}{
		{
			"simple",
			census.Census{Date: "06 JUN 1841", Place: "England"},
			"1841", "England 1841",
		},
		{
			"date range",
			census.Census{Date: "BET JUN 1860 AND OCT 1860", Place: "United States"},
			"1860", "United States 1860",
		},
		{
			"region",
			census.Census{Date: "AUG 1819", Place: "Mecklenburg-Schwerin, Deutschland"},
			"1819", "Mecklenburg-Schwerin 1819",
		},
	}
	for _, v := range tests {
		assert.Equal(t, v.year, v.c.Year(), v.msg)
		assert.Equal(t, v.label, v.c.Label(), v.msg)
	}
}

func TestAllDates(t *testing.T) {
	all := census.AllDates()
	var n int
	for _, p := range census.Places() {
		n += len(p.Censuses)
	}
	assert.Len(t, all, n)

	classes := make(map[string]struct{})
	for _, c := range all {
		assert.NotEmpty(t, c.Year(), c.Class)
		_, dup := classes[c.Class]
		assert.False(t, dup, c.Class)
		classes[c.Class] = struct{}{}
	}
}

func TestPlacesAreCopies(t *testing.T) {
	p := census.Places()
	p[0].Censuses[0].Date = "changed"
	assert.Equal(t, "06 JUN 1841", census.Places()[0].Censuses[0].Date)
}
