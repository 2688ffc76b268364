package census

type entry struct {
	date  string
	place string // empty means the country itself
	class string
}

type place struct {
	name    string
	entries []entry
}

func (p place) censuses() []Census {
	res := make([]Census, len(p.entries))
	for i, e := range p.entries {
		pl := p.name
		if e.place != "" {
			pl = e.place + ", " + p.name
		}
		res[i] = Census{Date: e.date, Place: pl, Class: e.class}
	}
	return res
}

var britishDates = []struct{ year, date string }{
	{"1841", "06 JUN 1841"},
	{"1851", "30 MAR 1851"},
	{"1861", "07 APR 1861"},
	{"1871", "02 APR 1871"},
	{"1881", "03 APR 1881"},
	{"1891", "05 APR 1891"},
	{"1901", "31 MAR 1901"},
	{"1911", "02 APR 1911"},
}

func british(country, prefix string, extra ...entry) place {
	res := place{name: country}
	for _, d := range britishDates {
		res.entries = append(res.entries, entry{date: d.date, class: prefix + d.year})
	}
	res.entries = append(res.entries, extra...)
	return res
}

var places = []place{
	british("England", "CensusOfEngland",
		entry{date: "19 JUN 1921", class: "CensusOfEngland1921"},
		entry{date: "29 SEP 1939", class: "RegisterOfEngland1939"},
	),
	british("Wales", "CensusOfWales",
		entry{date: "19 JUN 1921", class: "CensusOfWales1921"},
		entry{date: "29 SEP 1939", class: "RegisterOfWales1939"},
	),
	british("Scotland", "CensusOfScotland"),
	{
		name: "United States",
		entries: []entry{
			{date: "02 AUG 1790", class: "CensusOfUnitedStates1790"},
			{date: "04 AUG 1800", class: "CensusOfUnitedStates1800"},
			{date: "06 AUG 1810", class: "CensusOfUnitedStates1810"},
			{date: "07 AUG 1820", class: "CensusOfUnitedStates1820"},
			{date: "01 JUN 1830", class: "CensusOfUnitedStates1830"},
			{date: "01 JUN 1840", class: "CensusOfUnitedStates1840"},
			{date: "01 JUN 1850", class: "CensusOfUnitedStates1850"},
			{date: "BET JUN 1860 AND OCT 1860", class: "CensusOfUnitedStates1860"},
			{date: "JUN 1870", class: "CensusOfUnitedStates1870"},
			{date: "JUN 1880", class: "CensusOfUnitedStates1880"},
			{date: "02 JUN 1890", class: "CensusOfUnitedStates1890"},
			{date: "01 JUN 1900", class: "CensusOfUnitedStates1900"},
			{date: "15 APR 1910", class: "CensusOfUnitedStates1910"},
			{date: "01 JAN 1920", class: "CensusOfUnitedStates1920"},
			{date: "01 APR 1930", class: "CensusOfUnitedStates1930"},
			{date: "01 APR 1940", class: "CensusOfUnitedStates1940"},
			{date: "01 APR 1950", class: "CensusOfUnitedStates1950"},
		},
	},
	{
		name: "Canada",
		entries: []entry{
			{date: "12 JAN 1852", class: "CensusOfCanada1851"},
			{date: "14 JAN 1861", class: "CensusOfCanada1861"},
			{date: "02 APR 1871", class: "CensusOfCanada1871"},
			{date: "04 APR 1881", class: "CensusOfCanada1881"},
			{date: "06 APR 1891", class: "CensusOfCanada1891"},
			{date: "31 MAR 1901", class: "CensusOfCanada1901"},
			{date: "24 JUN 1906", class: "CensusOfCanadaPraries1906"},
			{date: "01 JUN 1911", class: "CensusOfCanada1911"},
			{date: "01 JUN 1916", class: "CensusOfCanadaPraries1916"},
			{date: "01 JUN 1921", class: "CensusOfCanada1921"},
		},
	},
	{
		name: "France",
		entries: []entry{
			{date: "20 JAN 1831", class: "CensusOfFrance1831"},
			{date: "21 JAN 1836", class: "CensusOfFrance1836"},
			{date: "21 JAN 1841", class: "CensusOfFrance1841"},
			{date: "15 JAN 1846", class: "CensusOfFrance1846"},
			{date: "16 JAN 1851", class: "CensusOfFrance1851"},
			{date: "17 JAN 1856", class: "CensusOfFrance1856"},
			{date: "17 JAN 1861", class: "CensusOfFrance1861"},
			{date: "17 JAN 1866", class: "CensusOfFrance1866"},
			{date: "21 JAN 1872", class: "CensusOfFrance1872"},
			{date: "20 JAN 1876", class: "CensusOfFrance1876"},
			{date: "20 JAN 1881", class: "CensusOfFrance1881"},
			{date: "21 JAN 1886", class: "CensusOfFrance1886"},
			{date: "15 JAN 1891", class: "CensusOfFrance1891"},
			{date: "16 JAN 1896", class: "CensusOfFrance1896"},
			{date: "17 JAN 1901", class: "CensusOfFrance1901"},
			{date: "18 JAN 1906", class: "CensusOfFrance1906"},
			{date: "19 JAN 1911", class: "CensusOfFrance1911"},
			{date: "20 JAN 1921", class: "CensusOfFrance1921"},
			{date: "21 JAN 1926", class: "CensusOfFrance1926"},
			{date: "15 JAN 1931", class: "CensusOfFrance1931"},
			{date: "16 JAN 1936", class: "CensusOfFrance1936"},
			{date: "17 JAN 1946", class: "CensusOfFrance1946"},
		},
	},
	{
		name: "Deutschland",
		entries: []entry{
			{date: "AUG 1819", place: "Mecklenburg-Schwerin", class: "CensusOfDeutschland1819"},
			{date: "03 DEC 1867", place: "Mecklenburg-Schwerin", class: "CensusOfDeutschland1867"},
			{date: "03 DEC 1867", place: "Mecklenburg-Schwerin (Nachtragsliste)", class: "CensusOfDeutschlandNL1867"},
			{date: "01 DEC 1900", place: "Mecklenburg-Schwerin", class: "CensusOfDeutschland1900"},
			{date: "08 OCT 1919", place: "Mecklenburg-Schwerin", class: "CensusOfDeutschland1919"},
		},
	},
	{
		name: "Danmark",
		entries: []entry{
			{date: "01 JUL 1787", class: "CensusOfDenmark1787"},
			{date: "01 FEB 1801", class: "CensusOfDenmark1801"},
			{date: "18 FEB 1834", class: "CensusOfDenmark1834"},
			{date: "01 FEB 1840", class: "CensusOfDenmark1840"},
			{date: "01 FEB 1845", class: "CensusOfDenmark1845"},
			{date: "01 FEB 1850", class: "CensusOfDenmark1850"},
			{date: "01 FEB 1855", class: "CensusOfDenmark1855"},
			{date: "01 FEB 1860", class: "CensusOfDenmark1860"},
			{date: "01 FEB 1870", class: "CensusOfDenmark1870"},
			{date: "01 FEB 1880", class: "CensusOfDenmark1880"},
			{date: "01 FEB 1885", place: "København", class: "CensusOfDenmark1885"},
			{date: "01 FEB 1890", class: "CensusOfDenmark1890"},
			{date: "01 FEB 1901", class: "CensusOfDenmark1901"},
			{date: "01 FEB 1906", class: "CensusOfDenmark1906"},
			{date: "01 FEB 1911", class: "CensusOfDenmark1911"},
			{date: "01 FEB 1916", class: "CensusOfDenmark1916"},
			{date: "01 FEB 1921", class: "CensusOfDenmark1921"},
			{date: "05 NOV 1925", class: "CensusOfDenmark1925"},
			{date: "05 NOV 1930", class: "CensusOfDenmark1930"},
			{date: "05 NOV 1940", class: "CensusOfDenmark1940"},
		},
	},
}
