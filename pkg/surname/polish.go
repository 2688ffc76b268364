package surname

var (
	polishFemale = []suffixRule{
		{"dzki", "dzka"},
		{"cki", "cka"},
		{"ski", "ska"},
		{"żki", "żka"},
	}
	polishMale = []suffixRule{
		{"dzka", "dzki"},
		{"cka", "cki"},
		{"ska", "ski"},
		{"żka", "żki"},
	}
)

// polish: paternal tradition where adjectival surnames agree with the
// individual's sex (Kowalski, Kowalska).
type polish struct {
	paternal
}

func (polish) NewChildNames(fatherName, _ string, childSex Sex) Names {
	m, ok := match(reSurn, fatherName)
	if !ok {
		return empty()
	}
	name := inflectName(m["NAME"], polishMale)
	if childSex == Female {
		name = inflectName(m["NAME"], polishFemale)
	}
	return filtered(Names{
		TagName: name,
		TagSurn: inflect(m["SURN"], polishMale),
	})
}

func (polish) NewParentNames(childName string, parentSex Sex) Names {
	if parentSex != Male {
		return empty()
	}
	m, ok := match(reSurn, childName)
	if !ok {
		return empty()
	}
	return filtered(Names{
		TagName: inflectName(m["NAME"], polishMale),
		TagSurn: inflect(m["SURN"], polishMale),
	})
}

func (polish) NewSpouseNames(spouseName string, spouseSex Sex) Names {
	if spouseSex != Female {
		return empty()
	}
	m, ok := match(reSurn, spouseName)
	if !ok {
		return empty()
	}
	return Names{
		TagName:  "//",
		TagMarnm: inflectName(m["NAME"], polishFemale),
	}
}
