package surname

var (
	lithuanianDaughter = []suffixRule{
		{"ius", "iūtė"},
		{"as", "aitė"},
		{"is", "ytė"},
		{"ys", "ytė"},
		{"us", "utė"},
		{"a", "aitė"},
	}
	lithuanianWife = []suffixRule{
		{"as", "ienė"},
		{"is", "ienė"},
		{"ys", "ienė"},
		{"us", "ienė"},
	}
	lithuanianMale = []suffixRule{
		{"aitė", "as"},
		{"iūtė", "ius"},
		{"ytė", "is"},
		{"utė", "us"},
	}
)

// lithuanian: paternal tradition where surnames of women show whether
// they are a daughter (Kavaliauskaitė) or a wife (Kavaliauskienė).
type lithuanian struct {
	paternal
}

func (lithuanian) NewChildNames(fatherName, _ string, childSex Sex) Names {
	m, ok := match(reSurn, fatherName)
	if !ok {
		return empty()
	}
	if childSex == Female {
		return filtered(Names{
			TagName: inflectName(m["NAME"], lithuanianDaughter),
			TagSurn: m["SURN"],
		})
	}
	return filtered(Names{
		TagName: m["NAME"],
		TagSurn: m["SURN"],
	})
}

func (lithuanian) NewParentNames(childName string, parentSex Sex) Names {
	if parentSex != Male {
		return empty()
	}
	m, ok := match(reSurn, childName)
	if !ok {
		return empty()
	}
	return filtered(Names{
		TagName: inflectName(m["NAME"], lithuanianMale),
		TagSurn: inflect(m["SURN"], lithuanianMale),
	})
}

func (lithuanian) NewSpouseNames(spouseName string, spouseSex Sex) Names {
	if spouseSex != Female {
		return empty()
	}
	m, ok := match(reSurn, spouseName)
	if !ok {
		return empty()
	}
	return Names{
		TagName:  "//",
		TagMarnm: inflectName(m["NAME"], lithuanianWife),
	}
}
