package surname

import "strings"

// paternal: children take their father's surname, wives take their
// husband's surname as a married name.
type paternal struct {
	patrilineal
}

func (paternal) HasMarriedNames() bool {
	return true
}

func (paternal) NewParentNames(childName string, parentSex Sex) Names {
	m, ok := match(reSpfxSurn, childName)
	if !ok {
		return empty()
	}
	switch parentSex {
	case Male:
		return filtered(Names{
			TagName: m["NAME"],
			TagSpfx: m["SPFX"],
			TagSurn: m["SURN"],
		})
	case Female:
		return Names{
			TagName:  "//",
			TagMarnm: "/" + strings.TrimSpace(m["SPFX"]+" "+m["SURN"]) + "/",
		}
	}
	return empty()
}

func (paternal) NewSpouseNames(spouseName string, spouseSex Sex) Names {
	if spouseSex != Female {
		return empty()
	}
	m, ok := match(reSurn, spouseName)
	if !ok {
		return empty()
	}
	return Names{
		TagName:  "//",
		TagMarnm: m["NAME"],
	}
}
