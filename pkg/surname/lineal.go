package surname

// patrilineal: children take their father's surname.
type patrilineal struct {
	defaultTradition
}

func (patrilineal) NewChildNames(fatherName, _ string, _ Sex) Names {
	return inheritSurname(fatherName)
}

func (patrilineal) NewParentNames(childName string, parentSex Sex) Names {
	if parentSex == Male {
		return inheritSurname(childName)
	}
	return empty()
}

// matrilineal: children take their mother's surname.
type matrilineal struct {
	defaultTradition
}

func (matrilineal) NewChildNames(_, motherName string, _ Sex) Names {
	return inheritSurname(motherName)
}

func (matrilineal) NewParentNames(childName string, parentSex Sex) Names {
	if parentSex == Female {
		return inheritSurname(childName)
	}
	return empty()
}

// inheritSurname copies the surname (with its prefix) of name.
func inheritSurname(name string) Names {
	m, ok := match(reSpfxSurn, name)
	if !ok {
		return empty()
	}
	return filtered(Names{
		TagName: m["NAME"],
		TagSpfx: m["SPFX"],
		TagSurn: m["SURN"],
	})
}
