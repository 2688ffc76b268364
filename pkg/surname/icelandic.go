package surname

// icelandic: no surnames; children take a patronym built from the
// father's given name.
type icelandic struct{}

func (icelandic) HasMarriedNames() bool {
	return false
}

func (icelandic) HasSurnames() bool {
	return false
}

func (icelandic) NewChildNames(fatherName, _ string, childSex Sex) Names {
	m, ok := match(reGivn, fatherName)
	if !ok {
		return Names{}
	}
	switch childSex {
	case Male:
		return Names{TagName: m["GIVN"] + "sson"}
	case Female:
		return Names{TagName: m["GIVN"] + "sdottir"}
	}
	return Names{}
}

func (icelandic) NewParentNames(childName string, parentSex Sex) Names {
	if parentSex != Male {
		return Names{}
	}
	m, ok := match(rePatronym, childName)
	if !ok {
		return Names{}
	}
	return Names{
		TagName: m["GIVN"],
		TagGivn: m["GIVN"],
	}
}

func (icelandic) NewSpouseNames(_ string, _ Sex) Names {
	return Names{}
}
