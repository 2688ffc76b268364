package surname

import "strings"

// spanish: a child takes the first surname of each parent, father's
// first.
type spanish struct {
	defaultTradition
}

func (spanish) NewChildNames(fatherName, motherName string, _ Sex) Names {
	father := surnameAt(fatherName, "SURN1")
	mother := surnameAt(motherName, "SURN1")
	return Names{
		TagName: "/" + father + "/ /" + mother + "/",
		TagSurn: strings.Trim(father+","+mother, ","),
	}
}

func (spanish) NewParentNames(childName string, parentSex Sex) Names {
	m, ok := match(reSurns, childName)
	if !ok {
		return emptyDouble()
	}
	switch parentSex {
	case Male:
		return Names{TagName: "/" + m["SURN1"] + "/ //", TagSurn: m["SURN1"]}
	case Female:
		return Names{TagName: "/" + m["SURN2"] + "/ //", TagSurn: m["SURN2"]}
	}
	return emptyDouble()
}

func (spanish) NewSpouseNames(_ string, _ Sex) Names {
	return emptyDouble()
}

// portuguese: a child takes the last surname of each parent, mother's
// first.
type portuguese struct {
	defaultTradition
}

func (portuguese) NewChildNames(fatherName, motherName string, _ Sex) Names {
	father := surnameAt(fatherName, "SURN2")
	mother := surnameAt(motherName, "SURN2")
	return Names{
		TagName: "/" + mother + "/ /" + father + "/",
		TagSurn: strings.Trim(mother+","+father, ","),
	}
}

func (portuguese) NewParentNames(childName string, parentSex Sex) Names {
	m, ok := match(reSurns, childName)
	if !ok {
		return emptyDouble()
	}
	switch parentSex {
	case Male:
		return Names{TagName: "// /" + m["SURN2"] + "/", TagSurn: m["SURN2"]}
	case Female:
		return Names{TagName: "// /" + m["SURN1"] + "/", TagSurn: m["SURN1"]}
	}
	return emptyDouble()
}

func (portuguese) NewSpouseNames(_ string, _ Sex) Names {
	return emptyDouble()
}

func surnameAt(name, group string) string {
	m, ok := match(reSurns, name)
	if !ok {
		return ""
	}
	return m[group]
}

func emptyDouble() Names {
	return Names{TagName: "// //"}
}
