package surname

// defaultTradition uses surnames but derives nothing from relatives.
type defaultTradition struct{}

func (defaultTradition) HasMarriedNames() bool {
	return false
}

func (defaultTradition) HasSurnames() bool {
	return true
}

func (defaultTradition) NewChildNames(_, _ string, _ Sex) Names {
	return empty()
}

func (defaultTradition) NewParentNames(_ string, _ Sex) Names {
	return empty()
}

func (defaultTradition) NewSpouseNames(_ string, _ Sex) Names {
	return empty()
}
