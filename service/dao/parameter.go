package dao

// Parameter narrows List results by a named field
type Parameter struct {
	Name  string
	Value interface{}
}

// NewParameter creates a parameter holding a string, or a []string for several values
func NewParameter(name string, values ...string) *Parameter {
	if len(values) == 1 {
		return &Parameter{Name: name, Value: values[0]}
	}
	return &Parameter{Name: name, Value: values}
}
