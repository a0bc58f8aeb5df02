package types

// Command is a tokenized input line
type Command struct {
	Verb     string
	Argument string
	Raw      string
}

// IsEmpty returns true for blank input
func (c *Command) IsEmpty() bool {
	return c == nil || c.Verb == ""
}
