package headers

var (
	OpenValues   = newValues
	OpenToValues = newToValues
)

// Leftover exposes the unconsumed count for tests.
func (vs *Values) Leftover() int { return vs.leftover() }
