package valueobject

// Flag is an immutable value object describing one detected risk signal.
type Flag struct {
	title       string
	description string
	severity    Severity
}

// NewFlag creates a Flag with the given title, description, and severity.
func NewFlag(title, description string, severity Severity) Flag {
	return Flag{
		title:       title,
		description: description,
		severity:    severity,
	}
}

// Title returns the short category label of the flag.
func (f Flag) Title() string {
	return f.title
}

// Description returns the human-readable explanation of the flag.
func (f Flag) Description() string {
	return f.description
}

// Severity returns the severity classification of the flag.
func (f Flag) Severity() Severity {
	return f.severity
}

// Equal checks equality with another Flag.
func (f Flag) Equal(other Flag) bool {
	return f.title == other.title &&
		f.description == other.description &&
		f.severity.Equal(other.severity)
}
