package codebook

import "fmt"

// Tag is a validated metadata tag value (MetadataTag): a
// codebook identity, its value, and whether it is custom. The prefix
// character used in LocalId text is '-' for standard tags and '~' for
// custom ones.
type Tag struct {
	Name     Name
	Value    string
	IsCustom bool
}

// Prefix returns the separator character this tag renders with.
func (t Tag) Prefix() byte {
	if t.IsCustom {
		return '~'
	}
	return '-'
}

func (t Tag) String() string {
	return fmt.Sprintf("%c%s", t.Prefix(), t.Value)
}

// ValidationError reports why TryCreateTag rejected a value.
type ValidationError struct {
	Codebook Name
	Value    string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("codebook %s: value %q rejected: %s", e.Codebook, e.Value, e.Reason)
}

func newValidationError(name Name, value, format string, args ...interface{}) error {
	return &ValidationError{Codebook: name, Value: value, Reason: fmt.Sprintf(format, args...)}
}
