package codebook

import "github.com/dnv-opensource/vista-sdk-sub000/internal/isostring"

// defaultGroup is the placeholder group name for standard values the DTO
// did not assign to a named group.
const defaultGroup = "DEFAULT_GROUP"

// Codebook holds one codebook's standard values grouped by name, with a
// value -> group reverse index built at load time. The
// "<number>" pseudo-group is dropped: Position's numeric acceptance is
// handled structurally, not via a group entry.
type Codebook struct {
	name      Name
	groupOf   map[string]string
	groups    map[string]bool
	values    map[string]bool
}

// New builds a Codebook from the loaded {group: [value,...]} map.
func New(name Name, valuesByGroup map[string][]string) *Codebook {
	cb := &Codebook{
		name:    name,
		groupOf: make(map[string]string),
		groups:  make(map[string]bool),
		values:  make(map[string]bool),
	}
	for group, values := range valuesByGroup {
		if group == "<number>" {
			continue
		}
		cb.groups[group] = true
		for _, v := range values {
			cb.values[v] = true
			cb.groupOf[v] = group
		}
	}
	return cb
}

// Name returns the codebook's identity.
func (cb *Codebook) Name() Name { return cb.name }

// HasStandardValue reports whether v is one of this codebook's values.
// Position additionally accepts any pure-digit string as standard.
func (cb *Codebook) HasStandardValue(v string) bool {
	if cb.values[v] {
		return true
	}
	if cb.name == Position && isDigits(v) {
		return true
	}
	return false
}

// HasGroup reports whether g is a named group in this codebook.
func (cb *Codebook) HasGroup(g string) bool {
	return cb.groups[g]
}

// groupOfValue returns the group a standard value belongs to, or the
// DEFAULT_GROUP placeholder if it isn't assigned one.
func (cb *Codebook) groupOfValue(v string) string {
	if g, ok := cb.groupOf[v]; ok {
		return g
	}
	return defaultGroup
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// TryCreateTag validates value against this codebook's rules (the position
// grammar for Position, standard-value membership otherwise) and returns
// the resulting MetadataTag.
func (cb *Codebook) TryCreateTag(value string) (Tag, error) {
	if !isostring.IsValid(value) {
		return Tag{}, newValidationError(cb.name, value, "empty or not a valid ISO-string")
	}

	switch cb.name {
	case Position:
		validity := ValidatePosition(cb, value)
		switch validity {
		case PositionValid:
			return Tag{Name: cb.name, Value: value, IsCustom: false}, nil
		case PositionCustom:
			return Tag{Name: cb.name, Value: value, IsCustom: true}, nil
		default:
			return Tag{}, newValidationError(cb.name, value, "failed position grammar: %s", validity)
		}
	case Detail:
		return Tag{Name: cb.name, Value: value, IsCustom: true}, nil
	default:
		isCustom := !cb.HasStandardValue(value)
		return Tag{Name: cb.name, Value: value, IsCustom: isCustom}, nil
	}
}
