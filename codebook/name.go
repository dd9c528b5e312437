package codebook

import "fmt"

// Name is the closed set of codebook identities.
type Name int

const (
	Position Name = iota
	Calculation
	Quantity
	State
	Content
	Command
	Type
	FunctionalServices
	MaintenanceCategory
	ActivityType
	Detail
)

var allNames = []Name{
	Position, Calculation, Quantity, State, Content, Command, Type,
	FunctionalServices, MaintenanceCategory, ActivityType, Detail,
}

var nameStrings = map[Name]string{
	Position:             "Position",
	Calculation:          "Calculation",
	Quantity:             "Quantity",
	State:                "State",
	Content:              "Content",
	Command:              "Command",
	Type:                 "Type",
	FunctionalServices:   "FunctionalServices",
	MaintenanceCategory:  "MaintenanceCategory",
	ActivityType:         "ActivityType",
	Detail:               "Detail",
}

func (n Name) String() string {
	if s, ok := nameStrings[n]; ok {
		return s
	}
	return "Unknown"
}

// tagPrefix is the LocalId metadata tag prefix for the 8 codebooks the
// LocalId grammar uses: qty, cnt, calc, state, cmd, type, pos,
// detail. FunctionalServices, MaintenanceCategory and ActivityType are not
// part of the LocalId metadata slots; they exist as standalone codebooks
// (e.g. for ISO19848 data-channel metadata) and have no tag prefix.
var tagPrefix = map[Name]string{
	Quantity:    "qty",
	Content:     "cnt",
	Calculation: "calc",
	State:       "state",
	Command:     "cmd",
	Type:        "type",
	Position:    "pos",
	Detail:      "detail",
}

// TagPrefix returns the LocalId metadata prefix for n, and false if n has
// no slot in the LocalId grammar.
func (n Name) TagPrefix() (string, bool) {
	p, ok := tagPrefix[n]
	return p, ok
}

// ParseName resolves a codebook name by its display string.
func ParseName(s string) (Name, error) {
	for n, str := range nameStrings {
		if str == s {
			return n, nil
		}
	}
	return 0, fmt.Errorf("codebook: unrecognized codebook name %q", s)
}

// Names returns every codebook name.
func Names() []Name {
	out := make([]Name, len(allNames))
	copy(out, allNames)
	return out
}
