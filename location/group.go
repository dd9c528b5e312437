package location

// Group identifies one of the four non-numeric location alphabets.
// Membership is structural: side∈PCS, vertical∈UML,
// transverse∈IO, longitudinal∈FA. At most one letter from a given Group
// may appear in a location.
type Group int

const (
	groupNone Group = iota
	GroupSide
	GroupVertical
	GroupTransverse
	GroupLongitudinal
)

func (g Group) String() string {
	switch g {
	case GroupSide:
		return "side"
	case GroupVertical:
		return "vertical"
	case GroupTransverse:
		return "transverse"
	case GroupLongitudinal:
		return "longitudinal"
	default:
		return "none"
	}
}

// alphabet is the closed, structural mapping from recognized letter to
// group: side∈{P,C,S}, vertical∈{U,M,L}, transverse∈{I,O},
// longitudinal∈{F,A}. This is the grammar's alphabet, independent of any
// loaded VIS resource — the per-VisVersion Locations collaborator (see
// locations.go) additionally restricts which of these are "recognised" for
// a given release and attaches display names.
var alphabet = map[byte]Group{
	'P': GroupSide,
	'C': GroupSide,
	'S': GroupSide,
	'U': GroupVertical,
	'M': GroupVertical,
	'L': GroupVertical,
	'I': GroupTransverse,
	'O': GroupTransverse,
	'F': GroupLongitudinal,
	'A': GroupLongitudinal,
}

func groupOf(ch byte) (Group, bool) {
	g, ok := alphabet[ch]
	return g, ok
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
