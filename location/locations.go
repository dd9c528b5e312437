package location

import (
	"fmt"

	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

// Entry is one recognized location code as loaded from the "locations"
// resource DTO: a code, its display name, and an optional definition.
type Entry struct {
	Code       byte
	Name       string
	Definition string
}

// Locations is the per-VisVersion collaborator other components (GMOD,
// the path engine) bind to. It confirms that a location's letters are
// "recognised location codes" for that specific release and carries
// display metadata for them; the structural grammar itself (group
// membership, digit-before-letter, sort order) lives in location.go and is
// version-independent.
type Locations struct {
	version visversion.VisVersion
	entries map[byte]Entry
}

// NewLocations builds a Locations collaborator from loaded entries.
// Entries are stored as given; nothing here or in the internal/dto schema
// checks that a code belongs to the structural alphabet. Such an entry can
// never match, since TryParse rejects letters outside the alphabet first.
func NewLocations(v visversion.VisVersion, entries []Entry) *Locations {
	m := make(map[byte]Entry, len(entries))
	for _, e := range entries {
		m[e.Code] = e
	}
	return &Locations{version: v, entries: m}
}

// VisVersion returns the release this collaborator was built for.
func (l *Locations) VisVersion() visversion.VisVersion {
	return l.version
}

// Entry returns the display metadata for a recognized code.
func (l *Locations) Entry(code byte) (Entry, bool) {
	e, ok := l.entries[code]
	return e, ok
}

// Parse parses s, requiring the caller to be operating against the same
// VisVersion this collaborator was loaded for. Used by the path engine,
// which fails a parse outright when a node's location suffix is presented
// against a different VIS release's Locations collaborator.
func (l *Locations) Parse(v visversion.VisVersion, s string) (Location, []ParseError, bool) {
	if v != l.version {
		return Location{}, []ParseError{newErr(Invalid,
			fmt.Sprintf("locations collaborator is bound to VIS %s, got %s", l.version, v))}, false
	}
	loc, errs, ok := TryParse(s)
	if !ok {
		return loc, errs, false
	}
	if !l.allRecognized(loc) {
		return Location{}, []ParseError{newErr(InvalidCode, "location %q contains a code not recognized for VIS %s", s, v)}, false
	}
	return loc, nil, true
}

func (l *Locations) allRecognized(loc Location) bool {
	for i := 0; i < len(loc.value); i++ {
		ch := loc.value[i]
		if isDigit(ch) {
			continue
		}
		if _, ok := l.entries[ch]; !ok {
			return false
		}
	}
	return true
}
