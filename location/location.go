package location

import "strings"

// Location is a canonical, sorted suffix string over the location alphabet.
// Equality is textual on the canonical form.
type Location struct {
	value string
}

// String returns the canonical location string, e.g. "2FIU".
func (l Location) String() string {
	return l.value
}

// IsEmpty reports whether l is the zero Location.
func (l Location) IsEmpty() bool {
	return l.value == ""
}

// Equal compares two Locations textually on their canonical form.
func (l Location) Equal(other Location) bool {
	return l.value == other.value
}

// Parse parses s and panics on failure. Callers that need to recover from
// malformed input should use TryParse.
func Parse(s string) Location {
	loc, _, ok := TryParse(s)
	if !ok {
		panic("location: Parse called with invalid location " + s)
	}
	return loc
}

// TryParse validates s against the location grammar and
// returns the parsed Location, any recorded errors, and whether parsing
// succeeded. The returned Location's canonical string is exactly the
// input — TryParse validates, it does not rewrite; only LocationBuilder
// produces sorted output from unordered parts.
func TryParse(s string) (Location, []ParseError, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Location{}, []ParseError{newErr(NullOrWhiteSpace, "location value is empty or whitespace")}, false
	}
	if trimmed != s {
		return Location{}, []ParseError{newErr(Invalid, "location value has leading or trailing whitespace")}, false
	}

	var errs []ParseError

	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	digits := s[:i]
	if digits == "0" || (len(digits) > 1 && digits[0] == '0') {
		// A number component must be a positive integer; "0" or leading
		// zeros are not codified as a location number (mirrors
		// LocationBuilder.WithNumber's "number <= 0" rejection).
		errs = append(errs, newErr(Invalid, "location number must be positive, got %q", digits))
	}

	letters := s[i:]
	seenGroup := make(map[Group]byte)
	var order []byte
	for j := 0; j < len(letters); j++ {
		ch := letters[j]
		if isDigit(ch) {
			errs = append(errs, newErr(InvalidOrder, "digit %q found after letters in %q; digits must precede all letters", string(ch), s))
			continue
		}
		g, ok := groupOf(ch)
		if !ok {
			errs = append(errs, newErr(InvalidCode, "unrecognized location code %q in %q", string(ch), s))
			continue
		}
		if prev, exists := seenGroup[g]; exists {
			errs = append(errs, newErr(Invalid, "multiple %s values (%q, %q) in %q", g, string(prev), string(ch), s))
			continue
		}
		seenGroup[g] = ch
		order = append(order, ch)
	}

	if len(errs) == 0 && !isSorted(order) {
		errs = append(errs, newErr(InvalidOrder, "location letters in %q are not in canonical (lexicographic) order", s))
	}

	if len(errs) > 0 {
		return Location{}, errs, false
	}
	return Location{value: s}, nil, true
}

func isSorted(letters []byte) bool {
	for i := 1; i < len(letters); i++ {
		if letters[i-1] >= letters[i] {
			return false
		}
	}
	return true
}
