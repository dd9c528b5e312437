package gmodpath

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/dnv-opensource/vista-sdk-sub000/gmod"
)

var isoCharset = runes.Predicate(func(r rune) bool {
	return (r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) || strings.ContainsRune("-._~ ", r)
})

// sanitizeVerbose replaces any character outside the allowed display set
// with a space, via an x/text rune transform.
func sanitizeVerbose(s string) string {
	out, _, err := transform.String(runes.Map(func(r rune) rune {
		if isoCharset(r) {
			return r
		}
		return ' '
	}), s)
	if err != nil {
		return s
	}
	return collapseSpaces(out)
}

func collapseSpaces(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

func displayName(full []*gmod.Node, i int) string {
	n := full[i]
	for j := i - 1; j >= 0; j-- {
		if name, ok := full[j].NormalAssignmentNames[n.Code]; ok {
			return name
		}
	}
	if n.CommonName != "" {
		return n.CommonName
	}
	return n.Name
}

// ToVerboseString renders the common (or normal-assignment-overridden)
// names of every node in the full path, joined by sep with whitespace
// collapsed and non-ISO characters replaced, terminated by end.
func (p *GmodPath) ToVerboseString(sep, end string) string {
	full := p.fullNodes()
	parts := make([]string, len(full))
	for i := range full {
		parts[i] = sanitizeVerbose(displayName(full, i))
	}
	joined := strings.Join(parts, sep)
	return strings.ReplaceAll(joined, " ", sep) + end
}
