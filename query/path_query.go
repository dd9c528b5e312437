// Package query implements the filter layer that matches GmodPaths and
// LocalIds against structural criteria.
package query

import (
	"sync"

	"github.com/dnv-opensource/vista-sdk-sub000/gmodpath"
	"github.com/dnv-opensource/vista-sdk-sub000/internal/canon"
	"github.com/dnv-opensource/vista-sdk-sub000/versioning"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

// LocationFilter controls how a required code's location is matched.
type LocationFilter struct {
	// MatchAny accepts any occurrence of the code regardless of location.
	MatchAny bool
	// RequireNone demands a matching occurrence carry no location.
	RequireNone bool
	// Allowed, when neither of the above is set, is the acceptable set of
	// location strings.
	Allowed map[string]bool
}

// GmodPathQuery matches a candidate path against a bag of required codes,
// each with its own LocationFilter.
type GmodPathQuery struct {
	required      map[string]LocationFilter
	anyNodeBefore string
	anyNodeAfter  string
}

// FromNodes builds a "Nodes query": a bag of required codes with explicit
// filters, independent of any concrete path.
func FromNodes(required map[string]LocationFilter) *GmodPathQuery {
	cp := make(map[string]LocationFilter, len(required))
	for k, v := range required {
		cp[k] = v
	}
	return &GmodPathQuery{required: cp}
}

// FromPath builds a "Path query" whose required codes and
// per-code accepted locations are derived from an existing concrete path —
// a supplemented convenience mirroring the Python SDK's
// GmodPathQueryBuilder.from_path, useful for "find anything shaped like
// this one" searches without hand-assembling a Nodes query.
func FromPath(p *gmodpath.GmodPath) *GmodPathQuery {
	required := make(map[string]LocationFilter)
	add := func(code string, loc string) {
		f, ok := required[code]
		if !ok {
			f = LocationFilter{Allowed: make(map[string]bool)}
		}
		if loc == "" {
			f.RequireNone = true
		} else {
			f.Allowed[loc] = true
		}
		required[code] = f
	}
	for _, n := range p.Parents() {
		add(n.Code, n.Location.String())
	}
	add(p.Node().Code, p.Node().Location.String())
	return &GmodPathQuery{required: required}
}

// WithAnyNodeBefore returns a copy of q that records pivot as the point
// before which any node is accepted. Match does not read the recorded
// pivot: the copy matches exactly the candidates q matches.
func (q *GmodPathQuery) WithAnyNodeBefore(pivot string) *GmodPathQuery {
	cp := *q
	cp.anyNodeBefore = pivot
	return &cp
}

// WithAnyNodeAfter returns a copy of q that records pivot as the point
// after which any node is accepted. Match does not read the recorded
// pivot: the copy matches exactly the candidates q matches.
func (q *GmodPathQuery) WithAnyNodeAfter(pivot string) *GmodPathQuery {
	cp := *q
	cp.anyNodeAfter = pivot
	return &cp
}

// pathShape is the CBOR-encodable projection of a path used to key the
// lift cache: two paths with the same version and the same code/location
// sequence always lift to the same result, regardless of node identity.
type pathShape struct {
	Version string
	Codes   []string
	Locs    []string
}

func shapeOf(p *gmodpath.GmodPath) pathShape {
	parents := p.Parents()
	s := pathShape{
		Version: p.VisVersion().String(),
		Codes:   make([]string, len(parents)+1),
		Locs:    make([]string, len(parents)+1),
	}
	for i, n := range parents {
		s.Codes[i] = n.Code
		s.Locs[i] = n.Location.String()
	}
	s.Codes[len(parents)] = p.Node().Code
	s.Locs[len(parents)] = p.Node().Location.String()
	return s
}

// liftCache memoizes the latest-VIS lift performed by Match, keyed by a
// canonical digest of the candidate's version/code/location shape: scans
// over a dataset of LocalIds routinely re-match the same handful of
// distinct path shapes many times over.
var liftCache sync.Map // map[canon.Digest]*gmodpath.GmodPath

func liftToLatest(candidate *gmodpath.GmodPath, engine *versioning.Engine) *gmodpath.GmodPath {
	digest, err := canon.Of(shapeOf(candidate))
	if err != nil {
		lifted, ok, cerr := engine.ConvertPath(candidate.VisVersion(), candidate, visversion.Latest())
		if cerr == nil && ok && !locationsLost(candidate, lifted) {
			return lifted
		}
		return candidate
	}

	if cached, ok := liftCache.Load(digest); ok {
		return cached.(*gmodpath.GmodPath)
	}

	effective := candidate
	if lifted, ok, cerr := engine.ConvertPath(candidate.VisVersion(), candidate, visversion.Latest()); cerr == nil && ok {
		if !locationsLost(candidate, lifted) {
			effective = lifted
		}
	}
	liftCache.Store(digest, effective)
	return effective
}

// Match reports whether candidate satisfies every required code's filter.
// Before matching, candidate is lifted to the latest known VIS by a
// best-effort version conversion; if that conversion drops or mutates any
// location-bearing node, the original candidate is used instead. This is
// a correctness conservatism, not an optimisation.
func (q *GmodPathQuery) Match(candidate *gmodpath.GmodPath, engine *versioning.Engine) bool {
	effective := candidate
	if engine != nil {
		effective = liftToLatest(candidate, engine)
	}

	occurrences := make(map[string][]string) // code -> location strings ("" for none)
	for _, n := range effective.Parents() {
		occurrences[n.Code] = append(occurrences[n.Code], n.Location.String())
	}
	target := effective.Node()
	occurrences[target.Code] = append(occurrences[target.Code], target.Location.String())

	for code, filter := range q.required {
		locs, present := occurrences[code]
		if !present {
			return false
		}
		if !matchesFilter(locs, filter) {
			return false
		}
	}
	return true
}

func matchesFilter(locs []string, f LocationFilter) bool {
	for _, loc := range locs {
		switch {
		case f.MatchAny:
			return true
		case f.RequireNone:
			if loc == "" {
				return true
			}
		default:
			if loc != "" && f.Allowed[loc] {
				return true
			}
		}
	}
	return false
}

// locationsLost reports whether lifted dropped or changed any
// location-bearing node present in original.
func locationsLost(original, lifted *gmodpath.GmodPath) bool {
	before := make(map[string]string)
	for _, n := range original.Parents() {
		if !n.Location.IsEmpty() {
			before[n.Code] = n.Location.String()
		}
	}
	if !original.Node().Location.IsEmpty() {
		before[original.Node().Code] = original.Node().Location.String()
	}
	if len(before) == 0 {
		return false
	}

	after := make(map[string]string)
	for _, n := range lifted.Parents() {
		if !n.Location.IsEmpty() {
			after[n.Code] = n.Location.String()
		}
	}
	if !lifted.Node().Location.IsEmpty() {
		after[lifted.Node().Code] = lifted.Node().Location.String()
	}

	for code, loc := range before {
		if after[code] != loc {
			return true
		}
	}
	return false
}
