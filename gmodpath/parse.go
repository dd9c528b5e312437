package gmodpath

import (
	"fmt"
	"strings"

	"github.com/dnv-opensource/vista-sdk-sub000/gmod"
	"github.com/dnv-opensource/vista-sdk-sub000/location"
)

func parseLocationLiteral(s string) location.Location {
	return location.Parse(s)
}

// segment is one "code" or "code-location" slash-delimited piece of a
// short or full path string.
type segment struct {
	code string
	loc  location.Location
}

func splitSegments(s string) []string {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func parseSegment(raw string, locs *location.Locations) (segment, error) {
	if raw == "" {
		return segment{}, fmt.Errorf("gmodpath: empty path segment")
	}
	code, locPart, hasLoc := strings.Cut(raw, "-")
	if code == "" {
		return segment{}, fmt.Errorf("gmodpath: empty code in segment %q", raw)
	}
	seg := segment{code: code}
	if !hasLoc {
		return seg, nil
	}
	loc, errs, ok := locs.Parse(locs.VisVersion(), locPart)
	if !ok {
		return segment{}, fmt.Errorf("gmodpath: invalid location in segment %q: %v", raw, errs)
	}
	seg.loc = loc
	return seg, nil
}

// Parse implements the short-form parser: normalise,
// split on "/", resolve each segment against g, seed a traversal from the
// first segment's node, and look for the remaining segments among its
// descendants in order. On a full match, the ancestor chain is
// reconstructed back to root and individualisable-set locations are
// reapplied across the whole path.
func Parse(s string, g *gmod.Gmod, locs *location.Locations) (*GmodPath, error) {
	raw := splitSegments(s)
	if len(raw) == 0 {
		return nil, fmt.Errorf("gmodpath: empty path")
	}

	segs := make([]segment, len(raw))
	for i, r := range raw {
		seg, err := parseSegment(r, locs)
		if err != nil {
			return nil, err
		}
		segs[i] = seg
	}

	firstNode, ok := g.Lookup(segs[0].code)
	if !ok {
		return nil, fmt.Errorf("gmodpath: unknown code %q", segs[0].code)
	}

	target, ok := g.Lookup(segs[len(segs)-1].code)
	if !ok {
		return nil, fmt.Errorf("gmodpath: unknown code %q", segs[len(segs)-1].code)
	}

	queue := segs
	located := map[string]location.Location{segs[0].code: segs[0].loc}
	for _, sg := range segs[1:] {
		located[sg.code] = sg.loc
	}

	var matched *gmod.Node
	gmod.Traverse[int](firstNode, 0, func(parents []*gmod.Node, node *gmod.Node, qi int) (gmod.Result, int) {
		if node.IsLeaf() && node.Code != expectedCode(queue, qi) {
			return gmod.SkipSubtree, qi
		}
		if qi < len(queue) && node.Code == queue[qi].code {
			qi++
		}
		if qi == len(queue) && node.Code == target.Code {
			matched = node
			return gmod.Stop, qi
		}
		return gmod.Continue, qi
	}, nil)

	if matched == nil {
		return nil, fmt.Errorf("gmodpath: could not locate full path for %q", s)
	}

	chain, ok := gmod.AncestorChain(matched)
	if !ok {
		return nil, fmt.Errorf("gmodpath: ambiguous path reconstruction for %q (multiple parents)", s)
	}

	full := make([]*gmod.Node, len(chain))
	for i, n := range chain {
		if loc, ok := located[n.Code]; ok && !loc.IsEmpty() {
			full[i] = n.WithLocation(loc)
		} else {
			full[i] = n
		}
	}

	sets, err := LocationSetsVisitor(full)
	if err != nil {
		return nil, err
	}
	propagateSetLocations(full, sets)

	return New(locs.VisVersion(), full[:len(full)-1], full[len(full)-1])
}

func expectedCode(queue []segment, qi int) string {
	if qi >= len(queue) {
		return ""
	}
	return queue[qi].code
}

// ParseFullPath parses the full-form path string: a slash-separated list that must
// start at "VE", validated as a whole with IsValid, with individualisable
// sets then computed and their locations reapplied.
func ParseFullPath(s string, g *gmod.Gmod, locs *location.Locations) (*GmodPath, error) {
	raw := splitSegments(s)
	if len(raw) == 0 {
		return nil, fmt.Errorf("gmodpath: empty full path")
	}
	if raw[0] != "VE" {
		return nil, fmt.Errorf("gmodpath: full path must start at root \"VE\", got %q", raw[0])
	}

	full := make([]*gmod.Node, len(raw))
	for i, r := range raw {
		seg, err := parseSegment(r, locs)
		if err != nil {
			return nil, err
		}
		n, ok := g.Lookup(seg.code)
		if !ok {
			return nil, fmt.Errorf("gmodpath: unknown code %q", seg.code)
		}
		if !seg.loc.IsEmpty() {
			n = n.WithLocation(seg.loc)
		}
		full[i] = n
	}

	if !IsValid(full[:len(full)-1], full[len(full)-1]) {
		return nil, fmt.Errorf("gmodpath: %q is not a structurally valid full path", s)
	}

	sets, err := LocationSetsVisitor(full)
	if err != nil {
		return nil, err
	}
	propagateSetLocations(full, sets)

	return New(locs.VisVersion(), full[:len(full)-1], full[len(full)-1])
}
