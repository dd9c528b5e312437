package gmodpath

import "github.com/dnv-opensource/vista-sdk-sub000/gmod"

// IndividualisableSet is a maximal contiguous range of a full path's nodes
// that may carry a shared Location.
type IndividualisableSet struct {
	Start, End int // inclusive indices into the full parents+target sequence
	Nodes      []*gmod.Node
}

func isPotentialParent(n *gmod.Node) bool {
	return n.Type == "SELECTION" || n.Type == "GROUP" || n.IsLeaf()
}

// LocationSetsVisitor walks a full node sequence (parents..target) once and
// returns the individualisable sets it contains, in order.
// Nodes are assigned to at most one set; only ranges containing a leaf or
// the target are reported.
func LocationSetsVisitor(nodes []*gmod.Node) ([]IndividualisableSet, error) {
	target := len(nodes) - 1
	var sets []IndividualisableSet

	flush := func(start, end int) error {
		if start >= end {
			return nil
		}
		rng := nodes[start:end]
		containsAnchor := false
		for i := start; i < end; i++ {
			if nodes[i].IsLeaf() || i == target {
				containsAnchor = true
				break
			}
		}
		if !containsAnchor {
			return nil
		}

		if len(rng) == 1 {
			n := rng[0]
			isTarget := start == target
			if n.IsFunctionComposition() && !isTarget {
				return nil
			}
			if !n.IsIndividualizable(isTarget, false) {
				return nil
			}
			if err := checkConsistentLocation(rng); err != nil {
				return err
			}
			sets = append(sets, IndividualisableSet{Start: start, End: end - 1, Nodes: rng})
			return nil
		}

		var kept []*gmod.Node
		keptStart, keptEnd := -1, -1
		for i := start; i < end; i++ {
			n := nodes[i]
			isTarget := i == target
			if !n.IsIndividualizable(isTarget, true) {
				if keptStart != -1 && i != end-1 {
					return &SetError{Msg: "gap in the middle of an individualisable set"}
				}
				continue
			}
			if keptStart == -1 {
				keptStart = i
			}
			keptEnd = i
			kept = append(kept, n)
		}
		if len(kept) == 0 {
			return nil
		}
		if err := checkConsistentLocation(kept); err != nil {
			return err
		}
		sets = append(sets, IndividualisableSet{Start: keptStart, End: keptEnd, Nodes: kept})
		return nil
	}

	start := 0
	for i := 0; i <= target; i++ {
		n := nodes[i]
		if i == target {
			if err := flush(start, i+1); err != nil {
				return nil, err
			}
			break
		}
		if isPotentialParent(n) && i > start {
			if err := flush(start, i); err != nil {
				return nil, err
			}
			start = i
		}
	}
	return sets, nil
}

// SetError reports a violated individualisable-set constraint.
type SetError struct{ Msg string }

func (e *SetError) Error() string { return "gmodpath: " + e.Msg }

func checkConsistentLocation(nodes []*gmod.Node) error {
	var loc string
	seen := false
	for _, n := range nodes {
		if n.Location.IsEmpty() {
			continue
		}
		if !seen {
			loc = n.Location.String()
			seen = true
			continue
		}
		if n.Location.String() != loc {
			return &SetError{Msg: "two nodes in the same individualisable set carry different locations"}
		}
	}
	return nil
}

// propagateSetLocations assigns every set's shared (first non-empty)
// location to all nodes in that set, mutating copies in place.
func propagateSetLocations(nodes []*gmod.Node, sets []IndividualisableSet) {
	for _, set := range sets {
		var loc string
		for _, n := range set.Nodes {
			if !n.Location.IsEmpty() {
				loc = n.Location.String()
				break
			}
		}
		if loc == "" {
			continue
		}
		parsed := parseLocationLiteral(loc)
		for i := set.Start; i <= set.End; i++ {
			nodes[i] = nodes[i].WithLocation(parsed)
		}
	}
}
