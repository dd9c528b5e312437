// Package gmodpath implements the path engine: short/full parsing of
// GmodPaths, individualisable sets, and the derived string views.
package gmodpath

import (
	"strings"

	"github.com/dnv-opensource/vista-sdk-sub000/gmod"
	"github.com/dnv-opensource/vista-sdk-sub000/location"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

// GmodPath is an ordered list of parent nodes ending at a target node, with
// optional per-position Location carried on each node. Immutable
// once constructed.
type GmodPath struct {
	vis     visversion.VisVersion
	parents []*gmod.Node
	node    *gmod.Node
}

// New validates (parents, node) per IsValid and wraps them as a GmodPath.
func New(vis visversion.VisVersion, parents []*gmod.Node, node *gmod.Node) (*GmodPath, error) {
	if !IsValid(parents, node) {
		return nil, &ValidationError{Parents: parents, Node: node}
	}
	return &GmodPath{vis: vis, parents: append([]*gmod.Node{}, parents...), node: node}, nil
}

// ValidationError reports a structurally invalid (parents, node) pair.
type ValidationError struct {
	Parents []*gmod.Node
	Node    *gmod.Node
}

func (e *ValidationError) Error() string {
	codes := make([]string, len(e.Parents))
	for i, p := range e.Parents {
		codes[i] = p.Code
	}
	return "gmodpath: invalid path " + strings.Join(codes, "/") + "/" + e.Node.Code
}

// IsValid checks a path's structural invariants: parents empty only
// for the root node; parents[0] is root; consecutive parents form a child
// chain; no repeated code; the last parent is a parent of node.
func IsValid(parents []*gmod.Node, node *gmod.Node) bool {
	if len(parents) == 0 {
		return node.IsRoot()
	}
	if !parents[0].IsRoot() {
		return false
	}
	seen := make(map[string]bool, len(parents))
	for i, p := range parents {
		if seen[p.Code] {
			return false
		}
		seen[p.Code] = true
		if i+1 < len(parents) && !p.IsChild(parents[i+1]) {
			return false
		}
	}
	return parents[len(parents)-1].IsChild(node)
}

// VisVersion returns the release this path was parsed/built for.
func (p *GmodPath) VisVersion() visversion.VisVersion { return p.vis }

// Parents returns the ancestor chain, root-first, excluding the target.
func (p *GmodPath) Parents() []*gmod.Node { return p.parents }

// Node returns the target node.
func (p *GmodPath) Node() *gmod.Node { return p.node }

// fullNodes returns parents+target as a single sequence.
func (p *GmodPath) fullNodes() []*gmod.Node {
	out := make([]*gmod.Node, len(p.parents)+1)
	copy(out, p.parents)
	out[len(p.parents)] = p.node
	return out
}

// shortNodes returns the nodes that participate in the short form: the
// leaves among the parents, plus the target ("short path").
func (p *GmodPath) shortNodes() []*gmod.Node {
	var out []*gmod.Node
	for _, n := range p.parents {
		if n.IsLeaf() {
			out = append(out, n)
		}
	}
	return append(out, p.node)
}

func codeWithLocation(n *gmod.Node) string {
	if n.Location.IsEmpty() {
		return n.Code
	}
	return n.Code + "-" + n.Location.String()
}

// String renders the short path form, e.g. "411.1/C101.31-2".
func (p *GmodPath) String() string {
	nodes := p.shortNodes()
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = codeWithLocation(n)
	}
	return strings.Join(parts, "/")
}

// ToFullPathString renders every node in the path, e.g.
// "VE/400a/410/411/411i/411.1".
func (p *GmodPath) ToFullPathString() string {
	nodes := p.fullNodes()
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = codeWithLocation(n)
	}
	return strings.Join(parts, "/")
}

// Equal compares two paths on their short form.
func (p *GmodPath) Equal(other *GmodPath) bool {
	return p.String() == other.String()
}

// FullPathEqual compares two paths on every node, not just leaves and the
// target (a supplemented convenience mirroring the Python SDK's
// GmodPath.__eq__ used in round-trip tests).
func (p *GmodPath) FullPathEqual(other *GmodPath) bool {
	return p.ToFullPathString() == other.ToFullPathString()
}

// individualizableAt reports whether a location can legally be assigned at
// position i of the full path (parents..target).
func (p *GmodPath) individualizableAt(i int, inSet bool) bool {
	nodes := p.fullNodes()
	isTarget := i == len(nodes)-1
	return nodes[i].IsIndividualizable(isTarget, inSet)
}

// WithLocation returns a copy of p with loc assigned to the node at
// sequence position i (0-indexed over parents..target), failing if that
// position cannot carry a location in isolation.
func (p *GmodPath) WithLocation(i int, loc location.Location) (*GmodPath, error) {
	if i < 0 || i > len(p.parents) {
		return nil, &ValidationError{Parents: p.parents, Node: p.node}
	}
	if !p.individualizableAt(i, false) {
		return nil, &ValidationError{Parents: p.parents, Node: p.node}
	}
	cp := &GmodPath{vis: p.vis, parents: append([]*gmod.Node{}, p.parents...), node: p.node}
	if i == len(p.parents) {
		cp.node = p.node.WithLocation(loc)
	} else {
		cp.parents[i] = cp.parents[i].WithLocation(loc)
	}
	return cp, nil
}
