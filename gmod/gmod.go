package gmod

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/dnv-opensource/vista-sdk-sub000/internal/chd"
	"github.com/dnv-opensource/vista-sdk-sub000/internal/dto"
	"github.com/dnv-opensource/vista-sdk-sub000/internal/invariant"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

// Gmod is the per-VisVersion graph: a perfect-hash code -> Node lookup plus
// a reference to the "VE" root. Built mutably, then frozen.
type Gmod struct {
	version visversion.VisVersion
	index   *chd.Dictionary[*Node]
	root    *Node
}

// Build constructs a Gmod from a validated DTO. Errors are
// recoverable loader-input problems (root missing, duplicate codes,
// dangling relation endpoints); once those pass, the remaining structural
// invariants (single root, full reachability, edge symmetry) are checked
// as internal invariants — any violation there means the DTO passed
// boundary validation but is not a well-formed GMOD, which this library
// treats as a bug rather than a recoverable condition.
func Build(v visversion.VisVersion, d *dto.GmodDto) (*Gmod, error) {
	nodes := make(map[string]*Node, len(d.Items))
	codes := make([]string, 0, len(d.Items))
	for _, item := range d.Items {
		if _, dup := nodes[item.Code]; dup {
			return nil, fmt.Errorf("gmod: duplicate code %q in VIS %s", item.Code, v)
		}
		n := &Node{
			Code:                  item.Code,
			Category:              item.Category,
			Type:                  item.Type,
			Name:                  item.Name,
			NormalAssignmentNames: item.NormalAssignmentNames,
		}
		if item.CommonName != nil {
			n.CommonName = *item.CommonName
		}
		if item.Definition != nil {
			n.Definition = *item.Definition
		}
		if item.CommonDefinition != nil {
			n.CommonDefinition = *item.CommonDefinition
		}
		if item.InstallSubstructure != nil {
			n.InstallSubstructure = *item.InstallSubstructure
		}
		nodes[item.Code] = n
		codes = append(codes, item.Code)
	}

	root, ok := nodes["VE"]
	if !ok {
		return nil, fmt.Errorf("gmod: VIS %s has no root node \"VE\"", v)
	}

	for _, rel := range d.Relations {
		parentCode, childCode := rel[0], rel[1]
		parent, ok := nodes[parentCode]
		if !ok {
			return nil, fmt.Errorf("gmod: relation references unknown parent code %q", parentCode)
		}
		child, ok := nodes[childCode]
		if !ok {
			return nil, fmt.Errorf("gmod: relation references unknown child code %q", childCode)
		}
		parent.children = append(parent.children, child)
		child.parents = append(child.parents, parent)
	}

	values := make([]*Node, len(codes))
	for i, c := range codes {
		values[i] = nodes[c]
	}
	index := chd.Build(codes, values)

	g := &Gmod{version: v, index: index, root: root}
	g.checkInvariants(nodes)
	return g, nil
}

func (g *Gmod) checkInvariants(nodes map[string]*Node) {
	roots := 0
	for _, n := range nodes {
		if n.IsRoot() {
			roots++
		}
	}
	invariant.Invariant(roots == 1, "gmod %s: expected exactly one root, found %d", g.version, roots)

	reachable := make(map[string]bool, len(nodes))
	var stack []*Node
	stack = append(stack, g.root)
	reachable[g.root.Code] = true
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range n.children {
			if !reachable[c.Code] {
				reachable[c.Code] = true
				stack = append(stack, c)
			}
		}
	}
	invariant.Invariant(len(reachable) == len(nodes),
		"gmod %s: %d of %d nodes unreachable from root", g.version, len(nodes)-len(reachable), len(nodes))

	for _, n := range nodes {
		for _, c := range n.children {
			invariant.Invariant(hasParent(c, n), "gmod %s: edge (%s,%s) not recorded on child's parents", g.version, n.Code, c.Code)
		}
	}
}

func hasParent(n, parent *Node) bool {
	for _, p := range n.parents {
		if p.Code == parent.Code {
			return true
		}
	}
	return false
}

// VisVersion returns the release this graph was built for.
func (g *Gmod) VisVersion() visversion.VisVersion { return g.version }

// Root returns the "VE" node.
func (g *Gmod) Root() *Node { return g.root }

// Lookup resolves code to its Node via the perfect-hash index: O(1), no
// allocation, "not found" rather than an error for a missing key.
func (g *Gmod) Lookup(code string) (*Node, bool) {
	return g.index.Get(code)
}

// Len returns the number of nodes in the graph.
func (g *Gmod) Len() int { return g.index.Len() }

// SuggestCodes ranks the graph's known codes against an unresolved lookup
// and returns the best few matches, for enriching a "no such code" error
// with a "did you mean" hint. A known code is a candidate only when it
// contains every character of code in order (case-insensitively); candidates
// are ranked by edit distance. Returns nil if no known code qualifies.
func (g *Gmod) SuggestCodes(code string, n int) []string {
	matches := fuzzy.RankFindFold(code, g.index.Keys())
	if len(matches) == 0 {
		return nil
	}
	sort.Sort(matches)
	if len(matches) > n {
		matches = matches[:n]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Target
	}
	return out
}

// IsProductSelectionAssignment reports whether (parent, child) is a
// product-selection assignment: a FUNCTION parent pointing at a PRODUCT
// SELECTION child. These edges are exempt from the traversal occurrence
// budget because the VIS model's shared selection subgraphs
// would otherwise make ordinary traversal pathologically recursive.
func IsProductSelectionAssignment(parent, child *Node) bool {
	return parent.IsFunctionNode() && child.IsProductSelection()
}
