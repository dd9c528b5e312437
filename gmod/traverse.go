package gmod

// Result is a traversal handler's decision for the node it was just given.
type Result int

const (
	// Continue descends into the node's children.
	Continue Result = iota
	// SkipSubtree prunes the node's subtree without visiting its children.
	SkipSubtree
	// Stop cancels the traversal entirely; the caller observes
	// "did not complete".
	Stop
)

// Handler is called once per visited node with the ancestor chain above it
// (root-first, excluding the node itself) and caller-supplied state,
// returning both the traversal decision and the (possibly updated) state to
// carry forward, rather than exposing an iterator: the visitor emits paths
// via the callback instead of a pull-based cursor.
type Handler[S any] func(parents []*Node, node *Node, state S) (Result, S)

// Options configures a traversal.
type Options struct {
	// MaxOccurrence bounds how many times a code may appear along the
	// current root-to-node path before its subtree is pruned. Zero means
	// the default of 1.
	MaxOccurrence int
	// From, if non-nil, seeds the traversal at a node other than the
	// graph root. SeedParents supplies the ancestor chain above From for
	// handlers that need it (empty if From is being treated as a fresh
	// starting point with no reported ancestry).
	From        *Node
	SeedParents []*Node
}

// Traverse walks the graph depth-first starting at root (or opts.From),
// invoking handler once per visited node and respecting the occurrence
// budget and product-selection exemption. It returns false
// ("did not complete") iff some handler call returned Stop.
func Traverse[S any](root *Node, initial S, handler Handler[S], opts *Options) (completed bool, final S) {
	maxOcc := 1
	start := root
	var seedParents []*Node
	if opts != nil {
		if opts.MaxOccurrence > 0 {
			maxOcc = opts.MaxOccurrence
		}
		if opts.From != nil {
			start = opts.From
			seedParents = opts.SeedParents
		}
	}

	occ := make(map[string]int)
	for _, p := range seedParents {
		occ[p.Code]++
	}
	occ[start.Code]++

	return traverseNode(start, seedParents, occ, initial, handler, maxOcc)
}

func traverseNode[S any](node *Node, parents []*Node, occ map[string]int, state S, handler Handler[S], maxOcc int) (bool, S) {
	result, state := handler(parents, node, state)
	switch result {
	case Stop:
		return false, state
	case SkipSubtree:
		return true, state
	}

	childParents := make([]*Node, len(parents)+1)
	copy(childParents, parents)
	childParents[len(parents)] = node

	for _, c := range node.children {
		exempt := IsProductSelectionAssignment(node, c)
		if !exempt {
			if occ[c.Code] >= maxOcc {
				continue
			}
			occ[c.Code]++
		}
		cont, s2 := traverseNode(c, childParents, occ, state, handler, maxOcc)
		state = s2
		if !exempt {
			occ[c.Code]--
		}
		if !cont {
			return false, state
		}
	}
	return true, state
}

// AncestorChain walks single-parent edges from n up to the root,
// returning the chain root-first including n. It returns ok=false if any
// non-root node on the way up, n included, does not have exactly one
// parent: an ambiguous reconstruction that the caller must treat as a
// failure rather than guess a path.
func AncestorChain(n *Node) (chain []*Node, ok bool) {
	cur := n
	for {
		chain = append([]*Node{cur}, chain...)
		if cur.IsRoot() {
			return chain, true
		}
		if len(cur.parents) != 1 {
			return nil, false
		}
		cur = cur.parents[0]
	}
}

// PathExistsBetween checks reachability between two path positions:
// starting at the last
// asset-function node of fromPath (or the graph root if none), traverse
// until toNode is reached, then confirm fromPath's codes are an in-order
// prefix of the full root-to-toNode ancestor chain. remaining excludes the
// codes already present in fromPath.
func (g *Gmod) PathExistsBetween(fromPath []*Node, toNode *Node) (exists bool, remaining []*Node) {
	start := g.root
	for i := len(fromPath) - 1; i >= 0; i-- {
		if fromPath[i].IsAssetFunction() {
			start = fromPath[i]
			break
		}
	}

	var reachedParents []*Node
	found := false
	Traverse[struct{}](start, struct{}{}, func(parents []*Node, node *Node, s struct{}) (Result, struct{}) {
		if node.Code == toNode.Code {
			reachedParents = append(append([]*Node{}, parents...), node)
			found = true
			return Stop, s
		}
		return Continue, s
	}, &Options{MaxOccurrence: 1})

	if !found {
		return false, nil
	}

	prefix, ok := AncestorChain(start)
	if !ok {
		return false, nil
	}
	fullChain := append(append([]*Node{}, prefix[:len(prefix)-1]...), reachedParents...)

	fromCodes := make([]string, len(fromPath))
	for i, n := range fromPath {
		fromCodes[i] = n.Code
	}
	if len(fromCodes) > len(fullChain) {
		return false, nil
	}
	for i, code := range fromCodes {
		if fullChain[i].Code != code {
			return false, nil
		}
	}
	return true, append([]*Node{}, fullChain[len(fromCodes):]...)
}
