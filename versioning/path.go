package versioning

import (
	"fmt"

	"github.com/dnv-opensource/vista-sdk-sub000/gmod"
	"github.com/dnv-opensource/vista-sdk-sub000/gmodpath"
	"github.com/dnv-opensource/vista-sdk-sub000/internal/invariant"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

type nodePair struct {
	source *gmod.Node
	target *gmod.Node
}

// ConvertPath converts every position of p forward from vsrc to vtgt,
// handling the four structural changes a step can introduce (merge, plain
// code change, normal-assignment insertion/deletion) and rebuilding a
// valid target path via addToPath.
func (e *Engine) ConvertPath(vsrc visversion.VisVersion, p *gmodpath.GmodPath, vtgt visversion.VisVersion) (*gmodpath.GmodPath, bool, error) {
	if vsrc == vtgt {
		return p, true, nil
	}

	full := append(append([]*gmod.Node{}, p.Parents()...), p.Node())
	pairs := make([]nodePair, len(full))
	for i, n := range full {
		tgt, ok, err := e.ConvertNode(vsrc, n, vtgt)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		pairs[i] = nodePair{source: n, target: tgt}
	}

	targetGraph, ok := e.graphs[vtgt]
	if !ok {
		return nil, false, fmt.Errorf("versioning: no gmod graph loaded for %s", vtgt)
	}

	var out []*gmod.Node
	var err error
	for i := 0; i < len(pairs); {
		pair := pairs[i]

		if len(out) > 0 && out[len(out)-1].Code == pair.target.Code {
			i++
			continue
		}

		var nextSourceCode string
		if i+1 < len(pairs) {
			nextSourceCode = pairs[i+1].source.Code
		}
		sourceAssignment, sourceHas := e.hasNormalAssignment(pair.source, nextSourceCode)

		var nextTargetCode string
		if i+1 < len(pairs) {
			nextTargetCode = pairs[i+1].target.Code
		}
		targetAssignment, targetHas := e.hasNormalAssignment(pair.target, nextTargetCode)
		if !targetHas {
			// The target rule may name a brand new assignment the source
			// sequence never had (e.g. H407.1 inserted in example
			// 6); consult the rule table directly in that case.
			if change, found := e.steps[vtgt][pair.source.Code]; found && change.NewAssignment != "" {
				targetAssignment, targetHas = change.NewAssignment, true
			}
		}

		switch {
		case sourceHas && !targetHas:
			out, err = addToPath(targetGraph, out, pair.target)
			if err != nil {
				return nil, false, err
			}
			if i == len(pairs)-1 && nextSourceCode == "" {
				// nothing further to check: this is already the end node.
			} else if i+1 < len(pairs) && pairs[i+1].target.Code == pair.target.Code && i == len(pairs)-2 {
				return nil, false, fmt.Errorf("versioning: normal-assignment deletion silently drops the final node")
			}
			i++

		case targetHas && (!sourceHas || sourceAssignment != targetAssignment):
			out, err = addToPath(targetGraph, out, pair.target)
			if err != nil {
				return nil, false, err
			}
			if assignNode, ok := targetGraph.Lookup(targetAssignment); ok {
				out, err = addToPath(targetGraph, out, assignNode)
				if err != nil {
					return nil, false, err
				}
			}
			// The old assignment slot is consumed by the new one: skip
			// one additional input pair beyond the current position (the
			// "+2" shift).
			i += 2

		default:
			out, err = addToPath(targetGraph, out, pair.target)
			if err != nil {
				return nil, false, err
			}
			i++
		}
	}

	if len(out) == 0 {
		return nil, false, fmt.Errorf("versioning: path conversion produced no nodes")
	}
	parents, node := out[:len(out)-1], out[len(out)-1]
	invariant.Invariant(gmodpath.IsValid(parents, node), "versioning: rebuilt path %s/%s is not structurally valid", vsrc, vtgt)

	converted, err := gmodpath.New(vtgt, parents, node)
	if err != nil {
		return nil, false, err
	}
	return converted, true, nil
}

// addToPath implements the append rule: if the current path's
// last node is already a parent of newNode, append directly. Otherwise
// walk back popping tail nodes (never popping the last remaining
// asset-function node) until path_exists_between finds a route from the
// retained prefix to newNode, then splice in the returned remaining
// ancestors before newNode itself.
func addToPath(g *gmod.Gmod, current []*gmod.Node, newNode *gmod.Node) ([]*gmod.Node, error) {
	if len(current) == 0 {
		return []*gmod.Node{newNode}, nil
	}
	if current[len(current)-1].IsChild(newNode) {
		return append(current, newNode), nil
	}

	trimmed := append([]*gmod.Node{}, current...)
	for len(trimmed) > 0 {
		popped := trimmed[len(trimmed)-1]
		if popped.IsAssetFunction() && !containsAssetFunction(trimmed[:len(trimmed)-1]) {
			return nil, fmt.Errorf("versioning: cannot pop the last remaining asset-function node %s while splicing in %s", popped.Code, newNode.Code)
		}
		trimmed = trimmed[:len(trimmed)-1]

		exists, remaining := g.PathExistsBetween(trimmed, newNode)
		if !exists {
			continue
		}
		out := append([]*gmod.Node{}, trimmed...)
		if len(remaining) > 0 {
			out = append(out, remaining[:len(remaining)-1]...)
		}
		out = append(out, newNode)
		return out, nil
	}
	return nil, fmt.Errorf("versioning: no path exists between any retained prefix and %s", newNode.Code)
}

func containsAssetFunction(nodes []*gmod.Node) bool {
	for _, n := range nodes {
		if n.IsAssetFunction() {
			return true
		}
	}
	return false
}
