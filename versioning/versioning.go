// Package versioning implements step-wise conversion of nodes, paths, and
// LocalIds across successive VIS releases.
package versioning

import (
	"fmt"

	"github.com/dnv-opensource/vista-sdk-sub000/gmod"
	"github.com/dnv-opensource/vista-sdk-sub000/internal/dto"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

// Operation is one of the node-conversion operation kinds a rule may
// carry: changeCode, merge, move, assignmentChange,
// assignmentDelete. The engine doesn't branch on Operations directly —
// of a rule's fields it reads only Target and NewAssignment — but
// Operations, OldAssignment and DeleteAssignment are kept on NodeChange
// for fidelity to the loaded DTO and for diagnostics.
type Operation string

const (
	OpChangeCode       Operation = "changeCode"
	OpMerge            Operation = "merge"
	OpMove             Operation = "move"
	OpAssignmentChange Operation = "assignmentChange"
	OpAssignmentDelete Operation = "assignmentDelete"
)

// NodeChange is a single source-code conversion rule for one adjacent
// VisVersion step.
type NodeChange struct {
	Operations       []Operation
	Source           string
	Target           string
	OldAssignment    string
	NewAssignment    string
	DeleteAssignment bool
}

// stepTable indexes a step's rules by source code.
type stepTable map[string]NodeChange

// Engine holds every adjacent-step rule table and the built Gmod graph for
// each VisVersion the conversion chain needs to resolve codes against.
type Engine struct {
	graphs map[visversion.VisVersion]*gmod.Gmod
	steps  map[visversion.VisVersion]stepTable // keyed by the step's target version
}

// NewEngine builds an Engine from per-version Gmod graphs (already built
// by the caller) and per-version-boundary versioning DTOs keyed
// by the step's target version.
func NewEngine(graphs map[visversion.VisVersion]*gmod.Gmod, rawSteps map[visversion.VisVersion]*dto.VersioningDto) (*Engine, error) {
	e := &Engine{graphs: graphs, steps: make(map[visversion.VisVersion]stepTable, len(rawSteps))}
	for tgt, raw := range rawSteps {
		table := make(stepTable, len(raw.Items))
		for code, item := range raw.Items {
			nc := NodeChange{Source: code}
			for _, op := range item.Operations {
				nc.Operations = append(nc.Operations, Operation(op))
			}
			if item.Target != nil {
				nc.Target = *item.Target
			}
			if item.OldAssignment != nil {
				nc.OldAssignment = *item.OldAssignment
			}
			if item.NewAssignment != nil {
				nc.NewAssignment = *item.NewAssignment
			}
			if item.DeleteAssignment != nil {
				nc.DeleteAssignment = *item.DeleteAssignment
			}
			table[code] = nc
		}
		e.steps[tgt] = table
	}
	return e, nil
}

// ConvertNode walks the release sequence from vsrc to vtgt one step at a
// time, resolving n's code through each step's rule table (falling back to
// n's unchanged code if the rule's target is absent from that step's
// graph), and carrying n's Location forward unchanged.
// ok=false is this design's "no result" soft failure: some step had neither a
// rule target nor the unchanged code available.
func (e *Engine) ConvertNode(vsrc visversion.VisVersion, n *gmod.Node, vtgt visversion.VisVersion) (*gmod.Node, bool, error) {
	if vsrc == vtgt {
		return n, true, nil
	}
	if visversion.Compare(vtgt, vsrc) <= 0 {
		return nil, false, fmt.Errorf("versioning: target version %s must be strictly after source version %s", vtgt, vsrc)
	}

	cur := n
	curVersion := vsrc
	for curVersion != vtgt {
		next, ok := visversion.Successor(curVersion)
		if !ok {
			return nil, false, fmt.Errorf("versioning: no successor release after %s", curVersion)
		}

		targetCode := cur.Code
		if change, found := e.steps[next][cur.Code]; found && change.Target != "" {
			targetCode = change.Target
		}

		g, ok := e.graphs[next]
		if !ok {
			return nil, false, fmt.Errorf("versioning: no gmod graph loaded for %s", next)
		}
		resolved, ok := g.Lookup(targetCode)
		if !ok {
			resolved, ok = g.Lookup(cur.Code)
			if !ok {
				return nil, false, nil
			}
		}
		if !cur.Location.IsEmpty() {
			resolved = resolved.WithLocation(cur.Location)
		}
		cur = resolved
		curVersion = next
	}
	return cur, true, nil
}

// hasNormalAssignment reports the code of n's child, if any, that pairs[i+1]
// in an ongoing path conversion identifies as n's "normal assignment" —
// the product-type child a function node carries.
func (e *Engine) hasNormalAssignment(n *gmod.Node, candidateChildCode string) (string, bool) {
	if candidateChildCode == "" {
		return "", false
	}
	if name, ok := n.NormalAssignmentNames[candidateChildCode]; ok {
		_ = name
		return candidateChildCode, true
	}
	return "", false
}
