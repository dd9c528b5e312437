// Package gmod implements the Generic Product Model: a directed acyclic
// graph of GmodNodes with multiple inheritance of children, fronted by a
// perfect-hash lookup from code to node.
package gmod

import (
	"strings"

	"github.com/dnv-opensource/vista-sdk-sub000/location"
)

// leafFullTypes are the full_type values (category+" "+type) that mark a
// node as a leaf.
var leafFullTypes = map[string]bool{
	"ASSET FUNCTION LEAF":   true,
	"PRODUCT FUNCTION LEAF": true,
}

// Node is one vertex of the GMOD graph. Children/parents are adjacency
// vectors materialized once at load time by Build and never mutated
// after Build returns the frozen graph.
type Node struct {
	Code                  string
	Category              string
	Type                  string
	Name                  string
	CommonName            string
	Definition            string
	CommonDefinition      string
	InstallSubstructure   bool
	NormalAssignmentNames map[string]string

	// Location is only ever set on a node as it appears within a
	// GmodPath; the bare graph node returned by Gmod.Lookup has none.
	Location location.Location

	children []*Node
	parents  []*Node
}

// Children returns this node's children in GMOD DTO order.
func (n *Node) Children() []*Node { return n.children }

// Parents returns this node's parents in GMOD DTO order.
func (n *Node) Parents() []*Node { return n.parents }

// WithLocation returns a copy of n carrying loc. Used by the path engine
// when materializing a path's positions; never mutates the shared graph
// node.
func (n *Node) WithLocation(loc location.Location) *Node {
	cp := *n
	cp.Location = loc
	return &cp
}

// WithoutLocation returns a copy of n with no Location.
func (n *Node) WithoutLocation() *Node {
	cp := *n
	cp.Location = location.Location{}
	return &cp
}

// FullType is category+" "+type, e.g. "ASSET FUNCTION LEAF".
func (n *Node) FullType() string {
	return n.Category + " " + n.Type
}

// IsRoot reports whether n is the GMOD root ("VE").
func (n *Node) IsRoot() bool { return n.Code == "VE" }

// IsLeaf reports whether n's full_type marks it as a leaf.
func (n *Node) IsLeaf() bool { return leafFullTypes[n.FullType()] }

// IsFunctionNode reports whether n's category is neither PRODUCT nor ASSET.
func (n *Node) IsFunctionNode() bool {
	return n.Category != "PRODUCT" && n.Category != "ASSET"
}

// IsAssetFunction reports whether n's category is "ASSET FUNCTION".
func (n *Node) IsAssetFunction() bool {
	return n.Category == "ASSET FUNCTION"
}

// IsProductSelection reports whether n is a PRODUCT/SELECTION node.
func (n *Node) IsProductSelection() bool {
	return n.Category == "PRODUCT" && n.Type == "SELECTION"
}

// IsProductType reports whether n is a PRODUCT/TYPE node.
func (n *Node) IsProductType() bool {
	return n.Category == "PRODUCT" && n.Type == "TYPE"
}

func (n *Node) isAssetType() bool {
	return n.Category == "ASSET" && n.Type == "TYPE"
}

func (n *Node) isGroupOrSelection() bool {
	return n.Type == "GROUP" || n.Type == "SELECTION"
}

// IsFunctionComposition reports whether n is an ASSET FUNCTION or PRODUCT
// FUNCTION node whose type is "COMPOSITION".
func (n *Node) IsFunctionComposition() bool {
	return (n.Category == "ASSET FUNCTION" || n.Category == "PRODUCT FUNCTION") && n.Type == "COMPOSITION"
}

// IsIndividualizable reports whether n can carry a Location at the given
// path position. isTarget and isInMultiNodeSet are supplied by
// the path engine, since a function-composition's individualisability
// depends on context the bare node doesn't carry.
func (n *Node) IsIndividualizable(isTarget, isInMultiNodeSet bool) bool {
	if n.isGroupOrSelection() || n.IsProductType() || n.isAssetType() {
		return false
	}
	if n.IsFunctionComposition() {
		return strings.HasSuffix(n.Code, "i") || isInMultiNodeSet || isTarget
	}
	return true
}

// IsMappable reports whether n is eligible to carry metadata mapping: not
// product-type/-selection/asset, and its code doesn't end in 'a' or 's'.
func (n *Node) IsMappable() bool {
	if n.IsProductType() || n.IsProductSelection() || n.Category == "ASSET" {
		return false
	}
	if n.Code == "" {
		return false
	}
	last := n.Code[len(n.Code)-1]
	return last != 'a' && last != 's'
}

// IsChild reports whether candidate is a direct child of n.
func (n *Node) IsChild(candidate *Node) bool {
	for _, c := range n.children {
		if c.Code == candidate.Code {
			return true
		}
	}
	return false
}
