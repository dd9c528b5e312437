package gmod

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dnv-opensource/vista-sdk-sub000/internal/dto"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

func sampleDto() *dto.GmodDto {
	return &dto.GmodDto{
		VisRelease: "3.9a",
		Items: []dto.GmodNode{
			{Category: "", Type: "", Code: "VE", Name: "Vessel"},
			{Category: "ASSET FUNCTION", Type: "COMPOSITION", Code: "400a", Name: "Propulsion"},
			{Category: "ASSET FUNCTION", Type: "LEAF", Code: "411", Name: "Diesel engine"},
			{Category: "PRODUCT", Type: "SELECTION", Code: "411.1", Name: "Engine selection"},
		},
		Relations: [][2]string{
			{"VE", "400a"},
			{"400a", "411"},
			{"400a", "411.1"},
		},
	}
}

func TestBuild_Basic(t *testing.T) {
	g, err := Build(visversion.V3_9a, sampleDto())
	require.NoError(t, err)
	require.Equal(t, 4, g.Len())
	require.True(t, g.Root().IsRoot())
	require.Equal(t, "VE", g.Root().Code)

	n, ok := g.Lookup("411")
	require.True(t, ok)
	require.Equal(t, "Diesel engine", n.Name)

	_, ok = g.Lookup("missing")
	require.False(t, ok)
}

func TestBuild_MissingRoot(t *testing.T) {
	d := sampleDto()
	d.Items = d.Items[1:]
	_, err := Build(visversion.V3_9a, d)
	require.Error(t, err)
}

func TestBuild_DuplicateCode(t *testing.T) {
	d := sampleDto()
	d.Items = append(d.Items, dto.GmodNode{Code: "VE"})
	_, err := Build(visversion.V3_9a, d)
	require.Error(t, err)
}

func TestBuild_DanglingRelation(t *testing.T) {
	d := sampleDto()
	d.Relations = append(d.Relations, [2]string{"VE", "nonexistent"})
	_, err := Build(visversion.V3_9a, d)
	require.Error(t, err)
}

func TestIsProductSelectionAssignment(t *testing.T) {
	g, err := Build(visversion.V3_9a, sampleDto())
	require.NoError(t, err)
	fn, _ := g.Lookup("400a")
	sel, _ := g.Lookup("411.1")
	leaf, _ := g.Lookup("411")
	require.True(t, IsProductSelectionAssignment(fn, sel))
	require.False(t, IsProductSelectionAssignment(fn, leaf))
}

func TestTraverse_VisitsAllNodes(t *testing.T) {
	g, err := Build(visversion.V3_9a, sampleDto())
	require.NoError(t, err)

	var visited []string
	completed, _ := Traverse[struct{}](g.Root(), struct{}{}, func(parents []*Node, node *Node, s struct{}) (Result, struct{}) {
		visited = append(visited, node.Code)
		return Continue, s
	}, nil)
	require.True(t, completed)
	require.ElementsMatch(t, []string{"VE", "400a", "411", "411.1"}, visited)
}

func TestTraverse_Stop(t *testing.T) {
	g, err := Build(visversion.V3_9a, sampleDto())
	require.NoError(t, err)

	var visited []string
	completed, _ := Traverse[struct{}](g.Root(), struct{}{}, func(parents []*Node, node *Node, s struct{}) (Result, struct{}) {
		visited = append(visited, node.Code)
		if node.Code == "400a" {
			return Stop, s
		}
		return Continue, s
	}, nil)
	require.False(t, completed)
	require.Equal(t, []string{"VE", "400a"}, visited)
}

func TestTraverse_SkipSubtree(t *testing.T) {
	g, err := Build(visversion.V3_9a, sampleDto())
	require.NoError(t, err)

	var visited []string
	completed, _ := Traverse[struct{}](g.Root(), struct{}{}, func(parents []*Node, node *Node, s struct{}) (Result, struct{}) {
		visited = append(visited, node.Code)
		if node.Code == "400a" {
			return SkipSubtree, s
		}
		return Continue, s
	}, nil)
	require.True(t, completed)
	require.Equal(t, []string{"VE", "400a"}, visited)
}

func TestPathExistsBetween(t *testing.T) {
	g, err := Build(visversion.V3_9a, sampleDto())
	require.NoError(t, err)

	fn, _ := g.Lookup("400a")
	leaf, _ := g.Lookup("411")

	exists, remaining := g.PathExistsBetween([]*Node{g.Root(), fn}, leaf)
	require.True(t, exists)
	require.Len(t, remaining, 1)
	require.Equal(t, "411", remaining[0].Code)

	sel, _ := g.Lookup("411.1")
	exists, _ = g.PathExistsBetween([]*Node{g.Root(), fn}, sel)
	require.True(t, exists)

	missingFn, _ := g.Lookup("411")
	exists, _ = g.PathExistsBetween([]*Node{g.Root(), missingFn}, leaf)
	require.False(t, exists)
}

func TestSuggestCodes(t *testing.T) {
	g, err := Build(visversion.V3_9a, sampleDto())
	require.NoError(t, err)

	suggestions := g.SuggestCodes("41", 3)
	require.Contains(t, suggestions, "411")

	require.Nil(t, g.SuggestCodes("zzzzzzzzzz", 3))
}
