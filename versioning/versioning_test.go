package versioning

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dnv-opensource/vista-sdk-sub000/gmod"
	"github.com/dnv-opensource/vista-sdk-sub000/internal/dto"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

func buildGraph(t *testing.T, items []dto.GmodNode, relations [][2]string) *gmod.Gmod {
	t.Helper()
	g, err := gmod.Build(visversion.V3_4a, &dto.GmodDto{Items: items, Relations: relations})
	require.NoError(t, err)
	return g
}

func TestConvertNode_SameVersion(t *testing.T) {
	items := []dto.GmodNode{{Code: "VE"}, {Code: "400a", Category: "ASSET FUNCTION", Type: "COMPOSITION"}}
	g := buildGraph(t, items, [][2]string{{"VE", "400a"}})
	e, err := NewEngine(map[visversion.VisVersion]*gmod.Gmod{visversion.V3_4a: g}, nil)
	require.NoError(t, err)

	n, _ := g.Lookup("400a")
	out, ok, err := e.ConvertNode(visversion.V3_4a, n, visversion.V3_4a)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, n, out)
}

func TestConvertNode_CodeChange(t *testing.T) {
	itemsA := []dto.GmodNode{{Code: "VE"}, {Code: "400a", Category: "ASSET FUNCTION", Type: "COMPOSITION"}}
	itemsB := []dto.GmodNode{{Code: "VE"}, {Code: "400b", Category: "ASSET FUNCTION", Type: "COMPOSITION"}}
	gA := buildGraph(t, itemsA, [][2]string{{"VE", "400a"}})
	gB, err := gmod.Build(visversion.V3_5a, &dto.GmodDto{Items: itemsB, Relations: [][2]string{{"VE", "400b"}}})
	require.NoError(t, err)

	target := "400b"
	raw := map[visversion.VisVersion]*dto.VersioningDto{
		visversion.V3_5a: {Items: map[string]dto.NodeConversionDto{
			"400a": {Operations: []string{"changeCode"}, Source: "400a", Target: &target},
		}},
	}
	e, err := NewEngine(map[visversion.VisVersion]*gmod.Gmod{visversion.V3_4a: gA, visversion.V3_5a: gB}, raw)
	require.NoError(t, err)

	n, _ := gA.Lookup("400a")
	out, ok, err := e.ConvertNode(visversion.V3_4a, n, visversion.V3_5a)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "400b", out.Code)
}

func TestConvertNode_RejectsBackwards(t *testing.T) {
	items := []dto.GmodNode{{Code: "VE"}}
	g := buildGraph(t, items, nil)
	e, err := NewEngine(map[visversion.VisVersion]*gmod.Gmod{visversion.V3_4a: g}, nil)
	require.NoError(t, err)

	_, _, err = e.ConvertNode(visversion.V3_5a, g.Root(), visversion.V3_4a)
	require.Error(t, err)
}
