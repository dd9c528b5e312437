package gmodpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/dnv-opensource/vista-sdk-sub000/gmod"
	"github.com/dnv-opensource/vista-sdk-sub000/internal/dto"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

// codeSeq flattens a path's parents+target into their codes, the smallest
// structural projection worth diffing with go-cmp when testify's Equal
// would just print two opaque pointers.
func codeSeq(p *GmodPath) []string {
	codes := make([]string, 0, len(p.Parents())+1)
	for _, n := range p.Parents() {
		codes = append(codes, n.Code)
	}
	return append(codes, p.Node().Code)
}

func buildGraph(t *testing.T) *gmod.Gmod {
	t.Helper()
	d := &dto.GmodDto{
		VisRelease: "3.9a",
		Items: []dto.GmodNode{
			{Category: "", Type: "", Code: "VE", Name: "Vessel"},
			{Category: "ASSET FUNCTION", Type: "COMPOSITION", Code: "400a", Name: "Propulsion"},
			{Category: "ASSET FUNCTION", Type: "LEAF", Code: "411", Name: "Diesel engine"},
		},
		Relations: [][2]string{
			{"VE", "400a"},
			{"400a", "411"},
		},
	}
	g, err := gmod.Build(visversion.V3_9a, d)
	require.NoError(t, err)
	return g
}

func TestIsValid(t *testing.T) {
	g := buildGraph(t)
	root := g.Root()
	fn, _ := g.Lookup("400a")
	leaf, _ := g.Lookup("411")

	require.True(t, IsValid([]*gmod.Node{root, fn}, leaf))
	require.False(t, IsValid([]*gmod.Node{fn}, leaf))
	require.False(t, IsValid(nil, leaf))
	require.True(t, IsValid(nil, root))
}

func TestString(t *testing.T) {
	g := buildGraph(t)
	root := g.Root()
	fn, _ := g.Lookup("400a")
	leaf, _ := g.Lookup("411")

	p, err := New(visversion.V3_9a, []*gmod.Node{root, fn}, leaf)
	require.NoError(t, err)
	require.Equal(t, "411", p.String())
	require.Equal(t, "VE/400a/411", p.ToFullPathString())
}

func TestEqual(t *testing.T) {
	g := buildGraph(t)
	root := g.Root()
	fn, _ := g.Lookup("400a")
	leaf, _ := g.Lookup("411")

	a, err := New(visversion.V3_9a, []*gmod.Node{root, fn}, leaf)
	require.NoError(t, err)
	b, err := New(visversion.V3_9a, []*gmod.Node{root, fn}, leaf)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
	require.True(t, a.FullPathEqual(b))

	if diff := cmp.Diff(codeSeq(a), codeSeq(b)); diff != "" {
		t.Errorf("code sequence mismatch (-a +b):\n%s", diff)
	}
}
