package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dnv-opensource/vista-sdk-sub000/codebook"
	"github.com/dnv-opensource/vista-sdk-sub000/gmod"
	"github.com/dnv-opensource/vista-sdk-sub000/gmodpath"
	"github.com/dnv-opensource/vista-sdk-sub000/internal/dto"
	"github.com/dnv-opensource/vista-sdk-sub000/localid"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

func buildPath(t *testing.T) (*gmod.Gmod, *gmodpath.GmodPath) {
	t.Helper()
	g, err := gmod.Build(visversion.V3_4a, &dto.GmodDto{
		Items: []dto.GmodNode{
			{Code: "VE"},
			{Code: "400a", Category: "ASSET FUNCTION", Type: "COMPOSITION"},
			{Code: "411", Category: "ASSET FUNCTION", Type: "LEAF"},
		},
		Relations: [][2]string{{"VE", "400a"}, {"400a", "411"}},
	})
	require.NoError(t, err)
	root, fn, leaf := g.Root(), mustLookup(t, g, "400a"), mustLookup(t, g, "411")
	p, err := gmodpath.New(visversion.V3_4a, []*gmod.Node{root, fn}, leaf)
	require.NoError(t, err)
	return g, p
}

func mustLookup(t *testing.T, g *gmod.Gmod, code string) *gmod.Node {
	t.Helper()
	n, ok := g.Lookup(code)
	require.True(t, ok)
	return n
}

func TestGmodPathQuery_FromPath_MatchesSelf(t *testing.T) {
	_, p := buildPath(t)
	q := FromPath(p)
	require.True(t, q.Match(p, nil))
}

func TestMetadataTagsQuery(t *testing.T) {
	tag := codebook.Tag{Name: codebook.Quantity, Value: "temperature"}
	q := NewMetadataTagsQuery(map[codebook.Name]string{codebook.Quantity: "temperature"})

	b := localid.NewBuilder(visversion.V3_4a)
	_, p := buildPath(t)
	b = b.WithPrimaryItem(p).WithMetadataTag(tag)
	id, err := b.Build()
	require.NoError(t, err)

	require.True(t, q.Match(id))
}

func TestLocalIdQuery_FromLocalId_SelfMatch(t *testing.T) {
	_, p := buildPath(t)
	tag := codebook.Tag{Name: codebook.Quantity, Value: "temperature"}
	b := localid.NewBuilder(visversion.V3_4a).WithPrimaryItem(p).WithMetadataTag(tag)
	id, err := b.Build()
	require.NoError(t, err)

	q := FromLocalId(id)
	require.True(t, q.Match(id, nil))
}
