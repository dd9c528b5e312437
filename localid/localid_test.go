package localid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dnv-opensource/vista-sdk-sub000/codebook"
	"github.com/dnv-opensource/vista-sdk-sub000/gmod"
	"github.com/dnv-opensource/vista-sdk-sub000/gmodpath"
	"github.com/dnv-opensource/vista-sdk-sub000/internal/dto"
	"github.com/dnv-opensource/vista-sdk-sub000/location"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

func fixture(t *testing.T) (*gmod.Gmod, *location.Locations, *codebook.Codebooks) {
	t.Helper()
	d := &dto.GmodDto{
		VisRelease: "3.4a",
		Items: []dto.GmodNode{
			{Category: "", Type: "", Code: "VE"},
			{Category: "ASSET FUNCTION", Type: "COMPOSITION", Code: "400a"},
			{Category: "ASSET FUNCTION", Type: "LEAF", Code: "411"},
		},
		Relations: [][2]string{{"VE", "400a"}, {"400a", "411"}},
	}
	g, err := gmod.Build(visversion.V3_4a, d)
	require.NoError(t, err)

	locs := location.NewLocations(visversion.V3_4a, []location.Entry{
		{Code: 'P', Name: "Port"},
	})

	cbs, err := codebook.NewCodebooks(visversion.V3_4a, map[string]map[string][]string{
		"Quantity": {"": {"temperature"}},
		"Content":  {"": {"exhaust.gas"}},
		"Position": {"": {"inlet"}},
	})
	require.NoError(t, err)

	return g, locs, cbs
}

func TestParse_Valid(t *testing.T) {
	g, locs, cbs := fixture(t)
	s := "/dnv-v2/vis-3-4a/411/meta/qty-temperature/cnt-exhaust.gas/pos-inlet"

	id, errs, ok := Parse(s, g, locs, cbs)
	require.True(t, ok)
	require.Empty(t, errs)
	require.NotNil(t, id)

	qty, ok := id.MetadataTag(codebook.Quantity)
	require.True(t, ok)
	require.Equal(t, "temperature", qty.Value)
	require.False(t, qty.IsCustom)

	require.Equal(t, s, id.String())
}

func TestParse_OutOfOrderTags(t *testing.T) {
	g, locs, cbs := fixture(t)
	s := "/dnv-v2/vis-3-4a/411/meta/pos-inlet/qty-temperature"

	_, errs, ok := Parse(s, g, locs, cbs)
	require.False(t, ok)
	require.NotEmpty(t, errs)
}

func TestParse_EmptyMetadata(t *testing.T) {
	g, locs, cbs := fixture(t)
	s := "/dnv-v2/vis-3-4a/411/meta"

	_, errs, ok := Parse(s, g, locs, cbs)
	require.False(t, ok)
	found := false
	for _, e := range errs {
		if e.State == StateCompleteness {
			found = true
		}
	}
	require.True(t, found)
}

func TestBuilder_IsValidAndEmpty(t *testing.T) {
	g, locs, cbs := fixture(t)
	root := g.Root()
	fn, _ := g.Lookup("400a")
	leaf, _ := g.Lookup("411")

	primary, err := gmodpath.New(visversion.V3_4a, []*gmod.Node{root, fn}, leaf)
	require.NoError(t, err)

	b := NewBuilder(visversion.V3_4a)
	require.True(t, b.IsEmpty())
	require.False(t, b.IsValid())

	tag, err := cbs.TryCreateTag(codebook.Quantity, "temperature")
	require.NoError(t, err)

	b = b.WithPrimaryItem(primary).WithMetadataTag(tag)
	require.False(t, b.IsEmpty())
	require.True(t, b.IsValid())

	id, err := b.Build()
	require.NoError(t, err)

	rebuilt, errs, ok := Parse(id.String(), g, locs, cbs)
	require.True(t, ok)
	require.Empty(t, errs)
	require.True(t, id.Equal(rebuilt))
}
