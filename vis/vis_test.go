package vis

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dnv-opensource/vista-sdk-sub000/internal/resource"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

type memLoader struct {
	docs map[resource.Kind][]byte
}

func (l *memLoader) Open(v visversion.VisVersion, kind resource.Kind) (io.ReadCloser, error) {
	raw, ok := l.docs[kind]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, _ = gw.Write(raw)
	_ = gw.Close()
	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func newFixtureLoader(t *testing.T) *memLoader {
	t.Helper()
	gmodDoc := map[string]interface{}{
		"visRelease": "3-4a",
		"items": []map[string]interface{}{
			{"category": "", "type": "", "code": "VE", "name": "Vessel"},
			{"category": "ASSET FUNCTION", "type": "LEAF", "code": "411", "name": "Diesel engine"},
		},
		"relations": [][]string{{"VE", "411"}},
	}
	locDoc := map[string]interface{}{
		"visRelease": "3-4a",
		"items": []map[string]interface{}{
			{"code": "P", "name": "Port"},
		},
	}
	cbDoc := map[string]interface{}{
		"visRelease": "3-4a",
		"items": []map[string]interface{}{
			{"name": "Quantity", "values": map[string][]string{"": {"temperature"}}},
		},
	}
	return &memLoader{docs: map[resource.Kind][]byte{
		resource.KindGmod:      mustJSON(t, gmodDoc),
		resource.KindLocations: mustJSON(t, locDoc),
		resource.KindCodebooks: mustJSON(t, cbDoc),
	}}
}

func TestClient_LoadsAndCaches(t *testing.T) {
	c := NewClient(newFixtureLoader(t))

	g, err := c.Gmod(visversion.V3_4a)
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())

	g2, err := c.Gmod(visversion.V3_4a)
	require.NoError(t, err)
	require.Same(t, g, g2)
}

func TestClient_ParsePath(t *testing.T) {
	c := NewClient(newFixtureLoader(t))
	p, err := c.ParsePath("411", visversion.V3_4a)
	require.NoError(t, err)
	require.Equal(t, "411", p.String())
}
