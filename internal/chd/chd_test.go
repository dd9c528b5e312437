package chd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDictionary_LookupMatchesInput(t *testing.T) {
	keys := []string{"VE", "400a", "410", "411", "411i", "411.1", "CS1", "C101", "C101.3", "C101.31-2"}
	values := make([]int, len(keys))
	for i := range values {
		values[i] = i
	}

	d := Build(keys, values)
	require.Equal(t, len(keys), d.Len())

	for i, k := range keys {
		v, ok := d.Get(k)
		require.True(t, ok, "key %q should be found", k)
		require.Equal(t, i, v)
	}
}

func TestDictionary_MissingKeyNotFound(t *testing.T) {
	d := Build([]string{"VE", "400a"}, []int{0, 1})
	_, ok := d.Get("<not in gmod>")
	require.False(t, ok)
}

func TestDictionary_EmptyDictionary(t *testing.T) {
	d := Build[int](nil, nil)
	_, ok := d.Get("anything")
	require.False(t, ok)
}

func TestDictionary_LargeKeySetNoCollisions(t *testing.T) {
	n := 7000
	keys := make([]string, n)
	values := make([]int, n)
	for i := 0; i < n; i++ {
		keys[i] = fmt.Sprintf("N%05d", i)
		values[i] = i
	}

	d := Build(keys, values)
	for i, k := range keys {
		v, ok := d.Get(k)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}
