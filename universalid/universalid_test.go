package universalid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseImoNumber_Checksum(t *testing.T) {
	// 9074729 is a commonly cited valid IMO number (7*9+6*0+5*7+4*4+3*7+2*2 = 139, 139 mod 10 = 9)
	_, err := ParseImoNumber("9074729")
	require.NoError(t, err)

	_, err = ParseImoNumber("9074720")
	require.Error(t, err)

	_, err = ParseImoNumber("90747")
	require.Error(t, err)

	_, err = ParseImoNumber("90747ab")
	require.Error(t, err)
}

func TestImoNumber_String(t *testing.T) {
	n, err := ParseImoNumber("9074729")
	require.NoError(t, err)
	require.Equal(t, "9074729", n.String())
}
