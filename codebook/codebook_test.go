package codebook

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func positionCodebook() *Codebook {
	return New(Position, map[string][]string{
		"Side": {"port", "starboard"},
		"":     {"centre"},
	})
}

func TestValidatePosition_Valid(t *testing.T) {
	require.Equal(t, PositionValid, ValidatePosition(positionCodebook(), "centre"))
}

func TestValidatePosition_InvalidOrder(t *testing.T) {
	require.Equal(t, PositionInvalidOrder, ValidatePosition(positionCodebook(), "1-centre"))
}

func TestValidatePosition_InvalidGrouping(t *testing.T) {
	require.Equal(t, PositionInvalidGrouping, ValidatePosition(positionCodebook(), "port-starboard"))
}

func TestValidatePosition_Custom(t *testing.T) {
	require.Equal(t, PositionCustom, ValidatePosition(positionCodebook(), "custom_position"))
}

func TestCodebook_TryCreateTag_Position(t *testing.T) {
	cb := positionCodebook()

	tag, err := cb.TryCreateTag("centre")
	require.NoError(t, err)
	require.False(t, tag.IsCustom)

	tag, err = cb.TryCreateTag("custom_position")
	require.NoError(t, err)
	require.True(t, tag.IsCustom)

	_, err = cb.TryCreateTag("port-starboard")
	require.Error(t, err)

	_, err = cb.TryCreateTag("")
	require.Error(t, err)
}

func TestCodebook_TryCreateTag_Detail_AlwaysCustom(t *testing.T) {
	cb := New(Detail, nil)
	tag, err := cb.TryCreateTag("anything.goes")
	require.NoError(t, err)
	require.True(t, tag.IsCustom)
}

func TestCodebook_TryCreateTag_Other(t *testing.T) {
	cb := New(Quantity, map[string][]string{"": {"temperature"}})

	tag, err := cb.TryCreateTag("temperature")
	require.NoError(t, err)
	require.False(t, tag.IsCustom)

	tag, err = cb.TryCreateTag("exhaust.gas")
	require.NoError(t, err)
	require.True(t, tag.IsCustom)
}

func TestCodebook_HasStandardValue_PositionDigits(t *testing.T) {
	cb := positionCodebook()
	require.True(t, cb.HasStandardValue("42"))
	require.False(t, cb.HasStandardValue("42"+"a"))
}
