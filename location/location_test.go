package location

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTryParse_Valid(t *testing.T) {
	loc, errs, ok := TryParse("2FIU")
	require.True(t, ok)
	require.Empty(t, errs)
	require.Equal(t, "2FIU", loc.String())
}

func TestTryParse_UnknownCode(t *testing.T) {
	_, errs, ok := TryParse("2X")
	require.False(t, ok)
	require.Len(t, errs, 1)
	require.Equal(t, InvalidCode, errs[0].Code)
}

func TestTryParse_DuplicateGroup(t *testing.T) {
	_, errs, ok := TryParse("PC")
	require.False(t, ok)
	require.Equal(t, Invalid, errs[0].Code)
}

func TestTryParse_DigitAfterLetter(t *testing.T) {
	_, errs, ok := TryParse("F2")
	require.False(t, ok)
	require.Equal(t, InvalidOrder, errs[0].Code)
}

func TestTryParse_UnsortedLetters(t *testing.T) {
	_, errs, ok := TryParse("2UFI")
	require.False(t, ok)
	require.Equal(t, InvalidOrder, errs[0].Code)
}

func TestTryParse_Whitespace(t *testing.T) {
	_, errs, ok := TryParse("   ")
	require.False(t, ok)
	require.Equal(t, NullOrWhiteSpace, errs[0].Code)
}

func TestBuilder_SortsRegardlessOfOrder(t *testing.T) {
	loc, err := NewBuilder().WithVertical('U').WithNumber(2).WithTransverse('I').WithLongitudinal('F').Build()
	require.NoError(t, err)
	require.Equal(t, "2FIU", loc.String())
}

func TestBuilder_WrongGroupFails(t *testing.T) {
	_, err := NewBuilder().WithSide('U').Build()
	require.Error(t, err)
}

func TestBuilder_NonPositiveNumberFails(t *testing.T) {
	_, err := NewBuilder().WithNumber(0).Build()
	require.Error(t, err)
}

func TestBuilder_LastCallForGroupWins(t *testing.T) {
	loc, err := NewBuilder().WithSide('P').WithSide('S').Build()
	require.NoError(t, err)
	require.Equal(t, "S", loc.String())
}
