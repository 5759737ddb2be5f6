package buildtarget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerWidthFromUint8(t *testing.T) {
	tests := []struct {
		bits uint8
		want PointerWidth
	}{
		{16, PointerWidth16},
		{32, PointerWidth32},
		{64, PointerWidth64},
		{8, PointerWidth("8")},
		{128, PointerWidth("128")},
		{0, PointerWidth("0")},
	}

	for _, tt := range tests {
		got := PointerWidthFromUint8(tt.bits)
		assert.Equal(t, tt.want, got, "bits=%d", tt.bits)

		back, err := got.Uint8()
		require.NoError(t, err)
		assert.Equal(t, tt.bits, back)
	}
}

func TestPointerWidth_Uint8(t *testing.T) {
	n, err := PointerWidthFromUint8(64).Uint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(64), n)

	n, err = ParsePointerWidth("8").Uint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(8), n)

	for _, bad := range []string{"not-a-number", "", "256", "-1", "64bit"} {
		_, err := ParsePointerWidth(bad).Uint8()
		require.Error(t, err, "value %q", bad)
		assert.True(t, IsInvalidInteger(err), "value %q", bad)
		assert.False(t, IsNotSet(err))
		assert.Contains(t, err.Error(), "is not a valid integer")
	}
}
