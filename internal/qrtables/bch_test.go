package qrtables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalphad/qrdecode/internal/qrtables"
)

func TestFormatRoundTripAllCombinations(t *testing.T) {
	levels := []qrtables.ECCLevel{qrtables.Low, qrtables.Medium, qrtables.Quartile, qrtables.High}
	for _, ecc := range levels {
		for mask := 0; mask < 8; mask++ {
			word := qrtables.EncodeFormat(ecc, mask)
			gotECC, gotMask, err := qrtables.DecodeFormat(word)
			require.NoError(t, err)
			assert.Equal(t, ecc, gotECC)
			assert.Equal(t, mask, gotMask)
		}
	}
}

func TestFormatToleratesUpToThreeBitFlips(t *testing.T) {
	word := qrtables.EncodeFormat(qrtables.Quartile, 5)
	damaged := word ^ (1<<2 | 1<<9 | 1<<14) // flip 3 of the 15 bits
	ecc, mask, err := qrtables.DecodeFormat(damaged)
	require.NoError(t, err)
	assert.Equal(t, qrtables.Quartile, ecc)
	assert.Equal(t, 5, mask)
}

func TestVersionRoundTrip(t *testing.T) {
	for v := 7; v <= 40; v++ {
		word := qrtables.EncodeVersion(v)
		got, err := qrtables.DecodeVersion(word)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestVersionToleratesUpToThreeBitFlips(t *testing.T) {
	word := qrtables.EncodeVersion(21)
	damaged := word ^ (1<<1 | 1<<8 | 1<<15)
	got, err := qrtables.DecodeVersion(damaged)
	require.NoError(t, err)
	assert.Equal(t, 21, got)
}
