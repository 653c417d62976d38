package qrtables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalphad/qrdecode/internal/qrtables"
)

func TestAlphanumericRoundTrip(t *testing.T) {
	for _, c := range []byte("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:") {
		v, err := qrtables.AlphanumericValue(c)
		require.NoError(t, err)
		got, err := qrtables.AlphanumericChar(v)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestAlphanumericValueRejectsLowercase(t *testing.T) {
	_, err := qrtables.AlphanumericValue('a')
	assert.Error(t, err)
}

func TestAlphanumericCharRejectsOutOfRange(t *testing.T) {
	_, err := qrtables.AlphanumericChar(45)
	assert.Error(t, err)

	_, err = qrtables.AlphanumericChar(-1)
	assert.Error(t, err)
}
