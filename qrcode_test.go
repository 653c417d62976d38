package qrcode

import (
	"testing"

	"github.com/jalphad/qrdecode/internal/qrtables"
	"github.com/jalphad/qrdecode/qrerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePx = 10

func TestDecodeNumericScenarios(t *testing.T) {
	cases := []string{"0", "01", "012", "0123", "01234"}
	for _, payload := range cases {
		t.Run(payload, func(t *testing.T) {
			bm, _, err := numericVector(payload, qrtables.Low, nil)
			require.NoError(t, err)
			width, height, pixels := renderImage(bm, modulePx)

			got, err := Decode(width, height, pixels)
			require.NoError(t, err)
			assert.Equal(t, payload, got)
		})
	}
}

func TestDecodeAlphanumericScenario(t *testing.T) {
	bm, _, err := alphanumericVector("HELLO WORLD", qrtables.Quartile, nil)
	require.NoError(t, err)
	width, height, pixels := renderImage(bm, modulePx)

	got, err := Decode(width, height, pixels)
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD", got)
}

func TestDecodeVersion7ExercisesAlignmentAndVersionInfo(t *testing.T) {
	// Version 7 (size 45) is the smallest size that both forces
	// internal/detect to search for a real alignment pattern (size >= 25)
	// and forces internal/bitdecode.resolveVersion to read the 18-bit
	// version-information block off the bitmap instead of trusting size
	// alone (version >= 7). Low ECC at v7 splits into 2 Reed-Solomon
	// blocks, so this also exercises internal/interleave's multi-block
	// path on the decode side.
	bm, size, err := numericVectorVersion7("0123456789", qrtables.Low, nil)
	require.NoError(t, err)
	assert.Equal(t, 45, size)
	width, height, pixels := renderImage(bm, modulePx)

	result, err := DecodeDetail(width, height, pixels)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", result.Text)
	assert.Equal(t, 7, result.Version)
	assert.Equal(t, qrtables.Low, result.ECC)
	assert.Equal(t, 0, result.ErrorsCorrected)
}

func TestDecodeDetailReportsVersionECCMask(t *testing.T) {
	bm, _, err := numericVector("01234", qrtables.Low, nil)
	require.NoError(t, err)
	width, height, pixels := renderImage(bm, modulePx)

	result, err := DecodeDetail(width, height, pixels)
	require.NoError(t, err)
	assert.Equal(t, "01234", result.Text)
	assert.Equal(t, 1, result.Version)
	assert.Equal(t, qrtables.Low, result.ECC)
	assert.Equal(t, testMask, result.Mask)
	assert.Equal(t, 0, result.ErrorsCorrected)
}

func TestDecodeSingleByteCorruptionStillDecodes(t *testing.T) {
	// v1-L carries 7 ECC words, so floor(7/2) = 3 byte errors are always
	// correctable; flip one byte in the codeword and expect a clean decode.
	corrupt := func(codeword []byte) {
		codeword[0] ^= 0xFF
	}
	bm, _, err := numericVector("01234", qrtables.Low, corrupt)
	require.NoError(t, err)
	width, height, pixels := renderImage(bm, modulePx)

	result, err := DecodeDetail(width, height, pixels)
	require.NoError(t, err)
	assert.Equal(t, "01234", result.Text)
	assert.Greater(t, result.ErrorsCorrected, 0)
}

func TestDecodeExcessiveCorruptionFails(t *testing.T) {
	// v1-L tolerates at most 3 byte errors; flip 4 distinct bytes and
	// expect Reed-Solomon to give up.
	corrupt := func(codeword []byte) {
		for i := 0; i < 4; i++ {
			codeword[i] ^= 0xFF
		}
	}
	bm, _, err := numericVector("01234", qrtables.Low, corrupt)
	require.NoError(t, err)
	width, height, pixels := renderImage(bm, modulePx)

	_, err = Decode(width, height, pixels)
	require.Error(t, err)
}

func TestDecodeRejectsNonPositiveDimensions(t *testing.T) {
	_, err := Decode(0, 10, make([]byte, 0))
	require.Error(t, err)
	assert.True(t, qrerror.Is(err, qrerror.InvalidArgument))

	_, err = Decode(10, 0, make([]byte, 0))
	require.Error(t, err)
	assert.True(t, qrerror.Is(err, qrerror.InvalidArgument))
}

func TestDecodeRejectsEmptyBuffer(t *testing.T) {
	_, err := Decode(10, 10, nil)
	require.Error(t, err)
	assert.True(t, qrerror.Is(err, qrerror.InvalidArgument))
}

func TestDecodeRejectsUnsupportedBytesPerPixel(t *testing.T) {
	_, err := Decode(10, 10, make([]byte, 10*10*2))
	require.Error(t, err)
	assert.True(t, qrerror.Is(err, qrerror.InvalidArgument))
}

func TestDecodeRejectsImageTooSmall(t *testing.T) {
	_, err := Decode(10, 10, make([]byte, 10*10))
	require.Error(t, err)
	assert.True(t, qrerror.Is(err, qrerror.ImageTooSmall))
}

func TestDecodeRejectsBlankImage(t *testing.T) {
	pixels := make([]byte, 100*100)
	for i := range pixels {
		pixels[i] = 255
	}
	_, err := Decode(100, 100, pixels)
	require.Error(t, err)
	assert.True(t, qrerror.Is(err, qrerror.FinderNotFound))
}
