// Package qrcode is the public entry point of the decoder: it owns the
// full pipeline from a raw pixel buffer to decoded text, wiring together
// internal/binarize, internal/detect, internal/rectify and
// internal/bitdecode in sequence. Image file decoding (JPEG/PNG) and any
// outer packaging are the caller's job; this package consumes only raw
// pixels (see Decode).
package qrcode

import (
	"github.com/jalphad/qrdecode/internal/binarize"
	"github.com/jalphad/qrdecode/internal/bitdecode"
	"github.com/jalphad/qrdecode/internal/detect"
	"github.com/jalphad/qrdecode/internal/geom"
	"github.com/jalphad/qrdecode/internal/qrtables"
	"github.com/jalphad/qrdecode/internal/rectify"
	"github.com/jalphad/qrdecode/qrerror"
)

// brightnessRetries are the luma offsets Decode tries in turn: a clean
// pass first, then a small nudge in each direction. This is the
// compatibility heuristic spec.md S7 describes as a caller-side retry for
// source images whose computed luma comes out slightly mis-biased; it is
// not part of the core algorithm, only a handful of extra attempts around
// it.
var brightnessRetries = []int{0, 5, -5}

// SetBrightnessOffsets overrides the binarizer brightness-retry schedule
// Decode works through. It exists for internal/config to expose as an
// operator-tunable knob without touching Decode's own signature — the
// core pipeline otherwise takes no configuration at all.
func SetBrightnessOffsets(offsets []int) {
	if len(offsets) > 0 {
		brightnessRetries = offsets
	}
}

// Result is a decoded symbol's text plus the diagnostics an operator
// might want to report (the recovered version, ECC level, mask pattern,
// and how many codeword errors Reed-Solomon corrected).
type Result struct {
	Text            string
	Version         int
	ECC             qrtables.ECCLevel
	Mask            int
	ErrorsCorrected int
}

// Decode locates, rectifies and decodes a QR symbol in a raw pixel
// buffer. width and height must be positive, and len(bytes) must equal
// width*height*bytesPerPixel for bytesPerPixel in {1,3,4} (grayscale,
// RGB, or RGBA, row-major, top-left origin) — the pixel format is
// inferred from the buffer length alone. It returns the decoded text, or
// an error of one of the qrerror.Kind values.
func Decode(width, height int, bytes []byte) (string, error) {
	result, err := DecodeDetail(width, height, bytes)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// DecodeDetail is Decode but returns the full Result.
func DecodeDetail(width, height int, bytes []byte) (Result, error) {
	bpp, err := inferBytesPerPixel(width, height, len(bytes))
	if err != nil {
		return Result{}, err
	}
	img := binarize.Image{Width: width, Height: height, Bytes: bytes, BytesPerPixel: bpp}

	var lastErr error
	for _, offset := range brightnessRetries {
		bm, err := binarize.BinarizeOffset(img, offset)
		if err != nil {
			// A structural problem (bad dimensions, too small) can't be
			// fixed by nudging brightness; fail immediately instead of
			// retrying pointlessly.
			return Result{}, err
		}

		det, err := detect.Detect(bm)
		if err != nil {
			lastErr = err
			continue
		}

		corners := rectify.Corners{
			TopLeft:      geom.Point{X: det.Triple.TopLeft.X, Y: det.Triple.TopLeft.Y},
			TopRight:     geom.Point{X: det.Triple.TopRight.X, Y: det.Triple.TopRight.Y},
			BottomLeft:   geom.Point{X: det.Triple.BottomLeft.X, Y: det.Triple.BottomLeft.Y},
			BottomRight:  geom.Point{X: det.BottomRight.X, Y: det.BottomRight.Y},
			HasAlignment: det.HasAlignment,
		}
		symbol := rectify.Rectify(bm, corners, det.Size)

		detail, err := bitdecode.DecodeDetail(symbol, det.Size)
		if err != nil {
			lastErr = err
			continue
		}
		return Result{
			Text:            detail.Text,
			Version:         detail.Version,
			ECC:             detail.ECC,
			Mask:            detail.Mask,
			ErrorsCorrected: detail.ErrorsCorrected,
		}, nil
	}
	return Result{}, lastErr
}

// inferBytesPerPixel derives the pixel format from the buffer length, per
// spec.md S6: the length must be a whole multiple of width*height, and
// only grayscale (1), RGB (3) or RGBA (4) bytes per pixel are accepted;
// any other multiple, such as 2, is rejected.
func inferBytesPerPixel(width, height, byteLen int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, qrerror.New(qrerror.InvalidArgument, "width and height must be positive, got %dx%d", width, height)
	}
	if byteLen == 0 {
		return 0, qrerror.New(qrerror.InvalidArgument, "image byte buffer is empty")
	}
	pixels := width * height
	if byteLen%pixels != 0 {
		return 0, qrerror.New(qrerror.InvalidArgument, "byte buffer length %d is not a multiple of %d pixels", byteLen, pixels)
	}
	bpp := byteLen / pixels
	switch bpp {
	case 1, 3, 4:
		return bpp, nil
	default:
		return 0, qrerror.New(qrerror.InvalidArgument, "byte buffer implies %d bytes per pixel, want 1, 3, or 4", bpp)
	}
}
