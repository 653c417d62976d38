package bitdecode

import (
	"github.com/jalphad/qrdecode/internal/bitmap"
	"github.com/jalphad/qrdecode/internal/interleave"
	"github.com/jalphad/qrdecode/internal/qrtables"
	"github.com/jalphad/qrdecode/internal/reedsolomon"
	"github.com/jalphad/qrdecode/qrerror"
)

// Result is the decoded text plus the diagnostics an operator-facing
// caller (the CLI) wants to report: the recovered version/ECC level/mask,
// and how many codeword errors Reed-Solomon had to correct.
type Result struct {
	Text            string
	Version         int
	ECC             qrtables.ECCLevel
	Mask            int
	ErrorsCorrected int
}

// Decode turns a rectified, size x size symbol Bitmap into its encoded
// text: recovering format and version, reading the zigzag codeword
// stream, de-interleaving and Reed-Solomon correcting it, and parsing the
// resulting bytes into segments.
func Decode(bm *bitmap.Bitmap, size int) (string, error) {
	result, err := DecodeDetail(bm, size)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// DecodeDetail is Decode but returns the full Result, including the
// diagnostics a caller may want to surface without re-deriving them.
func DecodeDetail(bm *bitmap.Bitmap, size int) (Result, error) {
	version, err := resolveVersion(bm, size)
	if err != nil {
		return Result{}, err
	}
	ecc, mask, err := readFormat(bm, size)
	if err != nil {
		return Result{}, err
	}
	if err := qrtables.ValidMask(mask); err != nil {
		return Result{}, err
	}

	codeword, err := readCodewords(bm, version, mask)
	if err != nil {
		return Result{}, err
	}

	layout, err := qrtables.Layout(version, ecc)
	if err != nil {
		return Result{}, err
	}
	blocks, err := interleave.Split(codeword, layout)
	if err != nil {
		return Result{}, err
	}

	codec := reedsolomon.NewCodec(layout.EccWords)
	var data []byte
	errorsCorrected := 0
	for _, blk := range blocks {
		full := append(append([]byte(nil), blk.Data...), blk.ECC...)
		corrected, numErrors, err := codec.Decode(full)
		if err != nil {
			return Result{}, qrerror.Wrap(qrerror.Decode, err, "Reed-Solomon correction failed")
		}
		data = append(data, corrected[:len(blk.Data)]...)
		errorsCorrected += numErrors
	}

	text, err := ParseSegments(data, version)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Text:            text,
		Version:         version,
		ECC:             ecc,
		Mask:            mask,
		ErrorsCorrected: errorsCorrected,
	}, nil
}
