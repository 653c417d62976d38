package qrtables

import "github.com/jalphad/qrdecode/qrerror"

// ECCLevel is one of the four QR error-correction levels. The numeric
// values follow the listed order (Low=0 .. High=3), not the two-bit field
// QR codes encode them as (L=01, M=00, Q=11, H=10 in the standard's own
// format-bits table) — see eccFormatBits in bch.go for that mapping.
type ECCLevel int

const (
	Low ECCLevel = iota
	Medium
	Quartile
	High
)

func (e ECCLevel) String() string {
	switch e {
	case Low:
		return "LOW"
	case Medium:
		return "MEDIUM"
	case Quartile:
		return "QUARTILE"
	case High:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// totalCodewords[v] is the total number of codewords (data + ECC) a symbol
// of version v holds, independent of ECC level.
var totalCodewords = [41]int{
	0,
	26, 44, 70, 100, 134, 172, 196, 242, 292, 346,
	404, 466, 532, 581, 655, 733, 815, 901, 991, 1085,
	1156, 1258, 1364, 1474, 1588, 1706, 1828, 1921, 2051, 2185,
	2323, 2465, 2611, 2761, 2876, 3034, 3196, 3362, 3532, 3706,
}

// eccCodewordsPerBlock[ecc][v] and numECCBlocks[ecc][v]: the two tables
// ISO 18004 defines per (ecc level, version). Index 0 is unused padding.
var eccCodewordsPerBlock = [4][41]int{
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

var numECCBlocks = [4][41]int{
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// BlockLayout describes how a version/ecc combination's codewords split
// into Reed-Solomon blocks: numShortBlocks blocks of shortBlockLen data
// words, followed by numLongBlocks blocks of shortBlockLen+1 data words,
// each block carrying eccWords ECC words.
type BlockLayout struct {
	NumBlocks      int
	EccWords       int
	ShortBlockLen  int
	NumShortBlocks int
	NumLongBlocks  int
}

// Layout returns the block layout for (version, ecc). It fails with
// qrerror.InvalidVersion when version is out of [1,40].
func Layout(version int, ecc ECCLevel) (BlockLayout, error) {
	if version < MinVersion || version > MaxVersion {
		return BlockLayout{}, qrerror.New(qrerror.InvalidVersion, "version %d out of range [%d,%d]", version, MinVersion, MaxVersion)
	}
	total := totalCodewords[version]
	eccWords := eccCodewordsPerBlock[ecc][version]
	numBlocks := numECCBlocks[ecc][version]

	dataWords := total - eccWords*numBlocks
	shortLen := dataWords / numBlocks
	numLong := dataWords - shortLen*numBlocks
	numShort := numBlocks - numLong

	return BlockLayout{
		NumBlocks:      numBlocks,
		EccWords:       eccWords,
		ShortBlockLen:  shortLen,
		NumShortBlocks: numShort,
		NumLongBlocks:  numLong,
	}, nil
}

// TotalCodewords returns the total codeword count (data+ecc) for version.
func TotalCodewords(version int) int {
	return totalCodewords[version]
}
