package qrtables

import "github.com/jalphad/qrdecode/qrerror"

// formatGeneratorPoly and formatMask are the BCH(15,5) generator and XOR
// mask ISO 18004 Annex C specifies for the 15-bit format information word.
const (
	formatGeneratorPoly = 0x537
	formatMask          = 0x5412
)

// versionGeneratorPoly is the BCH(18,6) generator for the 18-bit version
// information word used at version >= 7.
const versionGeneratorPoly = 0x1f25

// eccFormatBits maps an ECCLevel to the 2-bit field the format word
// actually encodes it as (not the same as the ECCLevel's own iota order).
func eccFormatBits(e ECCLevel) int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		return 0
	}
}

func eccFromFormatBits(bits int) (ECCLevel, error) {
	switch bits {
	case 1:
		return Low, nil
	case 0:
		return Medium, nil
	case 3:
		return Quartile, nil
	case 2:
		return High, nil
	default:
		return 0, qrerror.New(qrerror.InvalidFormat, "format bits %02b do not name an ECC level", bits)
	}
}

func bchRemainder(data, generatorPoly int, generatorDegree int) int {
	rem := data
	for i := 0; i < generatorDegree; i++ {
		rem = rem<<1 ^ (rem>>(generatorDegree-1))*generatorPoly
	}
	return rem
}

// EncodeFormat packs an ECC level and mask pattern into the 15-bit format
// information word, including its BCH error-correction bits and XOR mask.
func EncodeFormat(ecc ECCLevel, mask int) int {
	data := eccFormatBits(ecc)<<3 | mask
	rem := bchRemainder(data, formatGeneratorPoly, 10)
	return (data<<10 | rem) ^ formatMask
}

// DecodeFormat recovers (ecc, mask) from a 15-bit format word read off a
// symbol, tolerating up to 3 bit errors (the BCH(15,5) code's guaranteed
// correction distance) by comparing against all 32 legal codewords and
// picking the closest by Hamming distance. It fails with
// qrerror.InvalidFormat if no legal codeword is within distance 3.
func DecodeFormat(bits int) (ECCLevel, int, error) {
	bestDist := 99
	bestData := -1
	for data := 0; data < 32; data++ {
		candidate := (data<<10 | bchRemainder(data, formatGeneratorPoly, 10)) ^ formatMask
		dist := hammingDistance(candidate, bits, 15)
		if dist < bestDist {
			bestDist = dist
			bestData = data
		}
	}
	if bestDist > 3 {
		return 0, 0, qrerror.New(qrerror.InvalidFormat, "format word %015b has no legal codeword within Hamming distance 3", bits)
	}
	ecc, err := eccFromFormatBits(bestData >> 3)
	if err != nil {
		return 0, 0, err
	}
	return ecc, bestData & 0x7, nil
}

// EncodeVersion packs a version number (7..40) into the 18-bit version
// information word, including its BCH error-correction bits.
func EncodeVersion(version int) int {
	rem := bchRemainder(version, versionGeneratorPoly, 12)
	return version<<12 | rem
}

// DecodeVersion recovers a version number from an 18-bit version word read
// off a symbol, tolerating up to 3 bit errors (the BCH(18,6) code's
// guaranteed correction distance). It fails with qrerror.InvalidVersion if
// no legal codeword is within distance 3 or the recovered version is
// outside the valid 7..40 range this word format applies to.
func DecodeVersion(bits int) (int, error) {
	bestDist := 99
	bestVersion := -1
	for v := 7; v <= 40; v++ {
		candidate := EncodeVersion(v)
		dist := hammingDistance(candidate, bits, 18)
		if dist < bestDist {
			bestDist = dist
			bestVersion = v
		}
	}
	if bestDist > 3 {
		return 0, qrerror.New(qrerror.InvalidVersion, "version word %018b has no legal codeword within Hamming distance 3", bits)
	}
	return bestVersion, nil
}

func hammingDistance(a, b, bitLen int) int {
	diff := a ^ b
	count := 0
	for i := 0; i < bitLen; i++ {
		if diff&(1<<i) != 0 {
			count++
		}
	}
	return count
}
