package bitdecode

import (
	"strings"

	"github.com/jalphad/qrdecode/internal/qrtables"
	"github.com/jalphad/qrdecode/qrerror"
)

// bitReader walks a byte slice bit by bit, most significant bit first.
type bitReader struct {
	data []byte
	pos  int // bit offset
}

func (r *bitReader) remaining() int { return len(r.data)*8 - r.pos }

func (r *bitReader) read(n int) (int, bool) {
	if r.remaining() < n {
		return 0, false
	}
	v := 0
	for i := 0; i < n; i++ {
		byteIdx := r.pos / 8
		bitIdx := 7 - r.pos%8
		bit := (r.data[byteIdx] >> bitIdx) & 1
		v = v<<1 | int(bit)
		r.pos++
	}
	return v, true
}

type sizeType int

const (
	sizeSmall  sizeType = iota // versions 1-9
	sizeMedium                 // versions 10-26
	sizeLarge                  // versions 27-40
)

func sizeTypeOf(version int) sizeType {
	switch {
	case version <= 9:
		return sizeSmall
	case version <= 26:
		return sizeMedium
	default:
		return sizeLarge
	}
}

// lengthBits returns the character-count field width for a mode at the
// given size type, per ISO 18004 Table 3. mode is the 4-bit mode
// indicator value.
func lengthBits(mode int, st sizeType) (int, error) {
	table := map[int][3]int{
		0b0001: {10, 12, 14}, // numeric
		0b0010: {9, 11, 13},  // alphanumeric
		0b0100: {8, 16, 16},  // byte
		0b1000: {8, 10, 12},  // kanji
		0b0111: {0, 0, 0},    // eci
	}
	row, ok := table[mode]
	if !ok {
		return 0, qrerror.New(qrerror.Decode, "mode %04b has no length-bits entry", mode)
	}
	return row[st], nil
}

// ParseSegments decodes the data-codeword stream (already de-interleaved
// and error-corrected) into text, reading mode/length/payload segments
// left to right until a terminator or an exhausted buffer.
func ParseSegments(data []byte, version int) (string, error) {
	r := &bitReader{data: data}
	st := sizeTypeOf(version)
	var out strings.Builder

	for {
		if r.remaining() < 4 {
			break
		}
		mode, _ := r.read(4)
		if mode == 0b0000 {
			break
		}

		nBits, err := lengthBits(mode, st)
		if err != nil {
			return "", err
		}
		count, ok := r.read(nBits)
		if !ok {
			return "", qrerror.New(qrerror.Decode, "truncated character count field")
		}

		switch mode {
		case 0b0001:
			if err := decodeNumeric(r, count, &out); err != nil {
				return "", err
			}
		case 0b0010:
			if err := decodeAlphanumeric(r, count, &out); err != nil {
				return "", err
			}
		case 0b0100:
			if err := decodeByte(r, count, &out); err != nil {
				return "", err
			}
		case 0b1000, 0b0111:
			return "", qrerror.New(qrerror.Decode, "mode %04b (Kanji/ECI) is unsupported", mode)
		default:
			return "", qrerror.New(qrerror.Decode, "unknown mode %04b", mode)
		}
	}
	return out.String(), nil
}

func decodeNumeric(r *bitReader, count int, out *strings.Builder) error {
	remaining := count
	for remaining >= 3 {
		v, ok := r.read(10)
		if !ok || v >= 1000 {
			return qrerror.New(qrerror.Decode, "invalid numeric group")
		}
		out.WriteString(padNumber(v, 3))
		remaining -= 3
	}
	if remaining == 2 {
		v, ok := r.read(7)
		if !ok || v >= 100 {
			return qrerror.New(qrerror.Decode, "invalid trailing 2-digit numeric group")
		}
		out.WriteString(padNumber(v, 2))
	} else if remaining == 1 {
		v, ok := r.read(4)
		if !ok || v >= 10 {
			return qrerror.New(qrerror.Decode, "invalid trailing 1-digit numeric group")
		}
		out.WriteString(padNumber(v, 1))
	}
	return nil
}

func padNumber(v, digits int) string {
	s := itoa(v)
	for len(s) < digits {
		s = "0" + s
	}
	return s
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var digits []byte
	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	return string(digits)
}

func decodeAlphanumeric(r *bitReader, count int, out *strings.Builder) error {
	remaining := count
	for remaining >= 2 {
		v, ok := r.read(11)
		if !ok {
			return qrerror.New(qrerror.Decode, "truncated alphanumeric pair")
		}
		hi, lo := v/45, v%45
		ch1, err := qrtables.AlphanumericChar(hi)
		if err != nil {
			return err
		}
		ch2, err := qrtables.AlphanumericChar(lo)
		if err != nil {
			return err
		}
		out.WriteByte(ch1)
		out.WriteByte(ch2)
		remaining -= 2
	}
	if remaining == 1 {
		v, ok := r.read(6)
		if !ok {
			return qrerror.New(qrerror.Decode, "truncated trailing alphanumeric character")
		}
		ch, err := qrtables.AlphanumericChar(v)
		if err != nil {
			return err
		}
		out.WriteByte(ch)
	}
	return nil
}

func decodeByte(r *bitReader, count int, out *strings.Builder) error {
	bytes := make([]byte, count)
	for i := 0; i < count; i++ {
		v, ok := r.read(8)
		if !ok {
			return qrerror.New(qrerror.Decode, "truncated byte-mode payload")
		}
		bytes[i] = byte(v)
	}
	out.Write(bytes)
	return nil
}
