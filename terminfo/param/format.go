package param

import (
	"strconv"
)

// appendText writes s under f: precision truncates, then width pads.
func appendText(dst []byte, f Field, s string) []byte {
	if f.Precision >= 0 && len(s) > f.Precision {
		s = s[:f.Precision]
	}
	return pad(dst, f, s)
}

// appendNumber writes v as a decimal, hex or octal number under f. Text
// operands print as 0. Hex and octal show negative values in their unsigned
// 32-bit form.
func appendNumber(dst []byte, op Op, f Field, v Value) []byte {
	n, _ := v.Numeric()

	var buf [16]byte
	body := buf[:0]
	if f.Sign && n >= 0 {
		body = append(body, '+')
	}
	switch op {
	case OpWriteHex, OpWriteHexUpper:
		if f.Alt && n != 0 {
			if op == OpWriteHexUpper {
				body = append(body, '0', 'X')
			} else {
				body = append(body, '0', 'x')
			}
		}
		start := len(body)
		body = strconv.AppendUint(body, uint64(uint32(n)), 16)
		if op == OpWriteHexUpper {
			upper(body[start:])
		}
	case OpWriteOct:
		if f.Alt && n != 0 {
			body = append(body, '0')
		}
		body = strconv.AppendUint(body, uint64(uint32(n)), 8)
	default:
		body = strconv.AppendInt(body, int64(n), 10)
	}
	return pad(dst, f, string(body))
}

func upper(b []byte) {
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - 'a' + 'A'
		}
	}
}

func pad(dst []byte, f Field, s string) []byte {
	fill := f.Width - len(s)
	if fill <= 0 {
		return append(dst, s...)
	}
	if f.Left {
		dst = append(dst, s...)
	}
	for range fill {
		dst = append(dst, ' ')
	}
	if !f.Left {
		dst = append(dst, s...)
	}
	return dst
}
