package param

import (
	"strconv"
)

// Kind tags the active variant of a Value.
type Kind uint8

const (
	KindInteger Kind = iota
	KindCharacter
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindCharacter:
		return "character"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Value is an operand of the parameterized-string language. Exactly one of
// the integer, character or text fields is meaningful, selected by kind. The
// zero Value is Integer(0).
type Value struct {
	kind Kind
	i    int32
	c    byte
	s    string
}

// Int returns an Integer value. n is truncated to 32 bits.
func Int(n int) Value { return Value{kind: KindInteger, i: int32(n)} }

// Char returns a Character value.
func Char(c byte) Value { return Value{kind: KindCharacter, c: c} }

// Text returns a Text value holding the bytes of s.
func Text(s string) Value { return Value{kind: KindText, s: s} }

func (v Value) Kind() Kind { return v.kind }

// Int32 returns the integer payload and whether v is an Integer.
func (v Value) Int32() (int32, bool) { return v.i, v.kind == KindInteger }

// Byte returns the character payload and whether v is a Character.
func (v Value) Byte() (byte, bool) { return v.c, v.kind == KindCharacter }

// Str returns the text payload and whether v is Text.
func (v Value) Str() (string, bool) { return v.s, v.kind == KindText }

// String returns the display form: decimal digits, a single byte, or the
// text itself.
func (v Value) String() string {
	switch v.kind {
	case KindCharacter:
		return string([]byte{v.c})
	case KindText:
		return v.s
	default:
		return strconv.FormatInt(int64(v.i), 10)
	}
}

// Numeric coerces v for arithmetic, bitwise and relational operators. Text
// has no numeric form.
func (v Value) Numeric() (int32, bool) {
	switch v.kind {
	case KindInteger:
		return v.i, true
	case KindCharacter:
		return int32(v.c), true
	default:
		return 0, false
	}
}

// Truthy reports the value as seen by %t, %! and the boolean operators.
// Text is true when it is non-empty and does not start with NUL.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindCharacter:
		return v.c != 0
	case KindText:
		return len(v.s) > 0 && v.s[0] != 0
	default:
		return v.i != 0
	}
}

// Len is the %l length: byte length of text, 1 for a character and the
// length of the decimal form for an integer.
func (v Value) Len() int {
	switch v.kind {
	case KindCharacter:
		return 1
	case KindText:
		return len(v.s)
	default:
		return len(strconv.FormatInt(int64(v.i), 10))
	}
}

// Quoted is the form used in error messages: text in double quotes,
// characters in single quotes, integers bare.
func (v Value) Quoted() string {
	switch v.kind {
	case KindCharacter:
		return "'" + string([]byte{v.c}) + "'"
	case KindText:
		return `"` + v.s + `"`
	default:
		return strconv.FormatInt(int64(v.i), 10)
	}
}
