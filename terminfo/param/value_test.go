package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueForms(t *testing.T) {
	tcs := []struct {
		name    string
		value   Value
		kind    Kind
		display string
		quoted  string
		numeric int32
		numOK   bool
		truthy  bool
		length  int
	}{
		{name: "zero", value: Value{}, kind: KindInteger, display: "0", quoted: "0", numeric: 0, numOK: true, truthy: false, length: 1},
		{name: "negative", value: Int(-17), kind: KindInteger, display: "-17", quoted: "-17", numeric: -17, numOK: true, truthy: true, length: 3},
		{name: "character", value: Char('A'), kind: KindCharacter, display: "A", quoted: "'A'", numeric: 65, numOK: true, truthy: true, length: 1},
		{name: "nul character", value: Char(0), kind: KindCharacter, display: "\x00", quoted: "'\x00'", numeric: 0, numOK: true, truthy: false, length: 1},
		{name: "text", value: Text("abc"), kind: KindText, display: "abc", quoted: `"abc"`, numOK: false, truthy: true, length: 3},
		{name: "empty text", value: Text(""), kind: KindText, display: "", quoted: `""`, numOK: false, truthy: false, length: 0},
		{name: "nul-led text", value: Text("\x00z"), kind: KindText, display: "\x00z", quoted: "\"\x00z\"", numOK: false, truthy: false, length: 2},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.value.Kind())
			assert.Equal(t, tc.display, tc.value.String())
			assert.Equal(t, tc.quoted, tc.value.Quoted())
			n, ok := tc.value.Numeric()
			assert.Equal(t, tc.numOK, ok)
			assert.Equal(t, tc.numeric, n)
			assert.Equal(t, tc.truthy, tc.value.Truthy())
			assert.Equal(t, tc.length, tc.value.Len())
		})
	}
}

func TestValueAccessors(t *testing.T) {
	n, ok := Int(3).Int32()
	assert.True(t, ok)
	assert.EqualValues(t, 3, n)

	_, ok = Char('x').Int32()
	assert.False(t, ok)

	c, ok := Char('x').Byte()
	assert.True(t, ok)
	assert.EqualValues(t, 'x', c)

	s, ok := Text("hi").Str()
	assert.True(t, ok)
	assert.Equal(t, "hi", s)

	// Int truncates to 32 bits
	n, _ = Int(1 << 32).Int32()
	assert.EqualValues(t, 0, n)

	assert.Equal(t, "text", KindText.String())
}
