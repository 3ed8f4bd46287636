package caps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableSizes(t *testing.T) {
	assert.Len(t, Booleans, 44)
	assert.Len(t, Numbers, 39)
	assert.Len(t, Strings, 414)
}

func TestTableOrder(t *testing.T) {
	tcs := []struct {
		name     string
		table    []Name
		index    int
		expected Name
	}{
		{name: "first bool", table: Booleans, index: 0, expected: Name{"auto_left_margin", "bw"}},
		{name: "back color erase", table: Booleans, index: 28, expected: Name{"back_color_erase", "bce"}},
		{name: "columns", table: Numbers, index: 0, expected: Name{"columns", "cols"}},
		{name: "max colors", table: Numbers, index: 13, expected: Name{"max_colors", "colors"}},
		{name: "cursor address", table: Strings, index: 10, expected: Name{"cursor_address", "cup"}},
		{name: "sgr0", table: Strings, index: 39, expected: Name{"exit_attribute_mode", "sgr0"}},
		{name: "sgr", table: Strings, index: 131, expected: Name{"set_attributes", "sgr"}},
		{name: "f11", table: Strings, index: 216, expected: Name{"key_f11", "kf11"}},
		{name: "f63", table: Strings, index: 268, expected: Name{"key_f63", "kf63"}},
		{name: "setaf", table: Strings, index: 359, expected: Name{"set_a_foreground", "setaf"}},
		{name: "last string", table: Strings, index: 413, expected: Name{"box_chars_1", "box1"}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.table[tc.index])
		})
	}
}

func TestLookup(t *testing.T) {
	tcs := []struct {
		name         string
		expectedLong string
		expectedKind Kind
		expectedOK   bool
	}{
		{name: "cup", expectedLong: "cursor_address", expectedKind: KindString, expectedOK: true},
		{name: "cursor_address", expectedLong: "cursor_address", expectedKind: KindString, expectedOK: true},
		{name: "am", expectedLong: "auto_right_margin", expectedKind: KindBool, expectedOK: true},
		{name: "colors", expectedLong: "max_colors", expectedKind: KindNumber, expectedOK: true},
		{name: "lines", expectedLong: "lines", expectedKind: KindNumber, expectedOK: true},
		{name: "Smulx", expectedKind: KindUnknown},
		{name: "", expectedKind: KindUnknown},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			long, kind, ok := Lookup(tc.name)
			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expectedLong, long)
			assert.Equal(t, tc.expectedKind, kind)
		})
	}
}

func TestNamesAreUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, table := range [][]Name{Booleans, Numbers, Strings} {
		for _, n := range table {
			for _, key := range []string{n.Long, n.Short} {
				if prev, ok := seen[key]; ok {
					assert.Equal(t, prev, n.Long, "name %q is shared", key)
				}
				seen[key] = n.Long
			}
		}
	}
}

func TestCanonicalAndShort(t *testing.T) {
	assert.Equal(t, "set_a_foreground", Canonical("setaf"))
	assert.Equal(t, "set_a_foreground", Canonical("set_a_foreground"))
	assert.Equal(t, "RGB", Canonical("RGB"))

	assert.Equal(t, "setaf", Short("set_a_foreground"))
	assert.Equal(t, "", Short("setaf"))
	assert.Equal(t, "", Short("RGB"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
