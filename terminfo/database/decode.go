package database

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/hnimtadd/tcap/terminfo/caps"
)

const (
	magicLegacy = 0o432  // 16-bit numbers
	magicWide   = 0o1036 // 32-bit numbers
)

type reader struct {
	buf []byte
	pos int
	err error
}

func (r *reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.pos+n > len(r.buf) {
		r.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, r.pos, len(r.buf)-r.pos)
		return nil
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *reader) short() int {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return int(int16(binary.LittleEndian.Uint16(b)))
}

func (r *reader) number(wide bool) int {
	if !wide {
		return r.short()
	}
	b := r.take(4)
	if b == nil {
		return 0
	}
	return int(int32(binary.LittleEndian.Uint32(b)))
}

// align skips the pad byte that keeps the next section on an even offset.
func (r *reader) align() {
	if r.pos%2 != 0 && r.pos < len(r.buf) {
		r.pos++
	}
}

func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

// Decode parses a compiled terminfo entry. Both the legacy format and the
// 32-bit number format are accepted; the extended section is merged into
// the same maps when present.
func Decode(data []byte) (*Terminal, error) {
	r := &reader{buf: data}
	magic := r.short()
	if r.err != nil {
		return nil, r.err
	}
	var wide bool
	switch magic {
	case magicLegacy:
	case magicWide:
		wide = true
	default:
		return nil, fmt.Errorf("%w: %#o", ErrBadMagic, uint16(magic))
	}

	nameSize := r.short()
	boolCount := r.short()
	numCount := r.short()
	strCount := r.short()
	tableSize := r.short()
	if r.err != nil {
		return nil, r.err
	}

	t := newTerminal()

	names := r.take(nameSize)
	if i := bytes.IndexByte(names, 0); i >= 0 {
		names = names[:i]
	}
	if len(names) > 0 {
		t.Names = strings.Split(string(names), "|")
		t.Name = t.Names[0]
	}

	for i, b := range r.take(boolCount) {
		if i < len(caps.Booleans) && b == 1 {
			t.Bools[caps.Booleans[i].Long] = true
		}
	}
	r.align()

	for i := range max(numCount, 0) {
		n := r.number(wide)
		if i < len(caps.Numbers) && n >= 0 {
			t.Numbers[caps.Numbers[i].Long] = n
		}
	}

	offsets := make([]int, max(strCount, 0))
	for i := range offsets {
		offsets[i] = r.short()
	}
	table := r.take(tableSize)
	if r.err != nil {
		return nil, r.err
	}
	for i, off := range offsets {
		if off < 0 || i >= len(caps.Strings) {
			continue
		}
		s, err := cstring(table, off)
		if err != nil {
			return nil, fmt.Errorf("string capability %s: %w", caps.Strings[i].Long, err)
		}
		t.Strings[caps.Strings[i].Long] = s
	}

	r.align()
	if r.remaining() > 0 {
		if err := decodeExtended(r, t, wide); err != nil {
			return nil, fmt.Errorf("extended section: %w", err)
		}
	}
	return t, nil
}

// decodeExtended reads the user-defined capabilities. Their names are stored
// in the string table after the last string value, and the name offsets are
// relative to the start of that area.
func decodeExtended(r *reader, t *Terminal, wide bool) error {
	boolCount := r.short()
	numCount := r.short()
	strCount := r.short()
	offCount := r.short()
	tableSize := r.short()
	if r.err != nil {
		return r.err
	}
	if boolCount < 0 || numCount < 0 || strCount < 0 || offCount < boolCount+numCount+2*strCount {
		return fmt.Errorf("%w: inconsistent extended header", ErrTruncated)
	}

	bools := r.take(boolCount)
	r.align()
	nums := make([]int, numCount)
	for i := range nums {
		nums[i] = r.number(wide)
	}
	offsets := make([]int, offCount)
	for i := range offsets {
		offsets[i] = r.short()
	}
	table := r.take(tableSize)
	if r.err != nil {
		return r.err
	}

	values := make([]string, strCount)
	set := make([]bool, strCount)
	namesAt := 0
	for i := range strCount {
		off := offsets[i]
		if off < 0 {
			continue
		}
		s, err := cstring(table, off)
		if err != nil {
			return err
		}
		values[i], set[i] = s, true
		namesAt = max(namesAt, off+len(s)+1)
	}

	nameOffsets := offsets[strCount:]
	name := func(i int) (string, error) {
		return cstring(table, namesAt+nameOffsets[i])
	}

	for i, b := range bools {
		n, err := name(i)
		if err != nil {
			return err
		}
		t.Extended = append(t.Extended, n)
		if b == 1 {
			t.Bools[n] = true
		}
	}
	for i, v := range nums {
		n, err := name(boolCount + i)
		if err != nil {
			return err
		}
		t.Extended = append(t.Extended, n)
		if v >= 0 {
			t.Numbers[n] = v
		}
	}
	for i, v := range values {
		n, err := name(boolCount + numCount + i)
		if err != nil {
			return err
		}
		t.Extended = append(t.Extended, n)
		if set[i] {
			t.Strings[n] = v
		}
	}
	return nil
}

func cstring(table []byte, off int) (string, error) {
	if off < 0 || off >= len(table) {
		return "", fmt.Errorf("%w: string offset %d outside table of %d bytes", ErrTruncated, off, len(table))
	}
	end := bytes.IndexByte(table[off:], 0)
	if end < 0 {
		return "", fmt.Errorf("%w: unterminated string at offset %d", ErrTruncated, off)
	}
	return string(table[off : off+end]), nil
}
