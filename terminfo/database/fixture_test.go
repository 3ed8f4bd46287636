package database

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// string table markers for the fixture builder
const (
	absentCap    = "\xff<absent>"
	cancelledCap = "\xff<cancelled>"
)

type extBool struct {
	name  string
	value byte
}

type extNum struct {
	name  string
	value int32
}

type extStr struct {
	name  string
	value string
}

type extFixture struct {
	bools []extBool
	nums  []extNum
	strs  []extStr
}

// fixture describes a compiled entry and writes it in the on-disk layout.
type fixture struct {
	names string
	bools []byte
	nums  []int32
	strs  []string
	wide  bool
	ext   *extFixture
}

func (f fixture) build() []byte {
	var b bytes.Buffer
	le := func(v any) {
		if err := binary.Write(&b, binary.LittleEndian, v); err != nil {
			panic(err)
		}
	}
	number := func(n int32) {
		if f.wide {
			le(n)
		} else {
			le(int16(n))
		}
	}
	pad := func() {
		if b.Len()%2 != 0 {
			b.WriteByte(0)
		}
	}

	magic := int16(magicLegacy)
	if f.wide {
		magic = magicWide
	}
	names := f.names + "\x00"
	table, offsets := stringTable(f.strs)

	le(magic)
	le(int16(len(names)))
	le(int16(len(f.bools)))
	le(int16(len(f.nums)))
	le(int16(len(f.strs)))
	le(int16(len(table)))
	b.WriteString(names)
	b.Write(f.bools)
	pad()
	for _, n := range f.nums {
		number(n)
	}
	for _, off := range offsets {
		le(off)
	}
	b.Write(table)

	if f.ext == nil {
		return b.Bytes()
	}
	pad()

	e := f.ext
	values := make([]string, len(e.strs))
	for i, s := range e.strs {
		values[i] = s.value
	}
	valueTable, valueOffsets := stringTable(values)
	var nameTable []byte
	var nameOffsets []int16
	addName := func(n string) {
		nameOffsets = append(nameOffsets, int16(len(nameTable)))
		nameTable = append(append(nameTable, n...), 0)
	}
	for _, v := range e.bools {
		addName(v.name)
	}
	for _, v := range e.nums {
		addName(v.name)
	}
	for _, v := range e.strs {
		addName(v.name)
	}

	le(int16(len(e.bools)))
	le(int16(len(e.nums)))
	le(int16(len(e.strs)))
	le(int16(len(valueOffsets) + len(nameOffsets)))
	le(int16(len(valueTable) + len(nameTable)))
	for _, v := range e.bools {
		b.WriteByte(v.value)
	}
	pad()
	for _, v := range e.nums {
		number(v.value)
	}
	for _, off := range valueOffsets {
		le(off)
	}
	for _, off := range nameOffsets {
		le(off)
	}
	b.Write(valueTable)
	b.Write(nameTable)
	return b.Bytes()
}

func stringTable(strs []string) ([]byte, []int16) {
	var table []byte
	offsets := make([]int16, len(strs))
	for i, s := range strs {
		switch s {
		case absentCap:
			offsets[i] = -1
		case cancelledCap:
			offsets[i] = -2
		default:
			offsets[i] = int16(len(table))
			table = append(append(table, s...), 0)
		}
	}
	return table, offsets
}

// stringsAt lays values out by capability index, leaving the gaps absent.
func stringsAt(values map[int]string) []string {
	n := 0
	for i := range values {
		n = max(n, i+1)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = absentCap
	}
	for i, v := range values {
		out[i] = v
	}
	return out
}

// xtermFixture is a small xterm-like entry.
func xtermFixture() fixture {
	return fixture{
		names: "xterm-test|xt|test terminal",
		// bw, am, xsb, xhp, xenl
		bools: []byte{0, 1, 0, 0, 1},
		// cols, it, lines, lm, xmc
		nums: []int32{80, 8, 24, -1, -2},
		strs: stringsAt(map[int]string{
			1:  "\a",
			5:  "\x1b[H\x1b[2J",
			10: "\x1b[%i%p1%d;%p2%dH",
			27: "\x1b[1m",
			39: cancelledCap,
		}),
	}
}

// install writes data as dir/<sub>/<name> and returns dir.
func install(t *testing.T, dir, sub, name string, data []byte) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, sub), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, sub, name), data, 0o644))
	return dir
}
