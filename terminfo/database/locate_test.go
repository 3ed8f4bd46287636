package database

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hnimtadd/tcap/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPaths(t *testing.T) {
	tcs := []struct {
		name     string
		terminfo string
		home     string
		dirs     string
		expected []string
	}{
		{
			name:     "defaults",
			expected: systemDirs,
		},
		{
			name:     "terminfo and home",
			terminfo: "/opt/ti",
			home:     "/home/u",
			expected: append([]string{"/opt/ti", "/home/u/.terminfo"}, systemDirs...),
		},
		{
			name:     "terminfo dirs",
			dirs:     "/a:/b",
			expected: append([]string{"/a", "/b"}, systemDirs...),
		},
		{
			name:     "empty element is the system dirs",
			dirs:     "/a::/b",
			expected: append(append([]string{"/a"}, systemDirs...), "/b"),
		},
		{
			name:     "duplicates dropped",
			terminfo: "/usr/share/terminfo",
			expected: []string{"/usr/share/terminfo", "/etc/terminfo", "/lib/terminfo"},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TERMINFO", tc.terminfo)
			t.Setenv("HOME", tc.home)
			t.Setenv("TERMINFO_DIRS", tc.dirs)
			assert.Equal(t, tc.expected, SearchPaths())
		})
	}
}

func TestTermName(t *testing.T) {
	t.Setenv("TERM", "")
	assert.Equal(t, "dumb", TermName())
	t.Setenv("TERM", "xterm-256color")
	assert.Equal(t, "xterm-256color", TermName())
}

func TestLocate(t *testing.T) {
	data := xtermFixture().build()
	first := install(t, t.TempDir(), "x", "xterm-test", data)
	hexed := install(t, t.TempDir(), "78", "xterm-test", data)
	empty := t.TempDir()

	tcs := []struct {
		name     string
		dirs     []string
		expected string
	}{
		{name: "first char dir", dirs: []string{first}, expected: filepath.Join(first, "x", "xterm-test")},
		{name: "hex dir", dirs: []string{hexed}, expected: filepath.Join(hexed, "78", "xterm-test")},
		{name: "earlier dir wins", dirs: []string{empty, hexed, first}, expected: filepath.Join(hexed, "78", "xterm-test")},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			path, err := Locate("xterm-test", tc.dirs)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, path)
		})
	}

	for _, name := range []string{"", "vt100", "../x/xterm-test", ".."} {
		t.Run("missing "+name, func(t *testing.T) {
			_, err := Locate(name, []string{first, hexed, empty})
			assert.True(t, errors.Is(err, ErrNotFound))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := install(t, t.TempDir(), "x", "xterm-test", xtermFixture().build())
	install(t, dir, "j", "junk", []byte("not a terminfo entry"))

	t.Run("explicit dirs", func(t *testing.T) {
		term, err := Load("xterm-test", LoadOptions{Dirs: []string{dir}})
		require.NoError(t, err)
		assert.Equal(t, "xterm-test", term.Name)
		assert.Equal(t, 80, term.Numbers["columns"])
	})

	t.Run("TERM and TERMINFO", func(t *testing.T) {
		t.Setenv("TERM", "xterm-test")
		t.Setenv("TERMINFO", dir)
		term, err := Load("", LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "xterm-test", term.Name)
	})

	t.Run("alias keeps requested name", func(t *testing.T) {
		install(t, dir, "x", "xt", xtermFixture().build())
		term, err := Load("xt", LoadOptions{Dirs: []string{dir}})
		require.NoError(t, err)
		assert.Equal(t, "xt", term.Name)
		assert.Equal(t, "xterm-test", term.Names[0])
	})

	t.Run("not found", func(t *testing.T) {
		_, err := Load("vt52", LoadOptions{Dirs: []string{dir}})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed is logged", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.Options{Buffer: &buf, Level: logger.DebugLevel})
		_, err := Load("junk", LoadOptions{Dirs: []string{dir}, Logger: log})
		assert.ErrorIs(t, err, ErrBadMagic)
		assert.Contains(t, buf.String(), "terminfo entry is malformed")
	})
}
