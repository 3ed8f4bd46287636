// Package database locates and decodes compiled terminfo entries.
package database

import "errors"

var (
	// ErrBadMagic reports a file that is not a compiled terminfo entry.
	ErrBadMagic = errors.New("bad magic number")
	// ErrNotFound reports that no search directory holds the entry.
	ErrNotFound = errors.New("terminal description not found")
	// ErrTruncated reports a section that runs past the end of the data.
	ErrTruncated = errors.New("truncated terminal description")
)

// Terminal is one decoded terminal description. Standard capabilities are
// keyed by their long names (cursor_address), extended ones by the names
// they were compiled with. Absent and cancelled capabilities are omitted,
// and Bools holds only the capabilities that are set.
type Terminal struct {
	// Name is the name the entry was loaded under, or its primary name
	// when decoded directly.
	Name  string
	Names []string

	Bools   map[string]bool
	Numbers map[string]int
	Strings map[string]string

	// Extended lists the extended capability names in file order.
	Extended []string
}

func newTerminal() *Terminal {
	return &Terminal{
		Bools:   make(map[string]bool),
		Numbers: make(map[string]int),
		Strings: make(map[string]string),
	}
}

// Aliases returns the entry's names without the long description.
func (t *Terminal) Aliases() []string {
	if len(t.Names) < 2 {
		return t.Names
	}
	return t.Names[:len(t.Names)-1]
}

// Description returns the long description, the last name of the entry.
// It is empty when the entry has a single name.
func (t *Terminal) Description() string {
	if len(t.Names) < 2 {
		return ""
	}
	return t.Names[len(t.Names)-1]
}
