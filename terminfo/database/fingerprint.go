package database

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

type capabilities struct {
	Bools   map[string]bool
	Numbers map[string]int
	Strings map[string]string
}

// Fingerprint hashes the capability values of t. Entries that differ only
// in their names, such as aliases compiled to separate files, share a
// fingerprint.
func (t *Terminal) Fingerprint() (uint64, error) {
	h, err := hashstructure.Hash(capabilities{
		Bools:   t.Bools,
		Numbers: t.Numbers,
		Strings: t.Strings,
	}, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("fingerprint %s: %w", t.Name, err)
	}
	return h, nil
}
