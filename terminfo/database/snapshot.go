package database

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

const snapshotVersion = 1

// ErrSnapshotVersion reports a snapshot written by an incompatible version.
var ErrSnapshotVersion = errors.New("unsupported snapshot version")

type snapshot struct {
	Version  int               `cbor:"1,keyasint"`
	Name     string            `cbor:"2,keyasint"`
	Names    []string          `cbor:"3,keyasint,omitempty"`
	Bools    map[string]bool   `cbor:"4,keyasint,omitempty"`
	Numbers  map[string]int    `cbor:"5,keyasint,omitempty"`
	Strings  map[string]string `cbor:"6,keyasint,omitempty"`
	Extended []string          `cbor:"7,keyasint,omitempty"`
}

// canonical encoding keeps snapshots of equal descriptions byte-identical
var snapshotEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("database: failed to create CBOR enc mode: %v", err))
	}
	snapshotEncMode = em
}

// MarshalSnapshot serializes a decoded description to CBOR, so it can be
// cached without the terminfo tree it came from.
func MarshalSnapshot(t *Terminal) ([]byte, error) {
	return snapshotEncMode.Marshal(snapshot{
		Version:  snapshotVersion,
		Name:     t.Name,
		Names:    t.Names,
		Bools:    t.Bools,
		Numbers:  t.Numbers,
		Strings:  t.Strings,
		Extended: t.Extended,
	})
}

// UnmarshalSnapshot restores a description written by MarshalSnapshot.
func UnmarshalSnapshot(data []byte) (*Terminal, error) {
	var s snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("database: unmarshal snapshot: %w", err)
	}
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, s.Version)
	}
	t := newTerminal()
	t.Name = s.Name
	t.Names = s.Names
	t.Extended = s.Extended
	for k, v := range s.Bools {
		t.Bools[k] = v
	}
	for k, v := range s.Numbers {
		t.Numbers[k] = v
	}
	for k, v := range s.Strings {
		t.Strings[k] = v
	}
	return t, nil
}
