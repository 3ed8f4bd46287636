package tcap

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// lookupEncoding resolves an encoding name. UTF-8 resolves to nil: text
// arguments are already UTF-8 and are passed through byte for byte.
// Names are tried against the IANA registry, then the MIME names, then the
// display names of the single-byte charmaps ("IBM Code Page 437").
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	for _, index := range []*ianaindex.Index{ianaindex.IANA, ianaindex.MIME} {
		enc, err := index.Encoding(name)
		if err == nil && enc != nil {
			if enc == unicode.UTF8 {
				return nil, nil
			}
			return enc, nil
		}
	}
	for _, enc := range charmap.All {
		if cm, ok := enc.(*charmap.Charmap); ok && strings.EqualFold(cm.String(), name) {
			return cm, nil
		}
	}
	return nil, fmt.Errorf("unknown encoding %q", name)
}
