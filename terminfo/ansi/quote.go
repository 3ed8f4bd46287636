package ansi

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Quote renders s the way infocmp prints string capabilities: ESC as \E,
// other C0 controls in caret notation, DEL as ^?, bytes above 0x7F as
// three-digit octal escapes, and the metacharacters \ ^ , escaped.
func Quote(s string) string {
	b := new(strings.Builder)
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == C0.ESC:
			b.WriteString(`\E`)
		case c == C0.NUL:
			b.WriteString(`\200`)
		case c == '\\', c == '^', c == ',':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20:
			b.WriteByte('^')
			b.WriteByte(c + '@')
		case c == C0.DEL:
			b.WriteString("^?")
		case c > C0.DEL:
			b.WriteByte('\\')
			o := strconv.FormatUint(uint64(c), 8)
			b.WriteString(strings.Repeat("0", 3-len(o)))
			b.WriteString(o)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// PadRight pads s with spaces to width display cells. Strings already at
// least that wide are returned unchanged.
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Width is the number of display cells s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
