package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// SGR (Select Graphic Rendition) parameter decoding.
//
// This is implemented based on: https://vt100.net/docs/vt510-rm/SGR.html
// with the colon sub-parameter forms from ITU T.416 that xterm and kitty
// accept for underline styles and colors.

type AttributeType uint8

const (
	AttributeReset AttributeType = iota
	AttributeBold
	AttributeFaint
	AttributeItalic
	AttributeUnderline
	AttributeBlink
	AttributeInverse
	AttributeInvisible
	AttributeStrikethrough
	AttributeOverline

	// 22 clears both bold and faint.
	AttributeResetIntensity
	AttributeResetItalic
	AttributeResetUnderline
	AttributeResetBlink
	AttributeResetInverse
	AttributeResetInvisible
	AttributeResetStrikethrough
	AttributeResetOverline

	AttributeFg
	AttributeBg
	AttributeUnderlineColor
	AttributeResetFg
	AttributeResetBg
	AttributeResetUnderlineColor

	AttributeUnknown
)

type UnderlineType uint8

const (
	UnderlineNone UnderlineType = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

var underlineNames = [...]string{"none", "single", "double", "curly", "dotted", "dashed"}

func (u UnderlineType) String() string {
	if int(u) < len(underlineNames) {
		return underlineNames[u]
	}
	return "unknown"
}

// Color is an SGR color operand: a palette index or a direct RGB value.
type Color struct {
	Direct  bool
	Index   uint8
	R, G, B uint8
}

func (c Color) String() string {
	if c.Direct {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return strconv.Itoa(int(c.Index))
}

type Attribute struct {
	Type      AttributeType
	Underline UnderlineType
	Color     Color
	// Params holds the values of an unknown attribute.
	Params []uint16
}

var attributeNames = map[AttributeType]string{
	AttributeReset:               "reset",
	AttributeBold:                "bold",
	AttributeFaint:               "faint",
	AttributeItalic:              "italic",
	AttributeBlink:               "blink",
	AttributeInverse:             "inverse",
	AttributeInvisible:           "invisible",
	AttributeStrikethrough:       "strikethrough",
	AttributeOverline:            "overline",
	AttributeResetIntensity:      "normal intensity",
	AttributeResetItalic:         "no italic",
	AttributeResetUnderline:      "no underline",
	AttributeResetBlink:          "no blink",
	AttributeResetInverse:        "no inverse",
	AttributeResetInvisible:      "visible",
	AttributeResetStrikethrough:  "no strikethrough",
	AttributeResetOverline:       "no overline",
	AttributeResetFg:             "default fg",
	AttributeResetBg:             "default bg",
	AttributeResetUnderlineColor: "default underline color",
}

func (a Attribute) String() string {
	switch a.Type {
	case AttributeUnderline:
		if a.Underline == UnderlineSingle {
			return "underline"
		}
		return a.Underline.String() + " underline"
	case AttributeFg:
		return "fg " + a.Color.String()
	case AttributeBg:
		return "bg " + a.Color.String()
	case AttributeUnderlineColor:
		return "underline color " + a.Color.String()
	case AttributeUnknown:
		vals := make([]string, len(a.Params))
		for i, v := range a.Params {
			vals[i] = strconv.Itoa(int(v))
		}
		return "unknown " + strings.Join(vals, ":")
	}
	if name, ok := attributeNames[a.Type]; ok {
		return name
	}
	return "unknown"
}

// ParseSGR decodes the parameter string of a CSI ... m sequence. It reports
// false when params is not an SGR parameter list, for example when it
// carries a private marker.
func ParseSGR(params string) ([]Attribute, bool) {
	groups, ok := splitParams(params)
	if !ok {
		return nil, false
	}
	p := &sgrParser{groups: groups}
	var attrs []Attribute
	for p.idx < len(p.groups) {
		attrs = append(attrs, p.next())
	}
	return attrs, true
}

// DescribeSGR returns one description per attribute in params, or nil when
// params cannot be decoded.
func DescribeSGR(params string) []string {
	attrs, ok := ParseSGR(params)
	if !ok {
		return nil
	}
	out := make([]string, len(attrs))
	for i, a := range attrs {
		out[i] = a.String()
	}
	return out
}

// splitParams splits params on ';'. Values joined by ':' stay in one
// group. Empty values read as 0 and an empty list as a single 0.
func splitParams(params string) ([][]uint16, bool) {
	if params == "" {
		return [][]uint16{{0}}, true
	}
	var groups [][]uint16
	for _, field := range strings.Split(params, ";") {
		var group []uint16
		for _, sub := range strings.Split(field, ":") {
			if sub == "" {
				group = append(group, 0)
				continue
			}
			n, err := strconv.ParseUint(sub, 10, 16)
			if err != nil {
				return nil, false
			}
			group = append(group, uint16(n))
		}
		groups = append(groups, group)
	}
	return groups, true
}

type sgrParser struct {
	groups [][]uint16
	idx    int
}

// Based on: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
func (p *sgrParser) next() Attribute {
	group := p.groups[p.idx]
	p.idx++

	if len(group) > 1 {
		return colonForm(group)
	}

	switch v := group[0]; {
	case v == 0:
		return Attribute{Type: AttributeReset}
	case v == 1:
		return Attribute{Type: AttributeBold}
	case v == 2:
		return Attribute{Type: AttributeFaint}
	case v == 3:
		return Attribute{Type: AttributeItalic}
	case v == 4:
		return Attribute{Type: AttributeUnderline, Underline: UnderlineSingle}
	case v == 5, v == 6:
		return Attribute{Type: AttributeBlink}
	case v == 7:
		return Attribute{Type: AttributeInverse}
	case v == 8:
		return Attribute{Type: AttributeInvisible}
	case v == 9:
		return Attribute{Type: AttributeStrikethrough}
	case v == 21:
		return Attribute{Type: AttributeUnderline, Underline: UnderlineDouble}
	case v == 22:
		return Attribute{Type: AttributeResetIntensity}
	case v == 23:
		return Attribute{Type: AttributeResetItalic}
	case v == 24:
		return Attribute{Type: AttributeResetUnderline}
	case v == 25:
		return Attribute{Type: AttributeResetBlink}
	case v == 27:
		return Attribute{Type: AttributeResetInverse}
	case v == 28:
		return Attribute{Type: AttributeResetInvisible}
	case v == 29:
		return Attribute{Type: AttributeResetStrikethrough}
	case v >= 30 && v <= 37:
		return Attribute{Type: AttributeFg, Color: Color{Index: uint8(v - 30)}}
	case v == 38, v == 48, v == 58:
		return p.extendedColor(v)
	case v == 39:
		return Attribute{Type: AttributeResetFg}
	case v >= 40 && v <= 47:
		return Attribute{Type: AttributeBg, Color: Color{Index: uint8(v - 40)}}
	case v == 49:
		return Attribute{Type: AttributeResetBg}
	case v == 53:
		return Attribute{Type: AttributeOverline}
	case v == 55:
		return Attribute{Type: AttributeResetOverline}
	case v == 59:
		return Attribute{Type: AttributeResetUnderlineColor}
	case v >= 90 && v <= 97:
		return Attribute{Type: AttributeFg, Color: Color{Index: uint8(v - 90 + 8)}}
	case v >= 100 && v <= 107:
		return Attribute{Type: AttributeBg, Color: Color{Index: uint8(v - 100 + 8)}}
	}
	return Attribute{Type: AttributeUnknown, Params: group}
}

func colorType(v uint16) AttributeType {
	switch v {
	case 38:
		return AttributeFg
	case 48:
		return AttributeBg
	default:
		return AttributeUnderlineColor
	}
}

// extendedColor reads the semicolon form 38;5;n or 38;2;r;g;b. The
// selector has been consumed.
func (p *sgrParser) extendedColor(v uint16) Attribute {
	rest := p.singles()
	switch {
	case len(rest) >= 2 && rest[0] == 5:
		p.idx += 2
		return Attribute{Type: colorType(v), Color: indexed(rest[1])}
	case len(rest) >= 4 && rest[0] == 2:
		p.idx += 4
		return Attribute{Type: colorType(v), Color: direct(rest[1], rest[2], rest[3])}
	}
	// the operands are missing; swallow what is there
	p.idx += len(rest)
	return Attribute{Type: AttributeUnknown, Params: append([]uint16{v}, rest...)}
}

// singles returns the plain values that follow, up to the next colon group.
// At most four are needed by any color form.
func (p *sgrParser) singles() []uint16 {
	var vals []uint16
	for i := p.idx; i < len(p.groups) && len(vals) < 4; i++ {
		if len(p.groups[i]) != 1 {
			break
		}
		vals = append(vals, p.groups[i][0])
	}
	return vals
}

func colonForm(group []uint16) Attribute {
	switch group[0] {
	case 4:
		// based on: https://gitlab.com/gnachman/iterm2/-/issues/6382
		if len(group) != 2 {
			break
		}
		switch n := group[1]; {
		case n == 0:
			return Attribute{Type: AttributeResetUnderline}
		case n <= uint16(UnderlineDashed):
			return Attribute{Type: AttributeUnderline, Underline: UnderlineType(n)}
		default:
			// unknown styles render as a single underline
			return Attribute{Type: AttributeUnderline, Underline: UnderlineSingle}
		}
	case 38, 48, 58:
		typ := colorType(group[0])
		switch {
		case group[1] == 5 && len(group) == 3:
			return Attribute{Type: typ, Color: indexed(group[2])}
		case group[1] == 2 && len(group) == 5:
			return Attribute{Type: typ, Color: direct(group[2], group[3], group[4])}
		case group[1] == 2 && len(group) == 6:
			// with a color space id
			return Attribute{Type: typ, Color: direct(group[3], group[4], group[5])}
		}
	}
	return Attribute{Type: AttributeUnknown, Params: group}
}

func indexed(n uint16) Color {
	return Color{Index: clamp(n)}
}

func direct(r, g, b uint16) Color {
	return Color{Direct: true, R: clamp(r), G: clamp(g), B: clamp(b)}
}

func clamp(v uint16) uint8 {
	return uint8(min(v, 255))
}
