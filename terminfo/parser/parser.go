// Package parser splits rendered terminal output into text runs and control
// sequences.
package parser

import (
	"fmt"
	"strings"

	"github.com/hnimtadd/tcap/terminfo/ansi"
)

// Kind classifies a Token.
type Kind uint8

const (
	KindText Kind = iota
	KindControl
	KindESC
	KindCSI
	KindString
	// KindIncomplete is a sequence cut off by the end of the input.
	KindIncomplete
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindControl:
		return "Control"
	case KindESC:
		return "ESC"
	case KindCSI:
		return "CSI"
	case KindString:
		return "String"
	case KindIncomplete:
		return "Incomplete"
	default:
		return "Unknown"
	}
}

// Token is one element of the output.
type Token struct {
	Kind Kind
	// Raw holds the bytes of the token as they appear in the input.
	Raw string

	// Params are the CSI parameter bytes including any private marker,
	// such as "?1049" or "38;5;196".
	Params        string
	Intermediates string
	Final         byte

	// Introducer is the byte after ESC that opened a string (']' for OSC,
	// 'P' for DCS); Body is the string content.
	Introducer byte
	Body       string

	// Malformed marks a CSI sequence whose bytes break the grammar.
	Malformed bool
}

var stringNames = map[byte]string{
	'P': "DCS",
	'X': "SOS",
	']': "OSC",
	'^': "PM",
	'_': "APC",
}

func (t Token) String() string {
	b := new(strings.Builder)
	switch t.Kind {
	case KindText:
		fmt.Fprintf(b, "text %q", t.Raw)
	case KindControl:
		fmt.Fprintf(b, "C0 %s", ansi.Name(t.Raw[0]))
	case KindESC:
		fmt.Fprintf(b, "ESC %s%c", t.Intermediates, t.Final)
	case KindCSI:
		b.WriteString("CSI")
		if t.Params != "" {
			fmt.Fprintf(b, " %s", t.Params)
		}
		fmt.Fprintf(b, " %s%c", t.Intermediates, t.Final)
		if t.Malformed {
			b.WriteString(" (malformed)")
		}
		if t.Final == 'm' && !t.Malformed && t.Intermediates == "" {
			if attrs := DescribeSGR(t.Params); len(attrs) > 0 {
				fmt.Fprintf(b, " [%s]", strings.Join(attrs, ", "))
			}
		}
	case KindString:
		fmt.Fprintf(b, "%s %q", stringNames[t.Introducer], t.Body)
	case KindIncomplete:
		fmt.Fprintf(b, "incomplete %s", ansi.Quote(t.Raw))
	}
	return b.String()
}

// splitter drives the transition table over one input string. The zero
// splitter starts in the ground state.
type splitter struct {
	state State

	// start of the token being accumulated
	start         int
	params        []byte
	intermediates []byte
	introducer    byte
	body          []byte
	malformed     bool
}

// Split returns the tokens of s in order. Concatenating their Raw fields
// gives back s.
func Split(s string) []Token {
	var p splitter
	var out []Token
	for i := 0; i < len(s); i++ {
		out = p.next(s, i, out)
	}
	return p.finish(s, out)
}

func (p *splitter) next(s string, i int, out []Token) []Token {
	c := s[i]
	effect := table[c][p.state]
	prev := p.state
	p.state = effect.state

	// a sequence or control interrupts the pending text run
	if prev == StateGround && effect.action != ActionPrint && i > p.start {
		out = append(out, Token{Kind: KindText, Raw: s[p.start:i]})
		p.start = i
	}

	switch effect.action {
	case ActionPrint:
		return out
	case ActionExecute:
		if prev == StateGround || p.state == StateGround {
			// CAN and SUB abandon the sequence so far
			if i > p.start {
				out = append(out, Token{Kind: KindIncomplete, Raw: s[p.start:i]})
			}
			out = append(out, Token{Kind: KindControl, Raw: s[i : i+1]})
			p.reset(i + 1)
			return out
		}
		// controls inside a sequence stay part of its raw bytes
	case ActionCollect:
		p.intermediates = append(p.intermediates, c)
	case ActionParam:
		p.params = append(p.params, c)
	case ActionIgnore:
		if p.state == StateCSIIgnore {
			p.malformed = true
		}
	case ActionESCDispatch:
		out = append(out, Token{
			Kind:          KindESC,
			Raw:           s[p.start : i+1],
			Intermediates: string(p.intermediates),
			Final:         c,
		})
		p.reset(i + 1)
	case ActionCSIDispatch:
		out = append(out, Token{
			Kind:          KindCSI,
			Raw:           s[p.start : i+1],
			Params:        string(p.params),
			Intermediates: string(p.intermediates),
			Final:         c,
			Malformed:     p.malformed || prev == StateCSIIgnore,
		})
		p.reset(i + 1)
	case ActionStringStart:
		p.introducer = c
	case ActionStringPut:
		p.body = append(p.body, c)
	case ActionStringEnd:
		end := i
		if c == 0x07 {
			end = i + 1
		}
		out = append(out, Token{
			Kind:       KindString,
			Raw:        s[p.start:end],
			Introducer: p.introducer,
			Body:       string(p.body),
		})
		p.reset(end)
		if c == 0x18 || c == 0x1A {
			out = append(out, Token{Kind: KindControl, Raw: s[i : i+1]})
			p.reset(i + 1)
		}
	case ActionNone:
		if p.state == StateEscape && prev != StateGround && prev != StateString {
			// ESC restarts a sequence in progress
			out = append(out, Token{Kind: KindIncomplete, Raw: s[p.start:i]})
			p.reset(i)
		}
		if p.state == StateCSIIgnore {
			p.malformed = true
		}
	}
	return out
}

func (p *splitter) finish(s string, out []Token) []Token {
	if p.start >= len(s) {
		return out
	}
	kind := KindIncomplete
	if p.state == StateGround {
		kind = KindText
	}
	return append(out, Token{Kind: kind, Raw: s[p.start:]})
}

func (p *splitter) reset(start int) {
	p.start = start
	p.params = p.params[:0]
	p.intermediates = p.intermediates[:0]
	p.introducer = 0
	p.body = p.body[:0]
	p.malformed = false
}
