package param

import (
	"fmt"
	"strconv"
)

const (
	NumParams = 9
	NumVars   = 26

	// MaxFieldSize bounds the width and precision of a field.
	MaxFieldSize = 4096
)

// eof stands in for the byte past the end of the format string.
const eof = -1

// lexState is the scanner state.
type lexState int

const (
	// stateLiteral accumulates plain bytes.
	stateLiteral lexState = iota
	// stateEscape dispatches on the byte following '%'.
	stateEscape
	// stateField parses %[flags][width][.precision]conv.
	stateField
)

type compiler struct {
	format string
	pos    int

	// start of the escape being compiled, for error offsets
	escape int

	literal []byte
	code    []Instruction
	maxArg  int

	// indices of OpCond instructions written as %e
	elses map[int]bool

	field    Field
	precMode bool
}

// Compile translates a format string into a Program. It never returns a
// partial Program: any malformed escape yields a *CompileError.
func Compile(format string) (*Program, error) {
	c := &compiler{
		format: format,
		elses:  make(map[int]bool),
	}
	if err := c.scan(); err != nil {
		return nil, err
	}
	c.resolve()
	return &Program{
		Format:       format,
		Instructions: c.code,
		MaxArg:       c.maxArg,
	}, nil
}

// MustCompile is like Compile but panics on error. It is meant for format
// strings fixed at build time.
func MustCompile(format string) *Program {
	p, err := Compile(format)
	if err != nil {
		panic(err)
	}
	return p
}

func (c *compiler) peek() int {
	if c.pos >= len(c.format) {
		return eof
	}
	return int(c.format[c.pos])
}

func (c *compiler) next() int {
	ch := c.peek()
	if ch != eof {
		c.pos++
	}
	return ch
}

func (c *compiler) errorf(format string, args ...any) error {
	return &CompileError{
		Format: c.format,
		Offset: c.escape,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (c *compiler) emit(in Instruction) {
	if in.Op == OpCond || in.Op == OpThen {
		in.Jump = NoJump
	}
	c.code = append(c.code, in)
}

func (c *compiler) flush() {
	if len(c.literal) == 0 {
		return
	}
	c.emit(Instruction{Op: OpLiteral, Literal: string(c.literal)})
	c.literal = c.literal[:0]
}

func (c *compiler) scan() error {
	state := stateLiteral
	for {
		switch state {
		case stateLiteral:
			ch := c.next()
			switch ch {
			case eof:
				c.flush()
				return nil
			case '%':
				c.escape = c.pos - 1
				state = stateEscape
			default:
				c.literal = append(c.literal, byte(ch))
			}

		case stateEscape:
			ch := c.peek()
			if ch == '%' {
				c.pos++
				c.literal = append(c.literal, '%')
				state = stateLiteral
				continue
			}
			c.flush()
			if isDigit(ch) || ch == ':' || ch == '#' || ch == '.' || c.signedField(ch) {
				c.field = plainField
				c.precMode = false
				state = stateField
				continue
			}
			c.pos++
			if err := c.dispatch(ch); err != nil {
				return err
			}
			state = stateLiteral

		case stateField:
			done, err := c.fieldStep()
			if err != nil {
				return err
			}
			if done {
				state = stateLiteral
			}
		}
	}
}

// signedField reports whether a '-' or '+' right after '%' starts a field
// such as %-3d rather than the subtraction or addition operator. It does
// when a width or precision follows and the run ends in a conversion.
func (c *compiler) signedField(ch int) bool {
	if ch != '-' && ch != '+' {
		return false
	}
	sized := false
	for j := c.pos + 1; j < len(c.format); j++ {
		switch b := c.format[j]; {
		case isDigit(int(b)) || b == '.':
			sized = true
		case b == '-' || b == '+' || b == '#' || b == ':':
		case b == 's' || b == 'd' || b == 'x' || b == 'X' || b == 'o':
			return sized
		default:
			return false
		}
	}
	return false
}

// dispatch compiles the escape selected by ch, which has been consumed.
func (c *compiler) dispatch(ch int) error {
	switch ch {
	case 'c':
		c.emit(Instruction{Op: OpWriteChar, Field: plainField})
	case 's':
		c.emit(Instruction{Op: OpWriteString, Field: plainField})
	case 'd':
		c.emit(Instruction{Op: OpWriteDec, Field: plainField})
	case 'x':
		c.emit(Instruction{Op: OpWriteHex, Field: plainField})
	case 'X':
		c.emit(Instruction{Op: OpWriteHexUpper, Field: plainField})
	case 'o':
		c.emit(Instruction{Op: OpWriteOct, Field: plainField})
	case 'p':
		n := c.next()
		if n < '1' || n > '9' {
			return c.errorf("%%p must be followed by a digit 1-9, got %s", describe(n))
		}
		arg := n - '0'
		c.maxArg = max(c.maxArg, arg)
		c.emit(Instruction{Op: OpPushArg, Slot: arg - 1})
	case 'P':
		return c.variable(OpSetDynamic, OpSetStatic, 'P')
	case 'g':
		return c.variable(OpGetDynamic, OpGetStatic, 'g')
	case '\'':
		lit := c.next()
		if lit == eof || c.next() != '\'' {
			return c.errorf("character literal must be %%'c', got %%'%s", describe(lit))
		}
		c.emit(Instruction{Op: OpPushChar, Char: byte(lit)})
	case '{':
		return c.number()
	case 'l':
		c.emit(Instruction{Op: OpStrlen})
	case 'i':
		c.maxArg = max(c.maxArg, 2)
		c.emit(Instruction{Op: OpIncrement})
	case '?':
		c.emit(Instruction{Op: OpCond})
	case 'e':
		c.elses[len(c.code)] = true
		c.emit(Instruction{Op: OpCond})
	case 't':
		c.emit(Instruction{Op: OpThen})
	case ';':
		c.emit(Instruction{Op: OpEnd})
	case '+':
		c.emit(Instruction{Op: OpAdd})
	case '-':
		c.emit(Instruction{Op: OpSub})
	case '*':
		c.emit(Instruction{Op: OpMul})
	case '/':
		c.emit(Instruction{Op: OpDiv})
	case 'm':
		c.emit(Instruction{Op: OpMod})
	case '&':
		c.emit(Instruction{Op: OpAnd})
	case '|':
		c.emit(Instruction{Op: OpOr})
	case '^':
		c.emit(Instruction{Op: OpXor})
	case '=':
		c.emit(Instruction{Op: OpEq})
	case '>':
		c.emit(Instruction{Op: OpGt})
	case '<':
		c.emit(Instruction{Op: OpLt})
	case 'A':
		c.emit(Instruction{Op: OpLogicalAnd})
	case 'O':
		c.emit(Instruction{Op: OpLogicalOr})
	case '!':
		c.emit(Instruction{Op: OpNot})
	case '~':
		c.emit(Instruction{Op: OpComplement})
	default:
		return c.errorf("unknown escape %%%s", describe(ch))
	}
	return nil
}

func (c *compiler) variable(dynamic, static Op, escape byte) error {
	v := c.next()
	switch {
	case v >= 'a' && v <= 'z':
		c.emit(Instruction{Op: dynamic, Slot: v - 'a'})
	case v >= 'A' && v <= 'Z':
		c.emit(Instruction{Op: static, Slot: v - 'A'})
	default:
		return c.errorf("%%%c must be followed by a variable a-z or A-Z, got %s", escape, describe(v))
	}
	return nil
}

// number compiles %{N}. The opening brace has been consumed.
func (c *compiler) number() error {
	if c.peek() == '}' {
		c.pos++
		return nil
	}
	neg := false
	if c.peek() == '-' {
		neg = true
		c.pos++
	}
	var n int32
	digits := 0
	for {
		ch := c.next()
		switch {
		case isDigit(ch):
			n = n*10 + int32(ch-'0')
			digits++
		case ch == '}' && digits > 0:
			if neg {
				n = -n
			}
			c.emit(Instruction{Op: OpPushInt, Int: n})
			return nil
		case ch == eof:
			return c.errorf("unterminated integer literal")
		default:
			return c.errorf("invalid integer literal: unexpected %s", describe(ch))
		}
	}
}

// fieldStep consumes one token of a field specification and reports whether
// the conversion character was reached.
func (c *compiler) fieldStep() (bool, error) {
	ch := c.next()
	switch {
	case isDigit(ch):
		n := ch - '0'
		for isDigit(c.peek()) {
			n = n*10 + c.next() - '0'
			if n > MaxFieldSize {
				what := "width"
				if c.precMode {
					what = "precision"
				}
				return false, c.errorf("malformed field: %s exceeds %d", what, MaxFieldSize)
			}
		}
		if c.precMode {
			c.field.Precision = n
		} else {
			c.field.Width = n
		}
		return false, nil
	}
	switch ch {
	case ':':
	case '-':
		c.field.Left = true
	case '+':
		c.field.Sign = true
	case '#':
		c.field.Alt = true
	case '.':
		c.precMode = true
		c.field.Precision = 0
	case 's':
		c.emit(Instruction{Op: OpWriteString, Field: c.field})
		return true, nil
	case 'd':
		c.emit(Instruction{Op: OpWriteDec, Field: c.field})
		return true, nil
	case 'x':
		c.emit(Instruction{Op: OpWriteHex, Field: c.field})
		return true, nil
	case 'X':
		c.emit(Instruction{Op: OpWriteHexUpper, Field: c.field})
		return true, nil
	case 'o':
		c.emit(Instruction{Op: OpWriteOct, Field: c.field})
		return true, nil
	default:
		return false, c.errorf("malformed field: unexpected %s", describe(ch))
	}
	return false, nil
}

// block tracks an open %? ... %; during resolution.
type block struct {
	thens []int // %t waiting for their false target
	elses []int // %e waiting for the terminal
}

// resolve turns the conditional markers into jump targets. %? always opens
// a block. %e opens one only when none is open; otherwise it is the else
// marker of the innermost block: a false %t lands just past it, and falling
// into it from the taken branch jumps to the block's %;.
func (c *compiler) resolve() {
	var blocks []*block
	top := func() *block {
		if len(blocks) == 0 {
			blocks = append(blocks, &block{})
		}
		return blocks[len(blocks)-1]
	}
	for i, in := range c.code {
		switch in.Op {
		case OpCond:
			if c.elses[i] && len(blocks) > 0 {
				b := top()
				for _, t := range b.thens {
					c.code[t].Jump = i + 1
				}
				b.thens = b.thens[:0]
				b.elses = append(b.elses, i)
				continue
			}
			blocks = append(blocks, &block{})
		case OpThen:
			b := top()
			b.thens = append(b.thens, i)
		case OpEnd:
			if len(blocks) == 0 {
				continue
			}
			b := blocks[len(blocks)-1]
			blocks = blocks[:len(blocks)-1]
			c.land(b, i)
		}
	}
	// unterminated blocks end with the program
	for len(blocks) > 0 {
		b := blocks[len(blocks)-1]
		blocks = blocks[:len(blocks)-1]
		c.land(b, len(c.code))
	}
}

func (c *compiler) land(b *block, target int) {
	for _, t := range b.thens {
		c.code[t].Jump = target
	}
	for _, e := range b.elses {
		c.code[e].Jump = target
	}
}

func isDigit(ch int) bool {
	return ch >= '0' && ch <= '9'
}

func describe(ch int) string {
	switch {
	case ch == eof:
		return "<EOF>"
	case ch < 0x20 || ch >= 0x7f:
		return "0x" + strconv.FormatInt(int64(ch), 16)
	default:
		return string(rune(ch))
	}
}
