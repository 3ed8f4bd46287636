package param

import (
	"fmt"
	"strings"

	"github.com/hnimtadd/tcap/terminfo/ansi"
)

// NoJump marks a control instruction that falls through.
const NoJump = -1

// Field carries the printf-like modifiers of a write instruction. Width and
// Precision are -1 when absent.
type Field struct {
	Width     int
	Precision int
	Left      bool // '-': pad on the right
	Sign      bool // '+': force a sign on non-negative numbers
	Alt       bool // '#': 0x / 0X / 0 prefix
}

var plainField = Field{Width: -1, Precision: -1}

func (f Field) String() string {
	if f == plainField {
		return ""
	}
	b := new(strings.Builder)
	if f.Left {
		b.WriteByte('-')
	}
	if f.Sign {
		b.WriteByte('+')
	}
	if f.Alt {
		b.WriteByte('#')
	}
	if f.Width >= 0 {
		fmt.Fprintf(b, "%d", f.Width)
	}
	if f.Precision >= 0 {
		fmt.Fprintf(b, ".%d", f.Precision)
	}
	return b.String()
}

// Instruction is one compiled step. Only the operand fields relevant to Op
// are set.
type Instruction struct {
	Op Op

	// OpLiteral
	Literal string
	// OpPushInt
	Int int32
	// OpPushChar
	Char byte
	// OpPushArg and the variable ops: 0-based slot
	Slot int
	// write ops
	Field Field
	// OpThen: target when the predicate is false. OpCond: target when an
	// else marker is reached by falling out of the taken branch.
	Jump int
}

func (in Instruction) String() string {
	switch in.Op {
	case OpLiteral:
		return fmt.Sprintf("%s %q", in.Op, ansi.Quote(in.Literal))
	case OpPushInt:
		return fmt.Sprintf("%s %d", in.Op, in.Int)
	case OpPushChar:
		return fmt.Sprintf("%s %s", in.Op, Char(in.Char).Quoted())
	case OpPushArg:
		return fmt.Sprintf("%s p%d", in.Op, in.Slot+1)
	case OpSetDynamic, OpGetDynamic:
		return fmt.Sprintf("%s %c", in.Op, 'a'+in.Slot)
	case OpSetStatic, OpGetStatic:
		return fmt.Sprintf("%s %c", in.Op, 'A'+in.Slot)
	case OpCond, OpThen:
		if in.Jump == NoJump {
			return in.Op.String()
		}
		return fmt.Sprintf("%s -> %d", in.Op, in.Jump)
	}
	if in.Op.isWrite() {
		if f := in.Field.String(); f != "" {
			return fmt.Sprintf("%s [%s]", in.Op, f)
		}
	}
	return in.Op.String()
}

// Program is a compiled format string. It is never mutated after Compile
// returns and may be shared by concurrent renders, each with its own
// Context.
type Program struct {
	Format       string
	Instructions []Instruction
	// MaxArg is the highest positional argument referenced (1-based).
	MaxArg int
}

// String disassembles the program, one instruction per line.
func (p *Program) String() string {
	b := new(strings.Builder)
	for i, in := range p.Instructions {
		fmt.Fprintf(b, "%04d: %v\n", i, in)
	}
	return b.String()
}
