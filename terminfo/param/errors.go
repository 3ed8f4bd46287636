package param

import (
	"errors"
	"fmt"
)

var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrOperandType    = errors.New("invalid operand type")
	ErrDivideByZero   = errors.New("division by zero")
	ErrTooManyArgs    = errors.New("too many arguments")
)

// CompileError reports a malformed format string. Offset is the byte offset
// of the escape that failed.
type CompileError struct {
	Format string
	Offset int
	Reason string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %q at offset %d: %s", e.Format, e.Offset, e.Reason)
}

// OperandTypeError is raised when an operator receives a Text operand it
// cannot coerce. Right is the zero Value for unary operators.
type OperandTypeError struct {
	Op    Op
	Left  Value
	Right Value
	unary bool
}

func (e *OperandTypeError) Error() string {
	if e.unary {
		return fmt.Sprintf("cannot %s a text operand: %s%s", e.Op.verb(), e.Op.Symbol(), e.Left.Quoted())
	}
	if e.Op == OpEq {
		return fmt.Sprintf("cannot %s mixed text/numeric operands: %s %s %s",
			e.Op.verb(), e.Left.Quoted(), e.Op.Symbol(), e.Right.Quoted())
	}
	return fmt.Sprintf("cannot %s a text operand: %s %s %s",
		e.Op.verb(), e.Left.Quoted(), e.Op.Symbol(), e.Right.Quoted())
}

func (e *OperandTypeError) Unwrap() error { return ErrOperandType }

// ExecError wraps a failure raised while running instruction Index.
type ExecError struct {
	Index int
	Op    Op
	Err   error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("exec %s at instruction %d: %v", e.Op, e.Index, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }
