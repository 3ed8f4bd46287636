package param

import (
	"fmt"
	"io"
)

// Render runs p against ctx with the given arguments and writes the result
// to w. Missing arguments read as Integer(0); more than NumParams is an
// error.
//
// The output is assembled in ctx and handed to w in a single Write, so w
// sees nothing when the render fails. On failure the operand stack is left
// empty; statics set before the failure are kept.
func Render(w io.Writer, p *Program, ctx *Context, args ...Value) error {
	out, err := p.run(ctx, args)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Render is shorthand for Render(w, p, ctx, args...).
func (p *Program) Render(w io.Writer, ctx *Context, args ...Value) error {
	return Render(w, p, ctx, args...)
}

// Sprint renders p and returns the output as a string.
func (p *Program) Sprint(ctx *Context, args ...Value) (string, error) {
	out, err := p.run(ctx, args)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (p *Program) run(ctx *Context, args []Value) (out []byte, err error) {
	if len(args) > NumParams {
		ctx.stack = ctx.stack[:0]
		return nil, fmt.Errorf("%w: got %d, at most %d", ErrTooManyArgs, len(args), NumParams)
	}
	ctx.reset(args)
	if err := p.exec(ctx); err != nil {
		ctx.stack = ctx.stack[:0]
		return nil, err
	}
	return ctx.out, nil
}

func (p *Program) exec(ctx *Context) error {
	code := p.Instructions
	for pc := 0; pc < len(code); {
		in := &code[pc]
		next := pc + 1

		switch op := in.Op; {
		case op.isBinary():
			r, err := ctx.pop()
			if err != nil {
				return &ExecError{Index: pc, Op: op, Err: err}
			}
			l, err := ctx.pop()
			if err != nil {
				return &ExecError{Index: pc, Op: op, Err: err}
			}
			v, err := binary(op, l, r)
			if err != nil {
				return &ExecError{Index: pc, Op: op, Err: err}
			}
			ctx.push(v)

		case op.isWrite():
			v, err := ctx.pop()
			if err != nil {
				return &ExecError{Index: pc, Op: op, Err: err}
			}
			ctx.out = write(ctx.out, in, v)

		default:
			jump, err := step(ctx, in)
			if err != nil {
				return &ExecError{Index: pc, Op: op, Err: err}
			}
			if jump != NoJump {
				next = jump
			}
		}
		pc = next
	}
	return nil
}

// step runs the stack, variable, unary and control instructions. It returns
// the index to continue at, or NoJump to fall through.
func step(ctx *Context, in *Instruction) (int, error) {
	switch in.Op {
	case OpLiteral:
		ctx.out = append(ctx.out, in.Literal...)
	case OpPushArg:
		ctx.push(ctx.params[in.Slot])
	case OpPushInt:
		ctx.push(Value{kind: KindInteger, i: in.Int})
	case OpPushChar:
		ctx.push(Char(in.Char))
	case OpGetDynamic:
		ctx.push(ctx.dynamic[in.Slot])
	case OpGetStatic:
		ctx.push(ctx.static[in.Slot])
	case OpSetDynamic:
		v, err := ctx.pop()
		if err != nil {
			return NoJump, err
		}
		ctx.dynamic[in.Slot] = v
	case OpSetStatic:
		v, err := ctx.pop()
		if err != nil {
			return NoJump, err
		}
		ctx.static[in.Slot] = v
	case OpStrlen:
		v, err := ctx.pop()
		if err != nil {
			return NoJump, err
		}
		ctx.push(Int(v.Len()))
	case OpIncrement:
		p1, ok1 := ctx.params[0].Int32()
		p2, ok2 := ctx.params[1].Int32()
		if ok1 && ok2 {
			ctx.params[0] = Value{kind: KindInteger, i: p1 + 1}
			ctx.params[1] = Value{kind: KindInteger, i: p2 + 1}
		}
	case OpNot:
		v, err := ctx.pop()
		if err != nil {
			return NoJump, err
		}
		ctx.push(boolValue(!v.Truthy()))
	case OpComplement:
		v, err := ctx.pop()
		if err != nil {
			return NoJump, err
		}
		n, ok := v.Numeric()
		if !ok {
			return NoJump, &OperandTypeError{Op: OpComplement, Left: v, unary: true}
		}
		ctx.push(Value{kind: KindInteger, i: ^n})
	case OpCond:
		// an opening marker falls through; an else marker reached from the
		// taken branch carries the block terminal
		return in.Jump, nil
	case OpThen:
		v, err := ctx.pop()
		if err != nil {
			return NoJump, err
		}
		if !v.Truthy() {
			return in.Jump, nil
		}
	case OpEnd:
		if len(ctx.stack) > 0 {
			ctx.stack = ctx.stack[:len(ctx.stack)-1]
		}
	default:
		return NoJump, fmt.Errorf("unhandled instruction %s", in.Op)
	}
	return NoJump, nil
}

func write(out []byte, in *Instruction, v Value) []byte {
	switch in.Op {
	case OpWriteChar:
		switch v.kind {
		case KindCharacter:
			return append(out, v.c)
		case KindText:
			if len(v.s) == 0 {
				return append(out, 0)
			}
			return append(out, v.s[0])
		default:
			return append(out, byte(v.i))
		}
	case OpWriteString:
		return appendText(out, in.Field, v.String())
	default:
		return appendNumber(out, in.Op, in.Field, v)
	}
}

func binary(op Op, l, r Value) (Value, error) {
	switch op {
	case OpLogicalAnd:
		return boolValue(l.Truthy() && r.Truthy()), nil
	case OpLogicalOr:
		return boolValue(l.Truthy() || r.Truthy()), nil
	case OpEq:
		ls, lText := l.Str()
		rs, rText := r.Str()
		if lText && rText {
			return boolValue(ls == rs), nil
		}
		if lText || rText {
			return Value{}, &OperandTypeError{Op: op, Left: l, Right: r}
		}
	}

	a, lok := l.Numeric()
	b, rok := r.Numeric()
	if !lok || !rok {
		return Value{}, &OperandTypeError{Op: op, Left: l, Right: r}
	}

	var n int32
	switch op {
	case OpAdd:
		n = a + b
	case OpSub:
		n = a - b
	case OpMul:
		n = a * b
	case OpDiv:
		if b == 0 {
			return Value{}, ErrDivideByZero
		}
		n = a / b
	case OpMod:
		if b == 0 {
			return Value{}, ErrDivideByZero
		}
		n = a % b
	case OpAnd:
		n = a & b
	case OpOr:
		n = a | b
	case OpXor:
		n = a ^ b
	case OpEq:
		return boolValue(a == b), nil
	case OpGt:
		return boolValue(a > b), nil
	case OpLt:
		return boolValue(a < b), nil
	default:
		return Value{}, fmt.Errorf("unhandled operator %s", op)
	}
	return Value{kind: KindInteger, i: n}, nil
}

func boolValue(b bool) Value {
	if b {
		return Value{kind: KindInteger, i: 1}
	}
	return Value{kind: KindInteger}
}
