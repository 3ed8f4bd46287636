package param

// Op is the closed set of operations a format string compiles to.
type Op uint8

const (
	OpLiteral Op = iota

	// writes: pop and append to the output
	OpWriteChar
	OpWriteString
	OpWriteDec
	OpWriteHex
	OpWriteHexUpper
	OpWriteOct

	// stack and variables
	OpPushArg
	OpPushInt
	OpPushChar
	OpSetDynamic
	OpSetStatic
	OpGetDynamic
	OpGetStatic
	OpStrlen
	OpIncrement

	// conditional markers
	OpCond
	OpThen
	OpEnd

	// binary operators
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAnd
	OpOr
	OpXor
	OpEq
	OpGt
	OpLt
	OpLogicalAnd
	OpLogicalOr

	// unary operators
	OpNot
	OpComplement
)

func (o Op) String() string {
	switch o {
	case OpLiteral:
		return "Literal"
	case OpWriteChar:
		return "WriteChar"
	case OpWriteString:
		return "WriteString"
	case OpWriteDec:
		return "WriteDec"
	case OpWriteHex:
		return "WriteHex"
	case OpWriteHexUpper:
		return "WriteHexUpper"
	case OpWriteOct:
		return "WriteOct"
	case OpPushArg:
		return "PushArg"
	case OpPushInt:
		return "PushInt"
	case OpPushChar:
		return "PushChar"
	case OpSetDynamic:
		return "SetDynamic"
	case OpSetStatic:
		return "SetStatic"
	case OpGetDynamic:
		return "GetDynamic"
	case OpGetStatic:
		return "GetStatic"
	case OpStrlen:
		return "Strlen"
	case OpIncrement:
		return "Increment"
	case OpCond:
		return "Cond"
	case OpThen:
		return "Then"
	case OpEnd:
		return "End"
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	case OpMod:
		return "Mod"
	case OpAnd:
		return "And"
	case OpOr:
		return "Or"
	case OpXor:
		return "Xor"
	case OpEq:
		return "Eq"
	case OpGt:
		return "Gt"
	case OpLt:
		return "Lt"
	case OpLogicalAnd:
		return "LogicalAnd"
	case OpLogicalOr:
		return "LogicalOr"
	case OpNot:
		return "Not"
	case OpComplement:
		return "Complement"
	default:
		return "Unknown"
	}
}

// Symbol is the operator as written in error messages.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpXor:
		return "^"
	case OpEq:
		return "=="
	case OpGt:
		return ">"
	case OpLt:
		return "<"
	case OpLogicalAnd:
		return "&&"
	case OpLogicalOr:
		return "||"
	case OpNot:
		return "!"
	case OpComplement:
		return "~"
	default:
		return o.String()
	}
}

func (o Op) verb() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	case OpDiv:
		return "divide"
	case OpMod:
		return "take the remainder of"
	case OpAnd:
		return "bitwise-and"
	case OpOr:
		return "bitwise-or"
	case OpXor:
		return "bitwise-xor"
	case OpEq:
		return "compare"
	case OpGt:
		return "compare (>)"
	case OpLt:
		return "compare (<)"
	case OpComplement:
		return "bitwise complement"
	default:
		return "evaluate"
	}
}

func (o Op) isBinary() bool {
	return o >= OpAdd && o <= OpLogicalOr
}

func (o Op) isWrite() bool {
	return o >= OpWriteChar && o <= OpWriteOct
}
