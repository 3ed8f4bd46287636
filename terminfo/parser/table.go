package parser

// Transition is the effect of one input byte in one state.
type Transition struct {
	state  State
	action ActionType
}

// transition table for the splitter, indexed by byte and then state.
//
// This is based on the vt100.net state machine: https://vt100.net/emu/dec_ansi_parser
// reduced to 7-bit controls: bytes 0x80-0xFF print in ground, so UTF-8 text
// passes through intact. Colons are accepted as parameter bytes for the
// sub-parameters used by SGR.
type parserTable [256][stateCount]Transition

var table = newParserTable()

func newParserTable() *parserTable {
	t := new(parserTable)

	// anywhere
	for source := range stateCount {
		// CAN and SUB cancel the sequence in progress
		t.addSingle(0x18, source, StateGround, ActionExecute)
		t.addSingle(0x1A, source, StateGround, ActionExecute)
		t.addSingle(0x1B, source, StateEscape, ActionNone)
	}

	// execute the C0 controls in the ground, escape and CSI states
	for _, source := range []State{
		StateGround,
		StateEscape,
		StateEscapeIntermediate,
		StateCSIEntry,
		StateCSIParam,
		StateCSIIntermediate,
		StateCSIIgnore,
	} {
		t.addRange(0x00, 0x17, source, source, ActionExecute)
		t.addSingle(0x19, source, source, ActionExecute)
		t.addRange(0x1C, 0x1F, source, source, ActionExecute)
	}

	// ground
	{
		source := StateGround
		t.addRange(0x20, 0xFF, source, source, ActionPrint)
	}

	// escape
	{
		source := StateEscape

		// => ground
		t.addRange(0x30, 0x4F, source, StateGround, ActionESCDispatch)
		t.addRange(0x51, 0x57, source, StateGround, ActionESCDispatch)
		t.addSingle(0x59, source, StateGround, ActionESCDispatch)
		t.addSingle(0x5A, source, StateGround, ActionESCDispatch)
		t.addSingle(0x5C, source, StateGround, ActionESCDispatch)
		t.addRange(0x60, 0x7E, source, StateGround, ActionESCDispatch)

		// => escapeIntermediate
		t.addRange(0x20, 0x2F, source, StateEscapeIntermediate, ActionCollect)

		// => string: DCS, SOS, OSC, PM, APC
		t.addSingle(0x50, source, StateString, ActionStringStart)
		t.addSingle(0x58, source, StateString, ActionStringStart)
		t.addSingle(0x5D, source, StateString, ActionStringStart)
		t.addSingle(0x5E, source, StateString, ActionStringStart)
		t.addSingle(0x5F, source, StateString, ActionStringStart)

		// => csiEntry
		t.addSingle(0x5B, source, StateCSIEntry, ActionNone)

		t.addSingle(0x7F, source, source, ActionIgnore)
	}

	// escapeIntermediate
	{
		source := StateEscapeIntermediate
		t.addRange(0x30, 0x7E, source, StateGround, ActionESCDispatch)
		t.addRange(0x20, 0x2F, source, source, ActionCollect)
		t.addSingle(0x7F, source, source, ActionIgnore)
	}

	// csiEntry
	{
		source := StateCSIEntry
		t.addRange(0x40, 0x7E, source, StateGround, ActionCSIDispatch)
		t.addRange(0x30, 0x3B, source, StateCSIParam, ActionParam)
		// private markers
		t.addRange(0x3C, 0x3F, source, StateCSIParam, ActionParam)
		t.addRange(0x20, 0x2F, source, StateCSIIntermediate, ActionCollect)
		t.addSingle(0x7F, source, source, ActionIgnore)
	}

	// csiParam
	{
		source := StateCSIParam
		t.addRange(0x40, 0x7E, source, StateGround, ActionCSIDispatch)
		t.addRange(0x30, 0x3B, source, source, ActionParam)
		t.addRange(0x3C, 0x3F, source, StateCSIIgnore, ActionNone)
		t.addRange(0x20, 0x2F, source, StateCSIIntermediate, ActionCollect)
		t.addSingle(0x7F, source, source, ActionIgnore)
	}

	// csiIntermediate
	{
		source := StateCSIIntermediate
		t.addRange(0x40, 0x7E, source, StateGround, ActionCSIDispatch)
		t.addRange(0x20, 0x2F, source, source, ActionCollect)
		t.addRange(0x30, 0x3F, source, StateCSIIgnore, ActionNone)
		t.addSingle(0x7F, source, source, ActionIgnore)
	}

	// csiIgnore
	{
		source := StateCSIIgnore
		// the malformed sequence still ends at its final byte
		t.addRange(0x40, 0x7E, source, StateGround, ActionCSIDispatch)
		t.addRange(0x20, 0x3F, source, source, ActionIgnore)
		t.addSingle(0x7F, source, source, ActionIgnore)
	}

	// string
	{
		source := StateString
		t.addRange(0x00, 0x17, source, source, ActionStringPut)
		t.addSingle(0x19, source, source, ActionStringPut)
		t.addRange(0x1C, 0xFF, source, source, ActionStringPut)
		// BEL terminates OSC strings in xterm
		t.addSingle(0x07, source, StateGround, ActionStringEnd)
		// ESC ends the string; ESC \ is then dispatched as ST
		t.addSingle(0x1B, source, StateEscape, ActionStringEnd)
		t.addSingle(0x18, source, StateGround, ActionStringEnd)
		t.addSingle(0x1A, source, StateGround, ActionStringEnd)
	}

	return t
}

func (t *parserTable) addSingle(c uint8, source, dest State, action ActionType) {
	t[c][source] = Transition{state: dest, action: action}
}

func (t *parserTable) addRange(from, to uint8, source, dest State, action ActionType) {
	for c := int(from); c <= int(to); c++ {
		t.addSingle(uint8(c), source, dest, action)
	}
}
