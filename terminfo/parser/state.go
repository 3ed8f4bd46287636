package parser

// State for the state machine
type State uint8

const (
	StateGround State = iota
	StateEscape
	StateEscapeIntermediate
	StateCSIEntry
	StateCSIParam
	StateCSIIntermediate
	StateCSIIgnore
	// StateString holds the body of an OSC, DCS, SOS, PM or APC string.
	StateString

	stateCount
)

func (s State) String() string {
	switch s {
	case StateGround:
		return "Ground"
	case StateEscape:
		return "Escape"
	case StateEscapeIntermediate:
		return "EscapeIntermediate"
	case StateCSIEntry:
		return "CSIEntry"
	case StateCSIParam:
		return "CSIParam"
	case StateCSIIntermediate:
		return "CSIIntermediate"
	case StateCSIIgnore:
		return "CSIIgnore"
	case StateString:
		return "String"
	default:
		return "Unknown"
	}
}
