package parser

// ActionType is the action taken when an input byte is consumed.
type ActionType uint8

const (
	ActionNone ActionType = iota
	ActionIgnore
	ActionPrint
	ActionExecute
	ActionCollect
	ActionParam
	ActionESCDispatch
	ActionCSIDispatch
	ActionStringStart
	ActionStringPut
	ActionStringEnd
)

func (a ActionType) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionIgnore:
		return "Ignore"
	case ActionPrint:
		return "Print"
	case ActionExecute:
		return "Execute"
	case ActionCollect:
		return "Collect"
	case ActionParam:
		return "Param"
	case ActionESCDispatch:
		return "ESCDispatch"
	case ActionCSIDispatch:
		return "CSIDispatch"
	case ActionStringStart:
		return "StringStart"
	case ActionStringPut:
		return "StringPut"
	case ActionStringEnd:
		return "StringEnd"
	default:
		return "Unknown"
	}
}
