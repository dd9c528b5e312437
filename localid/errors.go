package localid

import "fmt"

// State identifies which segment of the LocalId grammar a ParseError was
// produced in: the parser records errors per state rather than
// aborting, so a malformed tag doesn't mask a later structural problem.
type State int

const (
	StateNamingRule State = iota
	StateVisVersion
	StatePrimaryItem
	StateSecondaryItem
	StateItemDescription
	StateMetaQuantity
	StateMetaContent
	StateMetaCalculation
	StateMetaState
	StateMetaCommand
	StateMetaType
	StateMetaPosition
	StateMetaDetail
	StateCompleteness
)

var stateNames = map[State]string{
	StateNamingRule:       "NamingRule",
	StateVisVersion:       "VisVersion",
	StatePrimaryItem:      "PrimaryItem",
	StateSecondaryItem:    "SecondaryItem",
	StateItemDescription:  "ItemDescription",
	StateMetaQuantity:     "MetaQuantity",
	StateMetaContent:      "MetaContent",
	StateMetaCalculation:  "MetaCalculation",
	StateMetaState:        "MetaState",
	StateMetaCommand:      "MetaCommand",
	StateMetaType:         "MetaType",
	StateMetaPosition:     "MetaPosition",
	StateMetaDetail:       "MetaDetail",
	StateCompleteness:     "Completeness",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "Unknown"
}

// ParseError is one error recorded while parsing a LocalId string.
type ParseError struct {
	State   State
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("localid[%s]: %s", e.State, e.Message)
}

func newParseError(state State, format string, args ...interface{}) ParseError {
	return ParseError{State: state, Message: fmt.Sprintf(format, args...)}
}
