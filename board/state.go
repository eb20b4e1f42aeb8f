package board

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateInProgress is when at least one side still has a capturing move.
	StateInProgress

	// StateTerminal is when neither side can capture anywhere on the board.
	StateTerminal
)

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateInProgress:
		return "StateInProgress"
	case StateTerminal:
		return "StateTerminal"
	default:
		return ""
	}
}
