package board

type Space uint8

const (
	SpaceEmpty Space = iota
	SpaceSide1
	SpaceSide2

	// SpaceOutOfBounds is only returned by bounds-checked reads, never stored.
	SpaceOutOfBounds
)

func (s Space) String() string {
	switch s {
	case SpaceEmpty:
		return "Empty"
	case SpaceSide1:
		return "Side1"
	case SpaceSide2:
		return "Side2"
	case SpaceOutOfBounds:
		return "OutOfBounds"
	default:
		return ""
	}
}

// Side returns the owner of the piece in this space.
func (s Space) Side() Side {
	switch s {
	case SpaceSide1:
		return Side1
	case SpaceSide2:
		return Side2
	default:
		return SideUnknown
	}
}

func (s Space) IsPiece() bool {
	return s == SpaceSide1 || s == SpaceSide2
}

// SymbolLayout returns the symbol used by the layout codec.
func (s Space) SymbolLayout() string {
	switch s {
	case SpaceSide1:
		return "x"
	case SpaceSide2:
		return "o"
	default:
		return ""
	}
}
