package board

import "github.com/daystram/reversi/position"

type Side uint8

const (
	SideUnknown Side = iota
	Side1
	Side2
)

func (s Side) String() string {
	switch s {
	case Side1:
		return "Player 1"
	case Side2:
		return "Player 2"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case Side1:
		return Side2
	case Side2:
		return Side1
	default:
		return SideUnknown
	}
}

// Space returns the space value holding this side's piece.
func (s Side) Space() Space {
	switch s {
	case Side1:
		return SpaceSide1
	case Side2:
		return SpaceSide2
	default:
		return SpaceOutOfBounds
	}
}

// Orient converts a coordinate in this side's frame into the canonical frame and back.
// Side2 sees the board point-reflected through its center.
func (s Side) Orient(row, col int) (int, int) {
	if s == Side2 {
		return position.Mirror(row, col)
	}
	return row, col
}

func NewSideFromString(str string) (Side, bool) {
	switch str {
	case "1", "p1", "x", "black", "Player 1":
		return Side1, true
	case "2", "p2", "o", "white", "Player 2":
		return Side2, true
	default:
		return SideUnknown, false
	}
}
