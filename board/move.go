package board

import (
	"fmt"

	"github.com/daystram/reversi/position"
)

// Move is a committed or candidate placement. Pos is in the mover's own frame.
type Move struct {
	Pos      position.Pos
	Side     Side
	Captures int
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) Algebra() string {
	if m.IsNull() {
		return "--"
	}
	return fmt.Sprintf("%s x%d", m.Pos.Notation(), m.Captures)
}

func (m Move) IsNull() bool {
	return m.Side == SideUnknown
}

// Canonical returns the move's position in the shared board frame.
func (m Move) Canonical() position.Pos {
	if m.Side == Side2 {
		return m.Pos.Mirror()
	}
	return m.Pos
}
