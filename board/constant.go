package board

import (
	"github.com/daystram/reversi/position"
)

const (
	Width  = position.MaxComponentScalar
	Height = position.MaxComponentScalar
)

var (
	// DefaultLayout is the opening position: Side2 on d4/e5, Side1 on e4/d5.
	DefaultLayout = "8/8/8/3ox3/3xo3/8/8/8"

	// compass lists the 8 scan directions as (row, col) offsets.
	compass = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)
