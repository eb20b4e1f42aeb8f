package board

import (
	"fmt"
	"strings"
	"unicode"
)

// UnmarshalLayout loads a layout string into b. Rows are listed from row 0 and
// separated by '/', 'x' is Side1, 'o' is Side2 and a digit is a run of empty cells.
func UnmarshalLayout(layout string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	rows := strings.Split(strings.TrimSpace(layout), "/")
	if len(rows) != Height {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidLayout)
	}

	var cells [Height][Width]Space
	for r, row := range rows {
		c := 0
		for _, cell := range row {
			if c >= Width {
				return fmt.Errorf("%w: row %d overflows", ErrInvalidLayout, r)
			}
			switch cell {
			case 'x':
				cells[r][c] = SpaceSide1
				c++
			case 'o':
				cells[r][c] = SpaceSide2
				c++
			default:
				if cell != '0' && unicode.IsDigit(cell) {
					skip := int(cell - '0')
					if c+skip <= Width {
						c += skip
						continue
					}
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidLayout)
				}
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidLayout, string(cell))
			}
		}
		if c != Width {
			return fmt.Errorf("%w: missing cells in row %d", ErrInvalidLayout, r)
		}
	}

	b.cells = cells
	b.state = StateUnknown
	return nil
}

func MarshalLayout(b *Board) string {
	builder := strings.Builder{}
	var skip uint8
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			for skip = 0; c < Width && b.cells[r][c] == SpaceEmpty; c++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if c < Width {
				_, _ = builder.WriteString(b.cells[r][c].SymbolLayout())
			}
		}
		if r < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}
	return builder.String()
}
