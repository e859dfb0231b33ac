package mines

import (
	"strconv"
	"strings"
)

// CellState is what the player is allowed to see of a cell.
type CellState int8

const (
	Unknown          CellState = -2
	Flagged          CellState = -1
	CorrectlyFlagged CellState = 64
	ExplodedMine     CellState = 65
	FalselyFlagged   CellState = 66
	UnflaggedMine    CellState = 67
	/*
	 * 0 to 8 mean the cell is open and carry its bomb count. The values
	 * from 64 up only appear once the game is lost:
	 *
	 * 	- 64: a flag that was on a bomb.
	 * 	- 65: the bomb that was opened.
	 * 	- 66: a flag on a cell without a bomb.
	 * 	- 67: a bomb that was never flagged.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return " "
	case s == Flagged:
		return "F"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	case s == FalselyFlagged:
		return "X"
	default:
		return "*"
	}
}

// Grid is a row-major slice of cell states.
type Grid []CellState

func (g Grid) ToString(width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			b.WriteString(g[y*width+x].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// View returns the board as the player sees it. Bombs are hidden until the
// game is lost; after a win the remaining cells show as flags.
func (g *Game) View() Grid {
	grid := make(Grid, g.board.Len())
	lost := g.outcome == Lost
	for i := range g.board.cells {
		c := &g.board.cells[i]
		switch {
		case lost && c == g.exploded:
			grid[i] = ExplodedMine
		case lost && c.flagged && c.hasBomb:
			grid[i] = CorrectlyFlagged
		case lost && c.flagged:
			grid[i] = FalselyFlagged
		case lost && c.hasBomb:
			grid[i] = UnflaggedMine
		case c.flagged:
			grid[i] = Flagged
		case c.opened:
			grid[i] = CellState(c.bombsNear)
		default:
			grid[i] = Unknown
		}
	}
	return grid
}
