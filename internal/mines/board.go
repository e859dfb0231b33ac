package mines

import (
	"iter"
	"math/rand/v2"
)

// Point addresses a cell by row and column.
type Point struct {
	Row, Column int
}

// Cell is a single square of the board. Its state is only changed by the
// [Game] that owns it.
type Cell struct {
	row, column int
	hasBomb     bool
	opened      bool
	flagged     bool
	bombsNear   int
}

func (c *Cell) Row() int        { return c.row }
func (c *Cell) Column() int     { return c.column }
func (c *Cell) Point() Point    { return Point{c.row, c.column} }
func (c *Cell) HasBomb() bool   { return c.hasBomb }
func (c *Cell) IsOpened() bool  { return c.opened }
func (c *Cell) IsFlagged() bool { return c.flagged }

// BombsNear is the number of bombs among the cell's neighbours.
func (c *Cell) BombsNear() int { return c.bombsNear }

// neighbourhood lists Moore offsets in row-major order.
var neighbourhood = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a fixed rows x columns grid of cells.
type Board struct {
	rows, columns int
	cells         []Cell
}

func newBoard(rows, columns int) *Board {
	b := &Board{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, rows*columns),
	}
	for i := range b.cells {
		b.cells[i].row = i / columns
		b.cells[i].column = i % columns
	}
	return b
}

func (b *Board) Rows() int    { return b.rows }
func (b *Board) Columns() int { return b.columns }
func (b *Board) Len() int     { return len(b.cells) }

func (b *Board) InBounds(row, column int) bool {
	return 0 <= row && row < b.rows && 0 <= column && column < b.columns
}

// CellAt returns the cell at row, column or nil if either is out of bounds.
func (b *Board) CellAt(row, column int) *Cell {
	if !b.InBounds(row, column) {
		return nil
	}
	return &b.cells[row*b.columns+column]
}

// NeighborsOf returns the in-bounds cells surrounding c, top row first.
func (b *Board) NeighborsOf(c *Cell) []*Cell {
	result := make([]*Cell, 0, len(neighbourhood))
	for _, d := range neighbourhood {
		if n := b.CellAt(c.row+d.Row, c.column+d.Column); n != nil {
			result = append(result, n)
		}
	}
	return result
}

// All yields every cell in row-major order.
func (b *Board) All() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range b.cells {
			if !yield(&b.cells[i]) {
				return
			}
		}
	}
}

func (b *Board) index(c *Cell) int {
	return c.row*b.columns + c.column
}

func (b *Board) setBomb(c *Cell) {
	c.hasBomb = true
	for _, n := range b.NeighborsOf(c) {
		n.bombsNear++
	}
}

func (b *Board) clearBomb(c *Cell) {
	c.hasBomb = false
	for _, n := range b.NeighborsOf(c) {
		n.bombsNear--
	}
}

func (b *Board) reset() {
	for i := range b.cells {
		b.cells[i].hasBomb = false
		b.cells[i].bombsNear = 0
	}
}

// putBomb places a bomb on a uniformly chosen bomb-free cell. The caller
// guarantees at least one such cell exists.
func (b *Board) putBomb(r *rand.Rand) *Cell {
	var c *Cell
	for {
		c = &b.cells[r.IntN(len(b.cells))]
		if !c.hasBomb {
			break
		}
	}
	b.setBomb(c)
	return c
}

func (b *Board) bombs() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].hasBomb {
			n++
		}
	}
	return n
}
