package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Outcome int

const (
	Ongoing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "ongoing"
	}
}

// Game is the aggregate root of a single round: the board, its counters and
// the clock. It is not safe for concurrent use.
type Game struct {
	settings    Settings
	board       *Board
	rnd         *rand.Rand
	clock       Clock
	finished    bool
	outcome     Outcome
	flagsSet    int
	cellsToOpen int
	firstReveal bool
	exploded    *Cell
	version     uint64
}

func newGame(settings Settings, r *rand.Rand) *Game {
	if r == nil {
		r = NewRand()
	}
	return &Game{
		settings:    settings,
		board:       newBoard(settings.Rows, settings.Columns),
		rnd:         r,
		cellsToOpen: settings.SafeCells(),
		firstReveal: true,
	}
}

// NewGame builds a board with settings.Mines bombs at random positions. A nil
// r uses a randomly seeded generator.
func NewGame(settings Settings, r *rand.Rand) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	g := newGame(settings, r)
	for range settings.Mines {
		g.board.putBomb(g.rnd)
	}
	return g, nil
}

// NewGameWithMines builds a board with bombs exactly at the given points.
// Repeated points count once.
func NewGameWithMines(rows, columns int, mines []Point, r *rand.Rand) (*Game, error) {
	unique := make(map[Point]struct{}, len(mines))
	for _, p := range mines {
		if p.Row < 0 || p.Row >= rows || p.Column < 0 || p.Column >= columns {
			return nil, fmt.Errorf(
				"%w: mine at %d:%d is outside a %dx%d board",
				ErrInvalidSettings, p.Row, p.Column, rows, columns,
			)
		}
		unique[p] = struct{}{}
	}
	settings := Settings{Rows: rows, Columns: columns, Mines: len(unique)}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	g := newGame(settings, r)
	g.board.reset()
	for _, p := range mines {
		c := g.board.CellAt(p.Row, p.Column)
		if !c.hasBomb {
			g.board.setBomb(c)
		}
	}
	return g, nil
}

func (g *Game) Settings() Settings { return g.settings }
func (g *Game) Board() *Board      { return g.board }
func (g *Game) Running() bool      { return g.clock.Running() }
func (g *Game) Finished() bool     { return g.finished }
func (g *Game) Outcome() Outcome   { return g.outcome }
func (g *Game) FlagsSet() int      { return g.flagsSet }
func (g *Game) CellsToOpen() int   { return g.cellsToOpen }
func (g *Game) Seconds() int       { return g.clock.Seconds() }

// MinesLeft is the mine count minus the flags set; it goes negative when the
// player over-flags.
func (g *Game) MinesLeft() int { return g.settings.Mines - g.flagsSet }

// Version increases every time an operation changes observable state.
func (g *Game) Version() uint64 { return g.version }

// Exploded is the bomb that lost the game, nil otherwise.
func (g *Game) Exploded() *Cell { return g.exploded }

func (g *Game) CellAt(row, column int) *Cell {
	return g.board.CellAt(row, column)
}

func (g *Game) changed() {
	g.version++
}

func (g *Game) startGame() {
	if !g.finished {
		g.clock.Start()
	}
}

func (g *Game) endGame(outcome Outcome) {
	g.finished = true
	g.outcome = outcome
	g.clock.Stop()
}

func (g *Game) openable(c *Cell) bool {
	return !g.finished && !c.opened && !c.flagged
}

// Open reveals cell. Opening a cell with no bombs around it cascades to its
// neighbours. The very first reveal of a game never hits a bomb.
//
// cell must belong to this game's board.
func (g *Game) Open(cell *Cell) Outcome {
	if !g.openable(cell) {
		return g.outcome
	}

	todo := newCelltodo(g.board.Len())
	todo.add(g.board.index(cell))
	for i, ok := todo.pop(); ok && !g.finished; i, ok = todo.pop() {
		c := &g.board.cells[i]
		if !g.openable(c) {
			continue
		}
		if !g.openOne(c) {
			continue
		}
		for _, n := range g.board.NeighborsOf(c) {
			if g.openable(n) {
				todo.add(g.board.index(n))
			}
		}
	}

	g.changed()
	return g.outcome
}

// openOne opens a single cell and reports whether its neighbours should be
// opened as well.
func (g *Game) openOne(c *Cell) bool {
	if !g.Running() {
		g.startGame()
	}

	c.opened = true
	if c.hasBomb {
		if !g.firstReveal {
			g.lose(c)
			return false
		}
		g.relocateBomb(c)
	}
	g.firstReveal = false

	g.cellsToOpen--
	if g.cellsToOpen == 0 {
		g.win()
		return false
	}

	return c.bombsNear == 0
}

func (g *Game) relocateBomb(c *Cell) {
	moved := g.board.putBomb(g.rnd)
	g.board.clearBomb(c)
	Log.WithFields(logrus.Fields{
		"from": c.Point(),
		"to":   moved.Point(),
	}).Debug("first click on a bomb, relocated")
}

func (g *Game) win() {
	g.endGame(Won)
	g.flagAll()
	Log.WithFields(logrus.Fields{
		"settings": g.settings.String(),
		"seconds":  g.Seconds(),
	}).Debug("game won")
}

func (g *Game) lose(c *Cell) {
	g.endGame(Lost)
	g.exploded = c
	g.openAllBombs()
	Log.WithFields(logrus.Fields{
		"settings": g.settings.String(),
		"cell":     c.Point(),
	}).Debug("game lost")
}

func (g *Game) flagAll() {
	for c := range g.board.All() {
		if !c.opened && !c.flagged {
			c.flagged = true
			g.flagsSet++
		}
	}
}

func (g *Game) openAllBombs() {
	for c := range g.board.All() {
		if c.hasBomb && !c.flagged {
			c.opened = true
		}
	}
}

// ToggleFlag sets or drops a flag on cell. Flagged cells cannot be opened.
// Does nothing to opened cells or on a finished game.
//
// cell must belong to this game's board.
func (g *Game) ToggleFlag(cell *Cell) {
	if g.finished || cell.opened {
		return
	}
	if !g.Running() {
		g.startGame()
	}

	cell.flagged = !cell.flagged
	if cell.flagged {
		g.flagsSet++
	} else {
		g.flagsSet--
	}
	g.changed()
}

// Chord opens every neighbour of an opened numbered cell once the number of
// flags around it equals its bomb count. Flags are counted, not checked, so a
// misplaced flag loses the game.
//
// cell must belong to this game's board.
func (g *Game) Chord(cell *Cell) Outcome {
	if g.finished || !cell.opened || cell.bombsNear == 0 {
		return g.outcome
	}

	neighbors := g.board.NeighborsOf(cell)
	flags := 0
	for _, n := range neighbors {
		if n.flagged {
			flags++
		}
	}
	if flags != cell.bombsNear {
		return g.outcome
	}

	for _, n := range neighbors {
		g.Open(n)
	}
	return g.outcome
}

// OpenAt is [Game.Open] by coordinates; out of bounds is a no-op.
func (g *Game) OpenAt(row, column int) Outcome {
	if c := g.board.CellAt(row, column); c != nil {
		return g.Open(c)
	}
	return g.outcome
}

// ToggleFlagAt is [Game.ToggleFlag] by coordinates; out of bounds is a no-op.
func (g *Game) ToggleFlagAt(row, column int) {
	if c := g.board.CellAt(row, column); c != nil {
		g.ToggleFlag(c)
	}
}

// ChordAt is [Game.Chord] by coordinates; out of bounds is a no-op.
func (g *Game) ChordAt(row, column int) Outcome {
	if c := g.board.CellAt(row, column); c != nil {
		return g.Chord(c)
	}
	return g.outcome
}

// Tick feeds the current monotonic time in milliseconds. Callers drive it
// periodically to keep Seconds current.
func (g *Game) Tick(millis int64) {
	if g.clock.Tick(millis) {
		g.changed()
	}
}

// String renders the whole board: '*' bomb, '!' flag, a digit for cells next
// to bombs and ' ' otherwise, one row per line.
func (g *Game) String() string {
	var b strings.Builder
	for i := range g.board.cells {
		if i > 0 && i%g.board.columns == 0 {
			b.WriteByte('\n')
		}
		c := &g.board.cells[i]
		switch {
		case c.hasBomb:
			b.WriteByte('*')
		case c.flagged:
			b.WriteByte('!')
		case c.bombsNear > 0:
			b.WriteByte(byte('0' + c.bombsNear))
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}
