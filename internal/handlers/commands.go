package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type Move string

const (
	Noop  Move = "noop"
	Open  Move = "open"
	Flag  Move = "flag"
	Chord Move = "chord"
)

var (
	ErrUnknownMove    = errors.New("unknown move")
	ErrUnknownCommand = errors.New("unknown command")
	ErrOutOfBounds    = errors.New("cell position out of bounds")
)

func ParseMove(s string) (Move, error) {
	switch m := Move(strings.ToLower(s)); m {
	case Open, Flag, Chord:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMove, s)
}

// Command is a single move at a cell.
type Command struct {
	Move        Move
	Row, Column int
}

// Maps websocket command letters to moves and their number of arguments.
var commandMoves = map[string]struct {
	move  Move
	nargs int
}{
	"g": {Noop, 0},
	"o": {Open, 2},
	"f": {Flag, 2},
	"c": {Chord, 2},
}

func parseRowColumn(args []string) (row int, column int, err error) {
	if row, err = strconv.Atoi(args[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if column, err = strconv.Atoi(args[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// ParseCommand reads a websocket command line: "g", "o row col",
// "f row col" or "c row col".
func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("%w: empty", ErrUnknownCommand)
	}
	entry, ok := commandMoves[parts[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if entry.nargs != len(parts)-1 {
		return Command{}, fmt.Errorf(
			"invalid number of arguments for %q: want %d, got %d",
			parts[0], entry.nargs, len(parts)-1,
		)
	}
	cmd := Command{Move: entry.move}
	if entry.nargs == 2 {
		row, column, err := parseRowColumn(parts[1:])
		if err != nil {
			return Command{}, err
		}
		cmd.Row, cmd.Column = row, column
	}
	return cmd, nil
}

// Apply runs the command against g.
func (c Command) Apply(g *mines.Game) error {
	if c.Move == Noop {
		return nil
	}
	if !g.Board().InBounds(c.Row, c.Column) {
		return fmt.Errorf("%w: %d:%d", ErrOutOfBounds, c.Row, c.Column)
	}
	switch c.Move {
	case Open:
		g.OpenAt(c.Row, c.Column)
	case Flag:
		g.ToggleFlagAt(c.Row, c.Column)
	case Chord:
		g.ChordAt(c.Row, c.Column)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMove, c.Move)
	}
	return nil
}
