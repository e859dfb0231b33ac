package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func TestParseCommand(t *testing.T) {
	testCases := []struct {
		line string
		want Command
	}{
		{"g", Command{Move: Noop}},
		{"o 1 2", Command{Move: Open, Row: 1, Column: 2}},
		{"f 0 0", Command{Move: Flag}},
		{"  c 3   4 ", Command{Move: Chord, Row: 3, Column: 4}},
	}
	for _, test := range testCases {
		cmd, err := ParseCommand(test.line)
		require.NoError(t, err, test.line)
		assert.Equal(t, test.want, cmd, test.line)
	}
}

func TestParseCommandErrors(t *testing.T) {
	_, err := ParseCommand("")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	_, err = ParseCommand("x 1 2")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	_, err = ParseCommand("o 1")
	assert.Error(t, err)
	_, err = ParseCommand("g 1")
	assert.Error(t, err)
	_, err = ParseCommand("o a 1")
	assert.EqualError(t, err, "first argument must be an int")
	_, err = ParseCommand("o 1 b")
	assert.EqualError(t, err, "second argument must be an int")
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("OPEN")
	require.NoError(t, err)
	assert.Equal(t, Open, m)

	_, err = ParseMove("noop")
	assert.ErrorIs(t, err, ErrUnknownMove)
}

func TestCommandApply(t *testing.T) {
	g, err := mines.NewGameWithMines(3, 3, []mines.Point{{Row: 1, Column: 1}}, nil)
	require.NoError(t, err)

	require.NoError(t, Command{Move: Open}.Apply(g))
	require.NoError(t, Command{Move: Flag, Row: 1, Column: 1}.Apply(g))
	require.NoError(t, Command{Move: Chord}.Apply(g))
	require.NoError(t, Command{Move: Noop, Row: 99}.Apply(g))

	assert.Equal(t, 5, g.CellsToOpen())
	assert.ErrorIs(t, Command{Move: Open, Row: 3}.Apply(g), ErrOutOfBounds)
}
