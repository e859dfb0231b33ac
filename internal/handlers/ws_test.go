package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

func dialGame(t *testing.T, server *httptest.Server, s *session.Session) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/game/" + s.ID.String() + "/connect"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func readGame(t *testing.T, conn *websocket.Conn) GameDTO {
	t.Helper()
	var game GameDTO
	require.NoError(t, conn.ReadJSON(&game))
	return game
}

func TestWSSendsStateOnConnect(t *testing.T) {
	server, store := setupTestServer(t)
	s, err := store.Create(mines.Beginner)
	require.NoError(t, err)

	conn := dialGame(t, server, s)

	game := readGame(t, conn)
	assert.Equal(t, s.ID.String(), game.ID)
	assert.False(t, game.Running)
}

func TestWSExecutesCommands(t *testing.T) {
	server, store := setupTestServer(t)
	s, err := store.Create(mines.Settings{Rows: 6, Columns: 6, Mines: 4})
	require.NoError(t, err)
	conn := dialGame(t, server, s)
	readGame(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("f 0 0\nf 0 1\nf 0 1\ng")))

	game := readGame(t, conn)
	assert.True(t, game.Running)
	assert.Equal(t, 1, game.FlagsSet)
	assert.Equal(t, mines.Flagged, game.Grid[0])
	assert.Equal(t, mines.Unknown, game.Grid[1])
}

func TestWSReportsBadCommands(t *testing.T) {
	server, store := setupTestServer(t)
	s, err := store.Create(mines.Beginner)
	require.NoError(t, err)
	conn := dialGame(t, server, s)
	readGame(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("f 1 1\nz 0 0\nf 2 2")))

	var reply map[string]any
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Contains(t, reply["error"], "unknown command")

	game := readGame(t, conn)
	assert.Equal(t, 1, game.FlagsSet, "commands after the bad one are skipped")
}

func TestWSPushesClockTicks(t *testing.T) {
	server, store := setupTestServer(t)
	s, err := store.Create(mines.Beginner)
	require.NoError(t, err)
	conn := dialGame(t, server, s)
	readGame(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("f 0 0")))
	game := readGame(t, conn)
	require.True(t, game.Running)

	for game.Seconds < 1 {
		game = readGame(t, conn)
	}
	assert.GreaterOrEqual(t, game.Seconds, 1)
}

func TestWSUnknownGame(t *testing.T) {
	server, _ := setupTestServer(t)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/game/" + strings.Repeat("0", 8) + "/connect"

	_, res, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 400, res.StatusCode)
}
