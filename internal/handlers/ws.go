package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

// ConnectWS upgrades to a websocket that accepts newline-separated commands
// and answers each message with the game state. The state is also pushed
// whenever the clock advances.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()

	g.logger.Debug("established WS connection", slog.String("id", s.ID.String()))

	err = g.runGameLoop(r.Context(), conn, s)
	if err != nil && !websocket.IsCloseError(err,
		websocket.CloseNormalClosure, websocket.CloseGoingAway,
	) {
		g.logger.Warn("error in ws loop", slog.Any("error", err))
	}
}

type wsMessage struct {
	payload []byte
	err     error
}

func readMessages(conn *websocket.Conn, done <-chan struct{}) <-chan wsMessage {
	messages := make(chan wsMessage)
	go func() {
		defer close(messages)
		for {
			mt, buf, err := conn.ReadMessage()
			if err == nil && mt != websocket.TextMessage {
				err = fmt.Errorf("unsupported message type %d", mt)
			}
			select {
			case messages <- wsMessage{buf, err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return messages
}

// execute runs every command of a message, stopping at the first error or
// once the game is over.
func execute(s *session.Session, message string) (game *GameDTO, err error) {
	s.Do(func(gm *mines.Game) {
		for _, line := range strings.Split(message, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			var cmd Command
			if cmd, err = ParseCommand(line); err != nil {
				break
			}
			if err = cmd.Apply(gm); err != nil {
				break
			}
			if gm.Finished() {
				break
			}
		}
		game = NewGameDTO(s.ID, gm)
	})
	return game, err
}

func (g GameHandler) runGameLoop(
	ctx context.Context, conn *websocket.Conn, s *session.Session,
) error {
	done := make(chan struct{})
	defer close(done)
	messages := readMessages(conn, done)

	ticker := time.NewTicker(g.ws.TickInterval)
	defer ticker.Stop()

	var game *GameDTO
	s.Do(func(gm *mines.Game) { game = NewGameDTO(s.ID, gm) })
	if err := conn.WriteJSON(game); err != nil {
		return fmt.Errorf("unable to write json: %w", err)
	}
	version := game.Version

	for {
		select {
		case <-ctx.Done():
			return nil

		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			if msg.err != nil {
				return msg.err
			}
			game, err := execute(s, string(msg.payload))
			if err != nil {
				if err := conn.WriteJSON(wrapError(err)); err != nil {
					return fmt.Errorf("unable to write json: %w", err)
				}
			}
			if err := conn.WriteJSON(game); err != nil {
				return fmt.Errorf("unable to write json: %w", err)
			}
			version = game.Version

		case <-ticker.C:
			game = nil
			s.Do(func(gm *mines.Game) {
				if gm.Version() != version {
					game = NewGameDTO(s.ID, gm)
				}
			})
			if game == nil {
				continue
			}
			if err := conn.WriteJSON(game); err != nil {
				return fmt.Errorf("unable to write json: %w", err)
			}
			version = game.Version
		}
	}
}
