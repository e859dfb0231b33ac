package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

var ErrUnknownPreset = errors.New("unknown preset")

type GameHandler struct {
	logger *slog.Logger
	store  *session.Store
	ws     *config.WebSocket
}

func NewGameHandler(
	logger *slog.Logger,
	store *session.Store,
	ws *config.WebSocket,
) *GameHandler {
	handler := &GameHandler{
		logger: logger,
		store:  store,
		ws:     ws,
	}

	return handler
}

// fetchSession resolves the {id} path value, replying with 400 or 404 when
// it cannot.
func (g GameHandler) fetchSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		SendErrorOrLog(w, g.logger, http.StatusBadRequest, fmt.Errorf("invalid game id: %w", err))
		return nil, false
	}

	s, err := g.store.Get(id)
	if errors.Is(err, session.ErrNotFound) {
		SendErrorOrLog(w, g.logger, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session", "error", err)
		return nil, false
	}

	return s, true
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		SendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	settings, ok := dto.Settings()
	if !ok {
		SendErrorOrLog(w, g.logger, http.StatusBadRequest,
			fmt.Errorf("%w: %q", ErrUnknownPreset, dto.Preset))
		return
	}

	s, err := g.store.Create(settings)
	if errors.Is(err, mines.ErrInvalidSettings) {
		SendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create a new game", "error", err)
		return
	}

	var game *GameDTO
	s.Do(func(gm *mines.Game) { game = NewGameDTO(s.ID, gm) })

	sendJSONOrLog(w, g.logger, game)
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	var game *GameDTO
	s.Do(func(gm *mines.Game) { game = NewGameDTO(s.ID, gm) })

	sendJSONOrLog(w, g.logger, game)
}

func (g GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		SendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	cmd, err := dto.Command()
	if err != nil {
		SendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	s, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	var game *GameDTO
	s.Do(func(gm *mines.Game) {
		if err = cmd.Apply(gm); err == nil {
			game = NewGameDTO(s.ID, gm)
		}
	})
	if err != nil {
		SendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	if game.Finished {
		g.logger.Debug("game finished",
			slog.String("id", game.ID),
			slog.String("outcome", game.Outcome),
			slog.Int("seconds", game.Seconds),
		)
	}

	sendJSONOrLog(w, g.logger, game)
}

func (g GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	if err := g.store.Delete(s.ID); err != nil && !errors.Is(err, session.ErrNotFound) {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to delete session", "error", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
