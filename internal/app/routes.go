package app

import (
	"net/http"

	"github.com/vancomm/minesweeper-engine/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.store, a.ws)

	a.router.HandleFunc("POST "+a.basePath+"/game", game.NewGame)
	a.router.HandleFunc("GET "+a.basePath+"/game/{id}", game.Fetch)
	a.router.HandleFunc("POST "+a.basePath+"/game/{id}/move", game.MakeAMove)
	a.router.HandleFunc("DELETE "+a.basePath+"/game/{id}", game.Delete)
	a.router.HandleFunc("GET "+a.basePath+"/game/{id}/connect", game.ConnectWS)
	a.router.HandleFunc("GET "+a.basePath+"/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}
