package config

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader     websocket.Upgrader
	TickInterval time.Duration
}

func NewWebSocket() (*WebSocket, error) {
	tick, err := lookupDuration("WS_TICK_INTERVAL", time.Second)
	if err != nil {
		return nil, err
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws := &WebSocket{
		Upgrader:     upgrader,
		TickInterval: tick,
	}

	return ws, nil
}
