// Package mux exposes the blackjack engine to the UI layer: REST endpoints
// for intents and state, and a websocket stream for engine notifications.
package mux

import (
	"net/http"
	"sync"

	gmux "github.com/gorilla/mux"

	"blackjack-server/pkg/blackjack"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	game    *blackjack.Game
	hub     *hub

	// gameMu serializes intents; the engine itself is single-threaded
	gameMu sync.Mutex
}

// NewMux returns a new HTTP mux around the given engine
func NewMux(version string, game *blackjack.Game) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		game:    game,
		hub:     newHub(),
	}

	go this.hub.run(game.Events())

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/game/state").Handler(this.getGameState())
	r.Methods(http.MethodGet).Path("/game/ws").Handler(this.getGameWS())

	r.Methods(http.MethodPost).Path("/game/bet").Handler(this.postBet())
	r.Methods(http.MethodPost).Path("/game/bet/clear").Handler(this.postBetClear())
	r.Methods(http.MethodPost).Path("/game/bet/all-in").Handler(this.postBetAllIn())
	r.Methods(http.MethodPost).Path("/game/deal").Handler(this.postDeal())
	r.Methods(http.MethodPost).Path("/game/hit").Handler(this.postHit())
	r.Methods(http.MethodPost).Path("/game/stay").Handler(this.postStay())

	return this
}

// Close stops the event fan-out goroutine. Safe to call more than once.
func (m *Mux) Close() {
	m.hub.close()
}
