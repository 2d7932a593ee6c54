package mux

import (
	"errors"
	"net/http"

	"blackjack-server/pkg/blackjack"
)

type betRequest struct {
	Amount int `json:"amount"`
}

// writeIntentResult maps a rejected intent to a 4xx and an accepted intent
// to the refreshed game state
func (m *Mux) writeIntentResult(w http.ResponseWriter, err error) {
	if err != nil {
		var intentErr *blackjack.InvalidIntentError
		if errors.As(err, &intentErr) {
			writeJSONError(w, http.StatusConflict, err)
			return
		}

		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, m.game.State())
}

func (m *Mux) getGameState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.gameMu.Lock()
		state := m.game.State()
		m.gameMu.Unlock()

		writeJSON(w, http.StatusOK, state)
	}
}

func (m *Mux) postBet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req betRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		m.gameMu.Lock()
		err := m.game.PlaceBet(req.Amount)
		m.writeIntentResult(w, err)
		m.gameMu.Unlock()
	}
}

func (m *Mux) postBetClear() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.gameMu.Lock()
		err := m.game.ClearBet()
		m.writeIntentResult(w, err)
		m.gameMu.Unlock()
	}
}

func (m *Mux) postBetAllIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.gameMu.Lock()
		err := m.game.AllIn()
		m.writeIntentResult(w, err)
		m.gameMu.Unlock()
	}
}

func (m *Mux) postDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.gameMu.Lock()
		err := m.game.Deal()
		m.writeIntentResult(w, err)
		m.gameMu.Unlock()
	}
}

func (m *Mux) postHit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.gameMu.Lock()
		err := m.game.Hit()
		m.writeIntentResult(w, err)
		m.gameMu.Unlock()
	}
}

func (m *Mux) postStay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.gameMu.Lock()
		err := m.game.Stay()
		m.writeIntentResult(w, err)
		m.gameMu.Unlock()
	}
}
