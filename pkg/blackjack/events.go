package blackjack

import (
	"github.com/google/uuid"

	"blackjack-server/pkg/deck"
)

// EventType identifies a notification emitted by the engine
type EventType string

// event type constants
const (
	EventPhaseChanged       EventType = "phaseChanged"
	EventPlayerScoreChanged EventType = "playerScoreChanged"
	EventDealerScoreChanged EventType = "dealerScoreChanged"
	EventMessage            EventType = "message"
	EventBankrollChanged    EventType = "bankrollChanged"
	EventBetChanged         EventType = "betChanged"
	EventCardDealt          EventType = "cardDealt"
	EventCardFlipped        EventType = "cardFlipped"
)

// Seat identifies whose hand a card event refers to
type Seat string

// seat constants
const (
	SeatPlayer Seat = "player"
	SeatDealer Seat = "dealer"
)

// Event is a state-change notification for the presentation layer.
// The engine emits these in the order the changes happened; the dealer's
// turn arrives as a sequence of discrete events so a renderer can pace them.
// Cards are masked the same way the state view masks them: a face-down
// card's identity stays hidden until it is flipped.
type Event struct {
	UUID    string     `json:"uuid"`
	Type    EventType  `json:"type"`
	Phase   Phase      `json:"phase,omitempty"`
	Seat    Seat       `json:"seat,omitempty"`
	Card    *CardState `json:"card,omitempty"`
	Score   int        `json:"score"`
	Amount  int        `json:"amount"`
	Message string     `json:"message,omitempty"`
	// VisibleOnly is true when Score counts only face-up cards
	VisibleOnly bool `json:"visibleOnly,omitempty"`
}

// Events returns the channel the engine sends notifications to
func (g *Game) Events() <-chan Event {
	return g.events
}

func (g *Game) emit(event Event) {
	event.UUID = uuid.New().String()

	select {
	case g.events <- event:
	default:
		// a stalled consumer must not block the engine
		g.logger.WithField("type", event.Type).Warn("event channel full, dropping event")
	}
}

func (g *Game) emitPhase() {
	g.emit(Event{Type: EventPhaseChanged, Phase: g.phase})
}

func (g *Game) emitPlayerScore() {
	g.emit(Event{Type: EventPlayerScoreChanged, Score: g.player.Score(false)})
}

func (g *Game) emitDealerScore() {
	visibleOnly := false
	for _, card := range g.dealer {
		if !card.FaceUp {
			visibleOnly = true
			break
		}
	}

	g.emit(Event{
		Type:        EventDealerScoreChanged,
		Score:       g.dealer.Score(visibleOnly),
		VisibleOnly: visibleOnly,
	})
}

func (g *Game) emitBankroll() {
	g.emit(Event{Type: EventBankrollChanged, Amount: g.ledger.Bankroll()})
}

func (g *Game) emitBet() {
	g.emit(Event{Type: EventBetChanged, Amount: g.ledger.Bet()})
}

func (g *Game) emitMessage(message string) {
	g.emit(Event{Type: EventMessage, Message: message})
}

func (g *Game) emitCardDealt(seat Seat, card *deck.Card) {
	g.emit(Event{Type: EventCardDealt, Seat: seat, Card: cardState(card)})
}

func (g *Game) emitCardFlipped(seat Seat, card *deck.Card) {
	g.emit(Event{Type: EventCardFlipped, Seat: seat, Card: cardState(card)})
}
