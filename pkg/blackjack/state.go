package blackjack

import "blackjack-server/pkg/deck"

// Phase is the authoritative game phase
type Phase string

// Phase constants
const (
	// PhaseNotStarted accepts bet management and deal
	PhaseNotStarted Phase = "notStarted"

	// PhasePlayerTurn accepts hit and stay
	PhasePlayerTurn Phase = "playerTurn"

	// PhaseDealerTurn accepts no intents; the dealer policy loop runs to completion
	PhaseDealerTurn Phase = "dealerTurn"

	// PhaseGameOver accepts bet management, which starts the next round
	PhaseGameOver Phase = "gameOver"
)

// CardState is a card as exposed to the presentation layer.
// A face-down card hides its identity.
type CardState struct {
	ID     string `json:"id,omitempty"`
	FaceUp bool   `json:"faceUp"`
}

// GameState is the engine state as exposed to the presentation layer.
// These values are safe to render directly: the dealer's hole card is
// masked and the dealer score counts only face-up cards until the reveal.
type GameState struct {
	RoundID     string       `json:"roundId,omitempty"`
	Phase       Phase        `json:"phase"`
	PlayerHand  []*CardState `json:"playerHand"`
	DealerHand  []*CardState `json:"dealerHand"`
	PlayerScore int          `json:"playerScore"`
	DealerScore int          `json:"dealerScore"`
	// DealerScoreVisibleOnly is true while the hole card is still hidden
	DealerScoreVisibleOnly bool    `json:"dealerScoreVisibleOnly"`
	Bankroll               int     `json:"bankroll"`
	Bet                    int     `json:"bet"`
	Outcome                Outcome `json:"outcome,omitempty"`
	Message                string  `json:"message,omitempty"`
}

func cardState(card *deck.Card) *CardState {
	cs := &CardState{FaceUp: card.FaceUp}
	if card.FaceUp {
		cs.ID = card.ID()
	}

	return cs
}

func handState(hand deck.Hand) []*CardState {
	cards := make([]*CardState, len(hand))
	for i, card := range hand {
		cards[i] = cardState(card)
	}

	return cards
}

// State returns the current state of the game
func (g *Game) State() *GameState {
	dealerVisibleOnly := false
	for _, card := range g.dealer {
		if !card.FaceUp {
			dealerVisibleOnly = true
			break
		}
	}

	return &GameState{
		RoundID:                g.roundID,
		Phase:                  g.phase,
		PlayerHand:             handState(g.player),
		DealerHand:             handState(g.dealer),
		PlayerScore:            g.player.Score(false),
		DealerScore:            g.dealer.Score(dealerVisibleOnly),
		DealerScoreVisibleOnly: dealerVisibleOnly,
		Bankroll:               g.ledger.Bankroll(),
		Bet:                    g.ledger.Bet(),
		Outcome:                g.outcome,
		Message:                g.message,
	}
}
