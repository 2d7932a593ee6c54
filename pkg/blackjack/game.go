// Package blackjack implements the single-player blackjack engine: the round
// state machine, the dealer policy, and the wagering ledger. The engine knows
// nothing about rendering; a presentation layer drives it with intents and
// subscribes to its events.
package blackjack

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"blackjack-server/internal/rng"
	"blackjack-server/pkg/deck"
	"blackjack-server/pkg/store"
)

// persisted state keys
const (
	storeKeyBankroll = "bankroll"
	storeKeyDeck     = "deck"
)

// dealerStandScore is the score at which the dealer stops drawing
const dealerStandScore = 17

// defaultBankroll is the bankroll for a brand-new player
const defaultBankroll = 1000

// Options configures a new game
type Options struct {
	// StartingBankroll is the bankroll used when none has been persisted.
	// Zero means the default of 1000.
	StartingBankroll int

	// RNG overrides the random source for shuffles.
	// This should only be used by tests.
	RNG rng.Generator
}

// Game is a blackjack engine instance. It owns all mutable game state and
// every mutation goes through its intent methods.
//
// The engine is single-threaded: callers must serialize intents. Exactly one
// intent is processed at a time, and intents that are not accepted in the
// current phase are rejected without any state change.
type Game struct {
	logger logrus.FieldLogger
	store  store.Store
	deck   *deck.Deck
	ledger *Ledger

	player  deck.Hand
	dealer  deck.Hand
	phase   Phase
	roundID string
	outcome Outcome
	message string

	events chan Event
}

// NewGame returns a new engine, restoring the bankroll and deck snapshot
// from the store when present
func NewGame(logger logrus.FieldLogger, st store.Store, opts Options) (*Game, error) {
	if opts.StartingBankroll == 0 {
		opts.StartingBankroll = defaultBankroll
	}

	g := &Game{
		logger: logger,
		store:  st,
		phase:  PhaseNotStarted,
		player: deck.Hand{},
		dealer: deck.Hand{},
		events: make(chan Event, 256),
	}

	bankroll, err := g.loadBankroll(opts.StartingBankroll)
	if err != nil {
		return nil, err
	}
	g.ledger = NewLedger(bankroll)

	d, err := g.loadDeck(opts.RNG)
	if err != nil {
		return nil, err
	}
	g.deck = d

	return g, nil
}

func (g *Game) loadBankroll(starting int) (int, error) {
	val, ok, err := g.store.Get(storeKeyBankroll)
	if err != nil {
		return 0, err
	}

	if !ok {
		return starting, nil
	}

	bankroll, err := strconv.Atoi(val)
	if err != nil || bankroll < 0 {
		g.logger.WithField("value", val).Warn("ignoring corrupt persisted bankroll")
		return starting, nil
	}

	return bankroll, nil
}

func (g *Game) loadDeck(r rng.Generator) (*deck.Deck, error) {
	val, ok, err := g.store.Get(storeKeyDeck)
	if err != nil {
		return nil, err
	}

	if ok {
		var snap deck.Snapshot
		if err := json.Unmarshal([]byte(val), &snap); err == nil {
			if d, err := deck.Restore(&snap, r); err == nil {
				return d, nil
			}
		}

		g.logger.Warn("ignoring corrupt persisted deck snapshot")
	}

	d := deck.New(r)
	d.Shuffle()
	return d, nil
}

// PlaceBet moves amount from the bankroll to the table.
// Repeated calls accumulate the bet.
func (g *Game) PlaceBet(amount int) error {
	if g.phase != PhaseNotStarted && g.phase != PhaseGameOver {
		return &InvalidIntentError{"place a bet", g.phase}
	}

	if err := g.ledger.PlaceBet(amount); err != nil {
		return err
	}

	g.nextRound()
	g.saveBankroll()
	g.emitBankroll()
	g.emitBet()

	return nil
}

// ClearBet returns the full bet to the bankroll.
// Clearing a zero bet is a no-op.
func (g *Game) ClearBet() error {
	if g.phase != PhaseNotStarted && g.phase != PhaseGameOver {
		return &InvalidIntentError{"clear the bet", g.phase}
	}

	g.ledger.ClearBet()
	g.nextRound()
	g.saveBankroll()
	g.emitBankroll()
	g.emitBet()

	return nil
}

// AllIn bets the entire bankroll
func (g *Game) AllIn() error {
	if g.phase != PhaseNotStarted && g.phase != PhaseGameOver {
		return &InvalidIntentError{"go all in", g.phase}
	}

	if err := g.ledger.AllIn(); err != nil {
		return err
	}

	g.nextRound()
	g.saveBankroll()
	g.emitBankroll()
	g.emitBet()

	return nil
}

// Deal starts a round: two face-up cards to the player, then an up card and
// a hole card to the dealer. A player blackjack settles immediately.
func (g *Game) Deal() error {
	if g.phase != PhaseNotStarted && g.phase != PhaseGameOver {
		return &InvalidIntentError{"deal", g.phase}
	}

	if g.ledger.Bet() == 0 {
		return ErrNoBetPlaced
	}

	g.nextRound()
	g.roundID = uuid.New().String()
	g.logger.WithFields(logrus.Fields{
		"round": g.roundID,
		"bet":   g.ledger.Bet(),
	}).Info("dealing new round")

	g.dealCard(SeatPlayer, true)
	g.dealCard(SeatPlayer, true)
	g.dealCard(SeatDealer, true)
	g.dealCard(SeatDealer, false)
	g.saveDeck()

	g.emitPlayerScore()
	g.emitDealerScore()

	if g.player.IsBlackjack() {
		// fast path: reveal the hole card and settle, whether or not the
		// dealer also has blackjack
		g.revealDealer()
		g.settle(determineOutcome(g.player, g.dealer))
		return nil
	}

	g.setPhase(PhasePlayerTurn)
	return nil
}

// Hit draws one face-up card for the player. A bust ends the round.
func (g *Game) Hit() error {
	if g.phase != PhasePlayerTurn {
		return &InvalidIntentError{"hit", g.phase}
	}

	g.dealCard(SeatPlayer, true)
	g.saveDeck()
	g.emitPlayerScore()

	if g.player.IsBust() {
		// the hole card is shown for display, but the dealer does not play
		g.revealDealer()
		g.settle(OutcomePlayerBust)
	}

	return nil
}

// Stay ends the player's turn, reveals the hole card, and runs the dealer's
// turn to completion
func (g *Game) Stay() error {
	if g.phase != PhasePlayerTurn {
		return &InvalidIntentError{"stay", g.phase}
	}

	for _, card := range g.player.Reveal() {
		g.emitCardFlipped(SeatPlayer, card)
	}

	g.revealDealer()
	g.setPhase(PhaseDealerTurn)
	g.runDealer()

	return nil
}

// runDealer draws for the dealer until the true score reaches 17, then
// settles. Each draw is emitted as a discrete event so the presentation
// layer can pace the reveal.
func (g *Game) runDealer() {
	for g.dealer.Score(false) < dealerStandScore {
		g.dealCard(SeatDealer, true)
		g.emitDealerScore()
	}
	g.saveDeck()

	g.settle(determineOutcome(g.player, g.dealer))
}

// dealCard draws the next card to the given seat. If the draw pile is
// exhausted, the discard pile is recycled rather than failing the round.
func (g *Game) dealCard(seat Seat, faceUp bool) {
	card, err := g.deck.DrawFromTop()
	if err == deck.ErrEndOfDeck {
		// repeated rounds draw from the same persisted deck, so a single
		// 52-card deck does run dry eventually
		g.logger.Info("draw pile exhausted, reshuffling discards")
		g.deck.ReinsertDiscard(true)
		card, err = g.deck.DrawFromTop()
	}

	if err != nil {
		panic("inconsistent deck state: no cards to draw after reshuffle")
	}

	card.FaceUp = faceUp
	if seat == SeatPlayer {
		g.player.AddCard(card)
	} else {
		g.dealer.AddCard(card)
	}

	g.emitCardDealt(seat, card)
}

// revealDealer flips the dealer's face-down cards and reports the true score
func (g *Game) revealDealer() {
	for _, card := range g.dealer.Reveal() {
		g.emitCardFlipped(SeatDealer, card)
	}

	g.emitDealerScore()
}

// settle applies the payout policy and ends the round.
// It runs exactly once per round, on entry to the game-over phase.
func (g *Game) settle(outcome Outcome) {
	bet := g.ledger.Bet()
	payout := g.ledger.Settle(outcome)

	g.outcome = outcome
	g.message = outcome.message()

	g.logger.WithFields(logrus.Fields{
		"round":   g.roundID,
		"outcome": outcome,
		"bet":     bet,
		"payout":  payout,
	}).Info("round settled")

	g.saveBankroll()
	g.emitBankroll()
	g.emitBet()
	g.emitMessage(g.message)
	g.setPhase(PhaseGameOver)
}

// nextRound clears the table after a finished round. The dealt cards already
// sit in the deck's discard pile, so dropping the hands returns them.
func (g *Game) nextRound() {
	if g.phase != PhaseGameOver {
		return
	}

	g.player = deck.Hand{}
	g.dealer = deck.Hand{}
	g.outcome = ""
	g.message = ""
	g.roundID = ""

	g.setPhase(PhaseNotStarted)
	g.emitPlayerScore()
	g.emitDealerScore()
}

func (g *Game) setPhase(phase Phase) {
	g.phase = phase
	g.emitPhase()
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// saveBankroll persists the bankroll. A persistence failure is logged and
// play continues in memory.
func (g *Game) saveBankroll() bool {
	if err := g.store.Set(storeKeyBankroll, strconv.Itoa(g.ledger.Bankroll())); err != nil {
		g.logger.WithError(err).Error("could not persist bankroll")
		return false
	}

	return true
}

// saveDeck persists the deck snapshot. A persistence failure is logged and
// play continues in memory.
func (g *Game) saveDeck() bool {
	data, err := json.Marshal(g.deck.Snapshot())
	if err != nil {
		g.logger.WithError(err).Error("could not marshal deck snapshot")
		return false
	}

	if err := g.store.Set(storeKeyDeck, string(data)); err != nil {
		g.logger.WithError(err).Error("could not persist deck snapshot")
		return false
	}

	return true
}
