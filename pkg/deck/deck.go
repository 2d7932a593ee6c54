package deck

import (
	"errors"

	"blackjack-server/internal/rng"
)

// ErrEndOfDeck is an error when a draw is attempted and the draw pile is empty
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrIncompleteDeck is an error when a snapshot does not contain exactly one
// standard 52-card set across both piles
var ErrIncompleteDeck = errors.New("snapshot is not a full 52-card deck")

// Deck is a standard 52-card deck split into a draw pile and a discard pile.
// Drawn cards move to the discard pile; the union of the two piles is always
// the full 52-card set.
type Deck struct {
	drawPile    []*Card
	discardPile []*Card
	rng         rng.Generator
}

// New returns a new deck of cards using the provided random source.
// If r is nil, a crypto-backed source is used.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards.
func New(r rng.Generator) *Deck {
	if r == nil {
		r = rng.Crypto{}
	}

	d := &Deck{rng: r}
	d.buildDrawPile()
	return d
}

func (d *Deck) buildDrawPile() {
	cards := make([]*Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.drawPile = cards
	d.discardPile = []*Card{}
}

// Shuffle performs a Fisher–Yates shuffle of the draw pile.
// The discard pile is untouched.
func (d *Deck) Shuffle() {
	for j := len(d.drawPile) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.drawPile[i], d.drawPile[j] = d.drawPile[j], d.drawPile[i]
	}
}

// DrawFromTop draws the next card from the top of the draw pile and moves it
// to the discard pile. The returned card is the caller's own copy, so hand
// visibility flags never leak into the piles.
// If the draw pile is empty, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) DrawFromTop() (*Card, error) {
	if len(d.drawPile) == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.drawPile[0]
	d.drawPile = d.drawPile[1:]
	d.discardPile = append(d.discardPile, card)

	return card.Clone(), nil
}

// DrawFromBottom draws the bottom card of the draw pile and moves it to the
// discard pile. As with DrawFromTop, the returned card is a copy.
func (d *Deck) DrawFromBottom() (*Card, error) {
	n := len(d.drawPile)
	if n == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.drawPile[n-1]
	d.drawPile = d.drawPile[:n-1]
	d.discardPile = append(d.discardPile, card)

	return card.Clone(), nil
}

// ReinsertDiscard moves the entire discard pile back into the draw pile and
// empties the discard pile. If shuffle is true, the draw pile is shuffled
// afterwards.
func (d *Deck) ReinsertDiscard(shuffle bool) {
	d.drawPile = append(d.drawPile, d.discardPile...)
	d.discardPile = []*Card{}

	if shuffle {
		d.Shuffle()
	}
}

// Reset rebuilds a fresh ordered draw pile and clears the discard pile
func (d *Deck) Reset() {
	d.buildDrawPile()
}

// CardsLeft returns the number of cards left in the draw pile
func (d *Deck) CardsLeft() int {
	return len(d.drawPile)
}

// DiscardCount returns the number of cards in the discard pile
func (d *Deck) DiscardCount() int {
	return len(d.discardPile)
}

// CanDraw returns true if there are {want} cards left in the draw pile
func (d *Deck) CanDraw(want int) bool {
	return len(d.drawPile) >= want
}

// Snapshot is the persisted form of a deck
type Snapshot struct {
	DrawPile    []string `json:"drawPile"`
	DiscardPile []string `json:"discardPile"`
}

// Snapshot returns the persisted form of the deck.
// The draw pile is listed in draw order.
func (d *Deck) Snapshot() *Snapshot {
	return &Snapshot{
		DrawPile:    CardsToIDs(d.drawPile),
		DiscardPile: CardsToIDs(d.discardPile),
	}
}

// Restore rebuilds a deck from a snapshot. The two piles must together hold
// exactly one standard 52-card set or an ErrIncompleteDeck is returned.
func Restore(snap *Snapshot, r rng.Generator) (*Deck, error) {
	if r == nil {
		r = rng.Crypto{}
	}

	drawPile, err := cardsFromIDList(snap.DrawPile)
	if err != nil {
		return nil, err
	}

	discardPile, err := cardsFromIDList(snap.DiscardPile)
	if err != nil {
		return nil, err
	}

	if len(drawPile)+len(discardPile) != 52 {
		return nil, ErrIncompleteDeck
	}

	seen := make(map[string]bool, 52)
	for _, pile := range [][]*Card{drawPile, discardPile} {
		for _, card := range pile {
			id := card.ID()
			if seen[id] {
				return nil, ErrIncompleteDeck
			}

			seen[id] = true
		}
	}

	return &Deck{
		drawPile:    drawPile,
		discardPile: discardPile,
		rng:         r,
	}, nil
}

func cardsFromIDList(ids []string) ([]*Card, error) {
	cards := make([]*Card, len(ids))
	for i, id := range ids {
		card, err := CardFromID(id)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}
