package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Card is an individual playing card.
// FaceUp only matters while a card is in a hand; the deck ignores it.
type Card struct {
	Rank   int  `json:"rank"`
	Suit   Suit `json:"suit"`
	FaceUp bool `json:"faceUp"`
}

// rankToken returns the rank portion of a card id (A, 2–10, J, Q, K)
func (c *Card) rankToken() string {
	switch c.Rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	return strconv.Itoa(c.Rank)
}

func (c *Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", c.rankToken(), suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Value returns the blackjack value of the card.
// Aces count as 11 here; hand scoring downgrades them to 1 as needed.
func (c *Card) Value() int {
	switch {
	case c.Rank == Ace:
		return 11
	case c.Rank >= Jack:
		return 10
	}

	return c.Rank
}

// ID returns the persisted identity of the card, i.e. "AH", "10S", "KD"
func (c *Card) ID() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "C"
	case Diamonds:
		suit = "D"
	case Hearts:
		suit = "H"
	case Spades:
		suit = "S"
	default:
		panic("unknown suit")
	}

	return c.rankToken() + suit
}

// Clone returns a clone of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

var cardRx = regexp.MustCompile(`(?i)^(a|[2-9]|10|j|q|k)([cdhs])\z`)

// CardFromID returns a Card from its id.
// The id must be in the format of <rank><suit> where rank is A, 2-10, J, Q,
// or K, and suit is one of [CDHS].
func CardFromID(id string) (*Card, error) {
	match := cardRx.FindStringSubmatch(id)
	if match == nil {
		return nil, fmt.Errorf("could not parse card: %s", id)
	}

	var rank int
	switch strings.ToUpper(match[1]) {
	case "A":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		var err error
		rank, err = strconv.Atoi(match[1])
		if err != nil {
			return nil, fmt.Errorf("could not parse card %s: %w", id, err)
		}
	}

	var suit Suit
	switch strings.ToUpper(match[2]) {
	case "C":
		suit = Clubs
	case "D":
		suit = Diamonds
	case "H":
		suit = Hearts
	case "S":
		suit = Spades
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}, nil
}

// CardsFromIDs returns a slice of cards from a comma-separated list of ids
func CardsFromIDs(s string) ([]*Card, error) {
	if s == "" {
		return []*Card{}, nil
	}

	ids := strings.Split(s, ",")
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

// CardsToIDs converts a slice of cards to their ids
func CardsToIDs(cards []*Card) []string {
	ids := make([]string, len(cards))
	for i, card := range cards {
		ids[i] = card.ID()
	}

	return ids
}
