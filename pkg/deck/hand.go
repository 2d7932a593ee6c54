package deck

// Hand represents an ordered collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// Cards returns the cards in the hand
func (h Hand) Cards() []*Card {
	return h
}

// Score computes the Ace-adjusted blackjack total of the hand.
// Aces start at 11 and are downgraded to 1, one at a time, while the total
// is over 21. If visibleOnly is true, only face-up cards are counted.
func (h Hand) Score(visibleOnly bool) int {
	score := 0
	aces := 0

	for _, card := range h {
		if visibleOnly && !card.FaceUp {
			continue
		}

		if card.Rank == Ace {
			aces++
		}

		score += card.Value()
	}

	for aces > 0 && score > 21 {
		score -= 10
		aces--
	}

	return score
}

// IsBlackjack returns true if the hand is exactly two cards totaling 21.
// A three-card 21 is not a blackjack.
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Score(false) == 21
}

// IsBust returns true if the hand's true score is over 21
func (h Hand) IsBust() bool {
	return h.Score(false) > 21
}

// Reveal flips all face-down cards face-up and returns the cards it flipped.
// Visibility is cosmetic; the true score never depends on it.
func (h Hand) Reveal() []*Card {
	var flipped []*Card
	for _, card := range h {
		if !card.FaceUp {
			card.FaceUp = true
			flipped = append(flipped, card)
		}
	}

	return flipped
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

func (h Hand) String() string {
	s := ""
	for i, card := range h {
		if i > 0 {
			s += ","
		}
		s += card.ID()
	}

	return s
}
