package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjack-server/pkg/deck"
)

func handFromIDs(t *testing.T, ids string) deck.Hand {
	t.Helper()

	cards, err := deck.CardsFromIDs(ids)
	if err != nil {
		t.Fatal(err)
	}

	hand := deck.Hand{}
	for _, card := range cards {
		card.FaceUp = true
		hand.AddCard(card)
	}

	return hand
}

func TestDetermineOutcome(t *testing.T) {
	test := func(t *testing.T, player, dealer string, expected Outcome) {
		t.Helper()
		assert.Equal(t, expected, determineOutcome(handFromIDs(t, player), handFromIDs(t, dealer)),
			"player %s vs dealer %s", player, dealer)
	}

	test(t, "AH,KS", "9D,2C", OutcomePlayerBlackjack)
	test(t, "9D,2C", "AH,KS", OutcomeDealerBlackjack)
	test(t, "AH,KS", "AD,KC", OutcomePush) // double blackjack is a push
	test(t, "KH,QS,2D", "9D,8C", OutcomePlayerBust)
	test(t, "KH,QS,2D", "KD,QC,2C", OutcomePlayerBust) // player bust settles first
	test(t, "10H,9S", "KD,QC,2C", OutcomeDealerBust)
	test(t, "10H,9S", "10D,8C", OutcomePlayerWin)
	test(t, "10H,8S", "10D,9C", OutcomeDealerWin)
	test(t, "10H,9S", "10D,9C", OutcomePush)

	// a three-card 21 beats a lower score but is not a blackjack
	test(t, "7H,7S,7D", "10D,9C", OutcomePlayerWin)
	test(t, "7H,7S,7D", "AD,KC", OutcomeDealerBlackjack)
}

func TestOutcome_payout(t *testing.T) {
	a := assert.New(t)

	a.Equal(250, OutcomePlayerBlackjack.payout(100))
	a.Equal(0, OutcomeDealerBlackjack.payout(100))
	a.Equal(0, OutcomePlayerBust.payout(100))
	a.Equal(200, OutcomeDealerBust.payout(100))
	a.Equal(200, OutcomePlayerWin.payout(100))
	a.Equal(0, OutcomeDealerWin.payout(100))
	a.Equal(100, OutcomePush.payout(100))
}

func TestOutcome_message(t *testing.T) {
	a := assert.New(t)

	a.Equal("You win!", OutcomePlayerWin.message())
	a.Equal("Dealer wins!", OutcomeDealerWin.message())
	a.Equal("It's a tie!", OutcomePush.message())
	a.NotEmpty(OutcomePlayerBlackjack.message())
	a.NotEmpty(OutcomeDealerBust.message())
}
