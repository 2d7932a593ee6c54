package blackjack

import "blackjack-server/pkg/deck"

// Outcome is the result of a finished round
type Outcome string

// Outcome constants
const (
	// OutcomePlayerBlackjack means the player had a two-card 21 and the dealer did not
	OutcomePlayerBlackjack Outcome = "playerBlackjack"

	// OutcomeDealerBlackjack means the dealer had a two-card 21 and the player did not
	OutcomeDealerBlackjack Outcome = "dealerBlackjack"

	// OutcomePlayerBust means the player went over 21
	OutcomePlayerBust Outcome = "playerBust"

	// OutcomeDealerBust means the dealer went over 21 and the player did not
	OutcomeDealerBust Outcome = "dealerBust"

	// OutcomePlayerWin means the player outscored the dealer
	OutcomePlayerWin Outcome = "playerWin"

	// OutcomeDealerWin means the dealer outscored the player
	OutcomeDealerWin Outcome = "dealerWin"

	// OutcomePush means the scores were equal; the bet is returned
	OutcomePush Outcome = "push"
)

// payout returns the chips credited back to the bankroll for the given bet.
// The bet was already debited from the bankroll at placement time, so a
// returned bet counts toward the credit and a forfeited bet credits nothing.
func (o Outcome) payout(bet int) int {
	switch o {
	case OutcomePlayerBlackjack:
		// blackjack pays 3:2 on top of the returned bet
		return bet + bet*3/2
	case OutcomeDealerBust, OutcomePlayerWin:
		return bet * 2
	case OutcomePush:
		return bet
	}

	return 0
}

func (o Outcome) message() string {
	switch o {
	case OutcomePlayerBlackjack:
		return "Blackjack! You win!"
	case OutcomeDealerBlackjack:
		return "Dealer has blackjack. Dealer wins!"
	case OutcomePlayerBust:
		return "You bust! Dealer wins!"
	case OutcomeDealerBust:
		return "Dealer busts! You win!"
	case OutcomePlayerWin:
		return "You win!"
	case OutcomeDealerWin:
		return "Dealer wins!"
	case OutcomePush:
		return "It's a tie!"
	}

	return ""
}

// determineOutcome computes the outcome from the final hands.
// Settlement always uses true scores; visibility flags never feed this math.
func determineOutcome(player, dealer deck.Hand) Outcome {
	switch {
	case player.IsBust():
		return OutcomePlayerBust
	case player.IsBlackjack() && dealer.IsBlackjack():
		// a two-card 21 on both sides is a push, not a blackjack win
		return OutcomePush
	case player.IsBlackjack():
		return OutcomePlayerBlackjack
	case dealer.IsBlackjack():
		return OutcomeDealerBlackjack
	case dealer.IsBust():
		return OutcomeDealerBust
	}

	playerScore := player.Score(false)
	dealerScore := dealer.Score(false)
	switch {
	case playerScore > dealerScore:
		return OutcomePlayerWin
	case dealerScore > playerScore:
		return OutcomeDealerWin
	}

	return OutcomePush
}
