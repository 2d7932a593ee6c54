package blackjack

import (
	"errors"
	"fmt"
)

// ErrInsufficientFunds is an error when a bet exceeds the bankroll
var ErrInsufficientFunds = errors.New("bet exceeds bankroll")

// ErrInvalidBet is an error when a bet is zero or negative
var ErrInvalidBet = errors.New("bet must be greater than zero")

// ErrNoBetPlaced is an error when a deal is attempted with no bet on the table
var ErrNoBetPlaced = errors.New("no bet placed")

// ErrNoFunds is an error when an all-in is attempted with an empty bankroll
var ErrNoFunds = errors.New("bankroll is empty")

// InvalidIntentError is returned when an intent is not accepted in the
// current phase. The rejected intent causes no state change.
type InvalidIntentError struct {
	Intent string
	Phase  Phase
}

func (e *InvalidIntentError) Error() string {
	return fmt.Sprintf("cannot %s from phase: %s", e.Intent, e.Phase)
}
