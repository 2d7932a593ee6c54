package blackjack

// Ledger tracks the player's bankroll and the bet on the table.
// Outside of settlement, chips only move between the two fields, so
// bankroll + bet is conserved by bet management.
type Ledger struct {
	bankroll int
	bet      int
}

// NewLedger returns a ledger with the given bankroll and no active bet
func NewLedger(bankroll int) *Ledger {
	return &Ledger{bankroll: bankroll}
}

// Bankroll returns the current bankroll
func (l *Ledger) Bankroll() int {
	return l.bankroll
}

// Bet returns the bet currently on the table
func (l *Ledger) Bet() int {
	return l.bet
}

// PlaceBet moves amount from the bankroll to the bet. Repeated calls
// accumulate. On failure neither field changes.
func (l *Ledger) PlaceBet(amount int) error {
	if amount <= 0 {
		return ErrInvalidBet
	}

	if amount > l.bankroll {
		return ErrInsufficientFunds
	}

	l.bankroll -= amount
	l.bet += amount
	return nil
}

// ClearBet returns the full bet to the bankroll.
// Clearing a zero bet is a no-op.
func (l *Ledger) ClearBet() {
	l.bankroll += l.bet
	l.bet = 0
}

// AllIn bets the entire bankroll
func (l *Ledger) AllIn() error {
	if l.bankroll == 0 {
		return ErrNoFunds
	}

	return l.PlaceBet(l.bankroll)
}

// Settle applies the payout policy for the outcome to the bet, credits the
// bankroll, and zeroes the bet. It returns the amount credited.
func (l *Ledger) Settle(outcome Outcome) int {
	payout := outcome.payout(l.bet)
	l.bankroll += payout
	l.bet = 0

	return payout
}
