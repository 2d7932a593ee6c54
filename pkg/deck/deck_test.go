package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjack-server/internal/rng"
)

// assertFullDeck verifies the 52-card conservation invariant: the multiset
// union of the two piles is exactly one standard deck.
func assertFullDeck(t *testing.T, d *Deck) {
	t.Helper()
	a := assert.New(t)

	snap := d.Snapshot()
	a.Equal(52, len(snap.DrawPile)+len(snap.DiscardPile))

	seen := make(map[string]int)
	for _, id := range snap.DrawPile {
		seen[id]++
	}
	for _, id := range snap.DiscardPile {
		seen[id]++
	}

	a.Equal(52, len(seen))
	for id, count := range seen {
		a.Equal(1, count, "card %s appears %d times", id, count)
	}
}

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New(nil)
	a.Equal(52, d.CardsLeft())
	a.Equal(0, d.DiscardCount())
	a.True(d.CanDraw(52))
	a.False(d.CanDraw(53))
	assertFullDeck(t, d)
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New(rng.Seeded(1))
	d1.Shuffle()

	d2 := New(rng.Seeded(1))
	d2.Shuffle()

	a.Equal(d1.Snapshot().DrawPile, d2.Snapshot().DrawPile)
	assertFullDeck(t, d1)

	d3 := New(rng.Seeded(2))
	d3.Shuffle()
	a.NotEqual(d1.Snapshot().DrawPile, d3.Snapshot().DrawPile)
}

func TestDeck_DrawFromTop(t *testing.T) {
	a := assert.New(t)

	d := New(rng.Seeded(1))
	first := d.Snapshot().DrawPile[0]

	card, err := d.DrawFromTop()
	a.NoError(err)
	a.Equal(first, card.ID())
	a.Equal(51, d.CardsLeft())
	a.Equal(1, d.DiscardCount())
	a.Equal([]string{first}, d.Snapshot().DiscardPile)
	assertFullDeck(t, d)

	for i := 0; i < 51; i++ {
		_, err := d.DrawFromTop()
		a.NoError(err)
	}

	a.Equal(0, d.CardsLeft())
	a.Equal(52, d.DiscardCount())
	assertFullDeck(t, d)

	card, err = d.DrawFromTop()
	a.Nil(card)
	a.Equal(ErrEndOfDeck, err)
}

func TestDeck_DrawFromBottom(t *testing.T) {
	a := assert.New(t)

	d := New(rng.Seeded(1))
	snap := d.Snapshot()
	last := snap.DrawPile[len(snap.DrawPile)-1]

	card, err := d.DrawFromBottom()
	a.NoError(err)
	a.Equal(last, card.ID())
	a.Equal(51, d.CardsLeft())
	a.Equal(1, d.DiscardCount())
	assertFullDeck(t, d)
}

func TestDeck_ReinsertDiscard(t *testing.T) {
	a := assert.New(t)

	d := New(rng.Seeded(1))
	d.Shuffle()

	drawn := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		card, err := d.DrawFromTop()
		a.NoError(err)
		drawn = append(drawn, card.ID())
	}

	d.ReinsertDiscard(false)
	a.Equal(52, d.CardsLeft())
	a.Equal(0, d.DiscardCount())
	assertFullDeck(t, d)

	// without a shuffle, the discards come back in discard order at the bottom
	snap := d.Snapshot()
	a.Equal(drawn, snap.DrawPile[42:])

	for i := 0; i < 52; i++ {
		_, err := d.DrawFromTop()
		a.NoError(err)
	}

	d.ReinsertDiscard(true)
	a.Equal(52, d.CardsLeft())
	a.Equal(0, d.DiscardCount())
	assertFullDeck(t, d)
}

func TestDeck_Reset(t *testing.T) {
	a := assert.New(t)

	d := New(rng.Seeded(1))
	d.Shuffle()
	for i := 0; i < 20; i++ {
		_, err := d.DrawFromTop()
		a.NoError(err)
	}

	d.Reset()
	a.Equal(52, d.CardsLeft())
	a.Equal(0, d.DiscardCount())
	assertFullDeck(t, d)
}

func TestDeck_SnapshotRestore(t *testing.T) {
	a := assert.New(t)

	d := New(rng.Seeded(1))
	d.Shuffle()
	for i := 0; i < 7; i++ {
		_, err := d.DrawFromTop()
		a.NoError(err)
	}

	snap := d.Snapshot()
	restored, err := Restore(snap, rng.Seeded(1))
	a.NoError(err)
	a.Equal(45, restored.CardsLeft())
	a.Equal(7, restored.DiscardCount())
	a.Equal(snap.DrawPile, restored.Snapshot().DrawPile)
	a.Equal(snap.DiscardPile, restored.Snapshot().DiscardPile)
	assertFullDeck(t, restored)

	// draw order survives the round trip
	next, err := restored.DrawFromTop()
	a.NoError(err)
	a.Equal(snap.DrawPile[0], next.ID())

	_, err = Restore(&Snapshot{DrawPile: []string{"bogus"}}, nil)
	a.Error(err)
}

func TestRestore_incompleteSnapshot(t *testing.T) {
	a := assert.New(t)

	// empty but parsable
	_, err := Restore(&Snapshot{DrawPile: []string{}, DiscardPile: []string{}}, nil)
	a.Equal(ErrIncompleteDeck, err)

	full := New(rng.Seeded(1)).Snapshot()

	// one card short
	_, err = Restore(&Snapshot{DrawPile: full.DrawPile[1:]}, nil)
	a.Equal(ErrIncompleteDeck, err)

	// 52 cards but a duplicate
	dup := append([]string{full.DrawPile[0]}, full.DrawPile[1:]...)
	dup[51] = dup[0]
	_, err = Restore(&Snapshot{DrawPile: dup}, nil)
	a.Equal(ErrIncompleteDeck, err)

	// splitting the set across piles is fine
	d, err := Restore(&Snapshot{DrawPile: full.DrawPile[:26], DiscardPile: full.DrawPile[26:]}, nil)
	a.NoError(err)
	a.Equal(26, d.CardsLeft())
	a.Equal(26, d.DiscardCount())
}
