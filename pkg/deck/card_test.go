package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_Value(t *testing.T) {
	a := assert.New(t)

	a.Equal(11, mustCard(t, "AH").Value())
	a.Equal(10, mustCard(t, "KD").Value())
	a.Equal(10, mustCard(t, "QS").Value())
	a.Equal(10, mustCard(t, "JC").Value())
	a.Equal(10, mustCard(t, "10S").Value())
	a.Equal(2, mustCard(t, "2H").Value())
	a.Equal(9, mustCard(t, "9D").Value())
}

func TestCard_ID(t *testing.T) {
	a := assert.New(t)

	a.Equal("AH", (&Card{Rank: Ace, Suit: Hearts}).ID())
	a.Equal("10S", (&Card{Rank: 10, Suit: Spades}).ID())
	a.Equal("KD", (&Card{Rank: King, Suit: Diamonds}).ID())
	a.Equal("2C", (&Card{Rank: 2, Suit: Clubs}).ID())
}

func TestCardFromID(t *testing.T) {
	a := assert.New(t)

	card, err := CardFromID("AH")
	a.NoError(err)
	a.Equal(Ace, card.Rank)
	a.Equal(Hearts, card.Suit)
	a.False(card.FaceUp)

	card, err = CardFromID("10s")
	a.NoError(err)
	a.Equal(10, card.Rank)
	a.Equal(Spades, card.Suit)

	_, err = CardFromID("")
	a.Error(err)

	_, err = CardFromID("1H")
	a.Error(err)

	_, err = CardFromID("11H")
	a.Error(err)

	_, err = CardFromID("AX")
	a.Error(err)

	_, err = CardFromID("AHH")
	a.Error(err)
}

func TestCard_StringAndEqual(t *testing.T) {
	a := assert.New(t)

	a.Equal("A♡", mustCard(t, "AH").String())
	a.Equal("10♠", mustCard(t, "10S").String())

	a.True(mustCard(t, "KD").Equal(mustCard(t, "KD")))
	a.False(mustCard(t, "KD").Equal(mustCard(t, "KH")))
	a.False(mustCard(t, "KD").Equal(mustCard(t, "QD")))
}

func TestCardsFromIDs(t *testing.T) {
	a := assert.New(t)

	cards, err := CardsFromIDs("AH,10S,KD")
	a.NoError(err)
	a.Equal(3, len(cards))
	a.Equal([]string{"AH", "10S", "KD"}, CardsToIDs(cards))

	cards, err = CardsFromIDs("")
	a.NoError(err)
	a.Equal(0, len(cards))

	_, err = CardsFromIDs("AH,bogus")
	a.Error(err)
}

func mustCard(t *testing.T, id string) *Card {
	t.Helper()

	card, err := CardFromID(id)
	if err != nil {
		t.Fatal(err)
	}

	return card
}
