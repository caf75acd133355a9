package cribbage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cribbage-trainer/pkg/deck"
)

func TestNewHand(t *testing.T) {
	a := assert.New(t)

	hand, err := NewHand(deck.CardsFromString("6s,5s,5h,2s,4s"))
	a.NoError(err)
	a.True(hand.Starter().Equal(deck.CardFromString("6s")))
	a.Equal(4, len(hand.Cards()))
	a.Equal(5, len(hand.Fullhand()))
	a.True(hand.Fullhand()[0].Equal(deck.CardFromString("6s")))
}

func TestNewHand_wrongSize(t *testing.T) {
	a := assert.New(t)

	hand, err := NewHand(deck.CardsFromString("6s,5s,5h,2s"))
	a.Nil(hand)
	a.Equal(HandSizeError(4), err)
	a.Equal("expected exactly 5 cards, got 4", err.Error())

	hand, err = NewHand(deck.CardsFromString("11s,5s,10h,13d,6c,9s"))
	a.Nil(hand)
	a.Equal(HandSizeError(6), err)

	hand, err = NewHand(nil)
	a.Nil(hand)
	a.Equal(HandSizeError(0), err)
}

func TestNewHand_duplicateCard(t *testing.T) {
	a := assert.New(t)

	hand, err := NewHand(deck.CardsFromString("6s,5s,5h,2s,6s"))
	a.Nil(hand)
	a.Equal(ErrDuplicateCard, err)
}

func TestHand_Record(t *testing.T) {
	hand, err := NewHand(deck.CardsFromString("1s,1h,2h,3d,4c"))
	require.NoError(t, err)

	assert.Equal(t, "A spades | A hearts 2 hearts 3 diamonds 4 clubs: ", hand.Record())
}

func TestHand_Prompt(t *testing.T) {
	hand, err := NewHand(deck.CardsFromString("1s,1h,2h,3d,4c"))
	require.NoError(t, err)

	const expected = "A♠ | \x1b[31mA♥\x1b[0m \x1b[31m2♥\x1b[0m \x1b[31m3♦\x1b[0m 4♣: "
	assert.Equal(t, expected, hand.Prompt())
}

func TestHand_String(t *testing.T) {
	hand, err := NewHand(deck.CardsFromString("5s,5h,5d,5c,11s"))
	require.NoError(t, err)

	assert.Equal(t, "5s,5h,5d,5c,11s", hand.String())
}
