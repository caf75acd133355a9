package deck

import (
	"errors"
	"fmt"
	"math/rand"

	"cribbage-trainer/internal/rng"
)

// ErrInsufficientCards is an error when Deal() asks for more cards than remain
var ErrInsufficientCards = errors.New("not enough cards remain in the deck")

// InvalidCountError is an error when Deal() is asked for a negative number of cards
type InvalidCountError int

func (e InvalidCountError) Error() string {
	return fmt.Sprintf("cannot deal %d cards", int(e))
}

// Deck is the set of cards not yet dealt
type Deck struct {
	Cards []*Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck containing each of the 52 cards exactly once
func New() *Deck {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return &Deck{
		Cards: cards,
		rng:   rng.Crypto{},
	}
}

// SetSeed swaps the crypto randomizer for a deterministic one.
// This should only be used by tests.
func (d *Deck) SetSeed(seed int64) {
	d.rng = rand.New(rand.NewSource(seed))
}

// Deal removes and returns n cards chosen uniformly at random, without replacement.
// A card dealt once is never dealt again from the same deck.
func (d *Deck) Deal(n int) ([]*Card, error) {
	if n < 0 {
		return nil, InvalidCountError(n)
	}

	if n > len(d.Cards) {
		return nil, ErrInsufficientCards
	}

	cards := make([]*Card, 0, n)
	for i := 0; i < n; i++ {
		j := d.rng.Intn(len(d.Cards))
		cards = append(cards, d.Cards[j])
		d.Cards = append(d.Cards[:j], d.Cards[j+1:]...)
	}

	return cards, nil
}

// CanDeal returns true if there are {want} cards left in the deck
func (d *Deck) CanDeal(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
