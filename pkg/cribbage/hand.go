package cribbage

import (
	"strings"

	"cribbage-trainer/pkg/deck"
)

// HandLength is the number of cards in a scorable cribbage hand
const HandLength = 5

// Hand is a five-card cribbage hand: the starter plus the four cards held.
// A hand is immutable once built and may be scored any number of times.
type Hand struct {
	starter *deck.Card
	cards   []*deck.Card
}

// NewHand builds a hand from exactly five distinct cards.
// The first card is the starter; the rest form the four-card hand.
func NewHand(cards []*deck.Card) (*Hand, error) {
	if len(cards) != HandLength {
		return nil, HandSizeError(len(cards))
	}

	for i, a := range cards {
		for _, b := range cards[i+1:] {
			if a.Equal(b) {
				return nil, ErrDuplicateCard
			}
		}
	}

	held := make([]*deck.Card, HandLength-1)
	copy(held, cards[1:])

	return &Hand{
		starter: cards[0],
		cards:   held,
	}, nil
}

// Starter returns the starter card
func (h *Hand) Starter() *deck.Card {
	return h.starter
}

// Cards returns the four cards held (the starter excluded)
func (h *Hand) Cards() []*deck.Card {
	cards := make([]*deck.Card, len(h.cards))
	copy(cards, h.cards)

	return cards
}

// Fullhand returns all five cards, starter first
func (h *Hand) Fullhand() []*deck.Card {
	return append([]*deck.Card{h.starter}, h.cards...)
}

// Prompt returns the colorized rendering of the hand, suitable for a terminal
func (h *Hand) Prompt() string {
	return h.display((*deck.Card).ColoredDisplay)
}

// Record returns the plaintext rendering of the hand, suitable for the logfile
func (h *Hand) Record() string {
	return h.display((*deck.Card).PlaintextDisplay)
}

func (h *Hand) display(render func(*deck.Card) string) string {
	cards := make([]string, len(h.cards))
	for i, card := range h.cards {
		cards[i] = render(card)
	}

	return render(h.starter) + " | " + strings.Join(cards, " ") + ": "
}

func (h *Hand) String() string {
	return deck.CardsToString(h.Fullhand())
}
