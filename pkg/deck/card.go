package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is an error when a rank or suit falls outside the 52-card domain
var ErrInvalidCard = errors.New("no such card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// Suits contains the four suits in a stable order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// face cards; cribbage plays the ace low
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

// ANSI escape sequences for the colored rendering
const (
	redEscapeOpen  = "\x1b[31m"
	redEscapeClose = "\x1b[0m"
)

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard returns a card for the given rank and suit.
// ErrInvalidCard is returned if either field is outside the defined domain.
func NewCard(rank int, suit Suit) (*Card, error) {
	if rank < Ace || rank > King {
		return nil, ErrInvalidCard
	}

	switch suit {
	case Spades, Hearts, Diamonds, Clubs:
	default:
		return nil, ErrInvalidCard
	}

	return &Card{Rank: rank, Suit: suit}, nil
}

// Glyph returns the unicode glyph for the suit
func (s Suit) Glyph() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}

	panic("unknown suit")
}

// Red returns true for the red suits (hearts and diamonds).
// Color only affects display; scoring only ever compares suits for equality.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Letter returns the single-character rank (A, 2–9, T, J, Q, K)
func (c *Card) Letter() string {
	switch c.Rank {
	case Ace:
		return "A"
	case 10:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(c.Rank)
	}
}

// Value returns the point value used when counting fifteens.
// Face cards count ten; every other card counts its rank.
func (c *Card) Value() int {
	if c.Rank > 10 {
		return 10
	}

	return c.Rank
}

func (c *Card) String() string {
	return fmt.Sprintf("%s%s", c.Letter(), c.Suit.Glyph())
}

// PlaintextDisplay returns a rendering suitable for logging (e.g., "A hearts")
func (c *Card) PlaintextDisplay() string {
	return fmt.Sprintf("%s %s", c.Letter(), c.Suit)
}

// ColoredDisplay returns a rendering suitable for a terminal.
// Red suits are wrapped in a red escape sequence.
func (c *Card) ColoredDisplay() string {
	if c.Suit.Red() {
		return redEscapeOpen + c.String() + redEscapeClose
	}

	return c.String()
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([1-9]|1[0-3])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 1 and <= 13 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (1c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
