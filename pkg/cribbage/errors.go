package cribbage

import (
	"errors"
	"fmt"
)

// ErrDuplicateCard is an error when the same card appears twice in a hand
var ErrDuplicateCard = errors.New("hand contains a duplicate card")

// HandSizeError is an error on the number of cards used to build a hand
type HandSizeError int

func (e HandSizeError) Error() string {
	return fmt.Sprintf("expected exactly %d cards, got %d", HandLength, int(e))
}
