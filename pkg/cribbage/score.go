package cribbage

import (
	"sort"

	"cribbage-trainer/pkg/deck"
)

// ScoreResult is the breakdown of a scored hand by category.
// Total is always the sum of the other five fields.
type ScoreResult struct {
	Total    int `json:"total"`
	Pairs    int `json:"pairs"`
	Fifteens int `json:"fifteens"`
	Runs     int `json:"runs"`
	Flushes  int `json:"flushes"`
	Nobs     int `json:"nobs"`
}

// Score tallies a hand according to the standard "show" rules:
//
//	Pairs    - 2 per same-rank pair (6 for trips, 12 for quads)
//	Fifteens - 2 per combination of card values summing to exactly 15
//	Runs     - 3+ consecutive ranks, any suit; one point per card per run
//	Flushes  - 4 for four held cards of one suit, 5 if the starter matches too
//	Nobs     - 1 for holding the jack of the starter's suit
//
// Every category is found by enumerating sub-combinations of the five cards
// rather than by closed-form multiplicity shortcuts, so overlapping awards
// (double runs, fifteens that reuse cards) fall out naturally.
func Score(h *Hand) ScoreResult {
	fullhand := h.Fullhand()

	result := ScoreResult{
		Pairs:    scorePairs(fullhand),
		Fifteens: scoreFifteens(fullhand),
		Runs:     scoreRuns(fullhand),
		Flushes:  scoreFlushes(h),
		Nobs:     scoreNobs(h),
	}

	result.Total = result.Pairs + result.Fifteens + result.Runs + result.Flushes + result.Nobs

	return result
}

// scorePairs awards two points for every two-card combination of matching rank
func scorePairs(fullhand []*deck.Card) int {
	points := 0
	for _, combo := range combinations(fullhand, 2) {
		if combo[0].Rank == combo[1].Rank {
			points += 2
		}
	}

	return points
}

// scoreFifteens awards two points for every combination whose values sum to
// fifteen. Cards may be reused across combinations.
func scoreFifteens(fullhand []*deck.Card) int {
	points := 0
	for size := 2; size <= len(fullhand); size++ {
		for _, combo := range combinations(fullhand, size) {
			sum := 0
			for _, card := range combo {
				sum += card.Value()
			}

			if sum == 15 {
				points += 2
			}
		}
	}

	return points
}

// scoreRuns awards one point per card for every run found at the longest
// qualifying length. In a five-card hand every shorter run lies inside some
// longer one, so stopping at the first length that scores counts exactly the
// maximal runs: a double run of four scores 8, a double run of three scores 6,
// a triple run scores 9.
func scoreRuns(fullhand []*deck.Card) int {
	for size := len(fullhand); size >= 3; size-- {
		points := 0
		for _, combo := range combinations(fullhand, size) {
			if isRun(combo) {
				points += size
			}
		}

		if points > 0 {
			return points
		}
	}

	return 0
}

// isRun returns true if the cards form a consecutive sequence of ranks
func isRun(cards []*deck.Card) bool {
	ranks := make([]int, len(cards))
	for i, card := range cards {
		ranks[i] = card.Rank
	}

	sort.Ints(ranks)

	for i := 0; i < len(ranks)-1; i++ {
		if ranks[i+1]-ranks[i] != 1 {
			return false
		}
	}

	return true
}

// scoreFlushes awards five points if all five cards share a suit, four if the
// four held cards do. The two cases are mutually exclusive; the starter never
// extends a four-card flush.
func scoreFlushes(h *Hand) int {
	allOneSuit := func(cards []*deck.Card) bool {
		for _, card := range cards[1:] {
			if card.Suit != cards[0].Suit {
				return false
			}
		}

		return true
	}

	if allOneSuit(h.Fullhand()) {
		return 5
	}

	if allOneSuit(h.cards) {
		return 4
	}

	return 0
}

// scoreNobs awards one point for holding the jack of the starter's suit.
// At most one card can qualify since a valid hand has no duplicates.
func scoreNobs(h *Hand) int {
	for _, card := range h.cards {
		if card.Rank == deck.Jack && card.Suit == h.starter.Suit {
			return 1
		}
	}

	return 0
}

// combinations returns every k-card subset of cards, preserving input order
// within each subset
func combinations(cards []*deck.Card, k int) [][]*deck.Card {
	var subsets [][]*deck.Card

	var build func(start int, combo []*deck.Card)
	build = func(start int, combo []*deck.Card) {
		if len(combo) == k {
			subset := make([]*deck.Card, k)
			copy(subset, combo)
			subsets = append(subsets, subset)
			return
		}

		for i := start; i <= len(cards)-(k-len(combo)); i++ {
			build(i+1, append(combo, cards[i]))
		}
	}

	build(0, nil)

	return subsets
}
