package domain

import (
	"math/rand"
	"slices"
)

const (
	// HandSize is the number of pieces dealt to each seat.
	HandSize = 6
	// LeftoverSize is the number of pieces set aside face down.
	LeftoverSize = DeckSize - HandSize*SeatCount
)

// NewDeck returns the 28 canonical pieces ordered (0,0),(0,1)...(6,6).
func NewDeck() []Piece {
	deck := make([]Piece, 0, DeckSize)
	for a := 0; a <= MaxPip; a++ {
		for b := a; b <= MaxPip; b++ {
			deck = append(deck, Piece{A: a, B: b})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck. It scans backwards
// swapping each position with a uniformly chosen index in [0, i].
func ShuffleDeck(deck []Piece, rng *rand.Rand) []Piece {
	out := make([]Piece, len(deck))
	copy(out, deck)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Deal is the result of distributing a shuffled deck.
type Deal struct {
	Hands    Hands
	Leftover []Piece
}

// DealPieces splits a 28-piece deck: six consecutive pieces per seat in seat
// order, the last four set aside untouched. Hands are sorted.
func DealPieces(deck []Piece) Deal {
	var d Deal
	for _, seat := range Seats() {
		start := seat.Index() * HandSize
		hand := append(Hand{}, deck[start:start+HandSize]...)
		SortHand(hand)
		d.Hands[seat.Index()] = hand
	}
	d.Leftover = append([]Piece{}, deck[HandSize*SeatCount:]...)
	return d
}

// NewDeal builds, shuffles and deals a fresh deck.
func NewDeal(rng *rand.Rand) Deal {
	return DealPieces(ShuffleDeck(NewDeck(), rng))
}

// SortHand orders a hand ascending by (A, B).
func SortHand(hand Hand) {
	slices.SortFunc(hand, func(x, y Piece) int {
		switch {
		case x.Less(y):
			return -1
		case y.Less(x):
			return 1
		default:
			return 0
		}
	})
}
