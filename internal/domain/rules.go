package domain

import (
	"encoding/json"
	"errors"
)

// ErrNoOpeningDouble is returned when no dealt hand holds a double.
var ErrNoOpeningDouble = errors.New("no opening double found")

// NoOpeningDoubleMessage is the client-facing text for ErrNoOpeningDouble.
const NoOpeningDoubleMessage = "Nenhum duplo encontrado"

// BlockPassLimit is the number of consecutive passes that blocks the board.
const BlockPassLimit = SeatCount

// Classification is the way a round was won.
type Classification string

const (
	ClassNone Classification = ""
	// ClassSimples is a batida piece that fits exactly one end.
	ClassSimples Classification = "simples"
	// ClassCarroca is a double batida that does not fit both ends.
	ClassCarroca Classification = "carroca"
	// ClassLaELo is a non-double batida that fits two different ends.
	ClassLaELo Classification = "la_e_lo"
	// ClassCruzada is a double batida that fits both ends.
	ClassCruzada Classification = "cruzada"
	// ClassTravamento marks a blocked round.
	ClassTravamento Classification = "travamento"
)

// Points returns the score awarded for a batida of this class. A blocked
// round is scored by BlockedOutcome instead.
func (c Classification) Points() int {
	switch c {
	case ClassSimples:
		return 1
	case ClassCarroca:
		return 2
	case ClassLaELo:
		return 3
	case ClassCruzada:
		return 4
	default:
		return 0
	}
}

// MarshalJSON encodes ClassNone as null.
func (c Classification) MarshalJSON() ([]byte, error) {
	if c == ClassNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(c))
}

// EndReason is why a round terminated.
type EndReason string

const (
	EndNone EndReason = ""
	// EndBatida means a seat emptied its hand.
	EndBatida EndReason = "batida"
	// EndTravamento means four seats passed in a row.
	EndTravamento EndReason = "travamento"
)

// MarshalJSON encodes EndNone as null.
func (r EndReason) MarshalJSON() ([]byte, error) {
	if r == EndNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(r))
}

// LegalMoves returns, in hand order, the pieces that can be placed against
// ends. On an empty board every piece is legal.
func LegalMoves(hand Hand, ends Ends) Hand {
	legal := make(Hand, 0, len(hand))
	for _, p := range hand {
		if ends.Fits(p) {
			legal = append(legal, p)
		}
	}
	return legal
}

// FindOpener scans seats J1..J4 and each hand in order for the highest
// double. Only a strictly higher double replaces the current leader.
func FindOpener(hands Hands) (Seat, Piece, error) {
	leader := NoSeat
	best := -1
	for _, seat := range Seats() {
		for _, p := range hands.Of(seat) {
			if p.IsDouble() && p.A > best {
				best = p.A
				leader = seat
			}
		}
	}
	if leader == NoSeat {
		return NoSeat, Piece{}, ErrNoOpeningDouble
	}
	return leader, Piece{A: best, B: best}, nil
}

// ClassifyBatida grades the piece that emptied a hand against the ends as
// they were before it was placed.
func ClassifyBatida(piece Piece, ends Ends) Classification {
	both := ends.FitsBoth(piece)
	switch {
	case piece.IsDouble() && both:
		return ClassCruzada
	case !piece.IsDouble() && both && ends.Left != ends.Right:
		return ClassLaELo
	case piece.IsDouble():
		return ClassCarroca
	default:
		return ClassSimples
	}
}

// BlockedOutcome scores a blocked board. The seat with the strictly lowest pip
// total wins one point; a shared minimum yields no winner and no points.
func BlockedOutcome(hands Hands) (Seat, int) {
	winner := NoSeat
	lowest := -1
	tied := false
	for _, seat := range Seats() {
		sum := hands.Of(seat).Pips()
		switch {
		case lowest < 0 || sum < lowest:
			lowest = sum
			winner = seat
			tied = false
		case sum == lowest:
			tied = true
		}
	}
	if tied {
		return NoSeat, 0
	}
	return winner, 1
}
