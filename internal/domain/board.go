package domain

import (
	"encoding/json"
	"errors"
)

// ErrPieceDoesNotFit is returned when a piece matches neither open end.
var ErrPieceDoesNotFit = errors.New("piece does not fit either end")

// ErrPieceNotHeld is returned when a seat plays a piece it does not hold.
var ErrPieceNotHeld = errors.New("piece not in hand")

// Side records where a piece was placed.
type Side string

const (
	SideNone    Side = ""
	SideInitial Side = "inicial"
	SideLeft    Side = "esquerda"
	SideRight   Side = "direita"
)

// Ends are the two open values of the chain. Open is false until the first
// piece is placed.
type Ends struct {
	Left  int
	Right int
	Open  bool
}

// Fits reports whether piece matches at least one open end. On a closed
// (empty) board every piece fits.
func (e Ends) Fits(piece Piece) bool {
	if !e.Open {
		return true
	}
	return piece.Matches(e.Left) || piece.Matches(e.Right)
}

// FitsBoth reports whether piece matches the left end and the right end.
func (e Ends) FitsBoth(piece Piece) bool {
	return e.Open && piece.Matches(e.Left) && piece.Matches(e.Right)
}

// MarshalJSON encodes the ends as [left, right], or null on an empty board.
func (e Ends) MarshalJSON() ([]byte, error) {
	if !e.Open {
		return []byte("null"), nil
	}
	return json.Marshal([2]int{e.Left, e.Right})
}

// Board is the line of played pieces, each oriented so that adjacent halves
// touch. A Board value is never modified after creation; Place returns a
// new one.
type Board struct {
	pieces []Piece
}

// Len returns the number of pieces on the board.
func (b Board) Len() int {
	return len(b.pieces)
}

// Empty reports whether nothing has been played.
func (b Board) Empty() bool {
	return len(b.pieces) == 0
}

// Pieces returns the oriented pieces from left to right. The returned slice
// must not be modified.
func (b Board) Pieces() []Piece {
	return b.pieces
}

// Pips returns the total pip value on the board.
func (b Board) Pips() int {
	total := 0
	for _, p := range b.pieces {
		total += p.Pips()
	}
	return total
}

// Ends returns the outward-facing values of the outermost pieces.
func (b Board) Ends() Ends {
	if b.Empty() {
		return Ends{}
	}
	return Ends{
		Left:  b.pieces[0].A,
		Right: b.pieces[len(b.pieces)-1].B,
		Open:  true,
	}
}

// Place puts piece on the board and returns the new board with the side it
// went to. The matching half is consumed and the other half becomes the new
// end. The checks run in a fixed order, so a piece that fits both ends always
// goes left.
func (b Board) Place(piece Piece) (Board, Side, error) {
	if b.Empty() {
		return Board{pieces: []Piece{piece}}, SideInitial, nil
	}

	ends := b.Ends()
	switch {
	case piece.A == ends.Left:
		return b.withLeft(piece.Reversed()), SideLeft, nil
	case piece.B == ends.Left:
		return b.withLeft(piece), SideLeft, nil
	case piece.A == ends.Right:
		return b.withRight(piece), SideRight, nil
	case piece.B == ends.Right:
		return b.withRight(piece.Reversed()), SideRight, nil
	default:
		return b, SideNone, ErrPieceDoesNotFit
	}
}

func (b Board) withLeft(piece Piece) Board {
	out := make([]Piece, 0, len(b.pieces)+1)
	out = append(out, piece)
	return Board{pieces: append(out, b.pieces...)}
}

func (b Board) withRight(piece Piece) Board {
	out := make([]Piece, 0, len(b.pieces)+1)
	out = append(out, b.pieces...)
	return Board{pieces: append(out, piece)}
}

// MarshalJSON encodes the board as a list of oriented pieces.
func (b Board) MarshalJSON() ([]byte, error) {
	if b.pieces == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(b.pieces)
}
