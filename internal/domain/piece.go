package domain

import (
	"encoding/json"
	"fmt"
)

const (
	// MaxPip is the highest value on either half of a piece.
	MaxPip = 6
	// DeckSize is the number of distinct pieces in a double-six set.
	DeckSize = 28
	// DeckPipTotal is the sum of every pip in the deck.
	DeckPipTotal = 168
)

// Piece is a single domino. A and B are the two halves; on the board A faces
// left and B faces right.
type Piece struct {
	A int
	B int
}

// IsDouble reports whether both halves carry the same value.
func (p Piece) IsDouble() bool {
	return p.A == p.B
}

// Pips returns the total value of the piece.
func (p Piece) Pips() int {
	return p.A + p.B
}

// Reversed swaps the halves.
func (p Piece) Reversed() Piece {
	return Piece{A: p.B, B: p.A}
}

// Canonical returns the piece with its lower half first. Two pieces are the
// same domino iff their canonical forms are equal.
func (p Piece) Canonical() Piece {
	if p.A > p.B {
		return p.Reversed()
	}
	return p
}

// Same reports whether p and other are the same domino regardless of orientation.
func (p Piece) Same(other Piece) bool {
	return p.Canonical() == other.Canonical()
}

// Matches reports whether either half equals v.
func (p Piece) Matches(v int) bool {
	return p.A == v || p.B == v
}

// Less orders pieces ascending by (A, B).
func (p Piece) Less(other Piece) bool {
	if p.A != other.A {
		return p.A < other.A
	}
	return p.B < other.B
}

func (p Piece) String() string {
	return fmt.Sprintf("%d-%d", p.A, p.B)
}

// MarshalJSON encodes the piece as a two-element array.
func (p Piece) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.A, p.B})
}

// UnmarshalJSON decodes a two-element array.
func (p *Piece) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode piece: %w", err)
	}
	p.A, p.B = pair[0], pair[1]
	return nil
}
