package domain

import (
	"encoding/json"
	"fmt"
)

// SeatCount is the number of players at the table.
const SeatCount = 4

// Seat identifies a player. The zero value means no seat.
type Seat int

const (
	NoSeat Seat = iota
	J1
	J2
	J3
	J4
)

// Seats returns every seat in turn order starting at J1.
func Seats() [SeatCount]Seat {
	return [SeatCount]Seat{J1, J2, J3, J4}
}

// Next returns the seat that plays after s. Turn order is J1, J2, J3, J4, J1...
func (s Seat) Next() Seat {
	switch s {
	case J1:
		return J2
	case J2:
		return J3
	case J3:
		return J4
	case J4:
		return J1
	default:
		return NoSeat
	}
}

// Index returns the 0-based position of the seat. Only valid for J1..J4.
func (s Seat) Index() int {
	return int(s) - 1
}

// Valid reports whether s is one of J1..J4.
func (s Seat) Valid() bool {
	return s >= J1 && s <= J4
}

// Partnership returns the pair the seat belongs to.
func (s Seat) Partnership() Partnership {
	switch s {
	case J1, J3:
		return Dupla1
	case J2, J4:
		return Dupla2
	default:
		return NoPartnership
	}
}

func (s Seat) String() string {
	if !s.Valid() {
		return ""
	}
	return fmt.Sprintf("J%d", int(s))
}

// MarshalJSON encodes the seat as "J1".."J4", or null for NoSeat.
func (s Seat) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts "J1".."J4" or null.
func (s *Seat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = NoSeat
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("decode seat: %w", err)
	}
	for _, seat := range Seats() {
		if seat.String() == name {
			*s = seat
			return nil
		}
	}
	return fmt.Errorf("unknown seat %q", name)
}

// Partnership is one of the two fixed teams.
type Partnership string

const (
	NoPartnership Partnership = ""
	// Dupla1 pairs J1 and J3.
	Dupla1 Partnership = "Dupla_1"
	// Dupla2 pairs J2 and J4.
	Dupla2 Partnership = "Dupla_2"
)

// MarshalJSON encodes NoPartnership as null.
func (p Partnership) MarshalJSON() ([]byte, error) {
	if p == NoPartnership {
		return []byte("null"), nil
	}
	return json.Marshal(string(p))
}

// Hand is the ordered set of pieces a seat holds. Hands are treated as
// immutable once built: removing a piece yields a new slice.
type Hand []Piece

// Pips returns the sum of every piece in the hand.
func (h Hand) Pips() int {
	total := 0
	for _, p := range h {
		total += p.Pips()
	}
	return total
}

// Index returns the position of piece in the hand or -1.
func (h Hand) Index(piece Piece) int {
	for i, p := range h {
		if p.Same(piece) {
			return i
		}
	}
	return -1
}

// Without returns a new hand lacking the first occurrence of piece. The
// receiver is not modified.
func (h Hand) Without(piece Piece) Hand {
	i := h.Index(piece)
	if i < 0 {
		return h
	}
	out := make(Hand, 0, len(h)-1)
	out = append(out, h[:i]...)
	return append(out, h[i+1:]...)
}

// MarshalJSON keeps an empty hand as [] rather than null.
func (h Hand) MarshalJSON() ([]byte, error) {
	if h == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Piece(h))
}

// Hands holds one hand per seat, indexed by Seat.Index.
type Hands [SeatCount]Hand

// Of returns the hand held by seat.
func (hs Hands) Of(s Seat) Hand {
	return hs[s.Index()]
}

// Count returns the total number of pieces held.
func (hs Hands) Count() int {
	n := 0
	for _, h := range hs {
		n += len(h)
	}
	return n
}

// Pips returns the total pip value held by every seat.
func (hs Hands) Pips() int {
	total := 0
	for _, h := range hs {
		total += h.Pips()
	}
	return total
}

// MarshalJSON encodes the hands as an object keyed by seat name.
func (hs Hands) MarshalJSON() ([]byte, error) {
	out := make(map[string]Hand, SeatCount)
	for _, s := range Seats() {
		out[s.String()] = hs.Of(s)
	}
	return json.Marshal(out)
}
