package bot

import (
	"dominosim/internal/domain"
)

// Brain picks which legal piece a seat plays. It is only consulted when at
// least one legal piece exists; passing is not a choice.
type Brain interface {
	// CalculateMove returns one piece from legal. hand is the full hand in
	// order and ends are the board ends the piece will be played against.
	CalculateMove(hand, legal domain.Hand, ends domain.Ends) domain.Piece
}

// FirstLegalBot plays the first legal piece in hand order. Hands are sorted
// ascending after the deal, so this is the lowest playable piece.
type FirstLegalBot struct{}

func (FirstLegalBot) CalculateMove(hand, legal domain.Hand, ends domain.Ends) domain.Piece {
	return legal[0]
}
