package domain

// MoveKind describes what a seat did on its turn.
type MoveKind string

const (
	// KindLead is the forced opening play of the highest double.
	KindLead MoveKind = "lead"
	// KindPlay is a regular placement.
	KindPlay MoveKind = "jogada"
	// KindPass is recorded when the seat had no legal piece.
	KindPass MoveKind = "passe"
	// KindBatida is a placement that emptied the seat's hand.
	KindBatida MoveKind = "batida"
)

// IsPlacement reports whether the move put a piece on the board.
func (k MoveKind) IsPlacement() bool {
	return k == KindLead || k == KindPlay || k == KindBatida
}

// Move is one entry of the round's move log.
type Move struct {
	Turn  int      `json:"ordem"`
	Seat  Seat     `json:"jogador"`
	Kind  MoveKind `json:"tipo"`
	Piece *Piece   `json:"peca,omitempty"`
	Side  Side     `json:"lado,omitempty"`
}

// NewPlacement builds the log entry for a piece going onto the board.
func NewPlacement(turn int, seat Seat, kind MoveKind, piece Piece, side Side) Move {
	return Move{Turn: turn, Seat: seat, Kind: kind, Piece: &piece, Side: side}
}

// NewPass builds the log entry for a pass.
func NewPass(turn int, seat Seat) Move {
	return Move{Turn: turn, Seat: seat, Kind: KindPass}
}
