package app

import "dominosim/internal/domain"

// Snapshot is the full table state right after one turn.
type Snapshot struct {
	Turn           int                   `json:"ordem_jogada"`
	Seat           domain.Seat           `json:"jogador"`
	Kind           domain.MoveKind       `json:"tipo"`
	Piece          *domain.Piece         `json:"peca,omitempty"`
	Side           domain.Side           `json:"lado,omitempty"`
	Board          domain.Board          `json:"tabuleiro"`
	Ends           domain.Ends           `json:"pontas"`
	Hands          domain.Hands          `json:"maos"`
	Classification domain.Classification `json:"tipo_batida"`
	Reason         domain.EndReason      `json:"motivo_fim"`
	Winner         domain.Seat           `json:"vencedor_rodada"`
	Moves          []domain.Move         `json:"jogadas"`
	Legal          domain.Hand           `json:"jogadas_disponiveis"`
}

// Recorder collects one snapshot per turn.
//
// Snapshots never point at anything the round loop still mutates. Boards and
// hands are replaced rather than edited on every play, so a snapshot can keep
// the values it was given. The move log only grows; each snapshot holds a
// prefix with its capacity clamped so appends on either side cannot reach
// the other.
type Recorder struct {
	snapshots []Snapshot
}

// Capture stores the state after the move that was just appended to moves.
func (r *Recorder) Capture(board domain.Board, hands domain.Hands, moves []domain.Move, legal domain.Hand, outcome Outcome) {
	last := moves[len(moves)-1]
	r.snapshots = append(r.snapshots, Snapshot{
		Turn:           last.Turn,
		Seat:           last.Seat,
		Kind:           last.Kind,
		Piece:          last.Piece,
		Side:           last.Side,
		Board:          board,
		Ends:           board.Ends(),
		Hands:          hands,
		Classification: outcome.Classification,
		Reason:         outcome.Reason,
		Winner:         outcome.Winner,
		Moves:          moves[:len(moves):len(moves)],
		Legal:          legal,
	})
}

// Snapshots returns the recorded turns in order.
func (r *Recorder) Snapshots() []Snapshot {
	return r.snapshots
}
