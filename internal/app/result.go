package app

import "dominosim/internal/domain"

// Outcome is the terminal state of a round. The zero value means the round is
// still running.
type Outcome struct {
	Classification domain.Classification `json:"tipo_batida"`
	Reason         domain.EndReason      `json:"motivo_fim"`
	Winner         domain.Seat           `json:"vencedor_rodada"`
	Points         int                   `json:"pontuacao_rodada"`
}

// Over reports whether the round has terminated.
func (o Outcome) Over() bool {
	return o.Reason != domain.EndNone
}

func batidaOutcome(seat domain.Seat, piece domain.Piece, before domain.Ends) Outcome {
	class := domain.ClassifyBatida(piece, before)
	return Outcome{
		Classification: class,
		Reason:         domain.EndBatida,
		Winner:         seat,
		Points:         class.Points(),
	}
}

func blockedOutcome(hands domain.Hands) Outcome {
	winner, points := domain.BlockedOutcome(hands)
	return Outcome{
		Classification: domain.ClassTravamento,
		Reason:         domain.EndTravamento,
		Winner:         winner,
		Points:         points,
	}
}

// RoundResult is everything a simulated round produces.
type RoundResult struct {
	RoundID string         `json:"id"`
	States  []Snapshot     `json:"estados"`
	Final   Outcome        `json:"final"`
	Score   Score          `json:"placar"`
	History []HistoryEntry `json:"historicoRodadas"`

	// Deal is the starting position, kept for replay and invariant checks.
	Deal domain.Deal `json:"-"`
}

// ErrorPayload is returned to clients instead of a result when the round
// could not start.
type ErrorPayload struct {
	Error string `json:"error"`
}
