package app

import (
	"sync"

	"dominosim/internal/domain"
)

// Score is the running total per partnership.
type Score struct {
	Dupla1 int `json:"Dupla_1"`
	Dupla2 int `json:"Dupla_2"`
}

// Of returns the points held by a partnership.
func (s Score) Of(p domain.Partnership) int {
	switch p {
	case domain.Dupla1:
		return s.Dupla1
	case domain.Dupla2:
		return s.Dupla2
	default:
		return 0
	}
}

func (s *Score) add(p domain.Partnership, points int) {
	switch p {
	case domain.Dupla1:
		s.Dupla1 += points
	case domain.Dupla2:
		s.Dupla2 += points
	}
}

// HistoryEntry summarizes one completed round. A blocked round with a tied
// minimum is recorded with no winner and zero points.
type HistoryEntry struct {
	RoundID        string                `json:"id"`
	Winner         domain.Seat           `json:"vencedor"`
	Classification domain.Classification `json:"tipoBatida"`
	Points         int                   `json:"pontos"`
	Partnership    domain.Partnership    `json:"dupla"`
}

// Scoreboard is a consistent view of the ledger.
type Scoreboard struct {
	Score   Score          `json:"placar"`
	History []HistoryEntry `json:"historicoRodadas"`
}

// Ledger accumulates partnership scores and the round history across rounds.
// It is safe for concurrent use.
type Ledger struct {
	mu      sync.Mutex
	score   Score
	history []HistoryEntry
}

// NewLedger returns a ledger with both partnerships at zero and no history.
func NewLedger() *Ledger {
	return &Ledger{history: []HistoryEntry{}}
}

// Record appends the round to the history and credits its points.
func (l *Ledger) Record(roundID string, outcome Outcome) HistoryEntry {
	entry := HistoryEntry{
		RoundID:        roundID,
		Winner:         outcome.Winner,
		Classification: outcome.Classification,
		Points:         outcome.Points,
		Partnership:    outcome.Winner.Partnership(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.score.add(entry.Partnership, entry.Points)
	l.history = append(l.history, entry)
	return entry
}

// Score returns the current totals.
func (l *Ledger) Score() Score {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.score
}

// History returns a copy of the completed rounds in order.
func (l *Ledger) History() []HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.historyLocked()
}

// Scoreboard returns the score and history read under one lock.
func (l *Ledger) Scoreboard() Scoreboard {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Scoreboard{Score: l.score, History: l.historyLocked()}
}

func (l *Ledger) historyLocked() []HistoryEntry {
	out := make([]HistoryEntry, len(l.history))
	copy(out, l.history)
	return out
}
