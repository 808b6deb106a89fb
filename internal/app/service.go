package app

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"dominosim/internal/bot"
	"dominosim/internal/domain"

	"github.com/google/uuid"
)

// Service runs domino rounds and credits their results to a ledger.
// Rounds are serialized: the rng and the ledger are shared by every caller.
type Service struct {
	mu     sync.Mutex
	rng    *rand.Rand
	ledger *Ledger
	brain  bot.Brain
}

// NewService constructs a Service with provided rng and ledger, falling back
// to a time-seeded rng and a fresh ledger.
func NewService(rng *rand.Rand, ledger *Ledger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if ledger == nil {
		ledger = NewLedger()
	}
	return &Service{rng: rng, ledger: ledger, brain: bot.FirstLegalBot{}}
}

// Ledger returns the ledger the service records into.
func (s *Service) Ledger() *Ledger {
	return s.ledger
}

// Scoreboard returns the ledger's score and history.
func (s *Service) Scoreboard() Scoreboard {
	return s.ledger.Scoreboard()
}

// SimulateRound shuffles and deals a fresh deck and plays it out.
// It returns domain.ErrNoOpeningDouble when no hand holds a double.
func (s *Service) SimulateRound() (*RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.play(domain.NewDeal(s.rng))
}

// PlayDeal plays out a prepared deal.
func (s *Service) PlayDeal(deal domain.Deal) (*RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.play(deal)
}

// round is the mutable state of one game in progress.
type round struct {
	hands   domain.Hands
	board   domain.Board
	moves   []domain.Move
	passes  int
	outcome Outcome
}

func (s *Service) play(deal domain.Deal) (*RoundResult, error) {
	leader, opening, err := domain.FindOpener(deal.Hands)
	if err != nil {
		return nil, err
	}

	r := &round{hands: deal.Hands}
	var trace Recorder

	seat := leader
	for turn := 1; ; turn++ {
		hand, ends := r.hands.Of(seat), r.board.Ends()
		legal := domain.LegalMoves(hand, ends)

		switch {
		case turn == 1:
			// The opener always leads the highest double, whatever else it holds.
			err = r.place(turn, seat, opening, domain.KindLead)
		case len(legal) == 0:
			r.pass(turn, seat)
		default:
			err = r.place(turn, seat, s.brain.CalculateMove(hand, legal, ends), domain.KindPlay)
		}
		if err != nil {
			return nil, fmt.Errorf("turn %d (%s): %w", turn, seat, err)
		}

		trace.Capture(r.board, r.hands, r.moves, legal, r.outcome)
		if r.outcome.Over() {
			break
		}
		seat = seat.Next()
	}

	roundID := uuid.NewString()
	s.ledger.Record(roundID, r.outcome)
	board := s.ledger.Scoreboard()

	return &RoundResult{
		RoundID: roundID,
		States:  trace.Snapshots(),
		Final:   r.outcome,
		Score:   board.Score,
		History: board.History,
		Deal:    deal,
	}, nil
}

// place puts piece on the board for seat. Batida is graded against the ends
// as they stood before the piece went down.
func (r *round) place(turn int, seat domain.Seat, piece domain.Piece, kind domain.MoveKind) error {
	held := r.hands.Of(seat)
	if held.Index(piece) < 0 {
		return fmt.Errorf("%w: %s", domain.ErrPieceNotHeld, piece)
	}

	before := r.board.Ends()
	board, side, err := r.board.Place(piece)
	if err != nil {
		return err
	}
	r.board = board

	hand := held.Without(piece)
	r.hands[seat.Index()] = hand
	r.passes = 0

	if len(hand) == 0 {
		kind = domain.KindBatida
		r.outcome = batidaOutcome(seat, piece, before)
	}
	r.moves = append(r.moves, domain.NewPlacement(turn, seat, kind, piece, side))
	return nil
}

func (r *round) pass(turn int, seat domain.Seat) {
	r.moves = append(r.moves, domain.NewPass(turn, seat))
	r.passes++
	if r.passes == domain.BlockPassLimit {
		r.outcome = blockedOutcome(r.hands)
	}
}
