package ports

import "dominosim/internal/app"

// RoundPort is what the hosting adapters need from the round engine.
type RoundPort interface {
	// SimulateRound deals and plays one round, crediting the ledger.
	// A missing opening double is reported as domain.ErrNoOpeningDouble.
	SimulateRound() (*app.RoundResult, error)

	// Scoreboard returns the running score and round history without playing.
	Scoreboard() app.Scoreboard
}
