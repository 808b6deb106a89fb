package nakama

import (
	"context"
	"database/sql"

	"dominosim/internal/app"
	"dominosim/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule builds the round service and wires RPCs for Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := config.LoadGameConfig(gameConfigPath); err != nil {
		logger.Warn("InitModule: Could not load game config: %v", err)
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	seed, err := config.ParseSeed(env[envSeed], config.GetSeed())
	if err != nil {
		logger.Warn("InitModule: Ignoring %s: %v", envSeed, err)
	}

	rounds = app.NewService(config.NewRand(seed), app.NewLedger())

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.Info("Domino Go module loaded.")
	return nil
}
