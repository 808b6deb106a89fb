package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"dominosim/internal/app"
	"dominosim/internal/domain"
	"dominosim/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// rounds is the engine behind the RPCs. InitModule sets it; tests replace it.
var rounds ports.RoundPort

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcSimulateRound, RpcSimulateRoundHandler); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcScoreboard, RpcScoreboardHandler)
}

// RpcSimulateRoundHandler plays one round and returns its full trace.
//
// Payload: ignored.
// Returns: the round result JSON, or {"error": ...} when no hand holds a double.
func RpcSimulateRoundHandler(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if rounds == nil {
		logger.Error("RpcSimulateRound [User:%s]: round service not initialized", userID)
		return "", errors.New("round service not initialized")
	}

	res, err := rounds.SimulateRound()
	if errors.Is(err, domain.ErrNoOpeningDouble) {
		logger.Warn("RpcSimulateRound [User:%s]: %v", userID, err)
		return marshalPayload(app.ErrorPayload{Error: domain.NoOpeningDoubleMessage})
	}
	if err != nil {
		logger.Error("RpcSimulateRound [User:%s]: Failed to simulate round: %v", userID, err)
		return "", err
	}

	logger.Info("RpcSimulateRound [User:%s]: Round %s ended by %s after %d turns, winner %s, %d points",
		userID, res.RoundID, res.Final.Reason, len(res.States), res.Final.Winner, res.Final.Points)
	return marshalPayload(res)
}

// RpcScoreboardHandler returns the score and round history accumulated so far.
func RpcScoreboardHandler(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	if rounds == nil {
		logger.Error("RpcScoreboard: round service not initialized")
		return "", errors.New("round service not initialized")
	}
	return marshalPayload(rounds.Scoreboard())
}

func marshalPayload(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return string(b), nil
}
