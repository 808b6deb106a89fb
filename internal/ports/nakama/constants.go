package nakama

const (
	// RpcSimulateRound is the Nakama RPC id clients call to play one round.
	RpcSimulateRound = "domino_simulate_round"

	// RpcScoreboard returns the running score without playing a round.
	RpcScoreboard = "domino_scoreboard"
)

const (
	// gameConfigPath is resolved relative to the Nakama data directory.
	gameConfigPath = "data/domino_config.json"

	// envSeed overrides the configured shuffle seed.
	envSeed = "domino_seed"
)
