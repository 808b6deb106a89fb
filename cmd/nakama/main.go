// Command nakama builds the Nakama Go runtime plugin that serves domino rounds
// over RPC.
package main

import (
	"context"
	"database/sql"

	"dominosim/internal/ports/nakama"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule is the symbol Nakama looks up when loading the plugin.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	return nakama.InitModule(ctx, logger, db, nk, initializer)
}

// main is unused when built with -buildmode=plugin; it lets the package link
// under a regular `go build`.
func main() {}
