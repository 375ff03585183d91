package main

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchNameBigTwo is the authoritative match handler name registered with Nakama.
const MatchNameBigTwo = "bigtwo_match"

// InitModule wires the Nakama Go runtime module, registering the match handler.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := initializer.RegisterMatch(MatchNameBigTwo, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
		return &BigTwoMatch{}, nil
	}); err != nil {
		return err
	}

	logger.Info("Big Two Go module loaded.")
	return nil
}
