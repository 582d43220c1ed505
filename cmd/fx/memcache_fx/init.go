package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	mem "monastery/pkg/memcache"
)

const purgeInterval = 10 * time.Minute

var Module = fx.Provide(provideRevokedTokens)

func provideRevokedTokens(lc fx.Lifecycle, logger *zap.Logger) mem.RevokedTokenStore {
	store := mem.NewRevokedTokens()

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go purgeLoop(ctx, store, logger)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return store
}

func purgeLoop(ctx context.Context, store mem.RevokedTokenStore, logger *zap.Logger) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Purge(); n > 0 {
				logger.Debug("purged revoked tokens", zap.Int("count", n))
			}
		}
	}
}
