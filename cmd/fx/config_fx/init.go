package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"monastery/internal/config"
	"monastery/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(config.Load, provideLogger, provideTokenManager),
	fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: logger.Named("fx")}
	}),
)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}
	restore := zap.ReplaceGlobals(logger)
	lc.Append(fx.StopHook(func() {
		restore()
		_ = logger.Sync()
	}))
	return logger, nil
}

func provideTokenManager(cfg *config.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}
