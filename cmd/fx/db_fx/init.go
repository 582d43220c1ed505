package db_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"monastery/internal/config"
	"monastery/internal/infra"
)

var Module = fx.Provide(
	provideDB, provideUploadStore)

// provideDB returns a nil *gorm.DB for the memory driver; repository
// providers fall back to their in-memory variants in that case.
func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	if cfg.Storage.Driver == "memory" {
		logger.Info("using in-memory storage, data is lost on restart")
		return nil, nil
	}

	db, err := infra.OpenDatabase(cfg.Storage.Driver, cfg.Storage.DSN, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() { infra.CloseDatabase(db, logger) }))
	return db, nil
}

func provideUploadStore(cfg *config.Config, logger *zap.Logger) (infra.UploadStore, error) {
	logger.Info("upload store", zap.String("driver", cfg.Upload.Driver), zap.String("dir", cfg.Upload.Dir))
	return infra.NewUploadStore(cfg.Upload.Driver, cfg.Upload.Dir)
}
