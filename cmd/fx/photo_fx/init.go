package photo_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"monastery/internal/config"
	"monastery/internal/infra"
	"monastery/internal/repositories"
	"monastery/internal/services"
)

var Module = fx.Provide(
	providePhotoService, providePhotoRepo)

func providePhotoRepo(db *gorm.DB) repositories.PhotoRepository {
	if db == nil {
		return repositories.NewMemoryPhotoRepository()
	}
	return repositories.NewPhotoRepository(db)
}

// Slideshow images double as gallery placeholders until something is uploaded.
func providePhotoService(
	cfg *config.Config,
	photoRepo repositories.PhotoRepository,
	store infra.UploadStore,
	logger *zap.Logger,
) services.PhotoServiceInterface {
	return services.NewPhotoService(photoRepo, store, cfg.Upload.MaxBytes, cfg.Slideshow.Images, logger.Named("photos"))
}
