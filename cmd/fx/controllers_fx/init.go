package controllers_fx

import (
	"go.uber.org/fx"
	"monastery/internal/api/controllers"
	"monastery/internal/config"
	"monastery/internal/services"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewContactController),
	fx.Provide(controllers.NewMonasteryController),
	fx.Provide(controllers.NewSlideshowController),
	fx.Provide(providePhotoController),
	fx.Provide(provideHealthController))

func providePhotoController(cfg *config.Config, photoService services.PhotoServiceInterface) *controllers.PhotoController {
	return controllers.NewPhotoController(photoService, cfg.Upload.MaxBytes)
}

func provideHealthController() *controllers.HealthController {
	return controllers.NewHealthController(config.Version)
}
