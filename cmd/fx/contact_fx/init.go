package contact_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"monastery/internal/repositories"
	"monastery/internal/services"
)

var Module = fx.Provide(
	provideContactService, provideContactRepo)

func provideContactRepo(db *gorm.DB) repositories.ContactRepositoryInterface {
	if db == nil {
		return repositories.NewMemoryContactRepository()
	}
	return repositories.NewContactRepository(db)
}

func provideContactService(
	lc fx.Lifecycle,
	contactRepo repositories.ContactRepositoryInterface,
	mailService services.IMailService,
	logger *zap.Logger,
) services.ContactServiceInterface {
	svc := services.NewContactService(contactRepo, mailService, logger.Named("contact"))
	// let in-flight notifications finish before shutdown
	lc.Append(fx.StopHook(svc.Wait))
	return svc
}
