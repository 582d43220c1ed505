package mail_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"monastery/internal/config"
	"monastery/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config, logger *zap.Logger) (services.IMailService, error) {
	if !cfg.Mail.Enabled {
		return services.NewNoopMailService(logger.Named("mail")), nil
	}

	mailService, err := services.NewSMTPMailService(services.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		FromName: cfg.Mail.FromName,
		UseSSL:   cfg.Mail.UseSSL,
		NotifyTo: cfg.Mail.NotifyTo,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("smtp notifications enabled", zap.String("host", cfg.Mail.Host), zap.Int("port", cfg.Mail.Port))
	return mailService, nil
}
