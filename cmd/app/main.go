package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g ../../internal/api/router.go -d ../../ -o ../../docs --parseInternal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"monastery/cmd/fx/account_fx"
	"monastery/cmd/fx/config_fx"
	"monastery/cmd/fx/contact_fx"
	"monastery/cmd/fx/controllers_fx"
	"monastery/cmd/fx/db_fx"
	"monastery/cmd/fx/explorer_fx"
	"monastery/cmd/fx/mail_fx"
	"monastery/cmd/fx/memcache_fx"
	"monastery/cmd/fx/photo_fx"
	"monastery/cmd/fx/slideshow_fx"
	_ "monastery/docs"
	"monastery/internal/api"
	"monastery/internal/config"
)

// @title Monasteries of Sikkim API
// @version 1.0
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		photo_fx.Module,
		contact_fx.Module,
		explorer_fx.Module,
		slideshow_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.GetServerAddr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr), zap.String("version", config.Version))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
