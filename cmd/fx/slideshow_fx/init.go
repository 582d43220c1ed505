package slideshow_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"monastery/internal/config"
	"monastery/internal/slideshow"
)

var Module = fx.Provide(provideSlideShow)

func provideSlideShow(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) *slideshow.SlideShow {
	show := slideshow.New(cfg.Slideshow.Images, logger.Named("slideshow"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				show.Run(ctx, cfg.Slideshow.Interval)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
	return show
}
