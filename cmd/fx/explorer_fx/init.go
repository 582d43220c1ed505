package explorer_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"monastery/internal/catalog"
	"monastery/internal/config"
	"monastery/internal/explorer"
	"monastery/internal/mapview"
)

var Module = fx.Provide(
	catalog.Default, provideExplorer)

func provideExplorer(lc fx.Lifecycle, cfg *config.Config, c *catalog.Catalog, logger *zap.Logger) *explorer.Explorer {
	ex := explorer.New(c, mapview.Options{
		Center:     catalog.Coordinates{Latitude: cfg.Map.CenterLat, Longitude: cfg.Map.CenterLon},
		Zoom:       cfg.Map.Zoom,
		TileURL:    cfg.Map.TileURL,
		DetailPage: cfg.Map.DetailPage,
	}, logger.Named("explorer"))

	lc.Append(fx.StartStopHook(ex.Start, ex.Stop))
	return ex
}
