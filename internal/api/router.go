package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"monastery/internal/api/controllers"
	"monastery/internal/config"
	"monastery/internal/models/db_models"
	mem "monastery/pkg/memcache"
	"monastery/pkg/middleware"
	"monastery/pkg/utils"
)

// Handlers groups every controller the router mounts.
type Handlers struct {
	fx.In

	Account   *controllers.AccountController
	Photo     *controllers.PhotoController
	Contact   *controllers.ContactController
	Monastery *controllers.MonasteryController
	Slideshow *controllers.SlideshowController
	Health    *controllers.HealthController
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	tokens *utils.TokenManager,
	revoked mem.RevokedTokenStore,
	h Handlers,
) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))

	RegisterRoutes(r, h, middleware.JWTAuthMiddleware(tokens, revoked))
	return r
}

func RegisterRoutes(r *gin.Engine, h Handlers, auth gin.HandlerFunc) {
	admin := middleware.RoleMiddleware(db_models.RoleAdmin)

	r.GET("/health", h.Health.Health)
	r.GET("/uploads/:name", h.Photo.ServeUpload)

	apiGroup := r.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/signup", h.Account.Register)
	authGroup.POST("/login", h.Account.Login)
	authGroup.POST("/logout", auth, h.Account.Logout)

	apiGroup.GET("/accounts", auth, admin, h.Account.GetAllAccounts)

	monasteries := apiGroup.Group("/monasteries")
	monasteries.GET("", h.Monastery.ListMonasteries)
	monasteries.POST("/filter", h.Monastery.ApplyFilter)
	monasteries.GET("/current", h.Monastery.CurrentView)
	monasteries.GET("/map", h.Monastery.MapFeatures)
	monasteries.GET("/filters", h.Monastery.FilterOptions)
	monasteries.GET("/detail", h.Monastery.GetMonastery)
	monasteries.GET("/nearby", h.Monastery.NearbyMonasteries)
	monasteries.GET("/markers/:id", h.Monastery.MarkerRecord)

	slides := apiGroup.Group("/slides")
	slides.GET("", h.Slideshow.GetSlides)
	slides.POST("/next", h.Slideshow.NextSlide)
	slides.POST("/previous", h.Slideshow.PreviousSlide)
	slides.POST("/show", h.Slideshow.ShowSlide)

	photos := apiGroup.Group("/photos")
	photos.GET("", h.Photo.ListPhotos)
	photos.POST("", auth, admin, h.Photo.UploadPhoto)

	contact := apiGroup.Group("/contact")
	contact.POST("", h.Contact.SubmitContact)
	contact.GET("", auth, admin, h.Contact.ListContacts)

	r.GET("/swagger/*any", func(c *gin.Context) {
		if c.Param("any") == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
