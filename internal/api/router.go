package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"rakb/api/internal/api/handlers"
	"rakb/api/internal/api/middleware"
	"rakb/api/internal/config"
	"rakb/api/internal/services"
	"rakb/api/internal/store"
)

// SetupRouter configures and returns the Gin engine. rdb may be nil (no
// city cache); st may be an unconfigured store, in which case the data
// endpoints fail with 500 while / and /test keep working.
func SetupRouter(cfg *config.Config, st store.Store, rdb *redis.Client) *gin.Engine {
	listingService := services.NewListingService(st, rdb, cfg.CitiesCacheTTL)
	bookingService := services.NewBookingService(st)
	catalogService := services.NewCatalogService(st)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	restListingHandler := handlers.NewRestListingHandler(listingService)
	restBookingHandler := handlers.NewRestBookingHandler(bookingService)
	restCatalogHandler := handlers.NewRestCatalogHandler(catalogService)
	diagHandler := handlers.NewDiagHandler(st)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": cfg.AppName, "status": "ok"})
	})

	api := r.Group("/api")
	{
		// Public browse/search
		api.POST("/listings", restListingHandler.SearchListings)
		api.GET("/listings/:id", restListingHandler.GetListingByID)
		api.GET("/cities", restListingHandler.GetCities)

		// Creation endpoints
		api.POST("/users", restCatalogHandler.CreateUser)
		api.POST("/cars", restCatalogHandler.CreateCar)
		api.POST("/listing", restListingHandler.CreateListing)
		api.POST("/bookings", restBookingHandler.CreateBooking)
		api.POST("/reviews", restCatalogHandler.CreateReview)
	}

	r.GET("/test", diagHandler.TestDatabase)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
