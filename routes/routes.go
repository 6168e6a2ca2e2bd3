package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cottage-backend/controllers"
	"cottage-backend/middleware"
)

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the API surface.
func SetupRouter(
	rc *controllers.RoomController,
	ac *controllers.AmenityController,
	gc *controllers.GalleryController,
	pc *controllers.PricingController,
	bc *controllers.BookingController,
	cc *controllers.CartController,
	nc *controllers.NotifyController,
	corsOrigins string,
	log *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	origins := parseCorsOrigins(corsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.SaveRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		amenities := api.Group("/amenities")
		{
			amenities.GET("", ac.GetAmenities)
			amenities.POST("", ac.SaveAmenity)
			amenities.DELETE("/:id", ac.DeleteAmenity)
		}

		gallery := api.Group("/gallery")
		{
			gallery.GET("", gc.GetGallery)
			gallery.POST("", gc.SaveGalleryItem)
			gallery.DELETE("/:id", gc.DeleteGalleryItem)
		}

		pricing := api.Group("/pricing")
		{
			pricing.GET("", pc.GetPricing)
			pricing.POST("", pc.SavePricingTier)
			pricing.DELETE("/:id", pc.DeletePricingTier)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
		}

		cart := api.Group("/cart")
		{
			cart.GET("", cc.GetSummary)
			cart.PATCH("", cc.SyncCart)
			cart.POST("/select-room/:id", cc.SelectRoom)
			cart.PUT("/txn", cc.SetTxnID)
			cart.DELETE("", cc.ClearCart)
			cart.GET("/bill", cc.GetBill)
		}

		api.POST("/tariff-request", nc.RequestTariff)
		api.POST("/contact", nc.Contact)
	}

	return r
}
