package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"yogabooking/internal/cart"
	"yogabooking/internal/config"
	h "yogabooking/internal/http/handlers"
	"yogabooking/internal/http/middleware"
	"yogabooking/internal/repositories"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Catalog  repositories.CatalogStore
	Ledger   repositories.BookingLedger
	Profiles repositories.CustomerProfileStore
	Carts    *cart.Manager
}

func NewRouter(env config.Env, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), cors.New(cors.Config{
		AllowOrigins:     env.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	hs := h.Handlers{
		Catalog:        deps.Catalog,
		Ledger:         deps.Ledger,
		Profiles:       deps.Profiles,
		Carts:          deps.Carts,
		CaseFoldEmails: env.CaseFoldEmails,
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		classes := api.Group("/classes")
		classes.GET("", hs.GetClasses)
		classes.GET("/teachers", hs.GetTeacherNames)
		classes.GET("/:id", hs.GetClassByID)

		carts := api.Group("/carts")
		carts.POST("", hs.CreateCart)
		carts.GET("/:id", hs.GetCart)
		carts.POST("/:id/items", hs.AddCartItem)
		carts.DELETE("/:id/items/:classId", hs.RemoveCartItem)
		carts.POST("/:id/book", hs.BookCart)

		bookings := api.Group("/bookings")
		bookings.GET("", hs.GetBookings)
		bookings.POST("/cancel", hs.CancelBooking)
		bookings.GET("/confirmation", hs.GetBookingConfirmationPDF)

		customers := api.Group("/customers")
		customers.GET("/:email/classes", hs.GetCustomerClasses)
	}

	return r
}
