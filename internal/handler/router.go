package handler

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/qs-lzh/hotel-booking/internal/app"
	"github.com/qs-lzh/hotel-booking/internal/middleware"
)

const bookingWriteScope = "booking:write"

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func NewRouter(app *app.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(app.Logger))
	engine.Use(cors.New(corsConfig(app.Config.CORSAllowedOrigins)))

	engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := NewAuthHandler(app)
	auth := engine.Group("/auth")
	auth.POST("/sign-up", authHandler.HandleSignUp)
	auth.POST("/sign-in", authHandler.HandleSignIn)

	bookingHandler := NewBookingHandler(app)
	limitWrites := middleware.RateLimit(app.Cache, bookingWriteScope,
		app.Config.BookingRateLimit, app.Config.BookingRateWindow, app.Logger)

	booking := engine.Group("/booking", middleware.Authenticate(app.UserService, app.Logger))
	booking.GET("", bookingHandler.HandleGetBooking)
	booking.GET("/events", bookingHandler.HandleListEvents)
	booking.POST("", limitWrites, bookingHandler.HandleCreateBooking)
	booking.PUT("/:bookingId", limitWrites, bookingHandler.HandleReassignBooking)

	return engine
}
