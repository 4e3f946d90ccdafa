package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coachbooking/internal/config"
	h "coachbooking/internal/http/handlers"
	"coachbooking/internal/http/middleware"
	"coachbooking/internal/session"
)

func NewRouter(env config.Env, store *session.Store, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.Origins()))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "không tìm thấy đường dẫn",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	handler := h.NewHandler(env, store, logger)

	api := r.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.GET("/provinces", handler.GetProvinces)

		trips := api.Group("/trips")
		trips.GET("/search", handler.SearchTrips)
		trips.GET("/filters", handler.GetTripFilters)

		wizard := api.Group("/wizard")
		wizard.POST("", handler.CreateWizard)
		wizard.GET("/:id", handler.GetWizard)
		wizard.DELETE("/:id", handler.DeleteWizard)
		wizard.POST("/:id/trip", handler.SelectWizardTrip)
		wizard.POST("/:id/seats/toggle", handler.ToggleWizardSeat)
		wizard.PUT("/:id/payment-method", handler.SetWizardPaymentMethod)
		wizard.PUT("/:id/payment", handler.FillWizardPayment)
		wizard.POST("/:id/next", handler.AdvanceWizard)
		wizard.POST("/:id/back", handler.RetreatWizard)

		bookings := api.Group("/bookings")
		bookings.GET("/history", handler.SearchBookingsByPhone)
		bookings.GET("/mine", handler.ListMyBookings)
		bookings.GET("/:id", handler.GetBookingDetail)
		bookings.GET("/:id/e-ticket", handler.GetBookingETicketPDF)

		auth := api.Group("/auth")
		auth.POST("/login", handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.POST("/register", handler.Register)
		auth.PUT("/password", handler.ChangePassword)
		auth.GET("/session", handler.GetSession)
		auth.GET("/availability", handler.CheckAvailability)
	}

	return r
}
