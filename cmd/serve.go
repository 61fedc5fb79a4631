package cmd

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	pubnub "github.com/pubnub/go"

	"github.com/samirrathod1410/playarena-gameon-hub/config"
	"github.com/samirrathod1410/playarena-gameon-hub/handlers"
	_ "github.com/samirrathod1410/playarena-gameon-hub/migrations"
	"github.com/samirrathod1410/playarena-gameon-hub/monitoring"
	"github.com/samirrathod1410/playarena-gameon-hub/security"
	"github.com/samirrathod1410/playarena-gameon-hub/services"
	"github.com/samirrathod1410/playarena-gameon-hub/utils"
	"github.com/samirrathod1410/playarena-gameon-hub/whatsapp"
)

func Start() error {
	app := pocketbase.New()

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize Redis
	redisClient := utils.NewRedisClient(cfg.RedisURL)
	defer redisClient.Close()

	// Initialize PubNub
	pnConfig := pubnub.NewConfig()
	pnConfig.PublishKey = cfg.PubNubPublishKey
	pnConfig.SubscribeKey = cfg.PubNubSubscribeKey
	pnConfig.SecretKey = cfg.PubNubSecretKey

	pn := pubnub.NewPubNub(pnConfig)

	// Initialize services
	links := whatsapp.LinkBuilder{
		BaseURL:       cfg.WhatsAppBaseURL,
		OperatorPhone: cfg.OperatorPhone,
	}
	notifier := whatsapp.NewNotifier(links, whatsapp.NewPubNubPublisher(pn), cfg.CustomerNotifyDelay)

	catalog := services.NewGroundCatalog(app)
	reviews := services.NewReviewCatalog(app)
	availability := services.NewBookingAvailability(app)
	bookingStore := services.NewRecordBookingStore(app)
	bookingService := services.NewBookingService(bookingStore, catalog, availability, notifier, redisClient, cfg)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalog, reviews, availability)
	bookingHandler := handlers.NewBookingHandler(app, bookingService, bookingStore)
	adminHandler := handlers.NewAdminHandler(app, bookingService)

	rateLimiter := security.NewRateLimiter(redisClient, cfg.BookingRateLimit)

	// Enable migrations
	migratecmd.MustRegister(app, app.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	// Start background tasks
	stop := make(chan struct{})
	go monitoring.NewMonitor(app).Run(stop)
	go handleShutdown(stop)

	if cfg.EnableMetrics {
		go serveMetrics(cfg.MetricsPort)
	}

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		// Catalog endpoints
		e.Router.GET("/api/grounds", catalogHandler.ListGrounds)
		e.Router.GET("/api/grounds/compare", catalogHandler.CompareGrounds)
		e.Router.GET("/api/grounds/{groundId}", catalogHandler.GetGround)
		e.Router.GET("/api/grounds/{groundId}/slots", catalogHandler.GetSlots)
		e.Router.GET("/api/grounds/{groundId}/reviews", catalogHandler.GetReviews)

		// Booking endpoints
		e.Router.POST("/api/bookings", bookingHandler.Create).BindFunc(rateLimiter.Middleware())
		e.Router.GET("/api/bookings/history", bookingHandler.History)
		e.Router.GET("/api/bookings/{code}", bookingHandler.GetByCode)

		// Admin endpoints
		e.Router.GET("/api/admin/dashboard", adminHandler.Dashboard)
		e.Router.GET("/api/admin/bookings", adminHandler.ListBookings)
		e.Router.POST("/api/admin/bookings/{id}/confirm", adminHandler.ConfirmBooking)
		e.Router.POST("/api/admin/bookings/{id}/cancel", adminHandler.CancelBooking)
		e.Router.DELETE("/api/admin/bookings/{id}", adminHandler.DeleteBooking)
		e.Router.GET("/api/admin/users", adminHandler.ListUsers)
		e.Router.POST("/api/admin/grounds", adminHandler.CreateGround)
		e.Router.PATCH("/api/admin/grounds/{id}", adminHandler.UpdateGround)
		e.Router.DELETE("/api/admin/grounds/{id}", adminHandler.DeleteGround)

		// Health check
		e.Router.GET("/health", func(e *core.RequestEvent) error {
			if err := utils.RedisHealthCheck(redisClient); err != nil {
				return e.JSON(503, map[string]string{
					"status": "unhealthy",
					"error":  err.Error(),
				})
			}
			return e.JSON(200, map[string]string{"status": "healthy"})
		})

		log.Println("Server routes registered")

		return e.Next()
	})

	return app.Start()
}

func serveMetrics(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Printf("Metrics server stopped: %v", err)
	}
}

// handleShutdown stops background collectors on SIGINT/SIGTERM; PocketBase
// handles its own server shutdown.
func handleShutdown(stop chan struct{}) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
	close(stop)
}
