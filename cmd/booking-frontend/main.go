package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anishghimire862/ticket-booking-frontend/internal/booking"
	"github.com/anishghimire862/ticket-booking-frontend/internal/cache"
	"github.com/anishghimire862/ticket-booking-frontend/internal/client"
	"github.com/anishghimire862/ticket-booking-frontend/internal/config"
	"github.com/anishghimire862/ticket-booking-frontend/internal/discovery"
	"github.com/anishghimire862/ticket-booking-frontend/internal/handlers"
	"github.com/anishghimire862/ticket-booking-frontend/internal/inventory"
	"github.com/anishghimire862/ticket-booking-frontend/internal/messaging"
	"github.com/anishghimire862/ticket-booking-frontend/internal/publisher"
)

const (
	serviceName = "booking-frontend"
	serviceID   = "booking-frontend-1"

	catalogServiceName = "event-catalog-service"
	bookingServiceName = "booking-service"
)

func main() {
	cfg := config.Load()

	// Resolve upstream services through Consul, falling back to configured URLs
	catalogURL := cfg.CatalogServiceURL
	bookingURL := cfg.BookingServiceURL

	consul, err := discovery.NewConsulClient(cfg.ConsulHost, cfg.ConsulPort)
	if err != nil {
		log.Printf("⚠️ Failed to connect to Consul, using configured URLs: %v", err)
	} else {
		if url, err := consul.GetServiceURL(catalogServiceName); err != nil {
			log.Printf("⚠️ Service %s not found in Consul: %v", catalogServiceName, err)
		} else {
			catalogURL = url
		}
		if url, err := consul.GetServiceURL(bookingServiceName); err != nil {
			log.Printf("⚠️ Service %s not found in Consul: %v", bookingServiceName, err)
		} else {
			bookingURL = url
		}
	}

	catalogClient := client.NewCatalogClient(catalogURL)
	bookingClient := client.NewBookingClient(bookingURL)

	// Submit guard: Redis when configured, in-process otherwise
	var guard booking.SubmitGuard = booking.NewMemoryGuard()
	if cfg.RedisHost != "" {
		redisGuard, err := cache.NewRedisGuard(cfg.RedisHost, cfg.RedisPort, time.Duration(cfg.SubmitGuardTTLSec)*time.Second)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisGuard.Close()
		guard = redisGuard
	}

	// Confirmation publisher: optional, booking flow works without it
	var confirmations booking.ConfirmationPublisher
	if cfg.RabbitHost != "" {
		rabbitMQ, err := messaging.NewRabbitMQ(cfg.RabbitHost, cfg.RabbitPort, cfg.RabbitUser, cfg.RabbitPass)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbitMQ.Close()

		bookingPublisher, err := publisher.NewBookingPublisher(rabbitMQ)
		if err != nil {
			log.Fatalf("Failed to create publisher: %v", err)
		}
		confirmations = bookingPublisher
	}

	// One startup fetch populates the view; after this only booking responses
	// may replace the tier list.
	view := inventory.NewView()
	loadErr := loadEvent(view, catalogClient)
	if loadErr != "" {
		log.Printf("⚠️ %s", loadErr)
	}

	controller := booking.NewController(cfg.UserID, view, bookingClient, guard, confirmations)
	bookingHandler := handlers.NewBookingHandler(view, controller, loadErr)

	// Setup router
	router := gin.Default()

	router.GET("/health", bookingHandler.HealthCheck)
	router.GET("/event", bookingHandler.GetEvent)
	router.GET("/selection", bookingHandler.GetSelection)
	router.POST("/selection/tier", bookingHandler.SelectTier)
	router.POST("/selection/quantity", bookingHandler.SetQuantity)
	router.POST("/selection/payment", bookingHandler.SetPayment)
	router.DELETE("/selection", bookingHandler.ResetSelection)
	router.POST("/bookings", bookingHandler.SubmitBooking)

	// Register with Consul when available
	if consul != nil {
		err = consul.Register(discovery.ServiceConfig{
			Name: serviceName,
			ID:   serviceID,
			Port: cfg.Port,
			Tags: []string{"frontend", "bookings"},
		})
		if err != nil {
			log.Printf("⚠️ Failed to register with Consul: %v", err)
		} else {
			defer consul.Deregister(serviceID)
		}
	}

	// Start server
	log.Printf("🚀 Booking Frontend starting on http://localhost:%d", cfg.Port)
	log.Printf("   Catalog: %s, Bookings: %s", catalogURL, bookingURL)
	router.Run(fmt.Sprintf(":%d", cfg.Port))
}

// loadEvent performs the single startup catalog fetch: list events, report
// "No events available" on an empty catalog, otherwise load the first event's
// detail into the view. Returns the user-visible condition, empty on success.
func loadEvent(view *inventory.View, catalog *client.CatalogClient) string {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	events, err := catalog.ListEvents(ctx)
	if err != nil {
		log.Printf("❌ Catalog fetch failed: %v", err)
		return "Failed to fetch events"
	}
	if len(events) == 0 {
		return "No events available"
	}

	detail, err := catalog.GetEvent(ctx, events[0].ID)
	if err != nil {
		log.Printf("❌ Event detail fetch failed: %v", err)
		return "Failed to fetch events"
	}

	view.Load(*detail)
	log.Printf("✅ Loaded event %q with %d tiers", detail.Name, len(detail.Tiers))
	return ""
}
