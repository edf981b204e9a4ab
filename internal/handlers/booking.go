package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anishghimire862/ticket-booking-frontend/internal/booking"
	"github.com/anishghimire862/ticket-booking-frontend/internal/client"
	"github.com/anishghimire862/ticket-booking-frontend/internal/inventory"
)

type BookingHandler struct {
	view       *inventory.View
	controller *booking.Controller
	loadErr    string
}

// NewBookingHandler wires the handler. loadErr carries the startup catalog
// condition ("No events available" or a fetch failure) when the view could
// not be populated; it stays empty on a successful load.
func NewBookingHandler(view *inventory.View, controller *booking.Controller, loadErr string) *BookingHandler {
	return &BookingHandler{
		view:       view,
		controller: controller,
		loadErr:    loadErr,
	}
}

// HealthCheck returns server status
func (h *BookingHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "booking-frontend"})
}

// GetEvent returns the current inventory view, or the startup load condition
// when no event could be loaded.
func (h *BookingHandler) GetEvent(c *gin.Context) {
	event, ok := h.view.Event()
	if !ok {
		msg := h.loadErr
		if msg == "" {
			msg = "event not loaded"
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, event)
}

// GetSelection returns the in-progress selection with its computed total
func (h *BookingHandler) GetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"selection":         h.controller.Selection(),
		"total_cents":       h.controller.TotalCents(),
		"submission_status": h.controller.State(),
	})
}

// SelectTier picks a tier for the in-progress selection
func (h *BookingHandler) SelectTier(c *gin.Context) {
	var req struct {
		TierID int64 `json:"tier_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.controller.SelectTier(req.TierID); err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"selection": h.controller.Selection()})
}

// SetQuantity sets the requested ticket quantity
func (h *BookingHandler) SetQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.controller.SetQuantity(req.Quantity); err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"selection": h.controller.Selection()})
}

// SetPayment stores the card fields for the in-progress selection
func (h *BookingHandler) SetPayment(c *gin.Context) {
	var req struct {
		CardName   string `json:"card_name"`
		CardNumber string `json:"card_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.controller.SetPayment(req.CardName, req.CardNumber); err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"selection": h.controller.Selection()})
}

// ResetSelection abandons the selection back to defaults
func (h *BookingHandler) ResetSelection(c *gin.Context) {
	if err := h.controller.Reset(); err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"selection": h.controller.Selection()})
}

// SubmitBooking validates and submits the current selection
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	result, err := h.controller.Submit(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	log.Printf("✅ Booking confirmed with status %s (idempotency key %s)", result.Status, result.IdempotencyKey)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking successful",
		"status":  result.Status,
		"tiers":   result.Tiers,
	})
}

// renderError maps controller and service errors onto responses. Service
// rejections surface the service-provided message; anything else from the
// wire becomes a generic failure.
func (h *BookingHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNoTierSelected),
		errors.Is(err, booking.ErrInvalidQuantity),
		errors.Is(err, booking.ErrQuantityUnavailable),
		errors.Is(err, booking.ErrPaymentDetailsRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrTierNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrEventNotLoaded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		var svcErr *client.ServiceError
		if errors.As(err, &svcErr) {
			log.Printf("❌ Booking rejected by service: %v", svcErr)
			c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Error()})
			return
		}
		log.Printf("❌ Booking submission failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Booking failed"})
	}
}
