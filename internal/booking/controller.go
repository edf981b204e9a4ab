// Package booking owns the submission flow: the user's in-progress selection,
// its validation, the idempotency key of each attempt, and reconciliation of
// the Booking Service's answer back into the inventory view.
package booking

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/anishghimire862/ticket-booking-frontend/internal/inventory"
	"github.com/anishghimire862/ticket-booking-frontend/internal/models"
)

// BookingService is the Booking Service as seen by the controller.
type BookingService interface {
	CreateBooking(ctx context.Context, booking models.BookingRequest) (*models.BookingResult, error)
}

// ConfirmationPublisher feeds confirmed bookings to the notification pipeline.
type ConfirmationPublisher interface {
	PublishBookingConfirmed(event models.BookingConfirmedEvent) error
}

type State string

const (
	StateIdle       State = "IDLE"
	StateReady      State = "READY"
	StateSubmitting State = "SUBMITTING"
)

// Controller manages one booking attempt at a time for a fixed user.
//
// The selection only ever holds the tier id; the tier itself is re-resolved
// from the inventory view on every use, so a reconciled tier list invalidates
// the selection instead of leaving a dangling reference. Exactly one
// submission may be in flight; while it is, every mutating command is
// rejected with ErrSubmissionInFlight.
type Controller struct {
	userID    int64
	view      *inventory.View
	service   BookingService
	guard     SubmitGuard
	publisher ConfirmationPublisher

	mu    sync.Mutex
	sel   models.BookingSelection
	state State
}

func NewController(userID int64, view *inventory.View, service BookingService, guard SubmitGuard, publisher ConfirmationPublisher) *Controller {
	return &Controller{
		userID:    userID,
		view:      view,
		service:   service,
		guard:     guard,
		publisher: publisher,
		sel:       models.DefaultSelection(),
		state:     StateIdle,
	}
}

// SelectTier picks a tier by id. The tier must exist in the current view.
func (c *Controller) SelectTier(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return ErrSubmissionInFlight
	}
	if _, ok := c.view.Event(); !ok {
		return ErrEventNotLoaded
	}
	if _, ok := c.view.TierByID(id); !ok {
		return ErrTierNotFound
	}
	c.sel.TierID = id
	c.state = StateReady
	return nil
}

// SetQuantity sets the requested quantity. The selected tier's remaining
// availability is an advisory upper bound here; the Booking Service stays
// authoritative at submit time.
func (c *Controller) SetQuantity(n int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return ErrSubmissionInFlight
	}
	if n < 1 {
		return ErrInvalidQuantity
	}
	if c.sel.TierID != 0 {
		if tier, ok := c.view.TierByID(c.sel.TierID); ok && n > tier.AvailableQuantity {
			return ErrQuantityUnavailable
		}
	}
	c.sel.Quantity = n
	c.state = StateReady
	return nil
}

// SetPayment stores the card fields. They are opaque to this service; only
// non-emptiness is checked, and not before submit.
func (c *Controller) SetPayment(cardName, cardNumber string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return ErrSubmissionInFlight
	}
	c.sel.CardName = cardName
	c.sel.CardNumber = cardNumber
	c.state = StateReady
	return nil
}

// Reset abandons the selection back to its defaults.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return ErrSubmissionInFlight
	}
	c.sel = models.DefaultSelection()
	c.state = StateIdle
	return nil
}

// Selection returns the current selection.
func (c *Controller) Selection() models.BookingSelection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel
}

// State returns the controller's current phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// TotalCents computes the price of the current selection from the current
// view. Zero when no tier is selected or the tier is gone.
func (c *Controller) TotalCents() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	tier, ok := c.view.TierByID(c.sel.TierID)
	if !ok {
		return 0
	}
	return tier.PriceCents * int64(c.sel.Quantity)
}

// SubmitResult is the outcome of a successful submission.
type SubmitResult struct {
	Status         string
	Tiers          []models.EventTier
	IdempotencyKey string
}

// Submit validates the selection, mints a fresh idempotency key, sends the
// booking request, and reconciles the response.
//
// Validation failures abort before any network traffic with the selection
// untouched, in a fixed order: tier selected and present in the view,
// quantity at least 1, both card fields non-empty. On success the view's tiers
// are replaced by the response's and the selection resets to defaults. On any
// failure the selection is preserved so the user can correct and resubmit;
// the resubmission mints a new key.
func (c *Controller) Submit(ctx context.Context) (SubmitResult, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return SubmitResult{}, ErrSubmissionInFlight
	}

	sel := c.sel
	if sel.TierID == 0 {
		c.mu.Unlock()
		return SubmitResult{}, ErrNoTierSelected
	}
	tier, ok := c.view.TierByID(sel.TierID)
	if !ok {
		c.mu.Unlock()
		return SubmitResult{}, ErrTierNotFound
	}
	if sel.Quantity < 1 {
		c.mu.Unlock()
		return SubmitResult{}, ErrInvalidQuantity
	}
	if sel.CardName == "" || sel.CardNumber == "" {
		c.mu.Unlock()
		return SubmitResult{}, ErrPaymentDetailsRequired
	}

	acquired, err := c.guard.Acquire(ctx, c.guardKey())
	if err != nil {
		c.mu.Unlock()
		return SubmitResult{}, fmt.Errorf("failed to acquire submit guard: %w", err)
	}
	if !acquired {
		c.mu.Unlock()
		return SubmitResult{}, ErrSubmissionInFlight
	}
	c.state = StateSubmitting
	c.mu.Unlock()

	key := uuid.NewString()
	request := models.BookingRequest{
		UserID:         c.userID,
		TierID:         sel.TierID,
		Quantity:       sel.Quantity,
		IdempotencyKey: key,
		Payment: models.PaymentDetails{
			PaymentMethod: models.PaymentMethodCard,
			CardName:      sel.CardName,
			CardNumber:    sel.CardNumber,
			// Recomputed from the view at submit time, never from a
			// price cached at selection time.
			AmountCents: tier.PriceCents * int64(sel.Quantity),
		},
	}

	result, err := c.service.CreateBooking(ctx, request)

	c.mu.Lock()
	defer c.mu.Unlock()

	if releaseErr := c.guard.Release(ctx, c.guardKey()); releaseErr != nil {
		log.Printf("⚠️ Failed to release submit guard: %v", releaseErr)
	}

	if err != nil {
		// Selection stays intact so the user can correct and resubmit.
		c.state = StateReady
		return SubmitResult{}, err
	}

	eventID := int64(0)
	if event, ok := c.view.Event(); ok {
		eventID = event.ID
	}

	c.view.ApplyBookingResult(result.Tiers)
	c.sel = models.DefaultSelection()
	c.state = StateIdle

	if c.publisher != nil {
		confirmed := models.BookingConfirmedEvent{
			UserID:         c.userID,
			EventID:        eventID,
			TierID:         request.TierID,
			Quantity:       request.Quantity,
			AmountCents:    request.Payment.AmountCents,
			Status:         result.Booking.Status,
			IdempotencyKey: key,
		}
		if pubErr := c.publisher.PublishBookingConfirmed(confirmed); pubErr != nil {
			// The booking already succeeded upstream.
			log.Printf("⚠️ Failed to publish booking confirmation: %v", pubErr)
		}
	}

	return SubmitResult{
		Status:         result.Booking.Status,
		Tiers:          append([]models.EventTier(nil), result.Tiers...),
		IdempotencyKey: key,
	}, nil
}

func (c *Controller) guardKey() string {
	return fmt.Sprintf("booking:submit:%d", c.userID)
}
