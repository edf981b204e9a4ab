package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/anishghimire862/ticket-booking-frontend/internal/models"
)

// ServiceError is a rejection the Booking Service answered with. Message is
// the service-provided human-readable reason when present.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("booking service returned status %d", e.StatusCode)
}

type BookingClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewBookingClient(baseURL string) *BookingClient {
	return &BookingClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CreateBooking submits a booking request. A non-2xx answer is returned as a
// *ServiceError carrying the service's message; transport problems come back
// as plain wrapped errors.
func (c *BookingClient) CreateBooking(ctx context.Context, booking models.BookingRequest) (*models.BookingResult, error) {
	url := fmt.Sprintf("%s/bookings", c.baseURL)

	body, err := json.Marshal(booking)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build booking request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call booking service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var payload struct {
			Message string `json:"message"`
		}
		// A malformed error body still yields a usable status-based message.
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return nil, &ServiceError{StatusCode: resp.StatusCode, Message: payload.Message}
	}

	var result models.BookingResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}
