package publisher

import (
	"encoding/json"
	"fmt"

	"github.com/anishghimire862/ticket-booking-frontend/internal/messaging"
	"github.com/anishghimire862/ticket-booking-frontend/internal/models"
)

const BookingConfirmedQueue = "booking.confirmed"

// BookingPublisher feeds confirmed bookings into the notification pipeline.
type BookingPublisher struct {
	mq *messaging.RabbitMQ
}

func NewBookingPublisher(mq *messaging.RabbitMQ) (*BookingPublisher, error) {
	// Declare the queue
	if err := mq.DeclareQueue(BookingConfirmedQueue); err != nil {
		return nil, err
	}

	return &BookingPublisher{mq: mq}, nil
}

// PublishBookingConfirmed publishes a booking.confirmed event
func (p *BookingPublisher) PublishBookingConfirmed(event models.BookingConfirmedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return p.mq.Publish(BookingConfirmedQueue, data)
}
